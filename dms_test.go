// Copyright (c) 2025 hitoshi.mukai.b@gmail.com. All rights reserved.
// You are free to use this source code for any purpose. The copyright remains with the author.
// The author accepts no liability for any damages arising from the use of this source code.
//
// Last modified: 2026.10.16
//

package geoxy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDMSToDecimal(t *testing.T) {
	assert.Equal(t, 39.861666666666665, DMS{39, 51, 42}.ToDecimal())
	assert.Equal(t, -104.67277777777778, DMS{-104, 40, 22}.ToDecimal())
	assert.Equal(t, 0.5, DMS{0, 30, 0}.ToDecimal())
}

func TestDMSString(t *testing.T) {
	assert.Equal(t, "39° 51' 42\"", NewDMS(39, 51, 42).String())
	assert.Equal(t, "-104° 40' 22\"", DMS{-104, 40, 22}.String())

	loc := LocationDMS{Lat: DMS{39, 51, 42}, Lon: DMS{-104, 40, 22}}
	assert.Equal(t, "39° 51' 42\", -104° 40' 22\"", loc.String())
	assert.Equal(t, "39.861666666666665, -104.67277777777778", loc.ToLocation().String())
}

func TestDMSRoundTrip(t *testing.T) {
	for d := -180; d <= 180; d++ {
		for m := 0; m < 60; m++ {
			for s := 0; s < 60; s++ {
				in := DMS{d, m, s}
				if got := DMSFromDecimal(in.ToDecimal()); got != in {
					t.Fatalf("DMSFromDecimal(%v) = %v, want %v", in.ToDecimal(), got, in)
				}
			}
		}
	}
}

func TestDMSFromDecimalCarry(t *testing.T) {
	assert.Equal(t, DMS{40, 0, 0}, DMSFromDecimal(39.99999999))
	assert.Equal(t, DMS{-12, 30, 0}, DMSFromDecimal(-12.5))
	// No negative zero: the sign of sub-degree values is lost
	assert.Equal(t, DMS{0, 30, 0}, DMSFromDecimal(-0.5))
}
