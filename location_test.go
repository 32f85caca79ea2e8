// Copyright (c) 2025 hitoshi.mukai.b@gmail.com. All rights reserved.
// You are free to use this source code for any purpose. The copyright remains with the author.
// The author accepts no liability for any damages arising from the use of this source code.
//
// Last modified: 2026.10.16
//

package geoxy

import (
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAngleConversion(t *testing.T) {
	assert.InDelta(t, PI, Radians(180), 1e-15)
	assert.InDelta(t, 180.0, Degrees(PI), 1e-12)
	assert.InDelta(t, 90.0000187, Degrees(math.Pi/2), 1e-7)
	assert.InDelta(t, 45.0, Degrees(Radians(45)), 1e-12)
}

// Boulder to Denver International Airport
func TestBoulderToDIA(t *testing.T) {
	boulder := NewLocation(40.0274, -105.2519)
	dia := NewLocation(39.8617, -104.6731)

	assert.Equal(t, "110.48", fmt.Sprintf("%.2f", boulder.CalcBearingTo(*dia)))
	assert.Equal(t, "110.44", fmt.Sprintf("%.2f", boulder.EstimateBearingTo(*dia, LatSize, LonSize)))
}

func TestLocationString(t *testing.T) {
	dia := NewLocationDMS(DMS{39, 51, 42}, DMS{-104, 40, 22})
	assert.Equal(t, "39.861666666666665, -104.67277777777778", dia.String())

	assert.Equal(t, "40, -105", NewLocation(40, -105).String())
	assert.Equal(t, "0.0001, 0", NewLocation(0.0001, 0).String())
}

func TestLocationSet(t *testing.T) {
	loc := NewLocation(1, 2)
	loc.Set(40.0274, -105.2519)
	assert.Equal(t, Location{Lat: 40.0274, Lon: -105.2519}, *loc)
}

// Sparkfun AVC course
func TestSparkfunRouteBearings(t *testing.T) {
	route := Route{
		{Lat: 40.0906963, Lon: -105.185844},
		{Lat: 40.0908317, Lon: -105.185734},
		{Lat: 40.0910061, Lon: -105.1855154},
	}
	brgs := route.Bearings()
	assert.Len(t, brgs, 2)
	assert.Equal(t, "31.86", fmt.Sprintf("%.2f", brgs[0]))
	assert.Equal(t, "43.80", fmt.Sprintf("%.2f", brgs[1]))
}

func TestCalcBearingTo(t *testing.T) {
	testCases := []struct {
		name string
		a    Location
		b    Location
		want float64
	}{
		{"north", Location{0, 0}, Location{1, 0}, 0},
		{"east", Location{0, 0}, Location{0, 1}, 90},
		{"south", Location{0, 0}, Location{-1, 0}, 180},
		{"west", Location{0, 0}, Location{0, -1}, 270},
		{"same point", Location{40, -105}, Location{40, -105}, 0},
		{"east across antimeridian", Location{0, 179}, Location{0, -179}, 90},
		{"west across antimeridian", Location{0, -179}, Location{0, 179}, 270},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			// atan2 works with the full-precision pi
			assert.InDelta(t, tt.want, tt.a.CalcBearingTo(tt.b), 1e-4)
		})
	}
}

func TestCalcBearingRange(t *testing.T) {
	rnd := rand.New(rand.NewSource(7))
	for i := 0; i < 10000; i++ {
		a := Location{Lat: rnd.Float64()*160 - 80, Lon: rnd.Float64()*360 - 180}
		b := Location{Lat: rnd.Float64()*160 - 80, Lon: rnd.Float64()*360 - 180}
		brg := a.CalcBearingTo(b)
		if brg < 0 || brg >= 360 {
			t.Fatalf("bearing %v out of range for %v -> %v", brg, a, b)
		}
	}
}

func TestEstimateBearingTo(t *testing.T) {
	o := Location{0, 0}
	testCases := []struct {
		name string
		b    Location
		want float64
	}{
		{"ENE", Location{1, 2}, 90 - Degrees(math.Atan(0.5))},
		{"NNE", Location{2, 1}, Degrees(math.Atan(0.5))},
		{"ESE", Location{-1, 2}, 90 + Degrees(math.Atan(0.5))},
		{"SSE", Location{-2, 1}, 180 - Degrees(math.Atan(0.5))},
		{"WNW", Location{1, -2}, 270 + Degrees(math.Atan(0.5))},
		{"NNW", Location{2, -1}, 360 - Degrees(math.Atan(0.5))},
		{"WSW", Location{-1, -2}, 270 - Degrees(math.Atan(0.5))},
		{"SSW", Location{-2, -1}, 180 + Degrees(math.Atan(0.5))},
		{"due east", Location{0, 1}, 90},
		{"due north", Location{1, 0}, 360},
		{"same point", Location{0, 0}, 0},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, o.EstimateBearingTo(tt.b, 1, 1), 1e-9)
		})
	}
}

func TestEstimatorAccuracy(t *testing.T) {
	const (
		latMin, latMax = 40.09027, 40.09145
		lonMin, lonMax = -105.18591, -105.18467
	)
	rnd := rand.New(rand.NewSource(1))
	randLoc := func() Location {
		return Location{
			Lat: latMin + rnd.Float64()*(latMax-latMin),
			Lon: lonMin + rnd.Float64()*(lonMax-lonMin),
		}
	}

	for i := 0; i < 100000; i++ {
		a := randLoc()
		b := randLoc()
		diff := math.Abs(a.CalcBearingTo(b) - a.EstimateBearingTo(b, LatSize, LonSize))
		if diff > 180 {
			diff = 360 - diff
		}
		if diff > 1.0 {
			t.Fatalf("estimate off by %v deg for %v -> %v", diff, a, b)
		}
	}
}
