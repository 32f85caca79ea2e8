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
)

//-------------------------------------------------------------------
// DMS
//-------------------------------------------------------------------

// Degrees, minutes, seconds. The sign is carried by D only.
type DMS struct {
	D int
	M int
	S int
}

func NewDMS(d, m, s int) *DMS {
	return &DMS{
		D: d,
		M: m,
		S: s,
	}
}

// Convert to decimal degrees
func (p DMS) ToDecimal() float64 {
	d := p.D
	if d < 0 {
		d = -d
	}
	dec := float64(d) + float64(p.M)/60.0 + float64(p.S)/3600.0
	if p.D < 0 {
		dec = -dec
	}
	return dec
}

// Convert to string
func (p DMS) String() string {
	return fmt.Sprintf("%d° %d' %d\"", p.D, p.M, p.S)
}

// Convert decimal degrees to DMS. Seconds are rounded and carried upward.
func DMSFromDecimal(v float64) DMS {
	neg := v < 0
	a := math.Abs(v)
	d := math.Trunc(a)
	mf := (a - d) * 60.0
	m := math.Floor(mf)
	s := math.Round(math.Mod(mf, 1.0) * 60.0)
	if s >= 60 {
		s -= 60
		m++
	}
	if m >= 60 {
		m -= 60
		d++
	}
	out := DMS{D: int(d), M: int(m), S: int(s)}
	if neg && out.D != 0 {
		out.D = -out.D
	}
	return out
}

//-------------------------------------------------------------------
// LocationDMS
//-------------------------------------------------------------------

type LocationDMS struct {
	Lat DMS
	Lon DMS
}

func (p LocationDMS) ToLocation() Location {
	return Location{Lat: p.Lat.ToDecimal(), Lon: p.Lon.ToDecimal()}
}

// Convert to string
func (p LocationDMS) String() string {
	return fmt.Sprintf("%s, %s", p.Lat.String(), p.Lon.String())
}
