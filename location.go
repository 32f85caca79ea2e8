// Copyright (c) 2025 hitoshi.mukai.b@gmail.com. All rights reserved.
// You are free to use this source code for any purpose. The copyright remains with the author.
// The author accepts no liability for any damages arising from the use of this source code.
//
// Last modified: 2026.10.16
//

package geoxy

import (
	"math"
)

//-------------------------------------------------------------------
// Location
//-------------------------------------------------------------------

// Position in decimal degrees (north and east positive). Not range-checked.
type Location struct {
	Lat float64
	Lon float64
}

func NewLocation(lat, lon float64) *Location {
	return &Location{
		Lat: lat,
		Lon: lon,
	}
}

func NewLocationDMS(lat, lon DMS) *Location {
	return NewLocation(lat.ToDecimal(), lon.ToDecimal())
}

func (p *Location) Set(lat, lon float64) {
	p.Lat = lat
	p.Lon = lon
}

// Convert to string
func (p Location) String() string {
	return formatFloat(p.Lat) + ", " + formatFloat(p.Lon)
}

// Initial bearing [deg] of the rhumb line from p to b on a spherical earth.
// Returns a value in [0, 360).
func (p Location) CalcBearingTo(b Location) float64 {
	lat1 := Radians(p.Lat)
	lon1 := Radians(p.Lon)
	lat2 := Radians(b.Lat)
	lon2 := Radians(b.Lon)

	// Difference of the Mercator latitudes
	dLon := lon2 - lon1
	dPhi := math.Log(math.Tan(lat2/2+PI/4) / math.Tan(lat1/2+PI/4))

	// Take the shorter way across the antimeridian
	if math.Abs(dLon) > PI {
		if dLon > 0 {
			dLon = -(2*PI - dLon)
		} else {
			dLon = dLon + 2*PI
		}
	}

	return math.Mod(Degrees(math.Atan2(dLon, dPhi))+360.0, 360.0)
}

// Bearing [deg] treating the area between p and b as a flat rectangle.
// latSize and lonSize give the length of one degree of latitude/longitude
// in any common unit (e.g. LatSize and LonSize).
func (p Location) EstimateBearingTo(b Location, latSize, lonSize float64) float64 {
	dy := (b.Lat - p.Lat) * latSize
	dx := (b.Lon - p.Lon) * lonSize
	ax := math.Abs(dx)
	ay := math.Abs(dy)

	// Coincident points
	if ax == 0 && ay == 0 {
		return 0
	}

	angle := (180.0 / PI) * math.Atan(math.Min(ax, ay)/math.Max(ax, ay))

	if dx > 0 {
		if dy > 0 {
			if ax > ay {
				return 90 - angle
			}
			return angle
		}
		if ax > ay {
			return 90 + angle
		}
		return 180 - angle
	}
	if dy > 0 {
		if ax > ay {
			return 270 + angle
		}
		return 360 - angle
	}
	if ax > ay {
		return 270 - angle
	}
	return 180 + angle
}
