// Copyright (c) 2025 hitoshi.mukai.b@gmail.com. All rights reserved.
// You are free to use this source code for any purpose. The copyright remains with the author.
// The author accepts no liability for any damages arising from the use of this source code.
//
// Last modified: 2026.10.16
//

package geoxy

// AlvinXY local frame
// Murphy, C. & Singh, H. (2010). Rectilinear coordinate frames for deep sea navigation.
// IEEE/OES Autonomous Underwater Vehicles (AUV 2010), 1-10.
//
// A latitude-scaled flat-earth projection. Accuracy degrades with distance
// from the origin; intended for a few km around it.

import (
	"math"
)

//-------------------------------------------------------------------
// LocalCoor
//-------------------------------------------------------------------

// Metres east (X) and north (Y) of an origin. The origin is not stored.
type LocalCoor struct {
	X float64
	Y float64
}

func NewLocalCoor(x, y float64) *LocalCoor {
	return &LocalCoor{
		X: x,
		Y: y,
	}
}

// Rotate counter-clockwise about the origin by theta [deg]
func (p *LocalCoor) Rotate(theta float64) {
	t := Radians(theta)
	s := math.Sin(t)
	c := math.Cos(t)
	x, y := p.X, p.Y
	p.X = x*c - y*s
	p.Y = x*s + y*c
}

// Convert to string
func (p LocalCoor) String() string {
	return formatFloat(p.X) + ", " + formatFloat(p.Y)
}

//-------------------------------------------------------------------
// Projection
//-------------------------------------------------------------------

// Metres per degree of longitude at latitude lat0 [deg]
func MDegLon(lat0 float64) float64 {
	l := Radians(lat0)
	return MLon1*math.Cos(l) - MLon3*math.Cos(3*l) - MLon5*math.Cos(5*l)
}

// Metres per degree of latitude at latitude lat0 [deg]
func MDegLat(lat0 float64) float64 {
	l := Radians(lat0)
	return MLat0 - MLat2*math.Cos(2*l) + MLat4*math.Cos(4*l) - MLat6*math.Cos(6*l)
}

// Geographic to local frame
func LatLon2XY(p, origin Location) LocalCoor {
	return LocalCoor{
		X: (p.Lon - origin.Lon) * MDegLon(origin.Lat),
		Y: (p.Lat - origin.Lat) * MDegLat(origin.Lat),
	}
}

// Local frame to geographic
func XY2LatLon(q LocalCoor, origin Location) Location {
	return Location{
		Lat: q.Y/MDegLat(origin.Lat) + origin.Lat,
		Lon: q.X/MDegLon(origin.Lat) + origin.Lon,
	}
}
