// Copyright (c) 2025 hitoshi.mukai.b@gmail.com. All rights reserved.
// You are free to use this source code for any purpose. The copyright remains with the author.
// The author accepts no liability for any damages arising from the use of this source code.
//
// Last modified: 2026.10.16
//

package geoxy

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/exp/slices"
	"gopkg.in/yaml.v3"
)

var ErrEmptyMission = errors.New("mission has no waypoints")

// Waypoint mission in a local frame
type Mission struct {
	Origin      Location
	RotationDeg float64
	LatSize     float64
	LonSize     float64
	Waypoints   Route
}

type latLonYAML struct {
	Lat *float64 `yaml:"lat"`
	Lon *float64 `yaml:"lon"`
}

type dmsYAML struct {
	Lat []int `yaml:"lat"`
	Lon []int `yaml:"lon"`
}

type nmeaYAML struct {
	Lat    string `yaml:"lat"`
	LatDir string `yaml:"lat_dir"`
	Lon    string `yaml:"lon"`
	LonDir string `yaml:"lon_dir"`
}

type waypointYAML struct {
	latLonYAML `yaml:",inline"`
	DMS        *dmsYAML  `yaml:"dms"`
	NMEA       *nmeaYAML `yaml:"nmea"`
}

type missionYAML struct {
	Origin      *latLonYAML    `yaml:"origin"`
	RotationDeg float64        `yaml:"rotation_deg"`
	LatSize     float64        `yaml:"lat_size"`
	LonSize     float64        `yaml:"lon_size"`
	Waypoints   []waypointYAML `yaml:"waypoints"`
}

func LoadMission(path string) (Mission, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Mission{}, err
	}
	return ParseMission(b)
}

func ParseMission(b []byte) (Mission, error) {
	var raw missionYAML
	if err := yaml.Unmarshal(b, &raw); err != nil {
		return Mission{}, err
	}
	if len(raw.Waypoints) == 0 {
		return Mission{}, ErrEmptyMission
	}

	ms := Mission{
		RotationDeg: raw.RotationDeg,
		LatSize:     raw.LatSize,
		LonSize:     raw.LonSize,
		Waypoints:   make(Route, 0, len(raw.Waypoints)),
	}
	if ms.LatSize == 0 {
		ms.LatSize = LatSize
	}
	if ms.LonSize == 0 {
		ms.LonSize = LonSize
	}

	for i, w := range raw.Waypoints {
		loc, err := w.location()
		if err != nil {
			return Mission{}, fmt.Errorf("waypoint %d: %w", i, err)
		}
		ms.Waypoints = append(ms.Waypoints, loc)
	}

	if raw.Origin != nil {
		if raw.Origin.Lat == nil || raw.Origin.Lon == nil {
			return Mission{}, errors.New("origin needs both lat and lon")
		}
		ms.Origin = Location{Lat: *raw.Origin.Lat, Lon: *raw.Origin.Lon}
	} else {
		ms.Origin = ms.Waypoints[0]
	}
	return ms, nil
}

func (w waypointYAML) location() (Location, error) {
	forms := []bool{w.Lat != nil || w.Lon != nil, w.DMS != nil, w.NMEA != nil}
	n := 0
	for _, f := range forms {
		if f {
			n++
		}
	}
	if n != 1 {
		return Location{}, fmt.Errorf("exactly one of lat/lon, dms or nmea is required, got %d", n)
	}

	switch {
	case w.DMS != nil:
		if len(w.DMS.Lat) != 3 || len(w.DMS.Lon) != 3 {
			return Location{}, errors.New("dms needs [d, m, s] for lat and lon")
		}
		lat := DMS{D: w.DMS.Lat[0], M: w.DMS.Lat[1], S: w.DMS.Lat[2]}
		lon := DMS{D: w.DMS.Lon[0], M: w.DMS.Lon[1], S: w.DMS.Lon[2]}
		return *NewLocationDMS(lat, lon), nil
	case w.NMEA != nil:
		return ParseNMEALocation(w.NMEA.Lat, w.NMEA.LatDir, w.NMEA.Lon, w.NMEA.LonDir)
	default:
		if w.Lat == nil || w.Lon == nil {
			return Location{}, errors.New("waypoint needs both lat and lon")
		}
		return Location{Lat: *w.Lat, Lon: *w.Lon}, nil
	}
}

func (p Mission) Route() Route {
	return slices.Clone(p.Waypoints)
}

// Waypoints in the local frame of Origin, rotated by RotationDeg
func (p Mission) LocalPoints() []LocalCoor {
	xy := RotateXY(p.Waypoints.Project(p.Origin), p.RotationDeg)
	if xy == nil {
		return []LocalCoor{}
	}
	n, _ := xy.Dims()
	pts := make([]LocalCoor, n)
	for i := 0; i < n; i++ {
		pts[i] = LocalCoor{X: xy.At(i, 0), Y: xy.At(i, 1)}
	}
	return pts
}
