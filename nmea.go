// Copyright (c) 2025 hitoshi.mukai.b@gmail.com. All rights reserved.
// You are free to use this source code for any purpose. The copyright remains with the author.
// The author accepts no liability for any damages arising from the use of this source code.
//
// Last modified: 2026.10.16
//

package geoxy

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	nmea "github.com/adrianmo/go-nmea"
)

var (
	ErrNoFix      = errors.New("sentence carries no valid fix")
	ErrNoPosition = errors.New("sentence carries no position")
)

// Parse an NMEA "DDDMM.mmmm" field (degrees and decimal minutes) to decimal degrees
func ParseNMEA(s string) (float64, error) {
	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	return math.Floor(n/100.0) + math.Mod(n, 100.0)/60.0, nil
}

// Build a Location from the four NMEA position fields.
// latDir must be N or S, lonDir must be E or W.
func ParseNMEALocation(lat, latDir, lon, lonDir string) (Location, error) {
	ld, err := ParseDirection(latDir)
	if err != nil {
		return Location{}, err
	}
	if !ld.IsLat() {
		return Location{}, fmt.Errorf("%w: %q is not a latitude hemisphere", ErrInvalidDirection, latDir)
	}
	od, err := ParseDirection(lonDir)
	if err != nil {
		return Location{}, err
	}
	if !od.IsLon() {
		return Location{}, fmt.Errorf("%w: %q is not a longitude hemisphere", ErrInvalidDirection, lonDir)
	}

	latDeg, err := ParseNMEA(lat)
	if err != nil {
		return Location{}, err
	}
	lonDeg, err := ParseNMEA(lon)
	if err != nil {
		return Location{}, err
	}
	return Location{Lat: ld.Sign() * latDeg, Lon: od.Sign() * lonDeg}, nil
}

// Decode the position of an RMC, GGA or GLL sentence.
// Framing and checksum are checked by go-nmea; the position fields are
// converted with ParseNMEALocation.
func LocationFromSentence(line string) (Location, error) {
	s, err := nmea.Parse(strings.TrimSpace(line))
	if err != nil {
		return Location{}, err
	}

	// Field indexes exclude the talker+type field
	switch m := s.(type) {
	case nmea.RMC:
		if m.Validity != nmea.ValidRMC {
			return Location{}, fmt.Errorf("%w: RMC status %q", ErrNoFix, m.Validity)
		}
		return locationFromFields(m.Fields, 2)
	case nmea.GGA:
		if m.FixQuality == nmea.Invalid {
			return Location{}, fmt.Errorf("%w: GGA quality %q", ErrNoFix, m.FixQuality)
		}
		return locationFromFields(m.Fields, 1)
	case nmea.GLL:
		if m.Validity != nmea.ValidGLL {
			return Location{}, fmt.Errorf("%w: GLL status %q", ErrNoFix, m.Validity)
		}
		return locationFromFields(m.Fields, 0)
	default:
		return Location{}, fmt.Errorf("%w: %s", ErrNoPosition, s.DataType())
	}
}

func locationFromFields(f []string, i int) (Location, error) {
	if len(f) < i+4 {
		return Location{}, fmt.Errorf("%w: short sentence", ErrNoPosition)
	}
	return ParseNMEALocation(f[i], f[i+1], f[i+2], f[i+3])
}

// Read all positions from an NMEA log. Lines that do not decode to a fix are skipped.
func ReadLocations(r io.Reader) ([]Location, error) {
	locs := []Location{}
	sc := bufio.NewScanner(r)
	lineNum := 0
	for sc.Scan() {
		lineNum++
		line := strings.TrimSpace(sc.Text())
		if line == "" || !strings.HasPrefix(line, "$") {
			continue
		}
		loc, err := LocationFromSentence(line)
		if err != nil {
			PrintD(2, "\tline %d skipped: %s\n", lineNum, err.Error())
			continue
		}
		locs = append(locs, loc)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return locs, nil
}
