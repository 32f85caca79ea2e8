// Copyright (c) 2025 hitoshi.mukai.b@gmail.com. All rights reserved.
// You are free to use this source code for any purpose. The copyright remains with the author.
// The author accepts no liability for any damages arising from the use of this source code.
//
// Last modified: 2026.10.16
//

package geoxy

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// ------------------------------------
// Mini functions
// ------------------------------------

func Radians(deg float64) float64 {
	return deg * PI / 180.0
}

func Degrees(rad float64) float64 {
	return rad * 180.0 / PI
}

// Shortest decimal representation without exponent
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// ------------------------------------
// Debug print function
// ------------------------------------

func PrintA(format string, a ...any) {
	fmt.Fprintf(os.Stderr, format, a...)
}

func PrintAIf(cond bool, format string, a ...any) {
	if cond {
		PrintA(format, a...)
	}
}

// Debug display level
var DBG_ int

// Debug display
func PrintD(v int, format string, a ...any) {
	PrintAIf(DBG_ >= v, format, a...)
}

func PrintE(err error) {
	fmt.Fprintf(os.Stderr, "err=%s\n", err.Error())
}

// ------------------------------------
// For command argument parsing
// ------------------------------------

// Location given as "lat lon" in decimal degrees
type LocVar struct {
	Location
	IsSet bool
}

func (p *LocVar) Set(s string) error {
	f := strings.Fields(s)
	if len(f) != 2 {
		return fmt.Errorf("location must be \"lat lon\": %q", s)
	}
	lat, err := strconv.ParseFloat(f[0], 64)
	if err != nil {
		return err
	}
	lon, err := strconv.ParseFloat(f[1], 64)
	if err != nil {
		return err
	}
	p.Location.Set(lat, lon)
	p.IsSet = true
	return nil
}

func (p *LocVar) String() string {
	if p == nil || !p.IsSet {
		return ""
	}
	return p.Location.String()
}

// Processing mode (0: mission file, 1: NMEA log)
type Mode int

const (
	MISSION = iota
	NMEALOG
)

func (p *Mode) Set(s string) error {
	i, err := strconv.ParseInt(s, 10, 0)
	if err != nil {
		return err
	}
	if i != MISSION && i != NMEALOG {
		return fmt.Errorf("unknown mode %d", i)
	}
	*p = Mode(i)
	return nil
}

func (p *Mode) String() string {
	if p == nil {
		return "MISSION"
	}
	switch *p {
	case MISSION:
		return "MISSION"
	case NMEALOG:
		return "NMEA"
	default:
		return "UNKNOWN!"
	}
}
