// Copyright (c) 2025 hitoshi.mukai.b@gmail.com. All rights reserved.
// You are free to use this source code for any purpose. The copyright remains with the author.
// The author accepts no liability for any damages arising from the use of this source code.
//
// Last modified: 2026.10.16
//

package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	m "github.com/mkhts/geoxy"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	os.Exit(run())
}

// Returns the process exit code; deferred calls run before exiting
func run() int {

	// Parse command line arguments
	args, err := parseArgs()
	if err != nil {
		m.PrintE(err)
		flag.Usage()
		return 1
	}

	logger, err := newLogger(m.DBG_)
	if err != nil {
		m.PrintE(err)
		return 1
	}
	defer logger.Sync()

	// Run the main application
	if err := runApplication(args, logger); err != nil {
		logger.Error("geoxy failed", zap.Error(err))
		return 1
	}
	return 0
}

// Main application processing
func runApplication(args cmdOpt, logger *zap.Logger) error {

	// Prepare output file
	out, err := prepareOutput(args)
	if err != nil {
		return fmt.Errorf("failed to prepare output: %w", err)
	}
	defer closeOutput(out)

	switch args.mode {
	case m.MISSION:
		return runMission(args, logger, out)
	case m.NMEALOG:
		return runNMEALog(args, logger, out)
	default:
		return fmt.Errorf("unknown mode %s", args.mode.String())
	}
}

// Project the waypoints of a mission file
func runMission(args cmdOpt, logger *zap.Logger, out io.Writer) error {

	ms, err := m.LoadMission(args.inFn)
	if err != nil {
		return fmt.Errorf("failed to load mission: %w", err)
	}
	if args.origin.IsSet {
		ms.Origin = args.origin.Location
	}
	if args.rotSet {
		ms.RotationDeg = args.rot
	}
	logger.Info("mission loaded",
		zap.String("file", args.inFn),
		zap.Int("waypoints", len(ms.Waypoints)),
		zap.Stringer("origin", ms.Origin),
		zap.Float64("rotation_deg", ms.RotationDeg))

	pts := ms.LocalPoints()
	brgs := ms.Waypoints.Bearings()
	logger.Debug("leg bearings", zap.Float64s("deg", brgs))

	if !args.noHeader {
		printHeader(out, args, ms.Origin, ms.RotationDeg)
		fmt.Fprintf(out, "%%  idx   latitude(deg)  longitude(deg)          x(m)          y(m)  bearing(deg)\n")
	}
	for i, loc := range ms.Waypoints {
		brg := "-"
		if i < len(brgs) {
			brg = fmt.Sprintf("%.2f", brgs[i])
		}
		fmt.Fprintf(out, "%5d %15.9f %15.9f %13.4f %13.4f %13s\n", i, loc.Lat, loc.Lon, pts[i].X, pts[i].Y, brg)
	}
	return nil
}

// Project every fix of an NMEA log
func runNMEALog(args cmdOpt, logger *zap.Logger, out io.Writer) error {

	f, err := os.Open(args.inFn)
	if err != nil {
		return fmt.Errorf("failed to open nmea log: %w", err)
	}
	defer f.Close()

	locs, err := m.ReadLocations(f)
	if err != nil {
		return fmt.Errorf("failed to read nmea log: %w", err)
	}
	if len(locs) == 0 {
		return fmt.Errorf("no fixes found in %s", args.inFn)
	}

	origin := locs[0]
	if args.origin.IsSet {
		origin = args.origin.Location
	}
	logger.Info("nmea log read",
		zap.String("file", args.inFn),
		zap.Int("fixes", len(locs)),
		zap.Stringer("origin", origin))

	if !args.noHeader {
		printHeader(out, args, origin, args.rot)
		fmt.Fprintf(out, "%%   latitude(deg)  longitude(deg)          x(m)          y(m)\n")
	}
	for _, loc := range locs {
		xy := m.LatLon2XY(loc, origin)
		xy.Rotate(args.rot)
		fmt.Fprintf(out, "%15.9f %15.9f %13.4f %13.4f\n", loc.Lat, loc.Lon, xy.X, xy.Y)
	}
	return nil
}

// Prepare output file
func prepareOutput(args cmdOpt) (io.WriteCloser, error) {

	// Use stdout if no output file is specified
	if len(args.outFn) == 0 {
		return &nopCloser{os.Stdout}, nil
	}

	// Create output file
	f, err := os.Create(args.outFn)
	if err != nil {
		return nil, fmt.Errorf("failed to create output file: %w", err)
	}
	return f, nil
}

// Close output file
func closeOutput(out io.WriteCloser) {
	if out != nil {
		out.Close()
	}
}

// nopCloser - WriteCloser that ignores close operations
type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }

// Print output header
func printHeader(out io.Writer, args cmdOpt, origin m.Location, rot float64) {
	fmt.Fprintf(out, "%% program   : %s\n", filepath.Base(os.Args[0]))
	fmt.Fprintf(out, "%% inp file  : %s\n", args.inFn)
	fmt.Fprintf(out, "%% mode      : %s\n", args.mode.String())
	fmt.Fprintf(out, "%% origin    : %.9f %.9f\n", origin.Lat, origin.Lon)
	fmt.Fprintf(out, "%% rotation  : %.3f deg\n", rot)
}

// Structure to hold command line argument information
type cmdOpt struct {
	inFn     string
	outFn    string
	mode     m.Mode
	origin   m.LocVar
	rot      float64
	rotSet   bool
	noHeader bool
}

// Parse command line arguments
func parseArgs() (a cmdOpt, err error) {
	flag.Usage = func() {
		m.PrintA(`
[Usage]
	%s [Options] [-p 0] [-l "lat lon"] [-r deg] mission.yaml   (project mission waypoints)
	%s [Options]  -p 1  [-l "lat lon"] [-r deg] log.nmea       (project NMEA fixes)

[Options]
`, filepath.Base(os.Args[0]), filepath.Base(os.Args[0]))
		flag.PrintDefaults()
	}
	flag.Var(&a.mode, "p", "Processing mode. 0(mission file), 1(NMEA log)")
	flag.Var(&a.origin, "l", "Origin latitude/longitude in decimal degrees. Enclose in quotes like -l \"34.589 -119.966\". Defaults to the mission origin or the first fix.")
	flag.Float64Var(&a.rot, "r", 0, "Rotation of the local frame in degrees, counter-clockwise. Overrides the mission rotation when given.")
	flag.StringVar(&a.outFn, "o", "", "Output file path. If not specified, output to stdout.")
	flag.BoolVar(&a.noHeader, "nh", false, "Do not output header section.")
	var dbg int
	flag.IntVar(&dbg, "x", 0, "Debug information display. Specify level value. 0(OFF), 1(display), 2(detailed display)")
	flag.Parse()
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "r" {
			a.rotSet = true
		}
	})
	if flag.NArg() != 1 {
		return a, fmt.Errorf("exactly one input file is required")
	}
	a.inFn = flag.Arg(0)
	m.DBG_ = dbg
	return
}

// Logger for operational messages; debug level follows -x
func newLogger(dbg int) (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	if dbg >= 1 {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	cfg.DisableStacktrace = true
	return cfg.Build()
}
