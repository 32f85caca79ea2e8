// Copyright (c) 2025 hitoshi.mukai.b@gmail.com. All rights reserved.
// You are free to use this source code for any purpose. The copyright remains with the author.
// The author accepts no liability for any damages arising from the use of this source code.
//
// Last modified: 2026.10.16
//

package geoxy

import (
	"math"

	"golang.org/x/exp/slices"
	"gonum.org/v1/gonum/mat"
)

// Ordered list of waypoints
type Route []Location

// Rhumb-line bearing [deg] of each leg
func (p Route) Bearings() []float64 {
	if len(p) < 2 {
		return []float64{}
	}
	brgs := make([]float64, 0, len(p)-1)
	for i := 1; i < len(p); i++ {
		brgs = append(brgs, p[i-1].CalcBearingTo(p[i]))
	}
	return brgs
}

// Estimated bearing [deg] of each leg
func (p Route) Estimates(latSize, lonSize float64) []float64 {
	if len(p) < 2 {
		return []float64{}
	}
	brgs := make([]float64, 0, len(p)-1)
	for i := 1; i < len(p); i++ {
		brgs = append(brgs, p[i-1].EstimateBearingTo(p[i], latSize, lonSize))
	}
	return brgs
}

// Return leg
func (p Route) Reversed() Route {
	r := slices.Clone(p)
	slices.Reverse(r)
	return r
}

// Project all waypoints to the local frame of origin.
// Row i of the (n x 2) result is (x, y) of waypoint i.
func (p Route) Project(origin Location) *mat.Dense {
	if len(p) == 0 {
		return nil
	}
	xy := mat.NewDense(len(p), 2, nil)
	for i, loc := range p {
		q := LatLon2XY(loc, origin)
		xy.SetRow(i, []float64{q.X, q.Y})
	}
	return xy
}

// Rotate every (x, y) row counter-clockwise by theta [deg]
func RotateXY(xy *mat.Dense, theta float64) *mat.Dense {
	if xy == nil {
		return nil
	}
	t := Radians(theta)
	s := math.Sin(t)
	c := math.Cos(t)

	// Rows are row vectors, so multiply by the transposed rotation
	rt := mat.NewDense(2, 2, []float64{
		c, s,
		-s, c,
	})
	var out mat.Dense
	out.Mul(xy, rt)
	return &out
}

// Inverse of Project
func Unproject(xy *mat.Dense, origin Location) Route {
	if xy == nil {
		return Route{}
	}
	n, _ := xy.Dims()
	r := make(Route, n)
	for i := 0; i < n; i++ {
		r[i] = XY2LatLon(LocalCoor{X: xy.At(i, 0), Y: xy.At(i, 1)}, origin)
	}
	return r
}
