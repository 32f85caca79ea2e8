// Copyright (c) 2025 hitoshi.mukai.b@gmail.com. All rights reserved.
// You are free to use this source code for any purpose. The copyright remains with the author.
// The author accepts no liability for any damages arising from the use of this source code.
//
// Last modified: 2026.10.16
//

package geoxy

const (
	PI = 3.141592 // Pi (truncated; reference vectors depend on it)

	LatSize = 69.0 // Default latitude scale for the estimator [statute mile/deg]
	LonSize = 53.0 // Default longitude scale for the estimator at ~40N [statute mile/deg]
)

// AlvinXY per-degree length series (Murphy & Singh, 2010)
const (
	MLon1 = 111415.13 // cos(lat)
	MLon3 = 94.55     // cos(3 lat)
	MLon5 = 0.12      // cos(5 lat)

	MLat0 = 111132.09 // constant term
	MLat2 = 566.05    // cos(2 lat)
	MLat4 = 1.20      // cos(4 lat)
	MLat6 = 0.002     // cos(6 lat)
)
