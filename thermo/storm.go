/*
Copyright © 2026 the ECAPE authors.
This file is part of ECAPE.

ECAPE is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

ECAPE is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with ECAPE.  If not, see <http://www.gnu.org/licenses/>.
*/

package thermo

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// deviation of a right-moving supercell from the mean wind [m/s]
// (Bunkers et al. 2000).
const bunkersDeviation = 7.5

// BunkersStormMotion estimates the propagation vector [m/s] of a
// right-moving supercell from the horizontal wind profile using the
// internal-dynamics method of Bunkers et al. (2000): the 0-6 km mean wind
// plus a 7.5 m/s deviation perpendicular and to the right of the 0-6 km
// shear vector. height is in m, u and v in m/s; heights are taken
// relative to the first (surface) level. ErrShallowProfile is returned
// when the profile does not reach 6 km above ground.
func BunkersStormMotion(height, u, v []float64) (uStorm, vStorm float64, err error) {
	z0 := height[0]

	uMean, vMean, ok := layerMeanWind(height, u, v, z0, z0+6000)
	if !ok {
		return 0, 0, ErrShallowProfile
	}
	uBot, vBot, ok := layerMeanWind(height, u, v, z0, z0+500)
	if !ok {
		return 0, 0, ErrShallowProfile
	}
	uTop, vTop, ok := layerMeanWind(height, u, v, z0+5500, z0+6000)
	if !ok {
		return 0, 0, ErrShallowProfile
	}

	shearU := uTop - uBot
	shearV := vTop - vBot
	mag := math.Hypot(shearU, shearV)
	if mag == 0 {
		// No deep-layer shear; the storm moves with the mean wind.
		return uMean, vMean, nil
	}
	uStorm = uMean + bunkersDeviation*shearV/mag
	vStorm = vMean - bunkersDeviation*shearU/mag
	return uStorm, vStorm, nil
}

// layerMeanWind averages the wind components over levels with
// zBot <= height <= zTop. ok is false when the layer contains no levels.
func layerMeanWind(height, u, v []float64, zBot, zTop float64) (uMean, vMean float64, ok bool) {
	var us, vs []float64
	for i, z := range height {
		if z >= zBot && z <= zTop {
			us = append(us, u[i])
			vs = append(vs, v[i])
		}
	}
	if len(us) == 0 {
		return 0, 0, false
	}
	return stat.Mean(us, nil), stat.Mean(vs, nil), true
}
