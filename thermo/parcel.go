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
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"
)

// ErrShallowProfile indicates that a profile does not span the depth
// required by a calculation.
var ErrShallowProfile = errors.New("thermo: profile too shallow")

// maxMoistStep is the largest pressure increment [Pa] used when
// integrating the pseudoadiabatic lapse rate.
const maxMoistStep = 500.

// Parcel holds the starting state of an air parcel to be lifted:
// pressure [Pa], temperature [K] and dew point [K].
type Parcel struct {
	P, T, Td float64
}

// SurfaceParcel returns the parcel originating at the lowest level of the
// profile given by pressure [Pa], temperature [K] and dew point [K] arrays.
func SurfaceParcel(pressure, temperature, dewPoint []float64) Parcel {
	return Parcel{P: pressure[0], T: temperature[0], Td: dewPoint[0]}
}

// MostUnstableParcel returns the parcel with the greatest equivalent
// potential temperature within the lowest 300 hPa of the profile.
func MostUnstableParcel(pressure, temperature, dewPoint []float64) Parcel {
	best := 0
	bestTheta := math.Inf(-1)
	for i := range pressure {
		if pressure[0]-pressure[i] > 300.e2 {
			break
		}
		theta := EquivalentPotentialTemperature(pressure[i], temperature[i], dewPoint[i])
		if theta > bestTheta {
			bestTheta = theta
			best = i
		}
	}
	return Parcel{P: pressure[best], T: temperature[best], Td: dewPoint[best]}
}

// MixedParcel returns a parcel with the mean potential temperature and
// mean mixing ratio of the lowest 100 hPa, valid at the surface pressure.
func MixedParcel(pressure, temperature, dewPoint []float64) Parcel {
	var thetas, ws []float64
	for i := range pressure {
		if pressure[0]-pressure[i] > 100.e2 {
			break
		}
		thetas = append(thetas, PotentialTemperature(pressure[i], temperature[i]))
		e := SatVaporPressure(dewPoint[i])
		ws = append(ws, epsilon*e/(pressure[i]-e))
	}
	p0 := pressure[0]
	t := stat.Mean(thetas, nil) * math.Pow(p0/referenceP, kappa)
	w := stat.Mean(ws, nil)
	e := VaporPressure(p0, w)
	val := math.Log(e / 611.2)
	td := 273.15 + 243.5*val/(17.67-val)
	return Parcel{P: p0, T: t, Td: td}
}

// ParcelProfile lifts a parcel with temperature t0 [K] and dew point
// td0 [K] from the lowest level of the pressure array [Pa, decreasing],
// dry-adiabatically to its lifted condensation level and
// pseudoadiabatically above it, and returns the parcel temperature [K]
// at every level of the array.
func ParcelProfile(pressure []float64, t0, td0 float64) ([]float64, error) {
	if len(pressure) < 2 {
		return nil, ErrShallowProfile
	}
	for i := 0; i < len(pressure)-1; i++ {
		if pressure[i+1] >= pressure[i] {
			return nil, fmt.Errorf("thermo: pressure not strictly decreasing at level %d (%g -> %g Pa)",
				i, pressure[i], pressure[i+1])
		}
	}

	p0 := pressure[0]
	lclP, lclT := LCL(p0, t0, td0)

	out := make([]float64, len(pressure))
	pCur, tCur := lclP, lclT
	for i, p := range pressure {
		if p >= lclP {
			// Below saturation: dry adiabat from the starting level.
			out[i] = t0 * math.Pow(p/p0, kappa)
			continue
		}
		tCur = moistAscend(pCur, tCur, p)
		pCur = p
		out[i] = tCur
	}
	return out, nil
}

// moistAscend integrates the pseudoadiabatic lapse rate from (p [Pa],
// T [K]) to the lower pressure pEnd [Pa] using second-order Runge-Kutta
// midpoint steps.
func moistAscend(p, T, pEnd float64) float64 {
	for p > pEnd {
		dp := math.Max(pEnd-p, -maxMoistStep)
		tMid := T + moistLapse(p, T)*dp/2
		T += moistLapse(p+dp/2, tMid) * dp
		p += dp
	}
	return T
}
