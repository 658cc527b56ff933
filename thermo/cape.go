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
	"math"
)

// ErrNoLFC indicates that a lifted parcel never becomes positively
// buoyant anywhere above its lifted condensation level.
var ErrNoLFC = errors.New("thermo: no level of free convection")

// ErrNoEL indicates that a lifted parcel is still positively buoyant at
// the top of the profile, so no equilibrium level can be located.
var ErrNoEL = errors.New("thermo: no equilibrium level below profile top")

// LFCEL locates the level of free convection and the equilibrium level of
// a lifted parcel by finding the zero crossings of its virtual buoyancy.
// pressure [Pa, decreasing], temperature [K] and dewPoint [K] describe the
// environment, parcelT [K] is the lifted parcel temperature at each level
// (from ParcelProfile), and parcel is the parcel starting state.
// The returned pressures [Pa] are interpolated in log pressure between
// the bracketing levels: the LFC is the lowest buoyancy crossing at or
// above the parcel's condensation level, and the EL is the highest
// crossing above the LFC.
func LFCEL(pressure, temperature, dewPoint, parcelT []float64, parcel Parcel) (lfcP, elP float64, err error) {
	ps, bs := buoyancyAboveLCL(pressure, temperature, dewPoint, parcelT, parcel)
	if len(ps) < 2 {
		return 0, 0, ErrShallowProfile
	}

	// LFC: first positively buoyant point, scanning upward.
	iLFC := -1
	for i, b := range bs {
		if b > 0 {
			iLFC = i
			break
		}
	}
	if iLFC < 0 {
		return 0, 0, ErrNoLFC
	}
	if iLFC == 0 {
		lfcP = ps[0] // buoyant as soon as saturated; the LCL is the LFC
	} else {
		lfcP = crossingPressure(ps[iLFC-1], ps[iLFC], bs[iLFC-1], bs[iLFC])
	}

	// EL: first positively buoyant point, scanning downward.
	iEL := -1
	for i := len(bs) - 1; i >= 0; i-- {
		if bs[i] > 0 {
			iEL = i
			break
		}
	}
	if iEL == len(bs)-1 {
		return 0, 0, ErrNoEL
	}
	elP = crossingPressure(ps[iEL], ps[iEL+1], bs[iEL], bs[iEL+1])
	return lfcP, elP, nil
}

// CAPECIN integrates the virtual buoyancy of a lifted parcel over log
// pressure: CAPE [J/kg] between the LFC and the EL, and CIN [J/kg, <= 0]
// as the negatively buoyant area between the starting level and the LFC.
// Arguments are as for LFCEL.
func CAPECIN(pressure, temperature, dewPoint, parcelT []float64, parcel Parcel) (cape, cin float64, err error) {
	lfcP, elP, err := LFCEL(pressure, temperature, dewPoint, parcelT, parcel)
	if err != nil {
		return 0, 0, err
	}
	ps, bs := buoyancy(pressure, temperature, dewPoint, parcelT, parcel)

	for i := 0; i < len(ps)-1; i++ {
		p0, p1 := ps[i], ps[i+1]
		b0, b1 := bs[i], bs[i+1]
		// Clip the segment to [elP, lfcP] for CAPE and [lfcP, surface]
		// for CIN; segments are linear in ln p.
		cape += segmentArea(p0, p1, b0, b1, lfcP, elP, false)
		cin += segmentArea(p0, p1, b0, b1, ps[0], lfcP, true)
	}
	return cape, cin, nil
}

// buoyancy returns, for every profile level, the pressure [Pa] and the
// buoyancy term Rd*(Tv_parcel - Tv_env) [J/(kg ln(p))] of the lifted parcel.
func buoyancy(pressure, temperature, dewPoint, parcelT []float64, parcel Parcel) (ps, bs []float64) {
	lclP, _ := LCL(pressure[0], parcel.T, parcel.Td)
	e0 := SatVaporPressure(parcel.Td)
	w0 := epsilon * e0 / (pressure[0] - e0) // conserved below the LCL

	ps = make([]float64, len(pressure))
	bs = make([]float64, len(pressure))
	for i, p := range pressure {
		e := SatVaporPressure(dewPoint[i])
		wEnv := epsilon * e / (p - e)
		wPar := w0
		if p < lclP {
			wPar = SaturationMixingRatio(p, parcelT[i])
		}
		tvEnv := VirtualTemperature(temperature[i], wEnv)
		tvPar := VirtualTemperature(parcelT[i], wPar)
		ps[i] = p
		bs[i] = Rd * (tvPar - tvEnv)
	}
	return ps, bs
}

// buoyancyAboveLCL is like buoyancy but restricted to levels at or above
// the parcel's condensation level, with an interpolated point inserted at
// the condensation level itself.
func buoyancyAboveLCL(pressure, temperature, dewPoint, parcelT []float64, parcel Parcel) (ps, bs []float64) {
	lclP, _ := LCL(pressure[0], parcel.T, parcel.Td)
	allP, allB := buoyancy(pressure, temperature, dewPoint, parcelT, parcel)
	for i, p := range allP {
		if p > lclP {
			continue
		}
		if len(ps) == 0 && i > 0 && p < lclP {
			ps = append(ps, lclP)
			bs = append(bs, interpLnP(allP[i-1], allP[i], allB[i-1], allB[i], lclP))
		}
		ps = append(ps, p)
		bs = append(bs, allB[i])
	}
	return ps, bs
}

// crossingPressure returns the pressure [Pa] at which a buoyancy segment
// that is linear in ln p crosses zero between (p0, b0) and (p1, b1).
func crossingPressure(p0, p1, b0, b1 float64) float64 {
	f := b0 / (b0 - b1)
	return math.Exp(math.Log(p0) + f*(math.Log(p1)-math.Log(p0)))
}

// interpLnP linearly interpolates b in ln p.
func interpLnP(p0, p1, b0, b1, p float64) float64 {
	f := (math.Log(p) - math.Log(p0)) / (math.Log(p1) - math.Log(p0))
	return b0 + f*(b1-b0)
}

// segmentArea integrates a buoyancy segment linear in ln p over the part
// of [p1, p0] that lies within the pressure window [pTop, pBot]
// (pressures decrease upward, so pBot >= pTop). If negativeOnly is set,
// only the negatively buoyant part of the segment contributes, with the
// segment split at its zero crossing.
func segmentArea(p0, p1, b0, b1, pBot, pTop float64, negativeOnly bool) float64 {
	lo := math.Min(pBot, p0) // highest pressure in the clipped segment
	hi := math.Max(pTop, p1) // lowest pressure in the clipped segment
	if hi >= lo {
		return 0
	}
	bLo := interpLnP(p0, p1, b0, b1, lo)
	bHi := interpLnP(p0, p1, b0, b1, hi)
	if negativeOnly {
		if bLo >= 0 && bHi >= 0 {
			return 0
		}
		if bLo*bHi < 0 {
			// Split at the zero crossing; only the negative half counts.
			pc := crossingPressure(lo, hi, bLo, bHi)
			if bLo < 0 {
				return 0.5 * bLo * math.Log(lo/pc)
			}
			return 0.5 * bHi * math.Log(pc/hi)
		}
	}
	return 0.5 * (bLo + bHi) * math.Log(lo/hi)
}
