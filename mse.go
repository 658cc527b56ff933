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

package ecape

import (
	"github.com/gonum/floats"

	"github.com/spatialmodel/ecape/thermo"
)

// MoistStaticEnergyProfile returns two per-level arrays [J/kg]:
// mseBar[i], the running mean of the moist static energy over levels 0
// through i (the energy of a well-mixed slab from the surface to level
// i), and mseStar[i], the moist static energy the environment would have
// at level i if it were saturated.
func (s *Sounding) MoistStaticEnergyProfile() (mseBar, mseStar []float64) {
	n := s.Levels()
	mse := make([]float64, n)
	mseStar = make([]float64, n)
	for i := 0; i < n; i++ {
		mse[i] = thermo.MoistStaticEnergy(s.height[i], s.temperature[i], s.specificHumidity[i])
		ws := thermo.SaturationMixingRatio(s.pressure[i], s.temperature[i])
		mseStar[i] = thermo.MoistStaticEnergy(s.height[i], s.temperature[i], ws)
	}
	mseBar = floats.CumSum(make([]float64, n), mse)
	for i := range mseBar {
		mseBar[i] /= float64(i + 1)
	}
	return mseBar, mseStar
}

// integralArg is the integrand of the NCAPE integral
// (Peters et al. 2023 equation 54): -(g/(cp T)) (mseBar - mseStar),
// with units m/s2.
func integralArg(mseBar, mseStar, temperature []float64) []float64 {
	arg := make([]float64, len(mseBar))
	for i := range arg {
		arg[i] = -(thermo.G / (thermo.Cp * temperature[i])) * (mseBar[i] - mseStar[i])
	}
	return arg
}

// NCAPE reduces the NCAPE integrand [m/s2] to the buoyancy-dilution
// potential [J/kg] by trapezoidal integration with respect to height [m]
// between the LFC and EL indices. When lfcIdx == elIdx the integration
// window is empty and NCAPE is exactly zero.
func NCAPE(arg, height []float64, lfcIdx, elIdx int) float64 {
	var n float64
	for i := lfcIdx; i < elIdx; i++ {
		n += 0.5 * (arg[i] + arg[i+1]) * (height[i+1] - height[i])
	}
	return n
}
