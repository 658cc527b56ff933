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

// Package thermo implements the moist-thermodynamic relations needed to lift
// a convective parcel through an observed sounding: saturation vapor
// pressure, humidity conversions, moist static energy, parcel ascent, and
// the CAPE/CIN integration. All quantities are SI (Pa, K, kg/kg, m, m/s)
// unless noted otherwise in the function documentation.
package thermo

import "math"

const (
	// G is the gravitational acceleration [m/s2].
	G = 9.80665
	// Cp is the specific heat of dry air at constant pressure [J/(kg K)].
	Cp = 1005.7
	// Rd is the specific gas constant for dry air [J/(kg K)].
	Rd = 287.04
	// Lv is the latent heat of vaporization of water [J/kg].
	Lv = 2.501e6
	// epsilon is the ratio of the gas constants of dry air and water vapor.
	epsilon = 0.622
	// kappa is the Poisson exponent Rd/Cp.
	kappa = Rd / Cp

	referenceP = 1.e5 // Pa, reference pressure for potential temperature
)

// SatVaporPressure returns the saturation vapor pressure [Pa] over liquid
// water at temperature T [K], using the formula of Bolton (1980) equation 10.
func SatVaporPressure(T float64) float64 {
	return 611.2 * math.Exp(17.67*(T-273.15)/(T-29.65))
}

// SaturationMixingRatio returns the saturation mixing ratio [kg/kg] at
// pressure p [Pa] and temperature T [K].
func SaturationMixingRatio(p, T float64) float64 {
	es := SatVaporPressure(T)
	return epsilon * es / (p - es)
}

// MixingRatio converts specific humidity q [kg/kg] to mixing ratio [kg/kg].
func MixingRatio(q float64) float64 {
	return q / (1 - q)
}

// VaporPressure returns the partial pressure of water vapor [Pa] at total
// pressure p [Pa] for mixing ratio w [kg/kg].
func VaporPressure(p, w float64) float64 {
	return p * w / (epsilon + w)
}

// DewPoint returns the dew point temperature [K] at pressure p [Pa],
// given specific humidity q [kg/kg], by inverting Bolton's saturation
// vapor pressure formula.
func DewPoint(p, q float64) float64 {
	e := VaporPressure(p, MixingRatio(q))
	val := math.Log(e / 611.2)
	return 273.15 + 243.5*val/(17.67-val)
}

// MoistStaticEnergy returns the moist static energy [J/kg] at height z [m]
// for temperature T [K] and water vapor mass fraction q [kg/kg].
func MoistStaticEnergy(z, T, q float64) float64 {
	return Cp*T + G*z + Lv*q
}

// VirtualTemperature returns the virtual temperature [K] for temperature
// T [K] and mixing ratio w [kg/kg].
func VirtualTemperature(T, w float64) float64 {
	return T * (1 + w/epsilon) / (1 + w)
}

// PotentialTemperature returns the potential temperature [K] at pressure
// p [Pa] and temperature T [K], referenced to 1000 hPa.
func PotentialTemperature(p, T float64) float64 {
	return T * math.Pow(referenceP/p, kappa)
}

// EquivalentPotentialTemperature returns the equivalent potential
// temperature [K] at pressure p [Pa] for temperature T [K] and dew point
// Td [K], following Bolton (1980) equations 15, 21 and 39.
func EquivalentPotentialTemperature(p, T, Td float64) float64 {
	e := SatVaporPressure(Td)
	w := epsilon * e / (p - e)
	tLCL := lclTemperature(T, Td)
	thetaDL := T * math.Pow(referenceP/(p-e), kappa) *
		math.Pow(T/tLCL, 0.28*w)
	return thetaDL * math.Exp((3036./tLCL-1.78)*w*(1+0.448*w))
}

// lclTemperature is the temperature at the lifted condensation level [K]
// for a parcel with temperature T [K] and dew point Td [K]
// (Bolton 1980 equation 15).
func lclTemperature(T, Td float64) float64 {
	return 56 + 1/(1/(Td-56)+math.Log(T/Td)/800)
}

// LCL returns the pressure [Pa] and temperature [K] of the lifted
// condensation level for a parcel starting at pressure p [Pa] with
// temperature T [K] and dew point Td [K].
func LCL(p, T, Td float64) (lclP, lclT float64) {
	lclT = lclTemperature(T, Td)
	lclP = p * math.Pow(lclT/T, 1/kappa)
	return lclP, lclT
}

// moistLapse is the pseudoadiabatic temperature change with pressure
// dT/dp [K/Pa] at pressure p [Pa] and temperature T [K].
func moistLapse(p, T float64) float64 {
	ws := SaturationMixingRatio(p, T)
	num := Rd*T + Lv*ws
	den := Cp + Lv*Lv*ws*epsilon/(Rd*T*T)
	return num / den / p
}

// WindSpeed returns the magnitude [m/s] of the wind vector (u, v) [m/s].
func WindSpeed(u, v float64) float64 {
	return math.Hypot(u, v)
}
