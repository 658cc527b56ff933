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
	"testing"
)

// different reports whether a and b differ by more than the given
// relative tolerance.
func different(a, b, tolerance float64) bool {
	if 2*math.Abs(a-b)/math.Abs(a+b) > tolerance || math.IsNaN(a) || math.IsNaN(b) {
		return true
	}
	return false
}

func TestSatVaporPressure(t *testing.T) {
	// Bolton's formula is anchored at the ice point.
	if es := SatVaporPressure(273.15); different(es, 611.2, 1.e-12) {
		t.Errorf("es(273.15 K) = %g Pa; want 611.2", es)
	}
	// Literature value at 20 C is about 2339 Pa.
	if es := SatVaporPressure(293.15); different(es, 2339, 0.005) {
		t.Errorf("es(293.15 K) = %g Pa; want about 2339", es)
	}
}

func TestSaturationMixingRatio(t *testing.T) {
	// About 14.7 g/kg at 20 C and 1000 hPa.
	if ws := SaturationMixingRatio(1.e5, 293.15); different(ws, 0.0147, 0.02) {
		t.Errorf("ws = %g; want about 0.0147", ws)
	}
	// Saturation mixing ratio increases as pressure falls.
	if SaturationMixingRatio(8.e4, 293.15) <= SaturationMixingRatio(1.e5, 293.15) {
		t.Error("ws must increase with decreasing pressure")
	}
}

func TestDewPointRoundTrip(t *testing.T) {
	for _, c := range []struct{ p, q float64 }{
		{1.e5, 0.016},
		{9.e4, 0.008},
		{7.e4, 0.002},
		{5.e4, 0.0005},
	} {
		td := DewPoint(c.p, c.q)
		// The vapor pressure implied by the dew point must equal the
		// vapor pressure implied by the humidity.
		e := VaporPressure(c.p, MixingRatio(c.q))
		if got := SatVaporPressure(td); different(got, e, 1.e-4) {
			t.Errorf("p=%g q=%g: es(Td) = %g Pa; want %g", c.p, c.q, got, e)
		}
	}
}

func TestMoistStaticEnergy(t *testing.T) {
	// 1005.7*280 + 9.80665*1000 + 2.501e6*0.005 = 303907.7 J/kg.
	if mse := MoistStaticEnergy(1000, 280, 0.005); different(mse, 303907.7, 1.e-6) {
		t.Errorf("mse = %g J/kg; want 303907.7", mse)
	}
}

func TestVirtualTemperature(t *testing.T) {
	if tv := VirtualTemperature(290, 0); tv != 290 {
		t.Errorf("Tv of dry air = %g; want the air temperature", tv)
	}
	if tv := VirtualTemperature(290, 0.01); tv <= 290 {
		t.Errorf("Tv = %g; moist air must be less dense than dry air", tv)
	}
}

func TestPotentialTemperature(t *testing.T) {
	if theta := PotentialTemperature(1.e5, 290); different(theta, 290, 1.e-12) {
		t.Errorf("theta at the reference pressure = %g; want 290", theta)
	}
	// 280 K at 800 hPa is about 298.5 K potential temperature.
	if theta := PotentialTemperature(8.e4, 280); different(theta, 298.5, 0.005) {
		t.Errorf("theta = %g; want about 298.5", theta)
	}
}

func TestEquivalentPotentialTemperature(t *testing.T) {
	p, temp, td := 1.e5, 298.15, 288.15
	thetaE := EquivalentPotentialTemperature(p, temp, td)
	theta := PotentialTemperature(p, temp)
	if thetaE <= theta {
		t.Errorf("theta-e = %g not greater than theta = %g for a moist parcel",
			thetaE, theta)
	}
	// More moisture means more latent heat to release.
	if moister := EquivalentPotentialTemperature(p, temp, 293.15); moister <= thetaE {
		t.Errorf("theta-e = %g did not increase with dew point", moister)
	}
}

func TestLCL(t *testing.T) {
	lclP, lclT := LCL(1.e5, 302, 294.5)
	if lclP >= 1.e5 {
		t.Errorf("LCL pressure = %g Pa; must be above the starting level", lclP)
	}
	if lclT >= 294.5 {
		t.Errorf("LCL temperature = %g K; must be below the dew point", lclT)
	}
	// The LCL temperature must lie on the dry adiabat from the start.
	if want := 302 * math.Pow(lclP/1.e5, kappa); different(lclT, want, 1.e-6) {
		t.Errorf("LCL temperature = %g K is off the dry adiabat (%g K)", lclT, want)
	}

	// A saturated parcel condenses immediately.
	lclP, lclT = LCL(9.e4, 285, 285)
	if different(lclP, 9.e4, 1.e-9) || different(lclT, 285, 1.e-9) {
		t.Errorf("saturated parcel LCL = (%g Pa, %g K); want the starting state", lclP, lclT)
	}
}
