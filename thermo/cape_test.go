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

import "testing"

func TestLFCEL(t *testing.T) {
	pressure, _, temperature, dewPoint := testEnvironment()
	parcel := SurfaceParcel(pressure, temperature, dewPoint)
	trace, err := ParcelProfile(pressure, parcel.T, parcel.Td)
	if err != nil {
		t.Fatal(err)
	}
	lfcP, elP, err := LFCEL(pressure, temperature, dewPoint, trace, parcel)
	if err != nil {
		t.Fatal(err)
	}
	lclP, _ := LCL(pressure[0], parcel.T, parcel.Td)
	if lfcP > lclP {
		t.Errorf("LFC (%g Pa) below the LCL (%g Pa)", lfcP, lclP)
	}
	if elP >= lfcP {
		t.Errorf("EL (%g Pa) not above the LFC (%g Pa)", elP, lfcP)
	}
	// The test environment caps convection near its 12 km tropopause
	// (about 19.5 kPa); the EL must land within a few kilometers of it.
	if elP > 3.5e4 || elP < 1.5e4 {
		t.Errorf("EL = %g Pa; want near the tropopause", elP)
	}
}

func TestLFCELStable(t *testing.T) {
	// An isothermal atmosphere is absolutely stable: a lifted parcel
	// cools while the environment does not.
	const nLevels = 100
	pressure := make([]float64, nLevels)
	temperature := make([]float64, nLevels)
	dewPoint := make([]float64, nLevels)
	for i := range pressure {
		pressure[i] = 1.e5 - 800*float64(i)
		temperature[i] = 285
		dewPoint[i] = 275
	}
	parcel := SurfaceParcel(pressure, temperature, dewPoint)
	trace, err := ParcelProfile(pressure, parcel.T, parcel.Td)
	if err != nil {
		t.Fatal(err)
	}
	if _, _, err := LFCEL(pressure, temperature, dewPoint, trace, parcel); err != ErrNoLFC {
		t.Errorf("err = %v; want ErrNoLFC", err)
	}
}

func TestLFCELNoEquilibrium(t *testing.T) {
	// Truncate the unstable test environment at 6 km, where the parcel
	// is still buoyant: no equilibrium level exists below the top.
	pressure, height, temperature, dewPoint := testEnvironment()
	top := 0
	for i, z := range height {
		if z > 6000 {
			break
		}
		top = i
	}
	pressure = pressure[:top+1]
	temperature = temperature[:top+1]
	dewPoint = dewPoint[:top+1]

	parcel := SurfaceParcel(pressure, temperature, dewPoint)
	trace, err := ParcelProfile(pressure, parcel.T, parcel.Td)
	if err != nil {
		t.Fatal(err)
	}
	if _, _, err := LFCEL(pressure, temperature, dewPoint, trace, parcel); err != ErrNoEL {
		t.Errorf("err = %v; want ErrNoEL", err)
	}
}

func TestCAPECIN(t *testing.T) {
	pressure, _, temperature, dewPoint := testEnvironment()
	parcel := SurfaceParcel(pressure, temperature, dewPoint)
	trace, err := ParcelProfile(pressure, parcel.T, parcel.Td)
	if err != nil {
		t.Fatal(err)
	}
	cape, cin, err := CAPECIN(pressure, temperature, dewPoint, trace, parcel)
	if err != nil {
		t.Fatal(err)
	}
	// A warm, moist surface under a 6.8 K/km lapse supports vigorous
	// convection; the exact value depends on the pseudoadiabat, but it
	// must land in the range of a strongly unstable sounding.
	if cape < 500 || cape > 6000 {
		t.Errorf("CAPE = %g J/kg; want a strongly unstable value", cape)
	}
	if cin > 0 {
		t.Errorf("CIN = %g J/kg; want <= 0", cin)
	}
	if cin < -500 {
		t.Errorf("CIN = %g J/kg; implausibly strong inhibition", cin)
	}
}

func TestCAPECINStable(t *testing.T) {
	const nLevels = 100
	pressure := make([]float64, nLevels)
	temperature := make([]float64, nLevels)
	dewPoint := make([]float64, nLevels)
	for i := range pressure {
		pressure[i] = 1.e5 - 800*float64(i)
		temperature[i] = 285
		dewPoint[i] = 275
	}
	parcel := SurfaceParcel(pressure, temperature, dewPoint)
	trace, err := ParcelProfile(pressure, parcel.T, parcel.Td)
	if err != nil {
		t.Fatal(err)
	}
	if _, _, err := CAPECIN(pressure, temperature, dewPoint, trace, parcel); err != ErrNoLFC {
		t.Errorf("err = %v; want ErrNoLFC", err)
	}
}
