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
	"fmt"

	"github.com/ctessum/unit"
	"github.com/spatialmodel/ecape/thermo"
)

// A Sounding is a single vertical atmospheric profile, ordered surface
// first, with all values in SI units. It is immutable once constructed:
// NewSounding copies its inputs and no method modifies the profile, so a
// Sounding may be shared freely between goroutines.
type Sounding struct {
	height           []float64 // m
	pressure         []float64 // Pa, strictly decreasing
	temperature      []float64 // K
	specificHumidity []float64 // kg/kg
	uWind, vWind     []float64 // m/s

	dewPoint []float64 // K, derived from pressure and humidity
}

// NewSounding validates the dimensions and shape of the six profile
// columns and assembles them into a Sounding. Each column must carry the
// dimensions the argument name implies (height: length, pressure:
// pressure, temperature: temperature, specificHumidity: dimensionless
// mass ratio, winds: speed); a mismatch is reported as a DimensionError
// naming the argument, before any other validation, so that caller
// mistakes such as passing pressure in the position of height fail fast.
func NewSounding(height, pressure, temperature, specificHumidity, uWind, vWind *Column) (*Sounding, error) {
	s := new(Sounding)
	var err error
	if s.height, err = height.check("height", unit.Meter); err != nil {
		return nil, err
	}
	if s.pressure, err = pressure.check("pressure", unit.Pascal); err != nil {
		return nil, err
	}
	if s.temperature, err = temperature.check("temperature", unit.Kelvin); err != nil {
		return nil, err
	}
	if s.specificHumidity, err = specificHumidity.check("specificHumidity", unit.Dimless); err != nil {
		return nil, err
	}
	if s.uWind, err = uWind.check("uWind", unit.MeterPerSecond); err != nil {
		return nil, err
	}
	if s.vWind, err = vWind.check("vWind", unit.MeterPerSecond); err != nil {
		return nil, err
	}

	n := len(s.height)
	if n < 2 {
		return nil, &InvalidArgumentError{Arg: "height",
			Reason: fmt.Sprintf("a sounding needs at least 2 levels; got %d", n)}
	}
	for arg, l := range map[string]int{
		"pressure":         len(s.pressure),
		"temperature":      len(s.temperature),
		"specificHumidity": len(s.specificHumidity),
		"uWind":            len(s.uWind),
		"vWind":            len(s.vWind),
	} {
		if l != n {
			return nil, &InvalidArgumentError{Arg: arg,
				Reason: fmt.Sprintf("length %d does not match height length %d", l, n)}
		}
	}
	for i := 0; i < n-1; i++ {
		if s.pressure[i+1] >= s.pressure[i] {
			return nil, &InvalidArgumentError{Arg: "pressure",
				Reason: fmt.Sprintf("not strictly decreasing at level %d (%g -> %g Pa)",
					i, s.pressure[i], s.pressure[i+1])}
		}
	}

	s.dewPoint = make([]float64, n)
	for i := range s.dewPoint {
		s.dewPoint[i] = thermo.DewPoint(s.pressure[i], s.specificHumidity[i])
	}
	return s, nil
}

// Levels returns the number of levels in the sounding.
func (s *Sounding) Levels() int {
	return len(s.height)
}
