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

import "github.com/ctessum/unit"

// JoulePerKilogram is specific energy [m2 s-2], the dimensions of CAPE,
// NCAPE and ECAPE.
var JoulePerKilogram = unit.Dimensions{
	unit.LengthDim: 2,
	unit.TimeDim:   -2,
}

// ManualCAPE wraps a caller-supplied CAPE value [J/kg] for use as
// Options.ManualCAPE.
func ManualCAPE(v float64) *unit.Unit {
	return unit.New(v, JoulePerKilogram)
}

// Column is a vertical profile of a single physical quantity: per-level
// SI values tagged with their physical dimensions. It is the form in
// which all array inputs enter the package, so that dimensional
// compatibility can be checked before any arithmetic.
type Column struct {
	data []float64
	dims unit.Dimensions
}

// NewColumn creates a Column holding a copy of data, which must be in SI
// units with the given dimensions.
//
// Example: a pressure profile in Pa is
// NewColumn(p, unit.Pascal).
func NewColumn(data []float64, dims unit.Dimensions) *Column {
	c := &Column{
		data: make([]float64, len(data)),
		dims: make(unit.Dimensions),
	}
	copy(c.data, data)
	for key, val := range dims {
		if val != 0 {
			c.dims[key] = val
		}
	}
	return c
}

// Len returns the number of levels in the column.
func (c *Column) Len() int {
	return len(c.data)
}

// Dimensions returns the physical dimensions of the column values.
func (c *Column) Dimensions() unit.Dimensions {
	return c.dims
}

// Values returns a copy of the column values.
func (c *Column) Values() []float64 {
	v := make([]float64, len(c.data))
	copy(v, c.data)
	return v
}

// check validates that the column carries the dimensions want, returning
// a DimensionError naming arg if it does not. The returned slice is a
// copy, so the caller owns it exclusively.
func (c *Column) check(arg string, want unit.Dimensions) ([]float64, error) {
	if !c.dims.Matches(want) {
		return nil, &DimensionError{Arg: arg, Want: want, Got: c.dims}
	}
	return c.Values(), nil
}
