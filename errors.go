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
)

// DimensionError reports an input whose physical dimensions do not match
// what the receiving function requires.
type DimensionError struct {
	// Arg is the name of the offending argument.
	Arg string
	// Want and Got are the required and supplied dimensions.
	Want, Got unit.Dimensions
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("ecape: argument %s has dimensions [%s]; expected [%s]",
		e.Arg, e.Got.String(), e.Want.String())
}

// InvalidArgumentError reports an argument value outside the set of
// values a function accepts.
type InvalidArgumentError struct {
	Arg    string
	Reason string
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("ecape: invalid %s: %s", e.Arg, e.Reason)
}

// LevelNotFoundError indicates that a reported LFC or EL crossing
// pressure cannot be resolved against the profile levels.
type LevelNotFoundError struct {
	// Level is "LFC" or "EL".
	Level string
	// Pressure is the crossing pressure [Pa] that could not be resolved.
	Pressure float64
}

func (e *LevelNotFoundError) Error() string {
	return fmt.Sprintf("ecape: no profile level below the %s pressure %g Pa",
		e.Level, e.Pressure)
}

// EmptyLayerError indicates that no profile levels fall within a
// required height layer.
type EmptyLayerError struct {
	// Top is the upper bound of the layer [m].
	Top float64
}

func (e *EmptyLayerError) Error() string {
	return fmt.Sprintf("ecape: no profile levels at or below %g m", e.Top)
}

// NumericDomainError indicates that a closed-form solve was handed
// physically inconsistent inputs.
type NumericDomainError struct {
	Op    string
	Value float64
}

func (e *NumericDomainError) Error() string {
	return fmt.Sprintf("ecape: %s is outside the solvable domain (%g)", e.Op, e.Value)
}
