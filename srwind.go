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
	"gonum.org/v1/gonum/stat"

	"github.com/spatialmodel/ecape/thermo"
)

// srLayerTop is the top of the storm-relative wind layer [m].
const srLayerTop = 1000.

// StormRelativeWind returns the mean storm-relative wind speed [m/s]
// over all levels with height <= 1 km, given the storm propagation
// vector (uStorm, vStorm) [m/s]. The storm motion is subtracted from
// each level's wind vector first and the resulting per-level speeds are
// then averaged; the average of speeds is not the speed of the averaged
// vector, and it is the former the ECAPE closure requires.
func (s *Sounding) StormRelativeWind(uStorm, vStorm float64) (float64, error) {
	var speeds []float64
	for i, z := range s.height {
		if z > srLayerTop {
			continue
		}
		speeds = append(speeds, thermo.WindSpeed(s.uWind[i]-uStorm, s.vWind[i]-vStorm))
	}
	if len(speeds) == 0 {
		return 0, &EmptyLayerError{Top: srLayerTop}
	}
	return stat.Mean(speeds, nil), nil
}
