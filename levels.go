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

// BuoyancyLevels holds the profile indices and heights of the level of
// free convection (LFC) and the equilibrium level (EL). Indices refer to
// the sounding's level ordering, surface first, and satisfy
// 0 <= LFCIndex <= ELIndex < Levels().
type BuoyancyLevels struct {
	LFCIndex  int
	LFCHeight float64 // m
	ELIndex   int
	ELHeight  float64 // m
}

// BuoyancyLevels resolves externally reported LFC and EL crossing
// pressures [Pa] against the profile levels. Each crossing maps to the
// last profile level whose pressure strictly exceeds the crossing
// pressure, i.e. the last level below the crossing moving upward from
// the surface; using the same rule for both levels keeps the NCAPE
// integration limits well defined. A crossing below the entire profile
// or an EL that resolves below the LFC is a LevelNotFoundError.
func (s *Sounding) BuoyancyLevels(lfcPressure, elPressure float64) (*BuoyancyLevels, error) {
	lfcIdx, err := s.lastLevelBelow("LFC", lfcPressure)
	if err != nil {
		return nil, err
	}
	elIdx, err := s.lastLevelBelow("EL", elPressure)
	if err != nil {
		return nil, err
	}
	if elIdx < lfcIdx {
		return nil, &LevelNotFoundError{Level: "EL", Pressure: elPressure}
	}
	return &BuoyancyLevels{
		LFCIndex:  lfcIdx,
		LFCHeight: s.height[lfcIdx],
		ELIndex:   elIdx,
		ELHeight:  s.height[elIdx],
	}, nil
}

// lastLevelBelow returns the index of the last level with pressure
// strictly greater than crossP. Pressure decreases with level index, so
// the qualifying levels are a prefix of the profile.
func (s *Sounding) lastLevelBelow(level string, crossP float64) (int, error) {
	idx := -1
	for i, p := range s.pressure {
		if p <= crossP {
			break
		}
		idx = i
	}
	if idx < 0 {
		return 0, &LevelNotFoundError{Level: level, Pressure: crossP}
	}
	return idx, nil
}
