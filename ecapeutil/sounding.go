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

package ecapeutil

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/ctessum/unit"

	"github.com/spatialmodel/ecape"
)

// soundingColumns is the number of columns in a sounding file:
// height, pressure, temperature, specific humidity, u wind, v wind.
const soundingColumns = 6

// LoadSounding reads a comma-separated sounding file with one line per
// level, surface first, and columns height [m], pressure [Pa],
// temperature [K], specific humidity [kg/kg], eastward wind [m/s] and
// northward wind [m/s].
func LoadSounding(filename string) (*ecape.Sounding, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("ecape: opening sounding file: %v", err)
	}
	defer f.Close()
	s, err := ReadSounding(f)
	if err != nil {
		return nil, fmt.Errorf("ecape: reading sounding file %s: %v", filename, err)
	}
	return s, nil
}

// ReadSounding parses comma-separated sounding data from r; see
// LoadSounding for the expected layout.
func ReadSounding(r io.Reader) (*ecape.Sounding, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	cols := make([][]float64, soundingColumns)
	line := 0
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, err
		}
		line++
		if len(record) != soundingColumns {
			return nil, fmt.Errorf("line %d has %d columns; expected %d",
				line, len(record), soundingColumns)
		}
		for i, field := range record {
			v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
			if err != nil {
				return nil, fmt.Errorf("line %d column %d: %v", line, i+1, err)
			}
			cols[i] = append(cols[i], v)
		}
	}

	return ecape.NewSounding(
		ecape.NewColumn(cols[0], unit.Meter),
		ecape.NewColumn(cols[1], unit.Pascal),
		ecape.NewColumn(cols[2], unit.Kelvin),
		ecape.NewColumn(cols[3], unit.Dimless),
		ecape.NewColumn(cols[4], unit.MeterPerSecond),
		ecape.NewColumn(cols[5], unit.MeterPerSecond),
	)
}
