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
	"bytes"
	"fmt"
	"io/ioutil"
	"math"
	"os"
	"strings"
	"testing"

	"github.com/spf13/cobra"
)

func TestReadSounding(t *testing.T) {
	data := `0, 100000, 290, 0.010, 1, 0
1000, 90000, 284, 0.008, 2, 1
2000, 80000, 278, 0.006, 3, 2
`
	s, err := ReadSounding(strings.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}
	if s.Levels() != 3 {
		t.Errorf("levels = %d; want 3", s.Levels())
	}
}

func TestReadSoundingMalformed(t *testing.T) {
	cases := []string{
		"0, 100000, 290, 0.010, 1\n",           // too few columns
		"0, 100000, 290, 0.010, 1, zero\n",     // not a number
		"0, 100000, 290, 0.010, 1, 0, extra\n", // too many columns
	}
	for _, data := range cases {
		if _, err := ReadSounding(strings.NewReader(data)); err == nil {
			t.Errorf("expected an error for %q", data)
		}
	}
}

// writeTestSounding writes an idealized convective sounding to a
// temporary file and returns its path.
func writeTestSounding(t *testing.T) string {
	t.Helper()
	const (
		nLevels = 151
		dz      = 100.
		g       = 9.80665
		rd      = 287.04
	)
	b := new(bytes.Buffer)
	p := 1.e5
	prevT := 302.
	for i := 0; i < nLevels; i++ {
		z := float64(i) * dz
		temp := 302. - 0.0068*math.Min(z, 12000)
		if i > 0 {
			p *= math.Exp(-g * dz / (rd * (prevT + temp) / 2))
		}
		prevT = temp
		q := 0.016 * math.Exp(-z/2500)
		fmt.Fprintf(b, "%g,%g,%g,%g,%g,%g\n", z, p, temp, q, z/400, z/1200)
	}
	f, err := ioutil.TempFile("", "sounding")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := f.Write(b.Bytes()); err != nil {
		t.Fatal(err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}
	return f.Name()
}

func TestRun(t *testing.T) {
	file := writeTestSounding(t)
	defer os.Remove(file)

	for _, parcel := range []string{"most_unstable", "surface_based", "mixed_layer"} {
		out := new(bytes.Buffer)
		cmd := &cobra.Command{}
		cmd.SetOutput(out)
		if err := Run(cmd, file, parcel, -1); err != nil {
			t.Fatalf("%s: %v", parcel, err)
		}
		if !strings.Contains(out.String(), "ECAPE") {
			t.Errorf("%s: output %q does not report a result", parcel, out.String())
		}
	}
}

func TestRunManualCAPE(t *testing.T) {
	file := writeTestSounding(t)
	defer os.Remove(file)

	out := new(bytes.Buffer)
	cmd := &cobra.Command{}
	cmd.SetOutput(out)
	if err := Run(cmd, file, "most_unstable", 3000); err != nil {
		t.Fatal(err)
	}
}

func TestRunBadArguments(t *testing.T) {
	file := writeTestSounding(t)
	defer os.Remove(file)

	cmd := &cobra.Command{}
	cmd.SetOutput(new(bytes.Buffer))
	if err := Run(cmd, "", "most_unstable", -1); err == nil {
		t.Error("expected an error for a missing sounding file")
	}
	if err := Run(cmd, file, "bananas", -1); err == nil {
		t.Error("expected an error for an unknown parcel definition")
	}
	if err := Run(cmd, "/nonexistent/sounding.csv", "most_unstable", -1); err == nil {
		t.Error("expected an error for a nonexistent file")
	}
}
