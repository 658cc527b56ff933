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

// Package ecape computes the entraining convective available potential
// energy (ECAPE) of an atmospheric sounding: the buoyant energy left to
// a rising parcel after turbulent entrainment of environmental air is
// accounted for, following the analytic closure of Peters et al. (2023).
//
// The pipeline locates the buoyancy-neutral levels of a lifted parcel,
// integrates the buoyancy-dilution potential (NCAPE) over the free
// troposphere, evaluates the entrainment parameter psi at the
// equilibrium level, reduces the wind profile to the 0-1 km mean
// storm-relative wind speed, and solves a quadratic closure combining
// those with CAPE. Every call is a pure function of an immutable
// Sounding, so independent soundings may be processed concurrently
// without coordination.
package ecape

import (
	"fmt"
	"math"

	"github.com/ctessum/unit"

	"github.com/spatialmodel/ecape/thermo"
)

// Version is the version of this library.
const Version = "1.0.0"

// ParcelKind selects which parcel definition initializes the ascent.
type ParcelKind int

const (
	// MostUnstable lifts the parcel with the greatest equivalent
	// potential temperature in the lowest 300 hPa.
	MostUnstable ParcelKind = iota
	// SurfaceBased lifts the parcel from the lowest profile level.
	SurfaceBased
	// MixedLayer lifts a parcel with the mean potential temperature and
	// mixing ratio of the lowest 100 hPa.
	MixedLayer
)

// parcelStrategy supplies the collaborators specific to one parcel
// definition.
type parcelStrategy struct {
	name  string
	start func(pressure, temperature, dewPoint []float64) thermo.Parcel
}

var parcelStrategies = map[ParcelKind]parcelStrategy{
	MostUnstable: {name: "most_unstable", start: thermo.MostUnstableParcel},
	SurfaceBased: {name: "surface_based", start: thermo.SurfaceParcel},
	MixedLayer:   {name: "mixed_layer", start: thermo.MixedParcel},
}

func (k ParcelKind) String() string {
	if s, ok := parcelStrategies[k]; ok {
		return s.name
	}
	return fmt.Sprintf("ParcelKind(%d)", int(k))
}

// ParseParcelKind converts a parcel definition tag ("most_unstable",
// "surface_based" or "mixed_layer") to a ParcelKind.
func ParseParcelKind(tag string) (ParcelKind, error) {
	for k, s := range parcelStrategies {
		if s.name == tag {
			return k, nil
		}
	}
	return 0, &InvalidArgumentError{Arg: "parcel definition",
		Reason: fmt.Sprintf("unknown tag %q", tag)}
}

// Options modify a Calc invocation.
type Options struct {
	// ManualCAPE, if non-nil, bypasses the internally computed CAPE.
	// It must carry energy/mass dimensions [J/kg].
	ManualCAPE *unit.Unit
}

// PSI returns the entrainment parameter psi [dimensionless] for an
// equilibrium level at height elHeight [m] (Peters et al. 2023 equation
// 52). It is constant for a given equilibrium level and strictly
// decreasing in elHeight; elHeight must be positive.
func PSI(elHeight float64) float64 {
	const (
		sigma   = 1.6     // updraft-width shape constant
		alpha   = 0.8     // entrainment shape constant
		lMix    = 120.    // m, mixing length
		prandtl = 1. / 3. // turbulence Prandtl number
		ksq     = 0.18    // von Karman constant squared
	)
	return ksq * alpha * alpha * math.Pi * math.Pi * lMix /
		(4 * prandtl * sigma * sigma * elHeight)
}

// ECAPEA solves the ECAPE closure (Peters et al. 2023 equation 55) for
// storm-relative wind speed srWind [m/s], entrainment parameter psi,
// buoyancy-dilution potential ncape [J/kg] and CAPE cape [J/kg]. A
// negative discriminant means the inputs are physically inconsistent
// and is reported as a NumericDomainError. A negative analytic solution
// is floored to zero: entrainment cannot make CAPE negative under this
// closure, so the floor is a physical bound, not an error.
func ECAPEA(srWind, psi, ncape, cape float64) (float64, error) {
	r := psi / (srWind * srWind)
	pitch := 1 + psi + 2*r*ncape
	disc := pitch*pitch + 8*r*(cape-psi*ncape)
	if disc < 0 {
		return 0, &NumericDomainError{Op: "ECAPE closure discriminant", Value: disc}
	}
	termA := srWind * srWind / 2
	termB := -pitch / (4 * r)
	termC := math.Sqrt(disc) / (4 * r)
	e := termA + termB + termC
	if e < 0 {
		e = 0
	}
	return e, nil
}

// Calc computes the entraining CAPE of the sounding for the given
// parcel definition, returning a value with energy/mass dimensions
// [J/kg] that is guaranteed to be >= 0. Errors follow the package
// taxonomy: InvalidArgumentError for an unknown parcel kind,
// DimensionError for a manual CAPE without energy/mass dimensions,
// LevelNotFoundError when no LFC/EL is resolvable, EmptyLayerError when
// the 0-1 km storm-relative layer is empty, and NumericDomainError when
// the closure discriminant is negative. All are terminal for the
// invocation: the inputs are deterministic, so a retry would fail the
// same way.
func (s *Sounding) Calc(kind ParcelKind, opts *Options) (*unit.Unit, error) {
	strat, ok := parcelStrategies[kind]
	if !ok {
		return nil, &InvalidArgumentError{Arg: "parcel definition",
			Reason: fmt.Sprintf("unknown kind %d", int(kind))}
	}

	parcel := strat.start(s.pressure, s.temperature, s.dewPoint)
	trace, err := thermo.ParcelProfile(s.pressure, parcel.T, parcel.Td)
	if err != nil {
		return nil, fmt.Errorf("ecape: lifting %s parcel: %v", strat.name, err)
	}

	var cape float64
	if opts != nil && opts.ManualCAPE != nil {
		if !opts.ManualCAPE.Dimensions().Matches(JoulePerKilogram) {
			return nil, &DimensionError{Arg: "ManualCAPE",
				Want: JoulePerKilogram, Got: opts.ManualCAPE.Dimensions()}
		}
		cape = opts.ManualCAPE.Value()
	} else {
		cape, _, err = thermo.CAPECIN(s.pressure, s.temperature, s.dewPoint, trace, parcel)
		if err != nil {
			return nil, convertLevelError(err)
		}
	}

	lfcP, elP, err := thermo.LFCEL(s.pressure, s.temperature, s.dewPoint, trace, parcel)
	if err != nil {
		return nil, convertLevelError(err)
	}
	levels, err := s.BuoyancyLevels(lfcP, elP)
	if err != nil {
		return nil, err
	}
	if levels.ELHeight <= 0 {
		return nil, &NumericDomainError{Op: "equilibrium level height", Value: levels.ELHeight}
	}

	mseBar, mseStar := s.MoistStaticEnergyProfile()
	ncape := NCAPE(integralArg(mseBar, mseStar, s.temperature), s.height,
		levels.LFCIndex, levels.ELIndex)

	uStorm, vStorm, err := thermo.BunkersStormMotion(s.height, s.uWind, s.vWind)
	if err != nil {
		return nil, fmt.Errorf("ecape: storm motion: %v", err)
	}
	srWind, err := s.StormRelativeWind(uStorm, vStorm)
	if err != nil {
		return nil, err
	}

	e, err := ECAPEA(srWind, PSI(levels.ELHeight), ncape, cape)
	if err != nil {
		return nil, err
	}
	return unit.New(e, JoulePerKilogram), nil
}

// convertLevelError maps the thermo package's missing-crossing
// sentinels to the package error taxonomy.
func convertLevelError(err error) error {
	switch err {
	case thermo.ErrNoLFC:
		return &LevelNotFoundError{Level: "LFC", Pressure: math.NaN()}
	case thermo.ErrNoEL:
		return &LevelNotFoundError{Level: "EL", Pressure: math.NaN()}
	}
	return err
}
