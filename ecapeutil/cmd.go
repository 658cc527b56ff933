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

// Package ecapeutil wires the ECAPE calculation into a command-line
// interface: cobra commands, viper configuration, and a loader for
// comma-separated sounding files.
package ecapeutil

import (
	"fmt"

	"github.com/lnashier/viper"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/spatialmodel/ecape"
)

// Cfg holds the configuration for the command-line interface.
var Cfg *viper.Viper

func init() {
	// options are the configuration options available to the commands.
	options := []struct {
		name, usage string
		defaultVal  interface{}
		flagsets    []*pflag.FlagSet
	}{
		{
			name: "config",
			usage: `
              config specifies the path to a configuration file.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "sounding",
			usage: `
              sounding is the path to a comma-separated sounding file with one
              line per level, surface first, and six columns: height [m],
              pressure [Pa], temperature [K], specific humidity [kg/kg],
              eastward wind [m/s], northward wind [m/s].`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{runCmd.Flags()},
		},
		{
			name: "parcel",
			usage: `
              parcel selects the parcel definition: 'most_unstable',
              'surface_based', or 'mixed_layer'.`,
			defaultVal: "most_unstable",
			flagsets:   []*pflag.FlagSet{runCmd.Flags()},
		},
		{
			name: "cape",
			usage: `
              cape, if set to a value >= 0, overrides the internally computed
              CAPE [J/kg].`,
			defaultVal: -1.0,
			flagsets:   []*pflag.FlagSet{runCmd.Flags()},
		},
	}

	Cfg = viper.New()

	// Set the prefix for configuration environment variables.
	Cfg.SetEnvPrefix("ECAPE")

	for _, option := range options {
		for _, set := range option.flagsets {
			switch v := option.defaultVal.(type) {
			case string:
				set.String(option.name, v, option.usage)
			case float64:
				set.Float64(option.name, v, option.usage)
			default:
				panic("invalid argument type")
			}
			Cfg.BindPFlag(option.name, set.Lookup(option.name))
		}
	}

	// Link the commands together.
	Root.AddCommand(versionCmd)
	Root.AddCommand(runCmd)
}

// setConfig finds and reads in the configuration file, if there is one.
func setConfig() error {
	if cfgpath := Cfg.GetString("config"); cfgpath != "" {
		Cfg.SetConfigFile(cfgpath)
		if err := Cfg.ReadInConfig(); err != nil {
			return fmt.Errorf("ecape: problem reading configuration file: %v", err)
		}
	}
	return nil
}

// Root is the main command.
var Root = &cobra.Command{
	Use:   "ecape",
	Short: "Entraining CAPE from a vertical sounding.",
	Long: `ecape computes the entraining convective available potential energy
(ECAPE) of a single vertical atmospheric sounding, following the
analytic closure of Peters et al. (2023).

Configuration can be changed by using a configuration file (and
providing the path to the file using the --config flag), by using
command-line arguments, or by setting environment variables in the
format 'ECAPE_var' where 'var' is the name of the variable to be set.`,
	DisableAutoGenTag: true,
	PersistentPreRunE: func(*cobra.Command, []string) error { return setConfig() },
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Long:  "version prints the version number of this version of ECAPE.",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Printf("ECAPE v%s\n", ecape.Version)
	},
	DisableAutoGenTag: true,
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Compute ECAPE for a sounding.",
	Long: `run loads a comma-separated sounding file and prints the entraining
CAPE [J/kg] for the configured parcel definition.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return Run(cmd, Cfg.GetString("sounding"), Cfg.GetString("parcel"),
			Cfg.GetFloat64("cape"))
	},
	DisableAutoGenTag: true,
}

// Run loads the sounding file at soundingFile, computes its ECAPE for
// the parcel definition given by parcelTag, and prints the result to
// cmd's output. A manualCAPE >= 0 [J/kg] overrides the internally
// computed CAPE.
func Run(cmd *cobra.Command, soundingFile, parcelTag string, manualCAPE float64) error {
	if soundingFile == "" {
		return fmt.Errorf("ecape: no sounding file specified")
	}
	kind, err := ecape.ParseParcelKind(parcelTag)
	if err != nil {
		return err
	}
	s, err := LoadSounding(soundingFile)
	if err != nil {
		return err
	}
	opts := new(ecape.Options)
	if manualCAPE >= 0 {
		opts.ManualCAPE = ecape.ManualCAPE(manualCAPE)
	}
	result, err := s.Calc(kind, opts)
	if err != nil {
		return err
	}
	cmd.Printf("ECAPE (%s): %.1f J/kg\n", kind, result.Value())
	return nil
}
