/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"math"
	"os"
	"time"

	"github.com/pkg/profile"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/notargets/gowave/Grid1D"
	"github.com/notargets/gowave/InputParameters"
	"github.com/notargets/gowave/diagnostics"
	"github.com/notargets/gowave/dispersion"
	"github.com/notargets/gowave/model_problems/WaveGrowth1D"
	"github.com/notargets/gowave/output"
	"github.com/notargets/gowave/source_terms"
	"github.com/notargets/gowave/utils"
)

type Model1D struct {
	ICFile     string
	OutputFile string
	Profile    bool
	Perf       bool
	LogEvery   int // Samples between progress reports
}

// OneDCmd represents the 1D command
var OneDCmd = &cobra.Command{
	Use:   "1D",
	Short: "Wave spectrum growth along a one dimensional fetch",
	Long: `
Integrates the wave spectrum over a line of grid points under a prescribed wind and depth,
optionally writing the sampled diagnostics and final spectrum to netCDF.

gowave 1D -I input.yaml -o waves.nc`,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		m1d := &Model1D{}
		m1d.ICFile, _ = cmd.Flags().GetString("inputConditionsFile")
		m1d.OutputFile, _ = cmd.Flags().GetString("output")
		m1d.Profile, _ = cmd.Flags().GetBool("profile")
		m1d.Perf, _ = cmd.Flags().GetBool("perf")
		m1d.LogEvery, _ = cmd.Flags().GetInt("logEvery")
		var ip *InputParameters.InputParameters1D
		if ip, err = processInput(m1d); err != nil {
			return
		}
		ip.Print()
		_, err = Run1D(m1d, ip)
		return
	},
}

// coefficientOptions override the input file when given as flags, in the config file or in the
// environment.
var coefficientOptions = []struct {
	name, usage string
	field       func(co *source_terms.Coefficients) *float64
}{
	{"sheltering", "wind input sheltering coefficient",
		func(co *source_terms.Coefficients) *float64 { return &co.ShelteringCoefficient }},
	{"mss", "mean squared slope coefficient of dissipation, <= 0 disables it",
		func(co *source_terms.Coefficients) *float64 { return &co.MSSCoefficient }},
	{"snl", "nonlinear downshift coefficient",
		func(co *source_terms.Coefficients) *float64 { return &co.SnlCoefficient }},
	{"dissipation", "dissipation coefficient",
		func(co *source_terms.Coefficients) *float64 { return &co.DissipationCoefficient }},
	{"dissipationPower", "exponent of the saturation spectrum in dissipation",
		func(co *source_terms.Coefficients) *float64 { return &co.DissipationPower }},
	{"growthFactor", "largest change of the growth exponent per sub-step",
		func(co *source_terms.Coefficients) *float64 { return &co.ExpGrowthFactor }},
	{"current", "surface current subtracted from the wind, m/s",
		func(co *source_terms.Coefficients) *float64 { return &co.Current }},
}

func init() {
	rootCmd.AddCommand(OneDCmd)
	OneDCmd.Flags().StringP("inputConditionsFile", "I", "", "YAML or TOML file for input parameters like:\n\t- Grid\n\t- Depth and WindSpeed as functions of x")
	OneDCmd.Flags().StringP("output", "o", "", "netCDF file for the sampled diagnostics and final spectrum")
	OneDCmd.Flags().Bool("profile", false, "write a CPU profile to the working directory")
	OneDCmd.Flags().Bool("perf", false, "count CPU cycles and instructions of the integration (Linux)")
	OneDCmd.Flags().Int("logEvery", 10, "samples between progress reports")
	defaults := source_terms.DefaultCoefficients()
	for _, opt := range coefficientOptions {
		OneDCmd.Flags().Float64(opt.name, *opt.field(&defaults), opt.usage)
		if err := viper.BindPFlag(opt.name, OneDCmd.Flags().Lookup(opt.name)); err != nil {
			panic(err)
		}
	}
	OneDCmd.Flags().Int("parallel", defaults.ParallelDegree, "spatial partitions for the source terms")
	if err := viper.BindPFlag("parallel", OneDCmd.Flags().Lookup("parallel")); err != nil {
		panic(err)
	}
}

func processInput(m1d *Model1D) (ip *InputParameters.InputParameters1D, err error) {
	ip = InputParameters.NewInputParameters1D()
	if len(m1d.ICFile) == 0 {
		logrus.Warn("no input parameters file (-I, --inputConditionsFile), running the default case")
	} else if err = ip.ParseFile(m1d.ICFile); err != nil {
		return
	}
	applyOverrides(&ip.Coefficients)
	err = ip.Coefficients.Validate()
	return
}

func applyOverrides(co *source_terms.Coefficients) {
	for _, opt := range coefficientOptions {
		if viper.IsSet(opt.name) {
			*opt.field(co) = viper.GetFloat64(opt.name)
		}
	}
	if viper.IsSet("parallel") {
		co.ParallelDegree = viper.GetInt("parallel")
	}
}

func Run1D(m1d *Model1D, ip *InputParameters.InputParameters1D) (r *WaveGrowth1D.Result, err error) {
	if m1d.Profile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.Quiet).Stop()
	}
	g, err := ip.Grid()
	if err != nil {
		return
	}
	U, err := ip.WindProfile(g)
	if err != nil {
		return
	}
	initCfg, err := ip.InitConfig()
	if err != nil {
		return
	}
	in, err := WaveGrowth1D.NewWaveModel(g, initCfg, U, ip.Coefficients)
	if err != nil {
		return
	}
	logrus.WithFields(logrus.Fields{
		"max_residual": maxDispersionResidual(in, g.Depth, ip),
		"iterations":   ip.Coefficients.DispersionIterations,
		"blas":         utils.BLASImplementation,
	}).Debug("dispersion relation")
	logEvery := m1d.LogEvery
	if logEvery < 1 {
		logEvery = 1
	}
	in.OnSample = func(n int, t float64, r *WaveGrowth1D.Result) {
		if n%logEvery == 0 || n == r.NumSamples()-1 {
			logrus.WithFields(logrus.Fields{
				"sample":    fmt.Sprintf("%d/%d", n+1, r.NumSamples()),
				"time":      t,
				"swh_max":   r.SWH.Row(n).Max(),
				"sub_steps": in.SubSteps,
				"mem":       utils.GetMemUsage(),
			}).Info("progress")
		}
	}
	start := time.Now()
	run := func() (err error) {
		r, err = in.Run(ip.Duration, ip.OutputInterval)
		return
	}
	if m1d.Perf {
		err = runWithCounters(run)
	} else {
		err = run()
	}
	if err != nil {
		return
	}
	logrus.WithFields(logrus.Fields{
		"elapsed":   time.Since(start).String(),
		"sub_steps": r.SubSteps,
		"samples":   r.NumSamples(),
	}).Info("integration complete")
	names, fields := r.Variables()
	last := r.NumSamples() - 1
	for i, name := range names {
		logrus.WithField("variable", name).Info(diagnostics.Summary(fields[i].Row(last)).String())
	}
	if len(m1d.OutputFile) != 0 {
		if err = writeOutput(m1d.OutputFile, g, r, ip.Title); err != nil {
			return
		}
		logrus.WithField("file", m1d.OutputFile).Info("wrote netCDF output")
	}
	return
}

func writeOutput(fileName string, g *Grid1D.Grid1D, r *WaveGrowth1D.Result, title string) (err error) {
	var ff *os.File
	if ff, err = os.Create(fileName); err != nil {
		return
	}
	defer func() {
		if cerr := ff.Close(); err == nil {
			err = cerr
		}
	}()
	return output.WriteNetCDF(ff, g, r, title)
}

func maxDispersionResidual(in *WaveGrowth1D.Integrator, depth utils.Matrix, ip *InputParameters.InputParameters1D) (maxRes float64) {
	var (
		nr, nc = in.K.Dims()
		pc     = ip.Coefficients.PhysicalConstants
	)
	for i := 0; i < nr; i++ {
		for j := 0; j < nc; j++ {
			res := math.Abs(dispersion.Residual(in.K.At(i, j), in.F.At(i, j), depth.At(i, j), pc))
			maxRes = math.Max(maxRes, res)
		}
	}
	return
}
