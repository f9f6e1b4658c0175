package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/gowave/output"
	"github.com/notargets/gowave/source_terms"
)

func TestRun1D(t *testing.T) {
	fileInput := []byte(`
Title: Test Case
FMin: 0.1
FMax: 20
NumFrequencies: 12
XMax: 10
NumGridPoints: 4
Depth: "30 - 2*x"
WindSpeed: 10
Duration: 0.03
OutputInterval: 0.01
InitType: balance
`)
	dir := t.TempDir()
	icFile := filepath.Join(dir, "input.yaml")
	require.NoError(t, os.WriteFile(icFile, fileInput, 0644))
	m1d := &Model1D{
		ICFile:     icFile,
		OutputFile: filepath.Join(dir, "waves.nc"),
		LogEvery:   1,
	}
	ip, err := processInput(m1d)
	require.NoError(t, err)
	assert.Equal(t, "Test Case", ip.Title)
	assert.Equal(t, 12, ip.NumFrequencies)
	r, err := Run1D(m1d, ip)
	require.NoError(t, err)
	assert.Equal(t, 3, r.NumSamples())
	assert.Greater(t, r.SubSteps, 0)

	ff, err := os.Open(m1d.OutputFile)
	require.NoError(t, err)
	defer ff.Close()
	data, lengths, err := output.ReadVariable(ff, "swh")
	require.NoError(t, err)
	assert.Equal(t, []int{3, 4}, lengths)
	assert.Equal(t, r.SWH.Data(), data)
	data, _, err = output.ReadVariable(ff, "depth")
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{30, 30 - 20./3, 30 - 40./3, 10}, data, 1.e-12)
}

func TestProcessInput(t *testing.T) {
	defer viper.Reset()
	{ // No input file runs the defaults
		ip, err := processInput(&Model1D{})
		require.NoError(t, err)
		assert.Equal(t, source_terms.DefaultCoefficients(), ip.Coefficients)
	}
	{
		viper.Set("sheltering", 0.2)
		viper.Set("parallel", 3)
		ip, err := processInput(&Model1D{})
		require.NoError(t, err)
		assert.Equal(t, 0.2, ip.Coefficients.ShelteringCoefficient)
		assert.Equal(t, 3, ip.Coefficients.ParallelDegree)
		assert.Equal(t, 120., ip.Coefficients.MSSCoefficient)
	}
	{
		viper.Set("growthFactor", 0.)
		_, err := processInput(&Model1D{})
		assert.Error(t, err)
	}
	{
		_, err := processInput(&Model1D{ICFile: "missing.yaml"})
		assert.Error(t, err)
	}
}
