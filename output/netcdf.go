// Package output persists integration results as netCDF.
package output

import (
	"fmt"
	"os"

	"github.com/ctessum/cdf"

	"github.com/notargets/gowave/Grid1D"
	"github.com/notargets/gowave/model_problems/WaveGrowth1D"
)

type ncVariable struct {
	name, units, description string
	dims                     []string
	data                     []float64
}

// WriteNetCDF writes the sampled diagnostics [time, x], the final spectrum [x, frequency] and the
// grid axes to ff.
func WriteNetCDF(ff *os.File, g *Grid1D.Grid1D, r *WaveGrowth1D.Result, title string) (err error) {
	var (
		nt   = r.NumSamples()
		tx   = []string{"time", "x"}
		xf   = []string{"x", "frequency"}
		vars = []ncVariable{
			{"time", "s", "Start of each output interval", []string{"time"}, r.Time},
			{"x", "m", "Grid point position", []string{"x"}, g.XCoords.Data()},
			{"frequency", "Hz", "Spectral frequency", []string{"frequency"}, g.Freq.Data()},
			{"depth", "m", "Water depth", []string{"x"}, g.Depth.Col(0).Data()},
			{"swh", "m", "Significant wave height", tx, r.SWH.Data()},
			{"mwp", "s", "Mean wave period", tx, r.MWP.Data()},
			{"dwp", "s", "Dominant wave period", tx, r.DWP.Data()},
			{"mss", "-", "Mean squared slope", tx, r.MSS.Data()},
			{"tau", "N/m2", "Form drag", tx, r.Tau.Data()},
			{"Fk", "m3", "Final spectral density per unit wavenumber", xf, r.Fk.Data()},
		}
	)
	if nt == 0 {
		return fmt.Errorf("no samples to write")
	}
	h := cdf.NewHeader([]string{"time", "x", "frequency"}, []int{nt, g.NX, g.NF})
	h.AddAttribute("", "title", title)
	h.AddAttribute("", "comment", "One dimensional wave spectrum growth")
	for _, v := range vars {
		h.AddVariable(v.name, v.dims, []float64{0})
		h.AddAttribute(v.name, "units", v.units)
		h.AddAttribute(v.name, "description", v.description)
	}
	h.Define()
	if errs := h.Check(); len(errs) != 0 {
		return fmt.Errorf("netCDF header: %v", errs[0])
	}
	var f *cdf.File
	if f, err = cdf.Create(ff, h); err != nil {
		return fmt.Errorf("writing netCDF header: %w", err)
	}
	for _, v := range vars {
		if err = writeNCF(f, v.name, v.data); err != nil {
			return
		}
	}
	return cdf.UpdateNumRecs(ff)
}

func writeNCF(f *cdf.File, name string, data []float64) (err error) {
	end := f.Header.Lengths(name)
	start := make([]int, len(end))
	w := f.Writer(name, start, end)
	if _, err = w.Write(data); err != nil {
		return fmt.Errorf("writing variable %s: %w", name, err)
	}
	return
}

// ReadVariable reads a whole float64 variable and its dimension lengths.
func ReadVariable(rw cdf.ReaderWriterAt, name string) (data []float64, lengths []int, err error) {
	var (
		f *cdf.File
	)
	if f, err = cdf.Open(rw); err != nil {
		return
	}
	if lengths = f.Header.Lengths(name); lengths == nil {
		err = fmt.Errorf("no variable named %s", name)
		return
	}
	r := f.Reader(name, nil, nil)
	buf := r.Zero(-1)
	if _, err = r.Read(buf); err != nil {
		return
	}
	data = buf.([]float64)
	return
}
