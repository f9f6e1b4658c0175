package types

import (
	"fmt"
	"strings"
)

// PhysicalConstants are the material and gravitational constants shared by the dispersion
// solver, the source terms and the diagnostics. All values are SI.
type PhysicalConstants struct {
	Gravity        float64 `yaml:"Gravity" toml:"Gravity"`
	WaterDensity   float64 `yaml:"WaterDensity" toml:"WaterDensity"`
	AirDensity     float64 `yaml:"AirDensity" toml:"AirDensity"`
	SurfaceTension float64 `yaml:"SurfaceTension" toml:"SurfaceTension"`
	// Newton iterations performed by the dispersion solver. The solver never checks convergence.
	DispersionIterations int `yaml:"DispersionIterations" toml:"DispersionIterations"`
}

func DefaultPhysicalConstants() PhysicalConstants {
	return PhysicalConstants{
		Gravity:              9.8,
		WaterDensity:         1.e3,
		AirDensity:           1.2,
		SurfaceTension:       0.074,
		DispersionIterations: 100,
	}
}

// CapillaryLength2 is σ/(ρg), the coefficient of k² in the capillary correction.
func (pc PhysicalConstants) CapillaryLength2() float64 {
	return pc.SurfaceTension / (pc.WaterDensity * pc.Gravity)
}

type InitType uint8

const (
	INIT_BALANCE InitType = iota
	INIT_CALM
)

var InitNameMap = map[string]InitType{
	"balance": INIT_BALANCE,
	"calm":    INIT_CALM,
	"zero":    INIT_CALM,
}

var initPrintNames = []string{"Balance", "Calm"}

func (it InitType) Print() string {
	if int(it) < len(initPrintNames) {
		return initPrintNames[it]
	}
	return fmt.Sprintf("InitType(%d)", it)
}

// NewInitType maps a case-insensitive name onto an InitType, an empty name selects INIT_BALANCE.
func NewInitType(label string) (it InitType, err error) {
	label = strings.ToLower(strings.TrimSpace(label))
	if len(label) == 0 {
		return INIT_BALANCE, nil
	}
	var ok bool
	if it, ok = InitNameMap[label]; !ok {
		err = fmt.Errorf("unable to use initialization type named %s", label)
	}
	return
}
