package source_terms

import (
	"fmt"

	"github.com/notargets/gowave/types"
)

// Coefficients are the tunable parameters of the source terms and the integrator. Every field is
// independent; start from DefaultCoefficients and override what is needed.
type Coefficients struct {
	ShelteringCoefficient  float64 `yaml:"ShelteringCoefficient" toml:"ShelteringCoefficient"`   // Wind input scale, 0.11
	MSSCoefficient         float64 `yaml:"MSSCoefficient" toml:"MSSCoefficient"`                 // Mean squared slope modulation of dissipation, 120. <= 0 disables it
	SnlCoefficient         float64 `yaml:"SnlCoefficient" toml:"SnlCoefficient"`                 // Nonlinear downshift scale, 1
	DissipationCoefficient float64 `yaml:"DissipationCoefficient" toml:"DissipationCoefficient"` // 42
	DissipationPower       float64 `yaml:"DissipationPower" toml:"DissipationPower"`             // Exponent on the saturation spectrum, 2.4
	ExpGrowthFactor        float64 `yaml:"ExpGrowthFactor" toml:"ExpGrowthFactor"`               // Largest exponent change allowed per sub-step, 0.1
	Current                float64 `yaml:"Current" toml:"Current"`                               // Surface current subtracted from the wind, m/s
	ParallelDegree         int     `yaml:"ParallelDegree" toml:"ParallelDegree"`                 // Spatial partitions used to evaluate source terms, 1 is sequential
	types.PhysicalConstants
}

func DefaultCoefficients() Coefficients {
	return Coefficients{
		ShelteringCoefficient:  0.11,
		MSSCoefficient:         120,
		SnlCoefficient:         1,
		DissipationCoefficient: 42,
		DissipationPower:       2.4,
		ExpGrowthFactor:        0.1,
		Current:                0,
		ParallelDegree:         1,
		PhysicalConstants:      types.DefaultPhysicalConstants(),
	}
}

// Validate reports coefficient values that cannot produce a meaningful run.
func (co Coefficients) Validate() error {
	switch {
	case co.ExpGrowthFactor <= 0:
		return fmt.Errorf("ExpGrowthFactor must be positive, have %v", co.ExpGrowthFactor)
	case co.DissipationPower == 0:
		return fmt.Errorf("DissipationPower must be non zero")
	case co.Gravity <= 0 || co.WaterDensity <= 0:
		return fmt.Errorf("Gravity and WaterDensity must be positive, have %v, %v", co.Gravity, co.WaterDensity)
	case co.DispersionIterations < 0:
		return fmt.Errorf("DispersionIterations must not be negative, have %d", co.DispersionIterations)
	}
	return nil
}

func (co Coefficients) Print() {
	fmt.Printf("%8.5f\t\t= Sheltering Coefficient\n", co.ShelteringCoefficient)
	fmt.Printf("%8.5f\t\t= MSS Coefficient\n", co.MSSCoefficient)
	fmt.Printf("%8.5f\t\t= Snl Coefficient\n", co.SnlCoefficient)
	fmt.Printf("%8.5f\t\t= Dissipation Coefficient\n", co.DissipationCoefficient)
	fmt.Printf("%8.5f\t\t= Dissipation Power\n", co.DissipationPower)
	fmt.Printf("%8.5f\t\t= Exp Growth Factor\n", co.ExpGrowthFactor)
	fmt.Printf("%8.5f\t\t= Current\n", co.Current)
	fmt.Printf("[%d]\t\t\t= Parallel Degree\n", co.ParallelDegree)
}
