package InputParameters

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/ghodss/yaml"

	"github.com/notargets/gowave/Grid1D"
	"github.com/notargets/gowave/model_problems/WaveGrowth1D"
	"github.com/notargets/gowave/source_terms"
	"github.com/notargets/gowave/types"
	"github.com/notargets/gowave/utils"
)

// Parameters obtained from the YAML or TOML input file. Fields missing from the file keep the
// values set by NewInputParameters1D.
type InputParameters1D struct {
	Title          string                    `yaml:"Title" toml:"Title"`
	FMin           float64                   `yaml:"FMin" toml:"FMin"`
	FMax           float64                   `yaml:"FMax" toml:"FMax"`
	NumFrequencies int                       `yaml:"NumFrequencies" toml:"NumFrequencies"`
	XMin           float64                   `yaml:"XMin" toml:"XMin"`
	XMax           float64                   `yaml:"XMax" toml:"XMax"`
	NumGridPoints  int                       `yaml:"NumGridPoints" toml:"NumGridPoints"`
	Depth          Expression                `yaml:"Depth" toml:"Depth"`         // Water depth as a function of x
	WindSpeed      Expression                `yaml:"WindSpeed" toml:"WindSpeed"` // Wind speed as a function of x
	Duration       float64                   `yaml:"Duration" toml:"Duration"`
	OutputInterval float64                   `yaml:"OutputInterval" toml:"OutputInterval"`
	InitType       string                    `yaml:"InitType" toml:"InitType"`
	InitWindSpeed  float64                   `yaml:"InitWindSpeed" toml:"InitWindSpeed"`
	Coefficients   source_terms.Coefficients `yaml:"Coefficients" toml:"Coefficients"`
}

func NewInputParameters1D() *InputParameters1D {
	return &InputParameters1D{
		Title:          "Wave growth over a 1D fetch",
		FMin:           0.1,
		FMax:           20,
		NumFrequencies: 50,
		XMin:           0,
		XMax:           10,
		NumGridPoints:  11,
		Depth:          "1000",
		WindSpeed:      "30",
		Duration:       60,
		OutputInterval: 1,
		InitType:       "balance",
		InitWindSpeed:  0.8,
		Coefficients:   source_terms.DefaultCoefficients(),
	}
}

func (ip *InputParameters1D) Parse(data []byte) error {
	return yaml.Unmarshal(data, ip)
}

func (ip *InputParameters1D) ParseTOML(data []byte) (err error) {
	_, err = toml.Decode(string(data), ip)
	return
}

// ParseFile reads TOML from files ending in .toml and YAML from anything else.
func (ip *InputParameters1D) ParseFile(fileName string) (err error) {
	var (
		data []byte
	)
	if data, err = os.ReadFile(fileName); err != nil {
		return fmt.Errorf("reading input file: %w", err)
	}
	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".toml":
		err = ip.ParseTOML(data)
	default:
		err = ip.Parse(data)
	}
	if err != nil {
		return fmt.Errorf("parsing input file %s: %w", fileName, err)
	}
	return
}

func (ip *InputParameters1D) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", ip.Title)
	fmt.Printf("[%8.5f, %8.5f]\t= Frequency Range (Hz)\n", ip.FMin, ip.FMax)
	fmt.Printf("[%d]\t\t\t\t= Num Frequencies\n", ip.NumFrequencies)
	fmt.Printf("[%8.5f, %8.5f]\t= Domain (m)\n", ip.XMin, ip.XMax)
	fmt.Printf("[%d]\t\t\t\t= Num Grid Points\n", ip.NumGridPoints)
	fmt.Printf("[%s]\t\t\t= Depth(x)\n", ip.Depth)
	fmt.Printf("[%s]\t\t\t= WindSpeed(x)\n", ip.WindSpeed)
	fmt.Printf("%8.5f\t\t= Duration\n", ip.Duration)
	fmt.Printf("%8.5f\t\t= Output Interval\n", ip.OutputInterval)
	fmt.Printf("[%s]\t\t\t= InitType\n", ip.InitType)
	fmt.Printf("%8.5f\t\t= Init Wind Speed\n", ip.InitWindSpeed)
	ip.Coefficients.Print()
}

// Grid evaluates the depth expression over the spatial points and builds the grid.
func (ip *InputParameters1D) Grid() (g *Grid1D.Grid1D, err error) {
	if ip.NumGridPoints < 2 {
		err = fmt.Errorf("need at least 2 grid points, have %d", ip.NumGridPoints)
		return
	}
	var (
		x     = utils.NewVector(ip.NumGridPoints).Linspace(ip.XMin, ip.XMax)
		depth []float64
	)
	if depth, err = EvaluateProfile(string(ip.Depth), x.Data()); err != nil {
		err = fmt.Errorf("depth: %w", err)
		return
	}
	g, err = Grid1D.NewGrid1D(ip.FMin, ip.FMax, ip.NumFrequencies, ip.XMin, ip.XMax, ip.NumGridPoints, depth)
	return
}

// WindProfile evaluates the wind speed expression at each spatial point of g.
func (ip *InputParameters1D) WindProfile(g *Grid1D.Grid1D) (U utils.Vector, err error) {
	var (
		wind []float64
	)
	if wind, err = EvaluateProfile(string(ip.WindSpeed), g.XCoords.Data()); err != nil {
		err = fmt.Errorf("wind speed: %w", err)
		return
	}
	U = utils.NewVector(len(wind), wind)
	return
}

func (ip *InputParameters1D) InitConfig() (init WaveGrowth1D.InitConfig, err error) {
	var (
		it types.InitType
	)
	if it, err = types.NewInitType(ip.InitType); err != nil {
		return
	}
	init = WaveGrowth1D.DefaultInitConfig()
	init.Type = it
	init.WindSpeed = ip.InitWindSpeed
	return
}
