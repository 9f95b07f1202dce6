package config

import (
	"fmt"
	"os"

	"sigs.k8s.io/yaml"

	"github.com/evolab-go/evolab/pkg/framework"
	"github.com/evolab-go/evolab/pkg/survival"
)

// File is the on-disk representation of a run's configuration, shared across
// every algorithm so a single YAML document can be round-tripped through
// whichever Build* function matches its Algorithm field.
type File struct {
	Algorithm       string      `json:"algorithm"`
	PopSize         int         `json:"popSize"`
	NumOffsprings   int         `json:"numOffsprings,omitempty"`
	NumGenerations  int         `json:"numGenerations"`
	Bounds          []boundsDoc `json:"bounds"`
	NumObjectives   int         `json:"numObjectives"`
	NumConstraints  int         `json:"numConstraints"`
	KeepInfeasible  bool        `json:"keepInfeasible,omitempty"`
	Divisions       int         `json:"divisions,omitempty"`
	ReferencePoints [][]float64 `json:"referencePoints,omitempty"`
	Epsilon         float64     `json:"epsilon,omitempty"`
	K               int         `json:"k,omitempty"`
	Alpha           float64     `json:"alpha,omitempty"`
	RefreshEvery    int         `json:"refreshEvery,omitempty"`
	ReferenceOffset float64     `json:"referenceOffset,omitempty"`
	Kappa           float64     `json:"kappa,omitempty"`
}

type boundsDoc struct {
	L float64 `json:"l"`
	H float64 `json:"h"`
}

// LoadFile parses a YAML configuration document from path. sigs.k8s.io/yaml
// round-trips through JSON so File's json tags govern both formats.
func LoadFile(path string) (*File, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var f File
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, err
	}
	return &f, nil
}

func (f *File) common() Common {
	bounds := make([]framework.Bounds, len(f.Bounds))
	for i, b := range f.Bounds {
		bounds[i] = framework.Bounds{L: b.L, H: b.H}
	}
	return Common{
		PopSize:        f.PopSize,
		NumOffsprings:  f.NumOffsprings,
		NumGenerations: f.NumGenerations,
		Bounds:         bounds,
		NumObjectives:  f.NumObjectives,
		NumConstraints: f.NumConstraints,
		KeepInfeasible: f.KeepInfeasible,
	}
}

// Build dispatches to the Build* function matching f.Algorithm, returning
// the same survival.Operator a caller would get from constructing the
// matching Config by hand. REVEA's extra reference-vector return value is
// discarded here; the returned REVEA operator still carries its reference
// vectors, and driver.Run refreshes them on schedule.
func (f *File) Build() (survival.Operator, error) {
	common := f.common()
	switch f.Algorithm {
	case "nsga2":
		return BuildNSGA2(NSGA2Config{Common: common})
	case "nsga3":
		return BuildNSGA3(NSGA3Config{Common: common, Divisions: f.Divisions})
	case "rnsga2":
		return BuildRNSGA2(RNSGA2Config{Common: common, ReferencePoints: f.ReferencePoints, Epsilon: f.Epsilon})
	case "agemoea":
		return BuildAGEMOEA(AGEMOEAConfig{Common: common})
	case "spea2":
		return BuildSPEA2(SPEA2Config{Common: common, K: f.K})
	case "revea":
		op, _, err := BuildREVEA(REVEAConfig{Common: common, Divisions: f.Divisions, Alpha: f.Alpha, RefreshEvery: f.RefreshEvery})
		return op, err
	case "ibeahv":
		return BuildIBEAHV(IBEAHVConfig{Common: common, ReferenceOffset: f.ReferenceOffset, Kappa: f.Kappa})
	default:
		return nil, fmt.Errorf("unknown algorithm %q", f.Algorithm)
	}
}
