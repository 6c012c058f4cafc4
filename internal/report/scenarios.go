// Package report turns list-update results into a human readable report.
package report

import (
	_ "embed"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

const (
	AlgorithmMTF  = "mtf"
	AlgorithmIMTF = "imtf"
)

var (
	ErrUnknownAlgorithm = errors.New("report: unknown algorithm")
	ErrDuplicateElement = errors.New("report: duplicate element in configuration")
	ErrNegativeLength   = errors.New("report: negative sequence length")
)

//go:embed scenarios.yaml
var defaultScenarios []byte

type Scenario struct {
	Name      string `yaml:"name"`
	Algorithm string `yaml:"algorithm"`
	Initial   []int  `yaml:"initial,omitempty"`
	Sequence  []int  `yaml:"sequence"`
	// print every access, not just the total
	Verbose bool `yaml:"verbose,omitempty"`
}

type Document struct {
	Initial []int `yaml:"initial"`
	// length of the best and worst case sequences
	Length    int        `yaml:"length"`
	Scenarios []Scenario `yaml:"scenarios"`
}

// Default returns the demonstration scenarios shipped with the binary.
func Default() (*Document, error) {
	return Load(defaultScenarios)
}

// Load parses and validates a YAML scenario document. Scenarios without
// their own initial configuration inherit the document's.
func Load(data []byte) (*Document, error) {
	doc := new(Document)
	if err := yaml.Unmarshal(data, doc); err != nil {
		return nil, fmt.Errorf("report: decoding scenarios: %w", err)
	}
	if err := checkDistinct(doc.Initial); err != nil {
		return nil, fmt.Errorf("%w (document)", err)
	}
	if doc.Length < 0 {
		return nil, fmt.Errorf("%w: %d (document)", ErrNegativeLength, doc.Length)
	}

	for i := range doc.Scenarios {
		scenario := &doc.Scenarios[i]
		if scenario.Name == "" {
			scenario.Name = fmt.Sprintf("scenario %d", i+1)
		}
		switch scenario.Algorithm {
		case AlgorithmMTF, AlgorithmIMTF:
		case "":
			scenario.Algorithm = AlgorithmMTF
		default:
			return nil, fmt.Errorf("%w %q (%s)", ErrUnknownAlgorithm, scenario.Algorithm, scenario.Name)
		}
		if scenario.Initial == nil {
			scenario.Initial = doc.Initial
		}
		if err := checkDistinct(scenario.Initial); err != nil {
			return nil, fmt.Errorf("%w (%s)", err, scenario.Name)
		}
	}
	return doc, nil
}

func checkDistinct(configuration []int) error {
	seen := make(map[int]struct{}, len(configuration))
	for _, element := range configuration {
		if _, exists := seen[element]; exists {
			return fmt.Errorf("%w: %d", ErrDuplicateElement, element)
		}
		seen[element] = struct{}{}
	}
	return nil
}
