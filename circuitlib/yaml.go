package circuitlib

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

type modelSpec struct {
	Name          string `yaml:"name"`
	Type          string `yaml:"type"`
	GateType      string `yaml:"gate_type,omitempty"`
	PassGateLogic string `yaml:"pass_gate_logic,omitempty"`
}

type librarySpec struct {
	Models []modelSpec `yaml:"models"`
}

// LoadFile reads a library from a YAML file. The returned library is sealed.
func LoadFile(path string) (*CircuitLibrary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading circuit library: %w", err)
	}

	lib, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	log.WithField("file", path).
		Debugf("loaded %d circuit models", lib.NumModels())

	return lib, nil
}

// Parse builds a sealed library from its YAML description:
//
//	models:
//	  - name: mux_tree
//	    type: mux
//	    pass_gate_logic: TGATE
//	  - name: TGATE
//	    type: pass_gate
//
// Pass gate references may point forward.
func Parse(data []byte) (*CircuitLibrary, error) {
	var spec librarySpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("parsing circuit library: %w", err)
	}

	lib := NewCircuitLibrary()

	for i, m := range spec.Models {
		if err := addModelSpec(lib, m); err != nil {
			return nil, fmt.Errorf("model #%d: %w", i, err)
		}
	}

	for _, m := range spec.Models {
		if m.PassGateLogic == "" {
			continue
		}

		passGate, found := lib.ModelByName(m.PassGateLogic)
		if !found {
			return nil, fmt.Errorf(
				"model %s: pass gate logic model %s does not exist",
				m.Name, m.PassGateLogic)
		}

		id, _ := lib.ModelByName(m.Name)
		lib.SetPassGateLogicModel(id, passGate)
	}

	lib.Seal()

	return lib, nil
}

func addModelSpec(lib *CircuitLibrary, m modelSpec) error {
	if m.Name == "" {
		return fmt.Errorf("missing name")
	}

	if _, found := lib.ModelByName(m.Name); found {
		return fmt.Errorf("duplicated model %s", m.Name)
	}

	kind, err := ParseModelKind(m.Type)
	if err != nil {
		return fmt.Errorf("model %s: %w", m.Name, err)
	}

	id := lib.AddModel(m.Name, kind)

	if kind == KindGate {
		gate, err := ParseGateKind(m.GateType)
		if err != nil {
			return fmt.Errorf("model %s: %w", m.Name, err)
		}

		lib.SetGateType(id, gate)
	} else if m.GateType != "" {
		return fmt.Errorf("model %s: gate_type given for a %s", m.Name, kind)
	}

	return nil
}
