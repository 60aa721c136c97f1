package pbtype

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

type portSpec struct {
	Name  string `yaml:"name"`
	Type  string `yaml:"type"`
	Width int    `yaml:"width"`
}

type modeSpec struct {
	Name     string      `yaml:"name"`
	Children []blockSpec `yaml:"children"`
}

type blockSpec struct {
	Name  string     `yaml:"name"`
	Ports []portSpec `yaml:"ports"`
	Modes []modeSpec `yaml:"modes"`
}

type archSpec struct {
	Blocks []blockSpec `yaml:"pb_types"`
}

// LoadFile reads the physical block trees of an architecture from a YAML
// file.
func LoadFile(path string) (*Arena, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading architecture: %w", err)
	}

	a, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	log.WithField("file", path).
		Debugf("loaded %d physical blocks", a.NumBlocks())

	return a, nil
}

// Parse builds an arena from a YAML description:
//
//	pb_types:
//	  - name: clb
//	    ports:
//	      - {name: I, type: input, width: 40}
//	    modes:
//	      - name: default
//	        children:
//	          - name: fle
func Parse(data []byte) (*Arena, error) {
	var spec archSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("parsing architecture: %w", err)
	}

	a := NewArena()
	seen := make(map[string]bool)

	for _, b := range spec.Blocks {
		if seen[b.Name] {
			return nil, fmt.Errorf("duplicated top-level block %s", b.Name)
		}

		seen[b.Name] = true

		if err := validateBlock(b, b.Name); err != nil {
			return nil, err
		}

		id := a.AddRoot(b.Name)
		if err := a.fill(id, b); err != nil {
			return nil, err
		}
	}

	return a, nil
}

// validateBlock checks a block subtree before it reaches the arena, so that
// malformed input files are reported as errors instead of panics.
func validateBlock(b blockSpec, path string) error {
	if b.Name == "" {
		return fmt.Errorf("%s: block without a name", path)
	}

	for _, p := range b.Ports {
		if p.Name == "" {
			return fmt.Errorf("%s: port without a name", path)
		}

		if p.Width <= 0 {
			return fmt.Errorf("%s.%s: width must be positive", path, p.Name)
		}
	}

	modes := make(map[string]bool)

	for _, m := range b.Modes {
		if m.Name == "" {
			return fmt.Errorf("%s: mode without a name", path)
		}

		if modes[m.Name] {
			return fmt.Errorf("%s: duplicated mode %s", path, m.Name)
		}

		modes[m.Name] = true
		children := make(map[string]bool)

		for _, c := range m.Children {
			if children[c.Name] {
				return fmt.Errorf("%s[%s]: duplicated block %s",
					path, m.Name, c.Name)
			}

			children[c.Name] = true

			childPath := path + "[" + m.Name + "]." + c.Name
			if err := validateBlock(c, childPath); err != nil {
				return err
			}
		}
	}

	return nil
}

func (a *Arena) fill(id BlockID, b blockSpec) error {
	for _, p := range b.Ports {
		typ, err := parsePortType(p.Type)
		if err != nil {
			return fmt.Errorf("%s.%s: %w", b.Name, p.Name, err)
		}

		a.AddPort(id, p.Name, typ, p.Width)
	}

	for _, m := range b.Modes {
		modeID := a.AddMode(id, m.Name)

		for _, c := range m.Children {
			childID := a.AddChild(modeID, c.Name)
			if err := a.fill(childID, c); err != nil {
				return err
			}
		}
	}

	return nil
}

func parsePortType(name string) (PortType, error) {
	switch name {
	case "input", "":
		return PortInput, nil
	case "output":
		return PortOutput, nil
	case "clock":
		return PortClock, nil
	default:
		return PortInput, fmt.Errorf("unknown port type %q", name)
	}
}
