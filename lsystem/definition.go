package lsystem

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/scottkirkwood/fract"
)

// Definition is a complete, serializable description of an L-system and
// how to draw it. Rules are keyed by single-symbol strings so they read
// naturally in YAML.
type Definition struct {
	Name      string            `yaml:"name"`
	Axiom     string            `yaml:"axiom"`
	Rules     map[string]string `yaml:"rules"`
	Level     int               `yaml:"level"`
	Length    float64           `yaml:"length"`
	InitAngle float64           `yaml:"init_angle"` // degrees from the positive x axis
	Angle     float64           `yaml:"angle"`      // degrees per turn
}

// RuneRules converts the string-keyed rule map to Rules. Every key must
// be a single symbol.
func (d Definition) RuneRules() (Rules, error) {
	rules := make(Rules, len(d.Rules))
	for key, repl := range d.Rules {
		runes := []rune(key)
		if len(runes) != 1 {
			return nil, fmt.Errorf("rule key %q is not a single symbol", key)
		}
		rules[runes[0]] = repl
	}
	return rules, nil
}

// Points expands the definition at the given level, filters the result to
// the drawing alphabet and interprets it as a polyline.
func (d Definition) Points(level int) (fract.PointSequence, error) {
	rules, err := d.RuneRules()
	if err != nil {
		return fract.PointSequence{}, err
	}
	expanded, err := Expand(level, d.Axiom, rules)
	if err != nil {
		return fract.PointSequence{}, err
	}
	return Interpret(d.InitAngle, d.Angle, d.Length, FilterDrawable(expanded)), nil
}

// Parse decodes a YAML definition. A missing length defaults to one step
// unit; a missing axiom is an error.
func Parse(data []byte) (Definition, error) {
	var d Definition
	if err := yaml.Unmarshal(data, &d); err != nil {
		return Definition{}, fmt.Errorf("parsing definition: %w", err)
	}
	if d.Axiom == "" {
		return Definition{}, fmt.Errorf("definition %q has no axiom", d.Name)
	}
	if d.Length == 0 {
		d.Length = 1
	}
	if _, err := d.RuneRules(); err != nil {
		return Definition{}, err
	}
	return d, nil
}

// LoadFile reads and decodes a YAML definition file.
func LoadFile(path string) (Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Definition{}, err
	}
	return Parse(data)
}
