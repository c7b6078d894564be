package rulesfile

import (
	"errors"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/statekit"
)

// File is a parsed transition rules document.
type File struct {
	Field  string              `yaml:"field"`
	States []string            `yaml:"states"`
	Rules  map[string]RuleDecl `yaml:"rules"`
}

// RuleDecl is the declaration of constraints for one target state.
type RuleDecl struct {
	From []string `yaml:"from"`
	If   string   `yaml:"if"`
}

// Parse reads a rules document from r. Unknown keys are rejected to catch
// declaration typos early.
func Parse(r io.Reader) (*File, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f File
	if err := dec.Decode(&f); err != nil {
		return nil, errors.Join(ErrInvalidFile, err)
	}
	if f.Field == "" {
		return nil, errors.Join(ErrInvalidFile, ErrFieldRequired)
	}
	if len(f.States) == 0 {
		return nil, errors.Join(ErrInvalidFile, ErrStatesRequired)
	}
	return &f, nil
}

// Load reads and parses the rules document at path.
func Load(path string) (*File, error) {
	r, err := os.Open(path)
	if err != nil {
		return nil, errors.Join(ErrInvalidFile, err)
	}
	defer r.Close()
	return Parse(r)
}

// Build constructs a statekit rule table from the parsed document.
//
// Guard names declared with if are looked up in guards first; a match
// becomes a direct guard on the rule. Names with no registry entry are kept
// as named guards and resolved on the entity at evaluation time, so entities
// implementing statekit.GuardResolver need no registry at all.
func Build[E any](f *File, guards map[string]statekit.Guard[E], opts ...statekit.Option) (*statekit.Table[string, E], error) {
	rules := make(map[string]statekit.Rule[string, E], len(f.Rules))
	for target, decl := range f.Rules {
		rule := statekit.Rule[string, E]{From: decl.From}
		if decl.If != "" {
			if g, ok := guards[decl.If]; ok {
				rule.If = g
			} else {
				rule.IfNamed = decl.If
			}
		}
		rules[target] = rule
	}
	return statekit.New(f.Field, f.States, rules, opts...)
}
