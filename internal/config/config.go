// Package config holds the user-tunable vocabulary of checkful: which
// constraint library to recognize, what its assertion entry points
// look like, and what counts as known-safe or soft-assert scoped.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/sirkon/checkful/internal/compare"
	"github.com/sirkon/checkful/internal/nilguard"
)

// AssertRef binds an assertion function reference to the positions of
// its meaningful arguments.
type AssertRef struct {
	Ref Reference `yaml:"ref"`

	// Subject is the index of the asserted value argument.
	Subject int `yaml:"subject"`

	// Constraint is the index of the optional constraint argument.
	// Only meaningful for generic entry points.
	Constraint int `yaml:"constraint"`
}

// Config is the full configuration surface.
type Config struct {
	Library struct {
		// Package is the import path of the constraint library.
		Package string `yaml:"package"`

		// ConstraintType is the package-local name of the constraint
		// value type chains produce.
		ConstraintType string `yaml:"constraint_type"`

		// Anchors lists bare namespace-style entry identifiers (Is,
		// Has, Does) that may lead a chain without carrying meaning.
		Anchors []string `yaml:"anchors"`
	} `yaml:"library"`

	// Operators maps chain member names to ordering operators.
	Operators map[string]compare.Operator `yaml:"operators"`

	// Negation is the only prefix modifier that keeps ordering checks
	// applicable.
	Negation string `yaml:"negation"`

	// Comparers lists suffix member names carrying caller-defined
	// comparison semantics.
	Comparers []string `yaml:"comparers"`

	Assertions struct {
		That   []AssertRef `yaml:"that"`
		NotNil []AssertRef `yaml:"not_nil"`
		True   []AssertRef `yaml:"is_true"`
	} `yaml:"assertions"`

	Suppression struct {
		KnownSafe    []Reference `yaml:"known_safe"`
		SoftScopes   []Reference `yaml:"soft_scopes"`
		NilMarkers   []string    `yaml:"nil_markers"`
		FalseMarkers []string    `yaml:"false_markers"`
		ValueProbe   string      `yaml:"value_probe"`
	} `yaml:"suppression"`
}

// Default is the stock configuration covering the verify library and
// common testify require forms.
func Default() *Config {
	var cfg Config

	cfg.Library.Package = "github.com/checkful/verify"
	cfg.Library.ConstraintType = "Constraint"
	cfg.Library.Anchors = []string{"Is", "Has", "Does"}

	cfg.Operators = compare.DefaultOperators()
	cfg.Negation = "Not"
	cfg.Comparers = []string{"Using"}

	cfg.Assertions.That = []AssertRef{
		{Ref: Reference{Package: cfg.Library.Package, Name: "That"}, Subject: 0, Constraint: 1},
	}
	cfg.Assertions.NotNil = []AssertRef{
		{Ref: Reference{Package: cfg.Library.Package, Name: "NotNil"}, Subject: 0},
		{Ref: Reference{Package: "github.com/stretchr/testify/require", Name: "NotNil"}, Subject: 1},
	}
	cfg.Assertions.True = []AssertRef{
		{Ref: Reference{Package: cfg.Library.Package, Name: "True"}, Subject: 0},
		{Ref: Reference{Package: "github.com/stretchr/testify/require", Name: "True"}, Subject: 1},
	}

	cfg.Suppression.KnownSafe = []Reference{
		{Package: cfg.Library.Package, Name: "NotNilValue"},
	}
	cfg.Suppression.SoftScopes = []Reference{
		{Package: cfg.Library.Package, Name: "Group"},
	}
	cfg.Suppression.NilMarkers = []string{"verify.Is.Nil", "verify.Is.Nil()"}
	cfg.Suppression.FalseMarkers = []string{"verify.Is.False", "verify.Is.False()"}
	cfg.Suppression.ValueProbe = ".HasValue"

	return &cfg
}

// Load reads a YAML configuration over the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return nil, fmt.Errorf("parse config file %s: %w", path, err)
	}

	return cfg, nil
}

// Catalog projects the configuration into the nilguard vocabulary.
func (c *Config) Catalog() nilguard.Catalog {
	cat := nilguard.Catalog{
		NilMarkers:   c.Suppression.NilMarkers,
		FalseMarkers: c.Suppression.FalseMarkers,
		ValueProbe:   c.Suppression.ValueProbe,
	}

	for _, a := range c.Assertions.That {
		cat.That = append(cat.That, nilguard.GenericForm{
			Callee:     a.Ref.LocalText(),
			Subject:    a.Subject,
			Constraint: a.Constraint,
		})
	}
	for _, a := range c.Assertions.NotNil {
		cat.NotNil = append(cat.NotNil, nilguard.SubjectForm{
			Callee:  a.Ref.LocalText(),
			Subject: a.Subject,
		})
	}
	for _, a := range c.Assertions.True {
		cat.True = append(cat.True, nilguard.SubjectForm{
			Callee:  a.Ref.LocalText(),
			Subject: a.Subject,
		})
	}
	for _, r := range c.Suppression.KnownSafe {
		cat.KnownSafe = append(cat.KnownSafe, r.LocalText())
	}

	return cat
}

// CompareOptions projects the configuration into checker options.
func (c *Config) CompareOptions() compare.Options {
	return compare.Options{
		Operators: c.Operators,
		Negation:  c.Negation,
		Comparers: c.Comparers,
	}
}
