package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sirkon/checkful/internal/compare"
)

func TestLoadOverDefaults(t *testing.T) {
	src := `
library:
  package: github.com/acme/expect
  constraint_type: Matcher
  anchors: [Be]
negation: Negate
comparers: [With, Using]
suppression:
  value_probe: .Present
  known_safe:
    - '"github.com/acme/expect".Fresh'
`

	path := filepath.Join(t.TempDir(), "checkful.yaml")
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "github.com/acme/expect", cfg.Library.Package)
	assert.Equal(t, "Matcher", cfg.Library.ConstraintType)
	assert.Equal(t, []string{"Be"}, cfg.Library.Anchors)
	assert.Equal(t, "Negate", cfg.Negation)
	assert.Equal(t, []string{"With", "Using"}, cfg.Comparers)
	assert.Equal(t, ".Present", cfg.Suppression.ValueProbe)
	assert.Equal(t, []Reference{{Package: "github.com/acme/expect", Name: "Fresh"}}, cfg.Suppression.KnownSafe)

	// Untouched sections keep their defaults.
	assert.Equal(t, compare.DefaultOperators(), cfg.Operators)
	assert.NotEmpty(t, cfg.Assertions.NotNil)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("library: ["), 0o644))
	_, err = Load(path)
	assert.Error(t, err)
}

func TestDefaultCatalogProjection(t *testing.T) {
	cat := Default().Catalog()

	require.NotEmpty(t, cat.That)
	assert.Equal(t, "verify.That", cat.That[0].Callee)
	assert.Equal(t, 0, cat.That[0].Subject)
	assert.Equal(t, 1, cat.That[0].Constraint)

	var notNil []string
	for _, f := range cat.NotNil {
		notNil = append(notNil, f.Callee)
	}
	assert.Equal(t, []string{"verify.NotNil", "require.NotNil"}, notNil)

	var isTrue []string
	for _, f := range cat.True {
		isTrue = append(isTrue, f.Callee)
	}
	assert.Equal(t, []string{"verify.True", "require.True"}, isTrue)

	assert.Equal(t, []string{"verify.NotNilValue"}, cat.KnownSafe)
	assert.Equal(t, ".HasValue", cat.ValueProbe)
	assert.Contains(t, cat.NilMarkers, "verify.Is.Nil")
	assert.Contains(t, cat.FalseMarkers, "verify.Is.False")
}

func TestCompareOptionsProjection(t *testing.T) {
	cfg := Default()
	opts := cfg.CompareOptions()

	assert.Equal(t, cfg.Operators, opts.Operators)
	assert.Equal(t, "Not", opts.Negation)
	assert.Equal(t, []string{"Using"}, opts.Comparers)
}
