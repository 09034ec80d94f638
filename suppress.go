package checkful

import (
	"go/ast"
	"go/token"
	"go/types"

	"github.com/sirkon/checkful/internal/config"
	"github.com/sirkon/checkful/internal/gosyntax"
	"github.com/sirkon/checkful/internal/nilguard"
)

// Suppressor decides whether possibly-nil advisories produced by other
// analyzers are already guarded by a preceding assertion and should be
// withheld. It is stateless across files; per-file state lives in the
// [FileSuppressor] values it hands out.
type Suppressor struct {
	catalog nilguard.Catalog
	scopes  *knownScopeFuncs
}

// NewSuppressor is the [Suppressor] constructor.
func NewSuppressor(cfg *config.Config) *Suppressor {
	return &Suppressor{
		catalog: cfg.Catalog(),
		scopes:  newKnownScopeFuncs(cfg),
	}
}

// File prepares suppression machinery for one parsed file.
func (s *Suppressor) File(info *types.Info, file *ast.File) *FileSuppressor {
	oracle := gosyntax.NewStmtOracle(file, s.scopes.isSoftScopeCall(info))

	return &FileSuppressor{
		idx:       gosyntax.NewSpanIndex(file),
		oracle:    oracle,
		heuristic: nilguard.NewHeuristic(oracle, s.catalog),
	}
}

// FileSuppressor judges advisory positions within one file.
type FileSuppressor struct {
	idx       *gosyntax.SpanIndex
	oracle    *gosyntax.StmtOracle
	heuristic *nilguard.Heuristic
}

// ShouldSuppress reports whether the advisory anchored at pos is
// proven safe by a preceding assertion. Positions that resolve to no
// statement or no expression keep their advisory.
func (f *FileSuppressor) ShouldSuppress(pos token.Pos) bool {
	site, ok := f.oracle.SiteAt(f.idx, pos)
	if !ok {
		return false
	}

	return f.heuristic.ShouldSuppress(site)
}
