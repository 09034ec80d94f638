package checkful

import (
	"go/ast"
	"go/types"
	"maps"

	"github.com/sirkon/checkful/internal/config"
)

// Some assertion libraries provide grouped ("soft") assertion scopes:
// every assertion failure inside is collected and reported at the end
// of the group instead of aborting the test right away. An assertion
// inside such a scope therefore proves nothing about the statements
// following it.
type knownScopeFuncs struct {
	known map[packagedFunc]SigScopeType
}

func newKnownScopeFuncs(cfg *config.Config) *knownScopeFuncs {
	predefined := map[packagedFunc]SigScopeType{
		{pkgPath: "github.com/checkful/verify", name: "Group"}: SigScopeTypeSoft,
	}

	custom := make(map[packagedFunc]SigScopeType)
	for _, r := range cfg.Suppression.SoftScopes {
		custom[refFunc(r)] = SigScopeTypeSoft
	}

	maps.Insert(custom, maps.All(predefined))

	return &knownScopeFuncs{known: custom}
}

// isSoftScopeCall checks whether the given call opens a soft-assert
// scope over its function literal arguments.
func (c *knownScopeFuncs) isSoftScopeCall(info *types.Info) func(*ast.CallExpr) bool {
	return func(call *ast.CallExpr) bool {
		fn := callee(info, call)
		if fn == nil {
			return false
		}
		return c.known[*fn] == SigScopeTypeSoft
	}
}
