package checkful

import (
	"go/ast"
	"go/types"
	"maps"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/types/typeutil"

	"github.com/sirkon/checkful/internal/config"
)

// assertSig is the shape of one recognized assertion entry point:
// what it asserts and where its meaningful arguments sit.
type assertSig struct {
	typ        SigAssertType
	subject    int
	constraint int
}

type knownAssertFuncs struct {
	known map[packagedFunc]assertSig
	pass  *analysis.Pass
}

func newKnownAssertFuncs(pass *analysis.Pass, cfg *config.Config) *knownAssertFuncs {
	predefined := map[packagedFunc]assertSig{
		{pkgPath: "github.com/checkful/verify", name: "That"}:   {typ: SigAssertTypeThat, subject: 0, constraint: 1},
		{pkgPath: "github.com/checkful/verify", name: "NotNil"}: {typ: SigAssertTypeNotNil, subject: 0},
		{pkgPath: "github.com/checkful/verify", name: "True"}:   {typ: SigAssertTypeTrue, subject: 0},

		// Widely spread outside the verify world.
		{pkgPath: "github.com/stretchr/testify/require", name: "NotNil"}: {typ: SigAssertTypeNotNil, subject: 1},
		{pkgPath: "github.com/stretchr/testify/require", name: "True"}:   {typ: SigAssertTypeTrue, subject: 1},
	}

	custom := make(map[packagedFunc]assertSig)
	for _, a := range cfg.Assertions.That {
		custom[refFunc(a.Ref)] = assertSig{typ: SigAssertTypeThat, subject: a.Subject, constraint: a.Constraint}
	}
	for _, a := range cfg.Assertions.NotNil {
		custom[refFunc(a.Ref)] = assertSig{typ: SigAssertTypeNotNil, subject: a.Subject}
	}
	for _, a := range cfg.Assertions.True {
		custom[refFunc(a.Ref)] = assertSig{typ: SigAssertTypeTrue, subject: a.Subject}
	}

	// Merge custom and predefined defs.
	maps.Insert(custom, maps.All(predefined))

	return &knownAssertFuncs{known: custom, pass: pass}
}

// assertType checks whether the given call expression is a recognized
// assertion entry point.
func (c *knownAssertFuncs) assertType(call *ast.CallExpr) (assertSig, bool) {
	fn := callee(c.pass.TypesInfo, call)
	if fn == nil {
		return assertSig{}, false
	}

	sig, ok := c.known[*fn]
	return sig, ok
}

func refFunc(r config.Reference) packagedFunc {
	return packagedFunc{pkgPath: r.Package, name: r.Name}
}

// callee resolves a call to the declared function it invokes, nil for
// closures, conversions and other non-declared callees.
func callee(info *types.Info, call *ast.CallExpr) *packagedFunc {
	fn := typeutil.Callee(info, call)
	if fn == nil {
		// "Raw" closures and friends cannot be assertion entry points.
		return nil
	}

	fnType, ok := fn.(*types.Func)
	if !ok {
		return nil
	}

	pkg := fnType.Pkg()
	if pkg == nil {
		return nil
	}

	return &packagedFunc{pkgPath: pkg.Path(), name: fnType.Name()}
}
