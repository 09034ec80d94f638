// Package checkful is a linter for fluent assertion chains: it checks
// that ordering constraints compare mutually comparable types, and it
// decides when possibly-nil advisories are already guarded by a
// preceding assertion.
package checkful

import (
	"fmt"
	"go/ast"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"

	"github.com/sirkon/checkful/internal/chain"
	"github.com/sirkon/checkful/internal/compare"
	"github.com/sirkon/checkful/internal/config"
	"github.com/sirkon/checkful/internal/gosyntax"
)

const doc = `checkful checks that fluent ordering constraints compare mutually comparable types`

// Analyzer is the main entry point for the linter.
var Analyzer = &analysis.Analyzer{
	Name:     "checkful",
	Doc:      doc,
	Requires: []*analysis.Analyzer{inspect.Analyzer},
	Run:      run,
}

var configPath string

func init() {
	Analyzer.Flags.StringVar(&configPath, "config", "", "path to a checkful YAML config")
}

func loadConfig() (*config.Config, error) {
	if configPath == "" {
		return config.Default(), nil
	}
	return config.Load(configPath)
}

func run(pass *analysis.Pass) (any, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}

	oracle := gosyntax.NewTypeOracle(cfg.Library.Package, cfg.Library.ConstraintType)
	classifier := chain.NewClassifier(oracle)
	checker := compare.NewChecker(oracle, cfg.CompareOptions())
	asserts := newKnownAssertFuncs(pass, cfg)

	pector := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)

	nodeFilter := []ast.Node{
		(*ast.CallExpr)(nil),
	}

	pector.Preorder(nodeFilter, func(node ast.Node) {
		call := node.(*ast.CallExpr) // No need to assert check since we only get call exprs.

		sig, ok := asserts.assertType(call)
		if !ok || sig.typ != SigAssertTypeThat {
			return
		}
		if sig.constraint >= len(call.Args) || sig.subject >= len(call.Args) {
			// No constraint expression — nothing to classify.
			return
		}

		checkOrdering(pass, oracle, classifier, checker, call.Args[sig.subject], call.Args[sig.constraint])
	})

	return nil, nil
}

// checkOrdering splits the constraint expression into chain links and
// reports when an ordering constraint compares incomparable types.
// Any loss of certainty along the way resolves to "no finding".
func checkOrdering(
	pass *analysis.Pass,
	oracle *gosyntax.TypeOracle,
	classifier *chain.Classifier,
	checker *compare.Checker,
	actualExpr ast.Expr,
	constraintExpr ast.Expr,
) {
	flat := gosyntax.Flatten(pass.TypesInfo, constraintExpr, oracle)
	if classifier.Unanalyzable(flat.Links) {
		return
	}

	part := classifier.Classify(flat.Links)
	if !part.Analyzable() {
		return
	}

	op, ok := checker.Applicable(part)
	if !ok {
		return
	}

	rootCall, ok := flat.CallOf(*part.Root)
	if !ok || len(rootCall.Args) == 0 {
		return
	}
	expectedExpr := rootCall.Args[0]

	actual := oracle.Descriptor(pass.TypesInfo.TypeOf(actualExpr))
	expected := oracle.Descriptor(pass.TypesInfo.TypeOf(expectedExpr))
	if actual.IsZero() || expected.IsZero() {
		return
	}

	if checker.CanCompare(actual, expected) {
		return
	}

	pass.Report(analysis.Diagnostic{
		Pos:      expectedExpr.Pos(),
		End:      expectedExpr.End(),
		Category: "ordering",
		Message: fmt.Sprintf(
			"operands of %s must be mutually comparable: %s vs %s",
			op, actual.Unwrap().Name, expected.Unwrap().Name,
		),
	})
}
