package main

import (
	"fmt"
	"go/ast"
	"go/token"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/checker"
	"golang.org/x/tools/go/analysis/passes/nilness"
	"golang.org/x/tools/go/packages"

	"github.com/sirkon/checkful"
	"github.com/sirkon/checkful/internal/chainrules"
	"github.com/sirkon/checkful/internal/config"
	"github.com/sirkon/checkful/internal/report"
)

func runLint(cmd *cobra.Command, args []string) error {
	configPath, _ := cmd.Flags().GetString("config")
	showSuppressed, _ := cmd.Flags().GetBool("show-suppressed")
	noNilness, _ := cmd.Flags().GetBool("no-nilness")

	cfg := config.Default()
	if configPath != "" {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
	}

	loadCfg := &packages.Config{
		Context: cmd.Context(),
		Mode: packages.NeedName | packages.NeedFiles | packages.NeedCompiledGoFiles |
			packages.NeedImports | packages.NeedDeps | packages.NeedTypes |
			packages.NeedSyntax | packages.NeedTypesInfo | packages.NeedTypesSizes,
	}
	pkgs, err := packages.Load(loadCfg, args...)
	if err != nil {
		return fmt.Errorf("load packages: %w", err)
	}
	if packages.PrintErrors(pkgs) > 0 {
		return fmt.Errorf("packages contain errors")
	}

	analyzers := []*analysis.Analyzer{checkful.Analyzer}
	if !noNilness {
		analyzers = append(analyzers, nilness.Analyzer)
	}

	graph, err := checker.Analyze(analyzers, pkgs, nil)
	if err != nil {
		return fmt.Errorf("run analyzers: %w", err)
	}

	coll := &collector{
		suppressor: checkful.NewSuppressor(cfg),
		files:      make(map[*ast.File]*checkful.FileSuppressor),
	}
	for _, act := range graph.Roots {
		for _, diag := range act.Diagnostics {
			if err := cmd.Context().Err(); err != nil {
				return err
			}
			coll.collect(act, diag)
		}
	}

	printSummary(&coll.engine, pkgs, showSuppressed)

	return nil
}

// collector routes raw diagnostics into the report engine, applying
// the suppression heuristic to possibly-nil advisories. Per-file
// suppression state is built once and reused across diagnostics.
type collector struct {
	engine     report.Engine
	suppressor *checkful.Suppressor
	files      map[*ast.File]*checkful.FileSuppressor
}

func (c *collector) collect(act *checker.Action, diag analysis.Diagnostic) {
	switch act.Analyzer.Name {
	case "nilness":
		rule := chainrules.PossiblyNilDereference()
		if fs := c.fileSuppressor(act.Package, diag.Pos); fs != nil && fs.ShouldSuppress(diag.Pos) {
			rule = chainrules.GuardedNilDereference()
		}
		c.engine.Phase(report.PhaseSuppress).Report(rule, diag.Message, diag.Pos)

	default:
		c.engine.Phase(report.PhaseCompare).Report(chainrules.IncomparableOrdering(), diag.Message, diag.Pos)
	}
}

func (c *collector) fileSuppressor(pkg *packages.Package, pos token.Pos) *checkful.FileSuppressor {
	file := fileOf(pkg, pos)
	if file == nil {
		return nil
	}

	fs, ok := c.files[file]
	if !ok {
		fs = c.suppressor.File(pkg.TypesInfo, file)
		c.files[file] = fs
	}
	return fs
}

func fileOf(pkg *packages.Package, pos token.Pos) *ast.File {
	for _, f := range pkg.Syntax {
		if f.FileStart <= pos && pos < f.FileEnd {
			return f
		}
	}
	return nil
}

func printSummary(engine *report.Engine, pkgs []*packages.Package, showSuppressed bool) {
	var fset *token.FileSet
	if len(pkgs) > 0 {
		fset = pkgs[0].Fset
	} else {
		fset = token.NewFileSet()
	}

	warn := color.New(color.FgRed)
	muted := color.New(color.FgHiBlack)

	for _, rep := range engine.Reports() {
		pos := fset.Position(rep.Pos)

		switch rep.RuleCode {
		case chainrules.GuardedNilDereference():
			if !showSuppressed {
				continue
			}
			muted.Printf("%s:%d: [%s] %s (suppressed)\n", pos.Filename, pos.Line, rep.RuleCode, rep.Message)

		default:
			warn.Printf("%s:%d: [%s] %s\n", pos.Filename, pos.Line, rep.RuleCode, rep.Message)
		}
	}
}
