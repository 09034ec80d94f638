package chain

import (
	"reflect"
	"testing"

	"github.com/sirkon/deepequal"

	"github.com/sirkon/checkful/internal/syntax"
)

const testLibPkg = "github.com/checkful/verify"

type fakeOracle struct{}

func (fakeOracle) IsConstraintType(t syntax.Type) bool {
	return t.Unwrap().Name == testLibPkg+".Constraint"
}

func (fakeOracle) IsAnchorSymbol(sym *syntax.Symbol) bool {
	return sym != nil && sym.Package == testLibPkg
}

func anchorLink(name string) syntax.Link {
	return syntax.Link{
		Kind: syntax.LinkIdent,
		Name: name,
		Sym: &syntax.Symbol{
			Package: testLibPkg,
			Name:    name,
			Kind:    syntax.SymbolType,
		},
	}
}

func memberLink(name, ret string) syntax.Link {
	return syntax.Link{
		Kind: syntax.LinkMember,
		Name: name,
		Sym: &syntax.Symbol{
			Package: testLibPkg,
			Name:    name,
			Kind:    syntax.SymbolProperty,
			Result:  syntax.Type{Name: ret},
		},
	}
}

func callLink(name, ret string, args ...syntax.Expr) syntax.Link {
	return syntax.Link{
		Kind: syntax.LinkCall,
		Name: name,
		Sym: &syntax.Symbol{
			Package: testLibPkg,
			Type:    "Anchor",
			Name:    name,
			Kind:    syntax.SymbolMethod,
			Result:  syntax.Type{Name: ret},
		},
		Args: args,
	}
}

func num(v string) syntax.Expr {
	return &syntax.ExprLit{Kind: syntax.LitNumber, Value: v}
}

func TestClassify(t *testing.T) {
	c := NewClassifier(fakeOracle{})

	const constraint = testLibPkg + ".Constraint"

	tests := []struct {
		name  string
		links []syntax.Link
		want  Part
	}{
		{
			name: "negated equality",
			links: []syntax.Link{
				anchorLink("Is"),
				memberLink("Not", testLibPkg+".Anchor"),
				callLink("EqualTo", constraint, num("1")),
			},
			want: Part{
				Prefixes: []syntax.Link{memberLink("Not", testLibPkg+".Anchor")},
				Root:     ptr(callLink("EqualTo", constraint, num("1"))),
			},
		},
		{
			name: "ordering with suffix",
			links: []syntax.Link{
				anchorLink("Is"),
				callLink("GreaterThan", constraint, num("5")),
				callLink("IgnoreCase", constraint),
			},
			want: Part{
				Root:     ptr(callLink("GreaterThan", constraint, num("5"))),
				Suffixes: []syntax.Link{callLink("IgnoreCase", constraint)},
			},
		},
		{
			name: "no constraint produced",
			links: []syntax.Link{
				anchorLink("Is"),
				memberLink("Not", testLibPkg+".Anchor"),
			},
			want: Part{
				Prefixes: []syntax.Link{memberLink("Not", testLibPkg+".Anchor")},
			},
		},
		{
			name:  "empty chain",
			links: nil,
			want:  Part{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.Classify(tt.links)
			if !reflect.DeepEqual(tt.want, got) {
				deepequal.SideBySide(t, "part", tt.want, got)
			}
		})
	}
}

func TestClassifyReconstruction(t *testing.T) {
	c := NewClassifier(fakeOracle{})

	links := []syntax.Link{
		anchorLink("Has"),
		memberLink("Not", testLibPkg+".Anchor"),
		callLink("LessThan", testLibPkg+".Constraint", num("10")),
		callLink("Using", testLibPkg+".Constraint"),
	}

	part := c.Classify(links)

	var rebuilt []syntax.Link
	rebuilt = append(rebuilt, part.Prefixes...)
	if part.Root != nil {
		rebuilt = append(rebuilt, *part.Root)
	}
	rebuilt = append(rebuilt, part.Suffixes...)

	// Original order minus the leading anchor.
	if !reflect.DeepEqual(links[1:], rebuilt) {
		deepequal.SideBySide(t, "links", links[1:], rebuilt)
	}
}

func TestPartAccessors(t *testing.T) {
	c := NewClassifier(fakeOracle{})

	part := c.Classify([]syntax.Link{
		anchorLink("Is"),
		memberLink("Not", testLibPkg+".Anchor"),
		callLink("GreaterThan", testLibPkg+".Constraint", num("5")),
		callLink("Using", testLibPkg+".Constraint"),
	})

	if !part.Analyzable() {
		t.Fatal("part was expected to be analyzable")
	}
	if got := part.PrefixNames(); len(got) != 1 || got[0] != "Not" {
		t.Fatalf("unexpected prefix names %v", got)
	}
	if got := part.SuffixNames(); len(got) != 1 || got[0] != "Using" {
		t.Fatalf("unexpected suffix names %v", got)
	}

	sym, ok := part.RootMethod()
	if !ok || sym.Name != "GreaterThan" {
		t.Fatalf("unexpected root method %v (ok=%v)", sym, ok)
	}

	operand, ok := part.ExpectedOperand()
	if !ok || operand.Text() != "5" {
		t.Fatalf("unexpected expected operand (ok=%v)", ok)
	}
}

func TestUnanalyzable(t *testing.T) {
	c := NewClassifier(fakeOracle{})

	tests := []struct {
		name  string
		links []syntax.Link
		want  bool
	}{
		{
			name: "plain chain",
			links: []syntax.Link{
				anchorLink("Is"),
				callLink("EqualTo", testLibPkg+".Constraint", num("1")),
			},
			want: false,
		},
		{
			name: "arbitrary variable in chain",
			links: []syntax.Link{
				{Kind: syntax.LinkIdent, Name: "myConstraint"},
			},
			want: true,
		},
		{
			name: "foreign identifier",
			links: []syntax.Link{
				{
					Kind: syntax.LinkIdent,
					Name: "Weird",
					Sym:  &syntax.Symbol{Package: "example.com/other", Kind: syntax.SymbolType},
				},
			},
			want: true,
		},
		{
			name: "unclassified link shape",
			links: []syntax.Link{
				anchorLink("Is"),
				{Kind: syntax.LinkOther},
			},
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.Unanalyzable(tt.links); got != tt.want {
				t.Errorf("Unanalyzable = %v, want %v", got, tt.want)
			}
		})
	}
}

func ptr(l syntax.Link) *syntax.Link {
	return &l
}
