package compare

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sirkon/checkful/internal/chain"
	"github.com/sirkon/checkful/internal/syntax"
)

// fakeTypes simulates arbitrary type relationships without a real
// semantic model.
type fakeTypes struct {
	numeric   map[[2]string]bool // a converts to b numerically
	ordered   map[[2]string]bool // t implements Ordered[arg]
	orderable map[string]bool    // t implements the non-generic interface
	methods   map[[2]string]bool // t has Compare(param)
}

func (f fakeTypes) ClassifyConversion(a, b syntax.Type) Conversion {
	if f.numeric[[2]string{a.Name, b.Name}] {
		return ConversionNumeric
	}
	return ConversionNone
}

func (f fakeTypes) ImplementsParameterized(t syntax.Type, iface string, arg syntax.Type) bool {
	return iface == OrderedInterface && f.ordered[[2]string{t.Name, arg.Name}]
}

func (f fakeTypes) HasNonGenericInterface(t syntax.Type, iface string) bool {
	return iface == OrderableInterface && f.orderable[t.Name]
}

func (f fakeTypes) HasMethod(t syntax.Type, name string, param syntax.Type) bool {
	return name == CompareMethod && f.methods[[2]string{t.Name, param.Name}]
}

func typ(name string) syntax.Type {
	return syntax.Type{Name: name}
}

func nullable(name string) syntax.Type {
	return syntax.Type{Name: name, Nullable: true}
}

func TestCanCompareNumeric(t *testing.T) {
	oracle := fakeTypes{
		numeric: map[[2]string]bool{
			{"int", "float64"}: true, // one direction is enough
		},
	}
	c := NewChecker(oracle, Options{})

	assert.True(t, c.CanCompare(typ("int"), typ("float64")))
	assert.True(t, c.CanCompare(typ("float64"), typ("int")), "either direction must count")
	assert.False(t, c.CanCompare(typ("int"), typ("string")))
}

func TestCanCompareNullableTransparency(t *testing.T) {
	oracle := fakeTypes{
		numeric: map[[2]string]bool{
			{"int", "float64"}: true,
		},
	}
	c := NewChecker(oracle, Options{})

	for _, pair := range [][2]syntax.Type{
		{nullable("int"), typ("float64")},
		{typ("int"), nullable("float64")},
		{nullable("int"), nullable("float64")},
	} {
		assert.Equal(t,
			c.CanCompare(typ("int"), typ("float64")),
			c.CanCompare(pair[0], pair[1]),
			"wrapping must be transparent for %v", pair,
		)
	}

	assert.False(t, c.CanCompare(nullable("int"), nullable("string")))
}

func TestCanCompareOrderedInterface(t *testing.T) {
	oracle := fakeTypes{
		ordered: map[[2]string]bool{
			{"Celsius", "Fahrenheit"}: true,
		},
	}
	c := NewChecker(oracle, Options{})

	assert.True(t, c.CanCompare(typ("Celsius"), typ("Fahrenheit")))
	assert.True(t, c.CanCompare(typ("Fahrenheit"), typ("Celsius")), "both directions are checked")
	assert.False(t, c.CanCompare(typ("Celsius"), typ("Kelvin")))
}

func TestCanCompareDuckTyped(t *testing.T) {
	oracle := fakeTypes{
		methods: map[[2]string]bool{
			{"Version", "Version"}: true,
			// Unrelated type with a same-name method over Version.
			{"Build", "Version"}: true,
		},
	}
	c := NewChecker(oracle, Options{})

	assert.True(t, c.CanCompare(typ("Version"), typ("Version")))
	assert.False(t, c.CanCompare(typ("Build"), typ("Version")),
		"a same-name method on an unrelated type does not count")
	assert.False(t, c.CanCompare(typ("Version"), typ("Build")))
}

func TestCanCompareOrderableSameType(t *testing.T) {
	oracle := fakeTypes{
		orderable: map[string]bool{"Weight": true},
	}
	c := NewChecker(oracle, Options{})

	assert.True(t, c.CanCompare(typ("Weight"), typ("Weight")))
	assert.False(t, c.CanCompare(typ("Weight"), typ("Height")),
		"the non-generic interface only helps identical types")
}

func applicablePart(rootName string, prefixes, suffixes []string) chain.Part {
	part := chain.Part{
		Root: &syntax.Link{
			Kind: syntax.LinkCall,
			Name: rootName,
			Sym: &syntax.Symbol{
				Name:   rootName,
				Kind:   syntax.SymbolMethod,
				Result: syntax.Type{Name: "Constraint"},
			},
			Args: []syntax.Expr{&syntax.ExprLit{Kind: syntax.LitNumber, Value: "5"}},
		},
	}
	for _, p := range prefixes {
		part.Prefixes = append(part.Prefixes, syntax.Link{Kind: syntax.LinkMember, Name: p})
	}
	for _, s := range suffixes {
		part.Suffixes = append(part.Suffixes, syntax.Link{Kind: syntax.LinkCall, Name: s})
	}
	return part
}

func TestApplicable(t *testing.T) {
	c := NewChecker(fakeTypes{}, Options{})

	tests := []struct {
		name   string
		part   chain.Part
		wantOp Operator
		wantOK bool
	}{
		{
			name:   "bare ordering root",
			part:   applicablePart("GreaterThan", nil, nil),
			wantOp: OperatorGreaterThan,
			wantOK: true,
		},
		{
			name:   "negated ordering root",
			part:   applicablePart("LessThanOrEqualTo", []string{"Not"}, nil),
			wantOp: OperatorLessThanOrEqualTo,
			wantOK: true,
		},
		{
			name:   "non-ordering root",
			part:   applicablePart("EqualTo", nil, nil),
			wantOK: false,
		},
		{
			name:   "projection prefix changes the actual type",
			part:   applicablePart("GreaterThan", []string{"All"}, nil),
			wantOK: false,
		},
		{
			name:   "custom comparer overrides built-in reasoning",
			part:   applicablePart("GreaterThan", nil, []string{"Using"}),
			wantOK: false,
		},
		{
			name:   "harmless suffix stays applicable",
			part:   applicablePart("GreaterThan", nil, []string{"IgnoreCase"}),
			wantOp: OperatorGreaterThan,
			wantOK: true,
		},
		{
			name:   "no root",
			part:   chain.Part{},
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			op, ok := c.Applicable(tt.part)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantOp, op)
			}
		})
	}
}

func TestOperatorText(t *testing.T) {
	var op Operator
	if err := op.UnmarshalText([]byte("GreaterThan")); err != nil {
		t.Fatal(err)
	}
	if op != OperatorGreaterThan {
		t.Fatalf("unexpected operator %v", op)
	}
	if op.String() != "GreaterThan" {
		t.Fatalf("unexpected text %q", op.String())
	}

	if err := op.UnmarshalText([]byte("Sideways")); err == nil {
		t.Fatal("unknown operator text was expected to fail")
	}
}
