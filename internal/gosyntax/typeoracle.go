package gosyntax

import (
	"go/types"

	"github.com/sirkon/checkful/internal/compare"
	"github.com/sirkon/checkful/internal/syntax"
)

// TypeOracle answers the type-relationship queries of the chain and
// compare packages through go/types. Descriptors it hands out are
// keyed back to live types.Type values, so every query resolves in
// the semantic model of the current pass.
//
// The oracle is not safe for concurrent use; each analysis pass
// builds its own.
type TypeOracle struct {
	libPkg         string
	constraintName string

	reg map[string]types.Type
}

// NewTypeOracle is the [TypeOracle] constructor. libPkg is the import
// path of the constraint library, constraintName the package-local
// name of its constraint value type.
func NewTypeOracle(libPkg, constraintName string) *TypeOracle {
	return &TypeOracle{
		libPkg:         libPkg,
		constraintName: constraintName,
		reg:            make(map[string]types.Type),
	}
}

// Descriptor converts a semantic type into the core's descriptor and
// registers it for later queries. Pointer types register their
// element and come out nullable.
func (o *TypeOracle) Descriptor(t types.Type) syntax.Type {
	if t == nil {
		return syntax.Type{}
	}

	nullable := false
	if p, ok := t.(*types.Pointer); ok {
		nullable = true
		t = p.Elem()
	}

	name := types.TypeString(t, nil)
	o.reg[name] = t

	return syntax.Type{Name: name, Nullable: nullable}
}

func (o *TypeOracle) resolve(d syntax.Type) (types.Type, bool) {
	t, ok := o.reg[d.Unwrap().Name]
	return t, ok
}

// IsConstraintType reports whether t is the constraint library's
// constraint type or satisfies it when the constraint is an interface.
func (o *TypeOracle) IsConstraintType(t syntax.Type) bool {
	tt, ok := o.resolve(t)
	if !ok {
		return false
	}

	named, ok := tt.(*types.Named)
	if !ok {
		return false
	}

	obj := named.Obj()
	if obj.Pkg() == nil {
		return false
	}

	if obj.Pkg().Path() == o.libPkg && obj.Name() == o.constraintName {
		return true
	}

	// The library may declare its constraint as an interface; any
	// satisfying type counts then.
	cobj := obj.Pkg().Scope().Lookup(o.constraintName)
	if cobj == nil || obj.Pkg().Path() != o.libPkg {
		return false
	}
	iface, ok := cobj.Type().Underlying().(*types.Interface)
	if !ok {
		return false
	}

	return types.Implements(tt, iface) || types.Implements(types.NewPointer(tt), iface)
}

// IsAnchorSymbol reports whether sym is a namespace-style entry point
// of the constraint library.
func (o *TypeOracle) IsAnchorSymbol(sym *syntax.Symbol) bool {
	return sym != nil && sym.Kind == syntax.SymbolType && sym.Package == o.libPkg
}

// IsLibraryType reports whether the named form of t is declared in the
// constraint library package.
func (o *TypeOracle) IsLibraryType(t types.Type) bool {
	for {
		switch v := t.(type) {
		case *types.Pointer:
			t = v.Elem()
			continue
		case *types.Named:
			return v.Obj().Pkg() != nil && v.Obj().Pkg().Path() == o.libPkg
		default:
			return false
		}
	}
}

// ClassifyConversion reports a numeric conversion between a and b when
// both resolve to numeric types convertible into each other.
func (o *TypeOracle) ClassifyConversion(a, b syntax.Type) compare.Conversion {
	ta, ok := o.resolve(a)
	if !ok {
		return compare.ConversionNone
	}
	tb, ok := o.resolve(b)
	if !ok {
		return compare.ConversionNone
	}

	if !isNumeric(ta) || !isNumeric(tb) {
		return compare.ConversionNone
	}
	if !types.ConvertibleTo(ta, tb) {
		return compare.ConversionNone
	}

	return compare.ConversionNumeric
}

// ImplementsParameterized reports whether t carries the ordering
// contract against arg: a method of the conventional comparison name
// taking exactly one parameter of arg's type. This is the Go rendering
// of "implements the single-type-parameter ordering interface
// instantiated with arg".
func (o *TypeOracle) ImplementsParameterized(t syntax.Type, iface string, arg syntax.Type) bool {
	if iface != compare.OrderedInterface {
		return false
	}

	ta, ok := o.resolve(t)
	if !ok {
		return false
	}
	targ, ok := o.resolve(arg)
	if !ok {
		return false
	}

	param, ok := compareParam(ta)
	return ok && types.Identical(param, targ)
}

// HasNonGenericInterface reports whether t exposes the untyped
// ordering contract: the conventional comparison method over any.
func (o *TypeOracle) HasNonGenericInterface(t syntax.Type, iface string) bool {
	if iface != compare.OrderableInterface {
		return false
	}

	tt, ok := o.resolve(t)
	if !ok {
		return false
	}

	param, ok := compareParam(tt)
	if !ok {
		return false
	}
	i, ok := param.Underlying().(*types.Interface)
	return ok && i.Empty()
}

// HasMethod reports whether t exposes a method of the given name with
// exactly one parameter of param's type.
func (o *TypeOracle) HasMethod(t syntax.Type, name string, param syntax.Type) bool {
	tt, ok := o.resolve(t)
	if !ok {
		return false
	}
	tp, ok := o.resolve(param)
	if !ok {
		return false
	}

	sig, ok := methodSig(tt, name)
	if !ok || sig.Params().Len() != 1 {
		return false
	}

	return types.Identical(sig.Params().At(0).Type(), tp)
}

func compareParam(t types.Type) (types.Type, bool) {
	sig, ok := methodSig(t, compare.CompareMethod)
	if !ok || sig.Params().Len() != 1 {
		return nil, false
	}
	return sig.Params().At(0).Type(), true
}

func methodSig(t types.Type, name string) (*types.Signature, bool) {
	obj, _, _ := types.LookupFieldOrMethod(t, true, nil, name)
	fn, ok := obj.(*types.Func)
	if !ok {
		return nil, false
	}
	return fn.Type().(*types.Signature), true
}

func isNumeric(t types.Type) bool {
	b, ok := t.Underlying().(*types.Basic)
	return ok && b.Info()&types.IsNumeric != 0
}
