package ordering

import "github.com/checkful/verify"

type Distance struct{ meters int }

func (d Distance) Compare(other Distance) int {
	return d.meters - other.meters
}

type Price struct{ cents int64 }

func (p Price) Compare(other any) int {
	o, ok := other.(Price)
	if !ok {
		return -1
	}
	return int(p.cents - o.cents)
}

type Grams struct{ v int }

type Kilos struct{ v int }

func (g Grams) Compare(k Kilos) int {
	return g.v - k.v*1000
}

func checks(total int, ratio float64, name string, limit *int, d, dmax Distance, p, pmax Price, g Grams, k Kilos) {
	verify.That(total, verify.Is.GreaterThan(5))
	verify.That(total, verify.Is.Not.GreaterThan("high")) // want `operands of GreaterThan must be mutually comparable: int vs string`
	verify.That(name, verify.Is.LessThan(10))             // want `operands of LessThan must be mutually comparable: string vs int`
	verify.That(ratio, verify.Is.LessThanOrEqualTo(1))
	verify.That(limit, verify.Is.GreaterThanOrEqualTo(0))

	verify.That(d, verify.Is.GreaterThan(dmax))
	verify.That(p, verify.Is.LessThan(pmax))
	verify.That(g, verify.Is.LessThan(k))
	verify.That(g, verify.Is.LessThan(name)) // want `operands of LessThan must be mutually comparable: ordering.Grams vs string`

	// Caller-supplied comparison semantics disable the check.
	verify.That(total, verify.Is.GreaterThan("x").Using(func(a, b any) int { return 0 }))

	// Only ordering operators are checked.
	verify.That(total, verify.Is.Not.EqualTo("x"))

	// Pure negation, even stacked, keeps the check applicable.
	verify.That(total, verify.Is.Not.Not.GreaterThan("low")) // want `operands of GreaterThan must be mutually comparable: int vs string`

	// A constraint held in a variable cannot be traced.
	c := verify.Is.GreaterThan("x")
	verify.That(total, c)

	// No constraint expression at all.
	verify.That(total)
}
