package anyof

type anyCase uint8

const (
	caseNeither anyCase = iota
	caseEither
	caseBoth
)

// AnyOf is the four-state combination of two optional values: neither,
// left only, right only, or both. The single-value states are carried by an
// EitherOf and the two-value state by a BothOf, so the active case always
// matches the presence pattern exactly and no inconsistent value can be
// constructed.
type AnyOf[L, R any] struct {
	either EitherOf[L, R]
	both   BothOf[L, R]
	state  anyCase
}

// New normalizes two optional slots to the unique matching case.
func New[L, R any](left Option[L], right Option[R]) AnyOf[L, R] {
	switch {
	case left.IsDefined() && right.IsDefined():
		return FromBoth(NewBothOf(left.Get(), right.Get()))
	case left.IsDefined():
		return FromEither(LeftOf[L, R](left.Get()))
	case right.IsDefined():
		return FromEither(RightOf[L, R](right.Get()))
	default:
		return NewNeither[L, R]()
	}
}

func NewNeither[L, R any]() AnyOf[L, R] {
	return AnyOf[L, R]{state: caseNeither}
}

func NewLeft[L, R any](left L) AnyOf[L, R] {
	return FromEither(LeftOf[L, R](left))
}

func NewRight[L, R any](right R) AnyOf[L, R] {
	return FromEither(RightOf[L, R](right))
}

func NewBoth[L, R any](left L, right R) AnyOf[L, R] {
	return FromBoth(NewBothOf(left, right))
}

func FromEither[L, R any](e EitherOf[L, R]) AnyOf[L, R] {
	return AnyOf[L, R]{either: e, state: caseEither}
}

func FromBoth[L, R any](b BothOf[L, R]) AnyOf[L, R] {
	return AnyOf[L, R]{both: b, state: caseBoth}
}

func FromOpt2[L, R any](o Opt2[L, R]) AnyOf[L, R] {
	return New(o.First, o.Second)
}

// IntoEither extracts the wrapped EitherOf. It panics unless the active case
// is Either; use FilterLeft/FilterRight first to demote a Both value.
func (a AnyOf[L, R]) IntoEither() EitherOf[L, R] {
	if a.state != caseEither {
		panic("anyof: IntoEither on a value that is not Either")
	}
	return a.either
}

// IntoBoth extracts the wrapped BothOf. It panics unless the active case is
// Both; BothOr and BothOrElse are the non-panicking forms.
func (a AnyOf[L, R]) IntoBoth() BothOf[L, R] {
	if a.state != caseBoth {
		panic("anyof: IntoBoth on a value that is not Both")
	}
	return a.both
}

// ToEitherPair splits the value into per-slot EitherOf views: each present
// slot becomes a case-matching EitherOf and each absent slot stays empty.
func (a AnyOf[L, R]) ToEitherPair() Pair[Option[EitherOf[L, R]]] {
	left := MapOption(a.Left(), LeftOf[L, R])
	right := MapOption(a.Right(), RightOf[L, R])
	return NewCouple(left, right)
}

func (a AnyOf[L, R]) IsNeither() bool {
	return a.state == caseNeither
}

// IsLeft reports the strict left-only case; see HasLeft for slot presence.
func (a AnyOf[L, R]) IsLeft() bool {
	return a.state == caseEither && a.either.IsLeft()
}

// IsRight reports the strict right-only case; see HasRight for slot presence.
func (a AnyOf[L, R]) IsRight() bool {
	return a.state == caseEither && a.either.IsRight()
}

func (a AnyOf[L, R]) IsBoth() bool {
	return a.state == caseBoth
}

// IsAny reports whether at least one slot is populated.
func (a AnyOf[L, R]) IsAny() bool {
	return a.state != caseNeither
}

// IsOne reports whether exactly one slot is populated.
func (a AnyOf[L, R]) IsOne() bool {
	return a.state == caseEither
}

func (a AnyOf[L, R]) IsNeitherOrBoth() bool {
	return a.state == caseNeither || a.state == caseBoth
}

func (a AnyOf[L, R]) HasLeft() bool {
	return a.Left().IsDefined()
}

func (a AnyOf[L, R]) HasRight() bool {
	return a.Right().IsDefined()
}

func (a AnyOf[L, R]) Left() Option[L] {
	switch a.state {
	case caseEither:
		return a.either.Left()
	case caseBoth:
		return a.both.Left()
	default:
		return None[L]()
	}
}

func (a AnyOf[L, R]) Right() Option[R] {
	switch a.state {
	case caseEither:
		return a.either.Right()
	case caseBoth:
		return a.both.Right()
	default:
		return None[R]()
	}
}

func (a AnyOf[L, R]) Opt2() Opt2[L, R] {
	return Decompose[L, R](a)
}

// BothOrNone returns both values as a Couple when both slots are populated.
func (a AnyOf[L, R]) BothOrNone() Option[Couple[L, R]] {
	if a.state != caseBoth {
		return None[Couple[L, R]]()
	}
	return Some(a.both.IntoCouple())
}

func (a AnyOf[L, R]) LeftOrElse(f func() L) L {
	return a.Left().GetOrFunc(f)
}

func (a AnyOf[L, R]) RightOrElse(f func() R) R {
	return a.Right().GetOrFunc(f)
}

// BothOrElse returns the wrapped BothOf, filling any missing slot from the
// fallback value.
func (a AnyOf[L, R]) BothOrElse(f func() BothOf[L, R]) BothOf[L, R] {
	switch a.state {
	case caseBoth:
		return a.both
	case caseEither:
		if a.either.IsLeft() {
			return NewBothOf(a.either.UnwrapLeft(), f().right)
		}
		return NewBothOf(f().left, a.either.UnwrapRight())
	default:
		return f()
	}
}

func (a AnyOf[L, R]) LeftOr(def L) L {
	return a.LeftOrElse(func() L { return def })
}

func (a AnyOf[L, R]) RightOr(def R) R {
	return a.RightOrElse(func() R { return def })
}

func (a AnyOf[L, R]) BothOr(def BothOf[L, R]) BothOf[L, R] {
	return a.BothOrElse(func() BothOf[L, R] { return def })
}

func (a AnyOf[L, R]) LeftOrZero() L {
	var zero L
	return a.LeftOr(zero)
}

func (a AnyOf[L, R]) RightOrZero() R {
	var zero R
	return a.RightOr(zero)
}

// ExpectLeft returns the left value, panicking with msg when the slot is absent.
func (a AnyOf[L, R]) ExpectLeft(msg string) L {
	return a.LeftOrElse(func() L { panic(msg) })
}

// ExpectRight returns the right value, panicking with msg when the slot is absent.
func (a AnyOf[L, R]) ExpectRight(msg string) R {
	return a.RightOrElse(func() R { panic(msg) })
}

func (a AnyOf[L, R]) UnwrapLeft() L {
	return a.ExpectLeft("anyof: UnwrapLeft on a value without a left slot")
}

func (a AnyOf[L, R]) UnwrapRight() R {
	return a.ExpectRight("anyof: UnwrapRight on a value without a right slot")
}

func (a AnyOf[L, R]) UnwrapBoth() BothOf[L, R] {
	return a.BothOrElse(func() BothOf[L, R] {
		panic("anyof: UnwrapBoth on a value that is not Both")
	})
}

// FilterLeft keeps only the left slot, demoting Both to left-Either and a
// right-Either to Neither.
func (a AnyOf[L, R]) FilterLeft() AnyOf[L, R] {
	return New(a.Left(), None[R]())
}

// FilterRight keeps only the right slot, demoting Both to right-Either and a
// left-Either to Neither.
func (a AnyOf[L, R]) FilterRight() AnyOf[L, R] {
	return New(None[L](), a.Right())
}

// WithLeft sets the left slot, promoting Neither to Either and a right-Either
// to Both.
func (a AnyOf[L, R]) WithLeft(left L) AnyOf[L, R] {
	return New(Some(left), a.Right())
}

// WithRight sets the right slot, promoting Neither to Either and a left-Either
// to Both.
func (a AnyOf[L, R]) WithRight(right R) AnyOf[L, R] {
	return New(a.Left(), Some(right))
}

// Swap exchanges the left and right roles: Neither stays Neither, the Either
// case flips, Both swaps internally. Applying it twice restores the original.
func (a AnyOf[L, R]) Swap() AnyOf[R, L] {
	switch a.state {
	case caseEither:
		return FromEither(a.either.Swap())
	case caseBoth:
		return FromBoth(a.both.Swap())
	default:
		return NewNeither[R, L]()
	}
}

// Map applies each closure to its slot when present; the case is preserved.
func (a AnyOf[L, R]) Map(fl func(L) L, fr func(R) R) AnyOf[L, R] {
	return MapAny(a, fl, fr)
}

// Combine merges two values slot-wise into the most complete state. A slot
// populated in both operands takes the right operand's value.
func (a AnyOf[L, R]) Combine(other AnyOf[L, R]) AnyOf[L, R] {
	left := other.Left()
	if left.IsEmpty() {
		left = a.Left()
	}
	right := other.Right()
	if right.IsEmpty() {
		right = a.Right()
	}
	return New(left, right)
}

// Filter clears every slot that is populated in the mask; slots absent from
// the mask pass through untouched.
func (a AnyOf[L, R]) Filter(mask AnyOf[L, R]) AnyOf[L, R] {
	left := a.Left()
	if mask.HasLeft() {
		left = None[L]()
	}
	right := a.Right()
	if mask.HasRight() {
		right = None[R]()
	}
	return New(left, right)
}

func (a AnyOf[L, R]) String() string {
	switch a.state {
	case caseEither:
		return a.either.String()
	case caseBoth:
		return a.both.String()
	default:
		return "Neither"
	}
}

// MapAny transforms whichever slots are present: Neither runs no closure,
// Either runs one, Both runs both by delegating to the inner BothOf.
func MapAny[L, R, L2, R2 any](a AnyOf[L, R], fl func(L) L2, fr func(R) R2) AnyOf[L2, R2] {
	switch a.state {
	case caseEither:
		return FromEither(MapEither(a.either, fl, fr))
	case caseBoth:
		return FromBoth(MapBoth(a.both, fl, fr))
	default:
		return NewNeither[L2, R2]()
	}
}

// MapAnyLeft transforms the left slot and is the identity on the right one.
func MapAnyLeft[L, R, L2 any](a AnyOf[L, R], fl func(L) L2) AnyOf[L2, R] {
	return MapAny(a, fl, func(r R) R { return r })
}

// MapAnyRight transforms the right slot and is the identity on the left one.
func MapAnyRight[L, R, R2 any](a AnyOf[L, R], fr func(R) R2) AnyOf[L, R2] {
	return MapAny(a, func(l L) L { return l }, fr)
}
