package anyof

// LeftOrRight is the presence-probing contract shared by EitherOf, BothOf
// and AnyOf. Any type implementing it participates in the package's generic
// utilities without being derived from those three.
type LeftOrRight[L, R any] interface {
	// Left returns the left value when that slot is logically present.
	Left() Option[L]
	// Right returns the right value when that slot is logically present.
	Right() Option[R]
	// IsLeft reports whether the active case is the left one.
	IsLeft() bool
	// IsRight reports whether the active case is the right one.
	IsRight() bool
	// Opt2 is the canonical decomposition. It must agree with Decompose.
	Opt2() Opt2[L, R]
}

// Unwrap extends LeftOrRight with value extraction. Every fail-fast form
// (Expect*/Unwrap*) has a fail-soft sibling (*Or, *OrElse, *OrZero).
type Unwrap[L, R any] interface {
	LeftOrRight[L, R]
	LeftOrElse(f func() L) L
	RightOrElse(f func() R) R
	LeftOr(def L) L
	RightOr(def R) R
	LeftOrZero() L
	RightOrZero() R
	ExpectLeft(msg string) L
	ExpectRight(msg string) R
	UnwrapLeft() L
	UnwrapRight() R
}

// Swap is the inversion contract. Out is the implementing type with the left
// and right roles exchanged, so applying it twice restores the original type.
type Swap[L, R, Out any] interface {
	Swap() Out
}

// Map is the endomorphic transformation contract: both closures keep their
// slot's type. Type-changing transforms are the package functions MapEither,
// MapBoth and MapAny, since Go methods cannot introduce type parameters.
type Map[L, R, Out any] interface {
	Map(fl func(L) L, fr func(R) R) Out
}

// Decompose derives the canonical Opt2 form from the probes alone. It is the
// one shared definition every implementer's Opt2 method must match.
func Decompose[L, R any](v LeftOrRight[L, R]) Opt2[L, R] {
	return NewCouple(v.Left(), v.Right())
}

var (
	_ LeftOrRight[int, string] = EitherOf[int, string]{}
	_ LeftOrRight[int, string] = BothOf[int, string]{}
	_ LeftOrRight[int, string] = AnyOf[int, string]{}

	_ Unwrap[int, string] = EitherOf[int, string]{}
	_ Unwrap[int, string] = BothOf[int, string]{}
	_ Unwrap[int, string] = AnyOf[int, string]{}

	_ Swap[int, string, EitherOf[string, int]] = EitherOf[int, string]{}
	_ Swap[int, string, BothOf[string, int]]   = BothOf[int, string]{}
	_ Swap[int, string, AnyOf[string, int]]    = AnyOf[int, string]{}

	_ Map[int, string, EitherOf[int, string]] = EitherOf[int, string]{}
	_ Map[int, string, BothOf[int, string]]   = BothOf[int, string]{}
	_ Map[int, string, AnyOf[int, string]]    = AnyOf[int, string]{}
)
