package anyof

import "fmt"

// EitherOf is a sum type holding exactly one of a left or right value.
// Values are immutable; every operation returns a new value.
type EitherOf[L, R any] struct {
	left   L
	right  R
	isLeft bool
}

func LeftOf[L, R any](left L) EitherOf[L, R] {
	return EitherOf[L, R]{left: left, isLeft: true}
}

func RightOf[L, R any](right R) EitherOf[L, R] {
	return EitherOf[L, R]{right: right}
}

func (e EitherOf[L, R]) IsLeft() bool {
	return e.isLeft
}

func (e EitherOf[L, R]) IsRight() bool {
	return !e.isLeft
}

func (e EitherOf[L, R]) Left() Option[L] {
	if e.isLeft {
		return Some(e.left)
	}
	return None[L]()
}

func (e EitherOf[L, R]) Right() Option[R] {
	if e.isLeft {
		return None[R]()
	}
	return Some(e.right)
}

func (e EitherOf[L, R]) Opt2() Opt2[L, R] {
	return Decompose[L, R](e)
}

func (e EitherOf[L, R]) LeftOrElse(f func() L) L {
	if e.isLeft {
		return e.left
	}
	return f()
}

func (e EitherOf[L, R]) RightOrElse(f func() R) R {
	if e.isLeft {
		return f()
	}
	return e.right
}

func (e EitherOf[L, R]) LeftOr(def L) L {
	return e.LeftOrElse(func() L { return def })
}

func (e EitherOf[L, R]) RightOr(def R) R {
	return e.RightOrElse(func() R { return def })
}

func (e EitherOf[L, R]) LeftOrZero() L {
	var zero L
	return e.LeftOr(zero)
}

func (e EitherOf[L, R]) RightOrZero() R {
	var zero R
	return e.RightOr(zero)
}

// ExpectLeft returns the left value, panicking with msg when the case is right.
func (e EitherOf[L, R]) ExpectLeft(msg string) L {
	return e.LeftOrElse(func() L { panic(msg) })
}

// ExpectRight returns the right value, panicking with msg when the case is left.
func (e EitherOf[L, R]) ExpectRight(msg string) R {
	return e.RightOrElse(func() R { panic(msg) })
}

func (e EitherOf[L, R]) UnwrapLeft() L {
	return e.ExpectLeft("anyof: UnwrapLeft on a right EitherOf")
}

func (e EitherOf[L, R]) UnwrapRight() R {
	return e.ExpectRight("anyof: UnwrapRight on a left EitherOf")
}

// Swap exchanges the left and right roles; the case flips with the types.
func (e EitherOf[L, R]) Swap() EitherOf[R, L] {
	if e.isLeft {
		return RightOf[R, L](e.left)
	}
	return LeftOf[R, L](e.right)
}

// Map applies the closure selected by the active case; the other one never runs.
func (e EitherOf[L, R]) Map(fl func(L) L, fr func(R) R) EitherOf[L, R] {
	return MapEither(e, fl, fr)
}

func (e EitherOf[L, R]) String() string {
	if e.isLeft {
		return fmt.Sprintf("Left(%v)", e.left)
	}
	return fmt.Sprintf("Right(%v)", e.right)
}

// MapEither transforms the active side, preserving the case.
func MapEither[L, R, L2, R2 any](e EitherOf[L, R], fl func(L) L2, fr func(R) R2) EitherOf[L2, R2] {
	if e.isLeft {
		return LeftOf[L2, R2](fl(e.left))
	}
	return RightOf[L2, R2](fr(e.right))
}

// MapEitherLeft transforms a left value and is the identity on a right one.
func MapEitherLeft[L, R, L2 any](e EitherOf[L, R], fl func(L) L2) EitherOf[L2, R] {
	return MapEither(e, fl, func(r R) R { return r })
}

// MapEitherRight transforms a right value and is the identity on a left one.
func MapEitherRight[L, R, R2 any](e EitherOf[L, R], fr func(R) R2) EitherOf[L, R2] {
	return MapEither(e, func(l L) L { return l }, fr)
}
