package anyof

import "fmt"

// BothOf is a product type with a mandatory left and right value; it cannot
// represent absence on either side.
type BothOf[L, R any] struct {
	left  L
	right R
}

func NewBothOf[L, R any](left L, right R) BothOf[L, R] {
	return BothOf[L, R]{left: left, right: right}
}

func FromCouple[L, R any](c Couple[L, R]) BothOf[L, R] {
	return NewBothOf(c.First, c.Second)
}

func (b BothOf[L, R]) IntoCouple() Couple[L, R] {
	return NewCouple(b.left, b.right)
}

// IntoLeft narrows to an EitherOf keeping the left value.
func (b BothOf[L, R]) IntoLeft() EitherOf[L, R] {
	return LeftOf[L, R](b.left)
}

// IntoRight narrows to an EitherOf keeping the right value.
func (b BothOf[L, R]) IntoRight() EitherOf[L, R] {
	return RightOf[L, R](b.right)
}

// Both slots are always present, so every probe is populated.

func (b BothOf[L, R]) IsLeft() bool {
	return true
}

func (b BothOf[L, R]) IsRight() bool {
	return true
}

func (b BothOf[L, R]) Left() Option[L] {
	return Some(b.left)
}

func (b BothOf[L, R]) Right() Option[R] {
	return Some(b.right)
}

func (b BothOf[L, R]) Opt2() Opt2[L, R] {
	return Decompose[L, R](b)
}

// Unwraps never invoke their fallbacks: both values exist by construction.

func (b BothOf[L, R]) LeftOrElse(_ func() L) L {
	return b.left
}

func (b BothOf[L, R]) RightOrElse(_ func() R) R {
	return b.right
}

func (b BothOf[L, R]) LeftOr(_ L) L {
	return b.left
}

func (b BothOf[L, R]) RightOr(_ R) R {
	return b.right
}

func (b BothOf[L, R]) LeftOrZero() L {
	return b.left
}

func (b BothOf[L, R]) RightOrZero() R {
	return b.right
}

func (b BothOf[L, R]) ExpectLeft(_ string) L {
	return b.left
}

func (b BothOf[L, R]) ExpectRight(_ string) R {
	return b.right
}

func (b BothOf[L, R]) UnwrapLeft() L {
	return b.left
}

func (b BothOf[L, R]) UnwrapRight() R {
	return b.right
}

// Swap exchanges the two fields; the types flip with them.
func (b BothOf[L, R]) Swap() BothOf[R, L] {
	return NewBothOf(b.right, b.left)
}

// Map applies both closures; both slots are always present.
func (b BothOf[L, R]) Map(fl func(L) L, fr func(R) R) BothOf[L, R] {
	return MapBoth(b, fl, fr)
}

func (b BothOf[L, R]) String() string {
	return fmt.Sprintf("Both(%v, %v)", b.left, b.right)
}

// MapBoth transforms both slots.
func MapBoth[L, R, L2, R2 any](b BothOf[L, R], fl func(L) L2, fr func(R) R2) BothOf[L2, R2] {
	return NewBothOf(fl(b.left), fr(b.right))
}

// MapBothLeft transforms the left slot and is the identity on the right one.
func MapBothLeft[L, R, L2 any](b BothOf[L, R], fl func(L) L2) BothOf[L2, R] {
	return MapBoth(b, fl, func(r R) R { return r })
}

// MapBothRight transforms the right slot and is the identity on the left one.
func MapBothRight[L, R, R2 any](b BothOf[L, R], fr func(R) R2) BothOf[L, R2] {
	return MapBoth(b, func(l L) L { return l }, fr)
}
