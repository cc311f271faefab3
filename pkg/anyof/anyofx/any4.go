package anyofx

import "github.com/ib-77/anyof/pkg/anyof"

// AnyOf4 addresses four leaves through two levels of AnyOf nesting.
type AnyOf4[A, B, C, D any] = anyof.AnyOf[anyof.AnyOf[A, B], anyof.AnyOf[C, D]]

// New4 builds an AnyOf4 from one optional value per leaf.
func New4[A, B, C, D any](a anyof.Option[A], b anyof.Option[B], c anyof.Option[C], d anyof.Option[D]) AnyOf4[A, B, C, D] {
	return anyof.New(half(a, b), half(c, d))
}

// half wraps one side of the nesting; a side with no populated leaf is
// absent, never an empty inner value.
func half[L, R any](l anyof.Option[L], r anyof.Option[R]) anyof.Option[anyof.AnyOf[L, R]] {
	if l.IsEmpty() && r.IsEmpty() {
		return anyof.None[anyof.AnyOf[L, R]]()
	}
	return anyof.Some(anyof.New(l, r))
}

// LL returns the left-left leaf if it exists.
func LL[A, B, C, D any](v AnyOf4[A, B, C, D]) anyof.Option[A] {
	return anyof.AndThen(v.Left(), anyof.AnyOf[A, B].Left)
}

// LR returns the left-right leaf if it exists.
func LR[A, B, C, D any](v AnyOf4[A, B, C, D]) anyof.Option[B] {
	return anyof.AndThen(v.Left(), anyof.AnyOf[A, B].Right)
}

// RL returns the right-left leaf if it exists.
func RL[A, B, C, D any](v AnyOf4[A, B, C, D]) anyof.Option[C] {
	return anyof.AndThen(v.Right(), anyof.AnyOf[C, D].Left)
}

// RR returns the right-right leaf if it exists.
func RR[A, B, C, D any](v AnyOf4[A, B, C, D]) anyof.Option[D] {
	return anyof.AndThen(v.Right(), anyof.AnyOf[C, D].Right)
}

// Opt4 decomposes an AnyOf4 into one optional value per leaf.
func Opt4[A, B, C, D any](v AnyOf4[A, B, C, D]) (anyof.Option[A], anyof.Option[B], anyof.Option[C], anyof.Option[D]) {
	return LL(v), LR(v), RL(v), RR(v)
}
