package anyofx

import "github.com/ib-77/anyof/pkg/anyof"

// AnyOf8 addresses eight leaves through three levels of AnyOf nesting.
type AnyOf8[A, B, C, D, E, F, G, H any] = anyof.AnyOf[AnyOf4[A, B, C, D], AnyOf4[E, F, G, H]]

// New8 builds an AnyOf8 from one optional value per leaf.
func New8[A, B, C, D, E, F, G, H any](
	a anyof.Option[A], b anyof.Option[B], c anyof.Option[C], d anyof.Option[D],
	e anyof.Option[E], f anyof.Option[F], g anyof.Option[G], h anyof.Option[H],
) AnyOf8[A, B, C, D, E, F, G, H] {
	return anyof.New(half4(a, b, c, d), half4(e, f, g, h))
}

func half4[A, B, C, D any](a anyof.Option[A], b anyof.Option[B], c anyof.Option[C], d anyof.Option[D]) anyof.Option[AnyOf4[A, B, C, D]] {
	if a.IsEmpty() && b.IsEmpty() && c.IsEmpty() && d.IsEmpty() {
		return anyof.None[AnyOf4[A, B, C, D]]()
	}
	return anyof.Some(New4(a, b, c, d))
}

// LLL returns the left-left-left leaf if it exists.
func LLL[A, B, C, D, E, F, G, H any](v AnyOf8[A, B, C, D, E, F, G, H]) anyof.Option[A] {
	return anyof.AndThen(v.Left(), LL[A, B, C, D])
}

// LLR returns the left-left-right leaf if it exists.
func LLR[A, B, C, D, E, F, G, H any](v AnyOf8[A, B, C, D, E, F, G, H]) anyof.Option[B] {
	return anyof.AndThen(v.Left(), LR[A, B, C, D])
}

// LRL returns the left-right-left leaf if it exists.
func LRL[A, B, C, D, E, F, G, H any](v AnyOf8[A, B, C, D, E, F, G, H]) anyof.Option[C] {
	return anyof.AndThen(v.Left(), RL[A, B, C, D])
}

// LRR returns the left-right-right leaf if it exists.
func LRR[A, B, C, D, E, F, G, H any](v AnyOf8[A, B, C, D, E, F, G, H]) anyof.Option[D] {
	return anyof.AndThen(v.Left(), RR[A, B, C, D])
}

// RLL returns the right-left-left leaf if it exists.
func RLL[A, B, C, D, E, F, G, H any](v AnyOf8[A, B, C, D, E, F, G, H]) anyof.Option[E] {
	return anyof.AndThen(v.Right(), LL[E, F, G, H])
}

// RLR returns the right-left-right leaf if it exists.
func RLR[A, B, C, D, E, F, G, H any](v AnyOf8[A, B, C, D, E, F, G, H]) anyof.Option[F] {
	return anyof.AndThen(v.Right(), LR[E, F, G, H])
}

// RRL returns the right-right-left leaf if it exists.
func RRL[A, B, C, D, E, F, G, H any](v AnyOf8[A, B, C, D, E, F, G, H]) anyof.Option[G] {
	return anyof.AndThen(v.Right(), RL[E, F, G, H])
}

// RRR returns the right-right-right leaf if it exists.
func RRR[A, B, C, D, E, F, G, H any](v AnyOf8[A, B, C, D, E, F, G, H]) anyof.Option[H] {
	return anyof.AndThen(v.Right(), RR[E, F, G, H])
}

// Opt8 decomposes an AnyOf8 into one optional value per leaf.
func Opt8[A, B, C, D, E, F, G, H any](v AnyOf8[A, B, C, D, E, F, G, H]) (
	anyof.Option[A], anyof.Option[B], anyof.Option[C], anyof.Option[D],
	anyof.Option[E], anyof.Option[F], anyof.Option[G], anyof.Option[H],
) {
	return LLL(v), LLR(v), LRL(v), LRR(v), RLL(v), RLR(v), RRL(v), RRR(v)
}
