package anyofx

import "github.com/ib-77/anyof/pkg/anyof"

// AnyOf16 addresses sixteen leaves through four levels of AnyOf nesting.
// Sixteen-way branching is rarely worth the type-parameter noise; prefer
// AnyOf4 or AnyOf8 unless the extra width is really needed.
type AnyOf16[A, B, C, D, E, F, G, H, I, J, K, M, N, O, P, Q any] = anyof.AnyOf[
	AnyOf8[A, B, C, D, E, F, G, H],
	AnyOf8[I, J, K, M, N, O, P, Q],
]

// New16 builds an AnyOf16 from one optional value per leaf.
func New16[A, B, C, D, E, F, G, H, I, J, K, M, N, O, P, Q any](
	a anyof.Option[A], b anyof.Option[B], c anyof.Option[C], d anyof.Option[D],
	e anyof.Option[E], f anyof.Option[F], g anyof.Option[G], h anyof.Option[H],
	i anyof.Option[I], j anyof.Option[J], k anyof.Option[K], m anyof.Option[M],
	n anyof.Option[N], o anyof.Option[O], p anyof.Option[P], q anyof.Option[Q],
) AnyOf16[A, B, C, D, E, F, G, H, I, J, K, M, N, O, P, Q] {
	return anyof.New(half8(a, b, c, d, e, f, g, h), half8(i, j, k, m, n, o, p, q))
}

func half8[A, B, C, D, E, F, G, H any](
	a anyof.Option[A], b anyof.Option[B], c anyof.Option[C], d anyof.Option[D],
	e anyof.Option[E], f anyof.Option[F], g anyof.Option[G], h anyof.Option[H],
) anyof.Option[AnyOf8[A, B, C, D, E, F, G, H]] {
	if a.IsEmpty() && b.IsEmpty() && c.IsEmpty() && d.IsEmpty() &&
		e.IsEmpty() && f.IsEmpty() && g.IsEmpty() && h.IsEmpty() {
		return anyof.None[AnyOf8[A, B, C, D, E, F, G, H]]()
	}
	return anyof.Some(New8(a, b, c, d, e, f, g, h))
}

// LLLL returns the left-left-left-left leaf if it exists.
func LLLL[A, B, C, D, E, F, G, H, I, J, K, M, N, O, P, Q any](v AnyOf16[A, B, C, D, E, F, G, H, I, J, K, M, N, O, P, Q]) anyof.Option[A] {
	return anyof.AndThen(v.Left(), LLL[A, B, C, D, E, F, G, H])
}

// LLLR returns the left-left-left-right leaf if it exists.
func LLLR[A, B, C, D, E, F, G, H, I, J, K, M, N, O, P, Q any](v AnyOf16[A, B, C, D, E, F, G, H, I, J, K, M, N, O, P, Q]) anyof.Option[B] {
	return anyof.AndThen(v.Left(), LLR[A, B, C, D, E, F, G, H])
}

// LLRL returns the left-left-right-left leaf if it exists.
func LLRL[A, B, C, D, E, F, G, H, I, J, K, M, N, O, P, Q any](v AnyOf16[A, B, C, D, E, F, G, H, I, J, K, M, N, O, P, Q]) anyof.Option[C] {
	return anyof.AndThen(v.Left(), LRL[A, B, C, D, E, F, G, H])
}

// LLRR returns the left-left-right-right leaf if it exists.
func LLRR[A, B, C, D, E, F, G, H, I, J, K, M, N, O, P, Q any](v AnyOf16[A, B, C, D, E, F, G, H, I, J, K, M, N, O, P, Q]) anyof.Option[D] {
	return anyof.AndThen(v.Left(), LRR[A, B, C, D, E, F, G, H])
}

// LRLL returns the left-right-left-left leaf if it exists.
func LRLL[A, B, C, D, E, F, G, H, I, J, K, M, N, O, P, Q any](v AnyOf16[A, B, C, D, E, F, G, H, I, J, K, M, N, O, P, Q]) anyof.Option[E] {
	return anyof.AndThen(v.Left(), RLL[A, B, C, D, E, F, G, H])
}

// LRLR returns the left-right-left-right leaf if it exists.
func LRLR[A, B, C, D, E, F, G, H, I, J, K, M, N, O, P, Q any](v AnyOf16[A, B, C, D, E, F, G, H, I, J, K, M, N, O, P, Q]) anyof.Option[F] {
	return anyof.AndThen(v.Left(), RLR[A, B, C, D, E, F, G, H])
}

// LRRL returns the left-right-right-left leaf if it exists.
func LRRL[A, B, C, D, E, F, G, H, I, J, K, M, N, O, P, Q any](v AnyOf16[A, B, C, D, E, F, G, H, I, J, K, M, N, O, P, Q]) anyof.Option[G] {
	return anyof.AndThen(v.Left(), RRL[A, B, C, D, E, F, G, H])
}

// LRRR returns the left-right-right-right leaf if it exists.
func LRRR[A, B, C, D, E, F, G, H, I, J, K, M, N, O, P, Q any](v AnyOf16[A, B, C, D, E, F, G, H, I, J, K, M, N, O, P, Q]) anyof.Option[H] {
	return anyof.AndThen(v.Left(), RRR[A, B, C, D, E, F, G, H])
}

// RLLL returns the right-left-left-left leaf if it exists.
func RLLL[A, B, C, D, E, F, G, H, I, J, K, M, N, O, P, Q any](v AnyOf16[A, B, C, D, E, F, G, H, I, J, K, M, N, O, P, Q]) anyof.Option[I] {
	return anyof.AndThen(v.Right(), LLL[I, J, K, M, N, O, P, Q])
}

// RLLR returns the right-left-left-right leaf if it exists.
func RLLR[A, B, C, D, E, F, G, H, I, J, K, M, N, O, P, Q any](v AnyOf16[A, B, C, D, E, F, G, H, I, J, K, M, N, O, P, Q]) anyof.Option[J] {
	return anyof.AndThen(v.Right(), LLR[I, J, K, M, N, O, P, Q])
}

// RLRL returns the right-left-right-left leaf if it exists.
func RLRL[A, B, C, D, E, F, G, H, I, J, K, M, N, O, P, Q any](v AnyOf16[A, B, C, D, E, F, G, H, I, J, K, M, N, O, P, Q]) anyof.Option[K] {
	return anyof.AndThen(v.Right(), LRL[I, J, K, M, N, O, P, Q])
}

// RLRR returns the right-left-right-right leaf if it exists.
func RLRR[A, B, C, D, E, F, G, H, I, J, K, M, N, O, P, Q any](v AnyOf16[A, B, C, D, E, F, G, H, I, J, K, M, N, O, P, Q]) anyof.Option[M] {
	return anyof.AndThen(v.Right(), LRR[I, J, K, M, N, O, P, Q])
}

// RRLL returns the right-right-left-left leaf if it exists.
func RRLL[A, B, C, D, E, F, G, H, I, J, K, M, N, O, P, Q any](v AnyOf16[A, B, C, D, E, F, G, H, I, J, K, M, N, O, P, Q]) anyof.Option[N] {
	return anyof.AndThen(v.Right(), RLL[I, J, K, M, N, O, P, Q])
}

// RRLR returns the right-right-left-right leaf if it exists.
func RRLR[A, B, C, D, E, F, G, H, I, J, K, M, N, O, P, Q any](v AnyOf16[A, B, C, D, E, F, G, H, I, J, K, M, N, O, P, Q]) anyof.Option[O] {
	return anyof.AndThen(v.Right(), RLR[I, J, K, M, N, O, P, Q])
}

// RRRL returns the right-right-right-left leaf if it exists.
func RRRL[A, B, C, D, E, F, G, H, I, J, K, M, N, O, P, Q any](v AnyOf16[A, B, C, D, E, F, G, H, I, J, K, M, N, O, P, Q]) anyof.Option[P] {
	return anyof.AndThen(v.Right(), RRL[I, J, K, M, N, O, P, Q])
}

// RRRR returns the right-right-right-right leaf if it exists.
func RRRR[A, B, C, D, E, F, G, H, I, J, K, M, N, O, P, Q any](v AnyOf16[A, B, C, D, E, F, G, H, I, J, K, M, N, O, P, Q]) anyof.Option[Q] {
	return anyof.AndThen(v.Right(), RRR[I, J, K, M, N, O, P, Q])
}

// Opt16 decomposes an AnyOf16 into one optional value per leaf.
func Opt16[A, B, C, D, E, F, G, H, I, J, K, M, N, O, P, Q any](v AnyOf16[A, B, C, D, E, F, G, H, I, J, K, M, N, O, P, Q]) (
	anyof.Option[A], anyof.Option[B], anyof.Option[C], anyof.Option[D],
	anyof.Option[E], anyof.Option[F], anyof.Option[G], anyof.Option[H],
	anyof.Option[I], anyof.Option[J], anyof.Option[K], anyof.Option[M],
	anyof.Option[N], anyof.Option[O], anyof.Option[P], anyof.Option[Q],
) {
	return LLLL(v), LLLR(v), LLRL(v), LLRR(v), LRLL(v), LRLR(v), LRRL(v), LRRR(v),
		RLLL(v), RLLR(v), RLRL(v), RLRR(v), RRLL(v), RRLR(v), RRRL(v), RRRR(v)
}
