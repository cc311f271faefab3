package anyof

// Couple is an ordered pair of two independently typed values. It carries no
// invariant beyond arity two and is the substrate the other types build on.
type Couple[T, U any] struct {
	First  T
	Second U
}

// Pair is a Couple of two values of the same type.
type Pair[T any] = Couple[T, T]

// Opt2 is the canonical decomposed form of every variant in this package:
// two independent optional slots. All four presence combinations are valid.
type Opt2[L, R any] = Couple[Option[L], Option[R]]

func NewCouple[T, U any](first T, second U) Couple[T, U] {
	return Couple[T, U]{First: first, Second: second}
}

// Swap exchanges the two slots.
func (c Couple[T, U]) Swap() Couple[U, T] {
	return Couple[U, T]{First: c.Second, Second: c.First}
}
