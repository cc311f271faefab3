// Package anyof models the four-state combination of two optional values:
// neither, left only, right only, or both.
//
// Highlights:
// - Couple/Pair: plain two-slot product, the substrate for everything else
// - Option: one optional slot; Opt2 is the canonical pair-of-options form
// - EitherOf: exactly one of left/right (LeftOf/RightOf)
// - BothOf: both left and right, always (NewBothOf)
// - AnyOf: the full union (New/NewNeither/NewLeft/NewRight/NewBoth),
//   with Combine/Filter to merge or mask slots between two values
// - LeftOrRight/Unwrap/Swap/Map: capability interfaces any custom type can
//   implement to join the same generic utilities
//
// Every type is an immutable value: operations consume their receiver and
// return a new value, so values are safe to share between goroutines and
// usable as map keys whenever their payload types are comparable.
//
// Type-changing transforms are package functions (MapEither, MapBoth,
// MapAny) because Go methods cannot introduce type parameters; the Map
// methods on each type cover the type-preserving case.
package anyof
