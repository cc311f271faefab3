// Package anyofx provides the wider arities AnyOf4, AnyOf8 and AnyOf16,
// built by nesting anyof.AnyOf over itself so the addressable leaves double
// at every level.
//
// Highlights:
// - AnyOf4/AnyOf8/AnyOf16: generic aliases over nested AnyOf — every AnyOf
//   method (Combine, Filter, Swap, the predicates) applies to them directly
// - New4/New8/New16: build a composite from one Option per leaf; a side with
//   no populated leaf is absent rather than an empty inner value
// - LL..RR, LLL..RRR, LLLL..RRRR: flattened accessors, one per leaf path,
//   populated exactly when every nesting level on the path bears that side
// - Opt4/Opt8/Opt16: decompose a composite back into one Option per leaf
//
// The accessors introduce no combination logic of their own: each arity
// walks one level and delegates to the next-smaller one, so the case
// semantics live in anyof.AnyOf alone.
package anyofx
