package anyof

import (
	"strconv"
	"testing"
)

func TestBothOf_ConstructionAndCouple(t *testing.T) {
	b := NewBothOf(10, "right")
	if got := b.IntoCouple(); got != NewCouple(10, "right") {
		t.Fatalf("expected (10, right), got %v", got)
	}
	if FromCouple(NewCouple(10, "right")) != b {
		t.Fatalf("expected FromCouple to round-trip with IntoCouple")
	}
}

func TestBothOf_ProbesAlwaysPopulated(t *testing.T) {
	b := NewBothOf(1, "x")
	if !b.IsLeft() || !b.IsRight() {
		t.Fatalf("expected both cases to be reported present")
	}
	if b.Left() != Some(1) || b.Right() != Some("x") {
		t.Fatalf("expected both probes populated, got %v / %v", b.Left(), b.Right())
	}
	if b.Opt2() != Decompose[int, string](b) {
		t.Fatalf("Opt2 disagrees with Decompose")
	}
}

func TestBothOf_UnwrapsNeverFallBack(t *testing.T) {
	b := NewBothOf(3, "y")
	if got := b.LeftOrElse(func() int { t.Fatal("fallback must not run"); return 0 }); got != 3 {
		t.Fatalf("expected 3, got %d", got)
	}
	if got := b.RightOr("other"); got != "y" {
		t.Fatalf("expected y, got %q", got)
	}
	if b.UnwrapLeft() != 3 || b.UnwrapRight() != "y" {
		t.Fatalf("expected unwraps to return the stored values")
	}
	if b.ExpectLeft("unused") != 3 {
		t.Fatalf("expected ExpectLeft to return the stored value")
	}
}

func TestBothOf_IntoEitherSides(t *testing.T) {
	b := NewBothOf(100, "unused")
	if got := b.IntoLeft(); got != LeftOf[int, string](100) {
		t.Fatalf("expected Left(100), got %v", got)
	}
	if got := b.IntoRight(); got != RightOf[int, string]("unused") {
		t.Fatalf("expected Right(unused), got %v", got)
	}
}

func TestBothOf_SwapInvolution(t *testing.T) {
	b := NewBothOf(42, "example")
	s := b.Swap()
	if s != NewBothOf("example", 42) {
		t.Fatalf("expected fields exchanged, got %v", s)
	}
	if s.Swap() != b {
		t.Fatalf("expected double swap to restore the original")
	}
}

func TestBothOf_MapRunsBothClosures(t *testing.T) {
	runs := 0
	got := MapBoth(NewBothOf(2, "text"),
		func(l int) int { runs++; return l * 2 },
		func(r string) int { runs++; return len(r) })
	if got != NewBothOf(4, 4) {
		t.Fatalf("expected Both(4, 4), got %v", got)
	}
	if runs != 2 {
		t.Fatalf("expected both closures to run, got %d", runs)
	}
}

func TestBothOf_MapLaws(t *testing.T) {
	b := NewBothOf(2, "ab")

	if b.Map(func(l int) int { return l }, func(r string) string { return r }) != b {
		t.Fatalf("expected identity map to return an equal value")
	}

	f1 := func(n int) int { return n + 1 }
	g1 := func(s string) string { return s + "c" }
	composed := MapBoth(MapBoth(b, f1, g1), strconv.Itoa, func(s string) int { return len(s) })
	fused := MapBoth(b,
		func(n int) string { return strconv.Itoa(f1(n)) },
		func(s string) int { return len(g1(s)) })
	if composed != fused {
		t.Fatalf("expected map composition law to hold: %v vs %v", composed, fused)
	}
}

func TestBothOf_MapSingleSide(t *testing.T) {
	b := NewBothOf(2, "ab")
	if got := MapBothLeft(b, func(n int) int { return n * 5 }); got != NewBothOf(10, "ab") {
		t.Fatalf("expected Both(10, ab), got %v", got)
	}
	if got := MapBothRight(b, func(s string) int { return len(s) }); got != NewBothOf(2, 2) {
		t.Fatalf("expected Both(2, 2), got %v", got)
	}
}

func TestBothOf_String(t *testing.T) {
	if got := NewBothOf(1, "two").String(); got != "Both(1, two)" {
		t.Fatalf("expected Both(1, two), got %q", got)
	}
}
