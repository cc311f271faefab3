package anyof

import (
	"strconv"
	"strings"
	"testing"
)

func TestEitherOf_Cases(t *testing.T) {
	left := LeftOf[int, string](42)
	right := RightOf[int, string]("hello")

	if !left.IsLeft() || left.IsRight() {
		t.Fatalf("expected LeftOf to be the left case")
	}
	if !right.IsRight() || right.IsLeft() {
		t.Fatalf("expected RightOf to be the right case")
	}

	if got := left.Left(); got != Some(42) {
		t.Fatalf("expected Some(42), got %v", got)
	}
	if got := left.Right(); got.IsDefined() {
		t.Fatalf("expected empty right slot, got %v", got)
	}
}

func TestEitherOf_Opt2MatchesDecompose(t *testing.T) {
	for _, e := range []EitherOf[int, string]{LeftOf[int, string](1), RightOf[int, string]("r")} {
		if e.Opt2() != Decompose[int, string](e) {
			t.Fatalf("Opt2 disagrees with Decompose for %v", e)
		}
	}
}

func TestEitherOf_Unwraps(t *testing.T) {
	left := LeftOf[int, string](5)
	right := RightOf[int, string]("x")

	if got := left.LeftOr(7); got != 5 {
		t.Fatalf("expected present value 5, got %d", got)
	}
	if got := right.LeftOr(7); got != 7 {
		t.Fatalf("expected fallback 7, got %d", got)
	}
	if got := right.LeftOrElse(func() int { return 9 }); got != 9 {
		t.Fatalf("expected fallback 9, got %d", got)
	}
	if got := right.LeftOrZero(); got != 0 {
		t.Fatalf("expected zero value, got %d", got)
	}
	if got := left.RightOrZero(); got != "" {
		t.Fatalf("expected empty string, got %q", got)
	}
	if got := left.UnwrapLeft(); got != 5 {
		t.Fatalf("expected 5, got %d", got)
	}
	if got := right.UnwrapRight(); got != "x" {
		t.Fatalf("expected x, got %q", got)
	}
}

func TestEitherOf_ExpectPanicsWithMessage(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("expected ExpectLeft on a right value to panic")
		}
		if msg, ok := r.(string); !ok || !strings.Contains(msg, "needed left") {
			t.Fatalf("expected supplied message, got %v", r)
		}
	}()
	RightOf[int, string]("x").ExpectLeft("needed left")
}

func TestEitherOf_SwapInvolution(t *testing.T) {
	left := LeftOf[int, string](42)
	swapped := left.Swap()
	if swapped != RightOf[string, int](42) {
		t.Fatalf("expected swap to flip the case, got %v", swapped)
	}
	if swapped.Swap() != left {
		t.Fatalf("expected double swap to restore the original")
	}
}

func TestEitherOf_MapRunsActiveSideOnly(t *testing.T) {
	leftRuns, rightRuns := 0, 0
	got := MapEither(LeftOf[int, string](2),
		func(l int) int { leftRuns++; return l * 3 },
		func(r string) string { rightRuns++; return r + "!" })
	if got != LeftOf[int, string](6) {
		t.Fatalf("expected Left(6), got %v", got)
	}
	if leftRuns != 1 || rightRuns != 0 {
		t.Fatalf("expected only the left closure to run, got %d/%d", leftRuns, rightRuns)
	}
}

func TestEitherOf_MapLaws(t *testing.T) {
	e := RightOf[int, string]("ab")

	identity := e.Map(func(l int) int { return l }, func(r string) string { return r })
	if identity != e {
		t.Fatalf("expected identity map to return an equal value")
	}

	f1 := func(n int) int { return n + 1 }
	g1 := func(s string) string { return s + "c" }
	f2 := strconv.Itoa
	g2 := func(s string) int { return len(s) }

	composed := MapEither(MapEither(e, f1, g1), f2, g2)
	fused := MapEither(e,
		func(n int) string { return f2(f1(n)) },
		func(s string) int { return g2(g1(s)) })
	if composed != fused {
		t.Fatalf("expected map composition law to hold: %v vs %v", composed, fused)
	}
}

func TestEitherOf_MapSingleSide(t *testing.T) {
	left := LeftOf[int, string](10)
	if got := MapEitherLeft(left, func(n int) int { return n / 2 }); got != LeftOf[int, string](5) {
		t.Fatalf("expected Left(5), got %v", got)
	}
	if got := MapEitherRight(left, func(s string) int { return len(s) }); got != LeftOf[int, int](10) {
		t.Fatalf("expected untouched Left(10), got %v", got)
	}
}

func TestEitherOf_String(t *testing.T) {
	if got := LeftOf[int, string](1).String(); got != "Left(1)" {
		t.Fatalf("expected Left(1), got %q", got)
	}
	if got := RightOf[int, string]("a").String(); got != "Right(a)" {
		t.Fatalf("expected Right(a), got %q", got)
	}
}
