package anyof

import (
	"strconv"
	"testing"
)

func TestOption_SomeAndNone(t *testing.T) {
	s := Some(42)
	if !s.IsDefined() || s.IsEmpty() {
		t.Fatalf("expected Some(42) to be defined")
	}
	if got := s.Get(); got != 42 {
		t.Fatalf("expected 42, got %d", got)
	}

	n := None[int]()
	if n.IsDefined() || !n.IsEmpty() {
		t.Fatalf("expected None to be empty")
	}
}

func TestOption_Fallbacks(t *testing.T) {
	n := None[int]()
	if got := n.GetOrElse(7); got != 7 {
		t.Fatalf("expected fallback 7, got %d", got)
	}
	if got := n.GetOrFunc(func() int { return 9 }); got != 9 {
		t.Fatalf("expected fallback 9, got %d", got)
	}
	if got := n.GetOrZero(); got != 0 {
		t.Fatalf("expected zero value, got %d", got)
	}
	if got := Some(5).GetOrElse(7); got != 5 {
		t.Fatalf("expected present value 5, got %d", got)
	}
}

func TestOption_GetPanicsOnEmpty(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected Get on empty Option to panic")
		}
	}()
	None[int]().Get()
}

func TestOption_MapAndAndThen(t *testing.T) {
	mapped := MapOption(Some(21), func(n int) string { return strconv.Itoa(n * 2) })
	if mapped != Some("42") {
		t.Fatalf("expected Some(42), got %v", mapped)
	}
	if got := MapOption(None[int](), strconv.Itoa); got.IsDefined() {
		t.Fatalf("expected mapping None to stay None, got %v", got)
	}

	chained := AndThen(Some(3), func(n int) Option[int] {
		if n > 0 {
			return Some(n * n)
		}
		return None[int]()
	})
	if chained != Some(9) {
		t.Fatalf("expected Some(9), got %v", chained)
	}
	if got := AndThen(None[int](), func(n int) Option[int] { return Some(n) }); got.IsDefined() {
		t.Fatalf("expected chaining from None to stay None, got %v", got)
	}
}

func TestOption_String(t *testing.T) {
	if got := Some(1).String(); got != "Some(1)" {
		t.Fatalf("expected Some(1), got %q", got)
	}
	if got := None[int]().String(); got != "None" {
		t.Fatalf("expected None, got %q", got)
	}
}
