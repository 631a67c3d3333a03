package engine

import "testing"

func TestNewTimeRejectsNegative(t *testing.T) {
	if _, err := NewTime(-1); err == nil {
		t.Error("expected an error for a negative time value")
	}
}

func TestNewTimeRejectsNaN(t *testing.T) {
	nan := func() float64 { var z float64; return z / z }()
	if _, err := NewTime(nan); err == nil {
		t.Error("expected an error for a NaN time value")
	}
}

func TestNewTimeAccepts(t *testing.T) {
	tm, err := NewTime(10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tm.value() != 10 {
		t.Errorf("value = %v, want 10", tm.value())
	}
}

func TestInfinityArithmetic(t *testing.T) {
	ten, _ := NewTime(10)
	if !Infinity.Add(ten).IsInfinite() {
		t.Error("Infinity + 10 should still be infinite")
	}
	if !ten.Add(Infinity).IsInfinite() {
		t.Error("10 + Infinity should still be infinite")
	}
}

func TestLessAndEqual(t *testing.T) {
	a, _ := NewTime(5)
	b, _ := NewTime(10)
	if !a.Less(b) {
		t.Error("5 should be less than 10")
	}
	if b.Less(a) {
		t.Error("10 should not be less than 5")
	}
	if !a.Equal(a) {
		t.Error("a should equal itself")
	}
}

func TestMin(t *testing.T) {
	a, _ := NewTime(5)
	b, _ := NewTime(10)
	if got := Min(a, b); !got.Equal(a) {
		t.Errorf("Min(5, 10) = %v, want 5", got)
	}
	if got := Min(b, a); !got.Equal(a) {
		t.Errorf("Min(10, 5) = %v, want 5", got)
	}
}

func TestSubPanicsOnInfiniteSubtrahend(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected a panic when subtracting +Inf")
		}
	}()
	ten, _ := NewTime(10)
	_ = ten.Sub(Infinity)
}
