package engine

import "testing"

func TestCounterStartsEmpty(t *testing.T) {
	var c Counter
	if !c.Empty() {
		t.Error("a zero-value Counter should be empty")
	}
}

func TestCounterIncDec(t *testing.T) {
	var c Counter
	c.Inc()
	c.Inc()
	if c.Empty() {
		t.Error("Counter should not be empty after two Inc calls")
	}
	if err := c.Dec(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Empty() {
		t.Error("Counter should still not be empty after one of two Dec calls")
	}
	if err := c.Dec(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !c.Empty() {
		t.Error("Counter should be empty after balancing Dec calls")
	}
}

func TestCounterDecOnEmptyIsContractViolation(t *testing.T) {
	var c Counter
	err := c.Dec()
	if err == nil {
		t.Fatal("expected an error decrementing an empty counter")
	}
	if !IsContractViolation(err) {
		t.Errorf("expected a ContractViolation, got %v", err)
	}
}
