package mesh

import (
	"errors"
	"testing"
)

func TestNewAxisValidation(t *testing.T) {
	if _, err := NewAxis(); !errors.Is(err, ErrEmptyAxis) {
		t.Errorf("expected ErrEmptyAxis, got %v", err)
	}
	if _, err := NewAxis(0, 1, 1); !errors.Is(err, ErrNotIncreasing) {
		t.Errorf("expected ErrNotIncreasing for repeated tick, got %v", err)
	}
	if _, err := NewAxis(0, 2, 1); !errors.Is(err, ErrNotIncreasing) {
		t.Errorf("expected ErrNotIncreasing for decreasing tick, got %v", err)
	}
	if _, err := NewAxis(-1, 0, 0.5, 3); err != nil {
		t.Errorf("valid axis rejected: %v", err)
	}
}

func TestAxisRefine(t *testing.T) {
	a := MustAxis(0, 1, 4, 10)
	r := a.Refine()

	if r.Len() != 2*a.Len()-1 {
		t.Fatalf("refined length = %d, want %d", r.Len(), 2*a.Len()-1)
	}

	// Originals preserved exactly at even positions.
	for i := 0; i < a.Len(); i++ {
		if r.At(2*i) != a.At(i) {
			t.Errorf("tick %d not preserved: got %g, want %g", i, r.At(2*i), a.At(i))
		}
	}

	// Midpoints are exact arithmetic means.
	for i := 1; i < a.Len(); i++ {
		want := (a.At(i-1) + a.At(i)) / 2
		if r.At(2*i-1) != want {
			t.Errorf("midpoint %d = %g, want %g", i, r.At(2*i-1), want)
		}
	}
}

func TestAxisRefineSingleTick(t *testing.T) {
	a := MustAxis(3.5)
	r := a.Refine()
	if r.Len() != 1 || r.At(0) != 3.5 {
		t.Errorf("refining a single tick should be the identity, got %v", r)
	}
}

func TestAxisRefineRepeated(t *testing.T) {
	a := MustAxis(0, 100)
	for i := 0; i < 3; i++ {
		a = a.Refine()
	}
	if a.Len() != 9 {
		t.Fatalf("three refinements of 2 ticks should give 9, got %d", a.Len())
	}
	for i := 0; i < a.Len(); i++ {
		if a.At(i) != float64(i)*12.5 {
			t.Errorf("tick %d = %g, want %g", i, a.At(i), float64(i)*12.5)
		}
	}
}

func TestUniformAxis(t *testing.T) {
	a := UniformAxis(0, 10, 200)
	if a.Len() != 21 {
		t.Fatalf("len = %d, want 21", a.Len())
	}
	if a.At(0) != 0 || a.At(20) != 200 {
		t.Errorf("endpoints = %g, %g; want 0, 200", a.At(0), a.At(20))
	}
}

func TestAxisString(t *testing.T) {
	a := MustAxis(0, 0.5, 2)
	if s := a.String(); s != "(0 0.5 2)" {
		t.Errorf("String() = %q, want %q", s, "(0 0.5 2)")
	}
}

func TestAxisTicksIsCopy(t *testing.T) {
	a := MustAxis(1, 2, 3)
	ticks := a.Ticks()
	ticks[0] = -99
	if a.At(0) != 1 {
		t.Error("mutating Ticks() result must not affect the axis")
	}
}
