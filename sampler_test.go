package hepce

import "testing"

func TestGetDecisionReturnsValidIndex(t *testing.T) {
	s := NewSampler(42)
	weights := []float64{0.2, 0.3, 0.4}
	idx, err := s.GetDecision(weights)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if idx < 0 || idx > len(weights) {
		t.Fatalf("decision index %d out of range", idx)
	}
}

func TestGetDecisionRejectsOverweightVector(t *testing.T) {
	s := NewSampler(1)
	_, err := s.GetDecision([]float64{0.6, 0.6})
	if err == nil {
		t.Fatal("expected InvalidWeights error, got nil")
	}
	if IsFatal(err) {
		t.Fatalf("InvalidWeights should not be fatal")
	}
}

func TestGetDecisionNoneOfTheAbove(t *testing.T) {
	s := NewSampler(7)
	for i := 0; i < 1000; i++ {
		idx, err := s.GetDecision([]float64{0.0})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if idx != 1 {
			t.Fatalf("zero-weight category should never be chosen, got index %d", idx)
		}
	}
}

func TestDeriveSamplerIsStableAcrossCalls(t *testing.T) {
	a := DeriveSampler(99, 12345)
	b := DeriveSampler(99, 12345)
	for i := 0; i < 20; i++ {
		x := a.Float64()
		y := b.Float64()
		if x != y {
			t.Fatalf("derived samplers diverged at draw %d: %v != %v", i, x, y)
		}
	}
}

func TestDeriveSamplerDecorrelatesAdjacentStreams(t *testing.T) {
	a := DeriveSampler(99, 1)
	b := DeriveSampler(99, 2)
	same := 0
	for i := 0; i < 50; i++ {
		if a.Float64() == b.Float64() {
			same++
		}
	}
	if same > 1 {
		t.Fatalf("adjacent streamIDs produced %d identical draws out of 50, expected decorrelation", same)
	}
}

func TestDrawBernoulliBounds(t *testing.T) {
	s := NewSampler(5)
	if s.DrawBernoulli(0) {
		t.Fatal("p=0 should never succeed")
	}
	s2 := NewSampler(5)
	if !s2.DrawBernoulli(1) {
		t.Fatal("p=1 should always succeed")
	}
}
