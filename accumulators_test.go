package hepce

import "testing"

func TestCostAccumulatorAddsPerCategory(t *testing.T) {
	c := NewCostAccumulator()
	c.AddCost(10, 9, CostBehavior)
	c.AddCost(5, 4.5, CostBehavior)
	c.AddCost(100, 90, CostLiver)

	costs := c.GetCosts()
	if costs[CostBehavior].Nominal != 15 || costs[CostBehavior].Discounted != 13.5 {
		t.Fatalf("unexpected CostBehavior totals: %+v", costs[CostBehavior])
	}
	nominal, discounted := c.GetTotals()
	if nominal != 115 || discounted != 103.5 {
		t.Fatalf("unexpected grand totals: nominal=%v discounted=%v", nominal, discounted)
	}
}

func TestUtilityAccumulatorDefaultsToOne(t *testing.T) {
	u := NewUtilityAccumulator()
	for _, cat := range AllUtilityCategories() {
		if v := u.GetUtilities()[cat]; v != 1 {
			t.Fatalf("category %s should default to 1, got %v", cat, v)
		}
	}
}

func TestSetUtilityRejectsOutOfRange(t *testing.T) {
	u := NewUtilityAccumulator()
	if err := u.SetUtility(1.5, UtilityLiver); err == nil {
		t.Fatal("expected InvalidUtility error for value > 1")
	}
	if err := u.SetUtility(-0.1, UtilityLiver); err == nil {
		t.Fatal("expected InvalidUtility error for value < 0")
	}
	if err := u.SetUtility(0.5, UtilityLiver); err != nil {
		t.Fatalf("unexpected error for valid value: %v", err)
	}
}

func TestAccumulateTotalUtilityMinAndProduct(t *testing.T) {
	u := NewUtilityAccumulator()
	if err := u.SetUtility(0.5, UtilityLiver); err != nil {
		t.Fatal(err)
	}
	if err := u.SetUtility(0.8, UtilityBehavior); err != nil {
		t.Fatal(err)
	}
	u.AccumulateTotalUtility(0, 0)

	total := u.GetTotalUtility()
	if total.MinUtil != 0.5 {
		t.Fatalf("expected min utility 0.5, got %v", total.MinUtil)
	}
	// product across all 7 categories: 0.5 * 0.8 * 1^5
	want := 0.5 * 0.8
	if diff := total.MultUtil - want; diff > 1e-9 || diff < -1e-9 {
		t.Fatalf("expected product utility %v, got %v", want, total.MultUtil)
	}
}

func TestDiscountReducesPresentValue(t *testing.T) {
	v := Discount(100, 0.03, 12)
	if v >= 100 {
		t.Fatalf("discounted value should be less than nominal, got %v", v)
	}
	if Discount(100, 0, 12) != 100 {
		t.Fatalf("zero discount rate should leave value unchanged")
	}
}

func TestRateProbabilityRoundTrip(t *testing.T) {
	for _, p := range []float64{0.01, 0.1, 0.5, 0.9} {
		r := ProbabilityToRate(p)
		back := RateToProbability(r)
		if diff := back - p; diff > 1e-9 || diff < -1e-9 {
			t.Fatalf("round trip mismatch for p=%v: got %v", p, back)
		}
	}
}
