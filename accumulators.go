package hepce

// CostPair is the nominal/discounted pair tracked per CostCategory.
type CostPair struct {
	Nominal    float64
	Discounted float64
}

// CostAccumulator maintains a running nominal/discounted total per
// CostCategory (spec §4.2). Zero value is not usable; use
// NewCostAccumulator.
type CostAccumulator struct {
	totals map[CostCategory]CostPair
}

// NewCostAccumulator creates an accumulator with every category
// initialized to zero.
func NewCostAccumulator() *CostAccumulator {
	c := &CostAccumulator{totals: make(map[CostCategory]CostPair, len(AllCostCategories()))}
	for _, cat := range AllCostCategories() {
		c.totals[cat] = CostPair{}
	}
	return c
}

// AddCost adds base/discounted component-wise to category's running
// total.
func (c *CostAccumulator) AddCost(base, discounted float64, category CostCategory) {
	p := c.totals[category]
	p.Nominal += base
	p.Discounted += discounted
	c.totals[category] = p
}

// GetTotals returns the sum across all categories as (nominal,
// discounted).
func (c *CostAccumulator) GetTotals() (nominal, discounted float64) {
	for _, p := range c.totals {
		nominal += p.Nominal
		discounted += p.Discounted
	}
	return nominal, discounted
}

// GetCosts returns a copy of the full per-category mapping.
func (c *CostAccumulator) GetCosts() map[CostCategory]CostPair {
	out := make(map[CostCategory]CostPair, len(c.totals))
	for k, v := range c.totals {
		out[k] = v
	}
	return out
}

// UtilityAccumulator holds the current per-category utility plus the
// lifetime min/product aggregations, nominal and discounted (spec
// §4.3). Two QALY combining conventions are tracked in parallel so
// downstream analyses may choose either.
type UtilityAccumulator struct {
	current map[UtilityCategory]float64

	minUtil           float64
	multUtil          float64
	discountMinUtil   float64
	discountMultUtil  float64
}

// NewUtilityAccumulator creates an accumulator with every category
// defaulted to 1 (fully healthy).
func NewUtilityAccumulator() *UtilityAccumulator {
	u := &UtilityAccumulator{current: make(map[UtilityCategory]float64, len(AllUtilityCategories()))}
	for _, cat := range AllUtilityCategories() {
		u.current[cat] = 1
	}
	return u
}

// SetUtility overwrites the current value for category. Fails with
// InvalidUtility if value is outside [0,1].
func (u *UtilityAccumulator) SetUtility(value float64, category UtilityCategory) error {
	if value < 0 || value > 1 {
		return InvalidUtility(value, category)
	}
	u.current[category] = value
	return nil
}

// AccumulateTotalUtility adds this timestep's contribution to the
// lifetime totals: the minimum of all current categories to minUtil, and
// the product of all current categories to multUtil, plus their
// Discount-adjusted counterparts at time t.
func (u *UtilityAccumulator) AccumulateTotalUtility(discountRate float64, t int) {
	minV := 1.0
	multV := 1.0
	first := true
	for _, cat := range AllUtilityCategories() {
		v := u.current[cat]
		if first {
			minV = v
			first = false
		} else if v < minV {
			minV = v
		}
		multV *= v
	}
	u.minUtil += minV
	u.multUtil += multV
	u.discountMinUtil += Discount(minV, discountRate, t)
	u.discountMultUtil += Discount(multV, discountRate, t)
}

// GetUtilities returns a copy of the current per-category utility
// mapping.
func (u *UtilityAccumulator) GetUtilities() map[UtilityCategory]float64 {
	out := make(map[UtilityCategory]float64, len(u.current))
	for k, v := range u.current {
		out[k] = v
	}
	return out
}

// TotalUtility bundles the four lifetime aggregations GetTotalUtility
// returns.
type TotalUtility struct {
	MinUtil          float64
	MultUtil         float64
	DiscountMinUtil  float64
	DiscountMultUtil float64
}

// GetTotalUtility returns the lifetime min/product aggregations.
func (u *UtilityAccumulator) GetTotalUtility() TotalUtility {
	return TotalUtility{
		MinUtil:          u.minUtil,
		MultUtil:         u.multUtil,
		DiscountMinUtil:  u.discountMinUtil,
		DiscountMultUtil: u.discountMultUtil,
	}
}
