/*
score.go - Weighted score composition per role

PURPOSE:
  The core business rule. Each role has a fixed weighting scheme over
  capped per-metric achievements, producing a composite score in roughly
  [0, 1.2]. The arithmetic is one reusable primitive - a weighted sum of
  capped achievements over a metric -> weight table - applied with a
  different table per role.

COMPOSITION SHAPES:
  Manager:  single-tier. 8 weighted store metrics, weights sum to 1.0.
  Seller:   two-tier. Own performance (weight 0.7) is itself a weighted
            sum over the seller's goal set; store performance (weight 0.3)
            is the capped store-money achievement shared by the whole
            team for the month.
  Cashier:  same two-tier shape. The own-performance weights sum to 0.75
            (socks 0.25 + credit sub-score 0.50), not 1.0. That asymmetry
            is in the source rules and is preserved verbatim; do not
            rebalance it.

NOTE:
  Achievement values in the breakdown lines stay uncapped so callers can
  show the literal percentage; only the weighted terms use the cap.

SEE ALSO:
  - achievement.go: ratio and cap definitions
  - tiers.go:       maps the final score to a payout
*/
package commission

// =============================================================================
// WEIGHT TABLES
// =============================================================================

// WeightedMetric pairs a metric with its composition weight.
type WeightedMetric struct {
	Metric Metric  `json:"metric" yaml:"metric"`
	Weight float64 `json:"weight" yaml:"weight"`
	Label  string  `json:"label,omitempty" yaml:"label"`
}

// WeightTable is an ordered metric -> weight table for one composition.
type WeightTable []WeightedMetric

// TotalWeight returns the sum of the table's weights.
func (t WeightTable) TotalWeight() float64 {
	var sum float64
	for _, wm := range t {
		sum += wm.Weight
	}
	return sum
}

// ManagerWeights is the store-performance table for the manager
// composite. The weights sum to exactly 1.0.
func ManagerWeights() WeightTable {
	return WeightTable{
		{Metric: MetricPesos, Weight: 0.25, Label: "Store sales ($)"},
		{Metric: MetricFootwear, Weight: 0.22, Label: "Footwear units"},
		{Metric: MetricApparel, Weight: 0.10, Label: "Apparel units"},
		{Metric: MetricShirts, Weight: 0.10, Label: "Shirt units"},
		{Metric: MetricAccessories, Weight: 0.05, Label: "Accessory units"},
		{Metric: MetricSocks, Weight: 0.03, Label: "Sock units"},
		{Metric: MetricCreditPesos, Weight: 0.125, Label: "Credit program ($)"},
		{Metric: MetricCreditUnits, Weight: 0.125, Label: "Credit program units"},
	}
}

// Two-tier split shared by sellers and cashiers: own performance carries
// 70% of the final score, store performance the remaining 30%.
const (
	OwnShare   = 0.7
	StoreShare = 0.3
)

// Seller own-performance weights. The quantity-group weights sum to 0.50,
// so the groups split 0.25 (money) / 0.50 (quantities) / 0.25 (credit).
const (
	sellerMoneyWeight       = 0.25
	sellerFootwearWeight    = 0.25
	sellerApparelWeight     = 0.10
	sellerShirtsWeight      = 0.10
	sellerAccessoriesWeight = 0.05
	sellerCreditPesosWeight = 0.125
	sellerCreditUnitsWeight = 0.125

	sellerQuantityGroupShare = 0.50
	sellerCreditGroupShare   = 0.25
)

// Cashier own-performance weights. Socks 0.25 plus a 0.5/0.5 credit
// sub-score weighted 0.50 - a total of 0.75, preserved as-is.
const (
	cashierSocksWeight      = 0.25
	cashierCreditGroupShare = 0.50
	cashierCreditPesosShare = 0.5
	cashierCreditUnitsShare = 0.5
)

// =============================================================================
// WEIGHTED SUM PRIMITIVE
// =============================================================================

// TargetSource resolves a goal value per metric. TeamGoalSet,
// SellerGoalSet, CashierGoalSet and UserGoal all satisfy it.
type TargetSource interface {
	Target(Metric) float64
}

// MetricScore is one line of a composition breakdown.
type MetricScore struct {
	Metric      Metric  `json:"metric"`
	Label       string  `json:"label"`
	Actual      float64 `json:"actual"`
	Goal        float64 `json:"goal"`
	Achievement float64 `json:"achievement"` // uncapped
	Weight      float64 `json:"weight"`
	Weighted    float64 `json:"weighted"` // capped achievement x weight
}

// WeightedScore computes the weighted sum of capped achievements over the
// table, returning the composite and the per-metric breakdown.
func WeightedScore(actuals MetricSet, targets TargetSource, table WeightTable) (float64, []MetricScore) {
	lines := make([]MetricScore, 0, len(table))
	var sum float64
	for _, wm := range table {
		actual := actuals.Get(wm.Metric)
		goal := targets.Target(wm.Metric)
		ach := Achievement(actual, goal)
		weighted := CapScore(ach) * wm.Weight
		sum += weighted
		lines = append(lines, MetricScore{
			Metric:      wm.Metric,
			Label:       wm.Label,
			Actual:      actual,
			Goal:        goal,
			Achievement: ach,
			Weight:      wm.Weight,
			Weighted:    weighted,
		})
	}
	return sum, lines
}

// StorePerformance is the capped store-money achievement for the month:
// total store pesos against the team money goal. It is identical for
// every seller and cashier in a given month.
func StorePerformance(storeAgg MetricSet, team TeamGoalSet) float64 {
	return CappedAchievement(storeAgg.Get(MetricPesos), team.Target(MetricPesos))
}

// =============================================================================
// MANAGER COMPOSITE
// =============================================================================

// ManagerScore is the manager's single-tier composite over store metrics.
type ManagerScore struct {
	Lines []MetricScore `json:"lines"`
	Final float64       `json:"final"`
}

// ComposeManager scores the store aggregate against the team goal using
// the given weight table (ManagerWeights() unless a plan overrides it).
func ComposeManager(storeAgg MetricSet, team TeamGoalSet, table WeightTable) ManagerScore {
	final, lines := WeightedScore(storeAgg, team, table)
	return ManagerScore{Lines: lines, Final: final}
}

// =============================================================================
// SELLER COMPOSITE
// =============================================================================

// SellerScore is a seller's two-tier composite.
type SellerScore struct {
	Own   float64 `json:"own"`
	Store float64 `json:"store"`
	Final float64 `json:"final"`

	// Group achievements as surfaced to the seller: money is the capped
	// money achievement, Quantities and Credit are their weighted group
	// scores normalized back to the group's share.
	Money      float64 `json:"money"`
	Quantities float64 `json:"quantities"`
	Credit     float64 `json:"credit"`
}

// ComposeSeller computes a seller's composite from their own monthly
// aggregate and goal set plus the store aggregate and team goal.
func ComposeSeller(ownAgg MetricSet, goals SellerGoalSet, storeAgg MetricSet, team TeamGoalSet) SellerScore {
	money := CappedAchievement(ownAgg.Get(MetricPesos), goals.Pesos)

	quantities := CappedAchievement(ownAgg.Get(MetricFootwear), goals.Footwear)*sellerFootwearWeight +
		CappedAchievement(ownAgg.Get(MetricApparel), goals.Apparel)*sellerApparelWeight +
		CappedAchievement(ownAgg.Get(MetricShirts), goals.Shirts)*sellerShirtsWeight +
		CappedAchievement(ownAgg.Get(MetricAccessories), goals.Accessories)*sellerAccessoriesWeight

	credit := CappedAchievement(ownAgg.Get(MetricCreditPesos), goals.CreditPesos)*sellerCreditPesosWeight +
		CappedAchievement(ownAgg.Get(MetricCreditUnits), goals.CreditUnits)*sellerCreditUnitsWeight

	own := money*sellerMoneyWeight + quantities + credit
	store := StorePerformance(storeAgg, team)
	final := own*OwnShare + store*StoreShare

	return SellerScore{
		Own:        own,
		Store:      store,
		Final:      final,
		Money:      money,
		Quantities: quantities / sellerQuantityGroupShare,
		Credit:     credit / sellerCreditGroupShare,
	}
}

// =============================================================================
// CASHIER COMPOSITE
// =============================================================================

// CashierScore is a cashier's two-tier composite.
type CashierScore struct {
	Own   float64 `json:"own"`
	Store float64 `json:"store"`
	Final float64 `json:"final"`

	Socks  float64 `json:"socks"`  // capped sock achievement
	Credit float64 `json:"credit"` // 0.5/0.5 weighted credit sub-score
}

// ComposeCashier computes a cashier's composite. The own-performance
// weights intentionally sum to 0.75 - see the package note above.
func ComposeCashier(ownAgg MetricSet, goals CashierGoalSet, storeAgg MetricSet, team TeamGoalSet) CashierScore {
	socks := CappedAchievement(ownAgg.Get(MetricSocks), goals.Socks)
	credit := CappedAchievement(ownAgg.Get(MetricCreditPesos), goals.CreditPesos)*cashierCreditPesosShare +
		CappedAchievement(ownAgg.Get(MetricCreditUnits), goals.CreditUnits)*cashierCreditUnitsShare

	own := socks*cashierSocksWeight + credit*cashierCreditGroupShare
	store := StorePerformance(storeAgg, team)
	final := own*OwnShare + store*StoreShare

	return CashierScore{
		Own:    own,
		Store:  store,
		Final:  final,
		Socks:  socks,
		Credit: credit,
	}
}
