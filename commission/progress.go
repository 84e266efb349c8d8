/*
progress.go - Progress records and monthly aggregation

PURPOSE:
  StoreProgress and IndividualProgress are the raw inputs to scoring.
  Aggregation sums every record whose date falls in the target month into
  a single MetricSet; there is no incremental counter to keep consistent,
  the aggregate is re-derived from the full log on every read.

RECORD SHAPES:
  StoreProgress:      one record per day in practice (not enforced unique
                      by date), store-wide totals for the full metric set
  IndividualProgress: one record per entry event, owned by a user id; the
                      populated fields depend on the owner's role

CONTRACT:
  - month membership is a prefix match of the day key
  - absent metric values count as 0
  - empty input yields an all-zero aggregate, never an error
*/
package commission

// =============================================================================
// STORE PROGRESS - store-wide daily totals
// =============================================================================

type StoreProgress struct {
	ID          string  `json:"id"`
	Date        DateKey `json:"date"`
	Pesos       float64 `json:"pesos"`
	Tickets     float64 `json:"tickets"`
	Units       float64 `json:"units"`
	Footwear    float64 `json:"footwear"`
	Apparel     float64 `json:"apparel"`
	Shirts      float64 `json:"shirts"`
	Accessories float64 `json:"accessories"`
	Socks       float64 `json:"socks"`
	CreditPesos float64 `json:"credit_pesos"`
	CreditUnits float64 `json:"credit_units"`
}

// Metrics returns the record as a MetricSet.
func (p StoreProgress) Metrics() MetricSet {
	return MetricSet{
		MetricPesos:       p.Pesos,
		MetricTickets:     p.Tickets,
		MetricUnits:       p.Units,
		MetricFootwear:    p.Footwear,
		MetricApparel:     p.Apparel,
		MetricShirts:      p.Shirts,
		MetricAccessories: p.Accessories,
		MetricSocks:       p.Socks,
		MetricCreditPesos: p.CreditPesos,
		MetricCreditUnits: p.CreditUnits,
	}
}

// =============================================================================
// INDIVIDUAL PROGRESS - per-user entry events
// =============================================================================

// IndividualProgress is one progress entry owned by a user. Seller entries
// populate the sales metrics; cashier entries populate socks and the credit
// metrics. Unpopulated fields read as 0 either way.
type IndividualProgress struct {
	ID          string  `json:"id"`
	UserID      string  `json:"user_id"`
	Date        DateKey `json:"date"`
	Pesos       float64 `json:"pesos,omitempty"`
	Tickets     float64 `json:"tickets,omitempty"`
	Units       float64 `json:"units,omitempty"`
	Footwear    float64 `json:"footwear,omitempty"`
	Apparel     float64 `json:"apparel,omitempty"`
	Shirts      float64 `json:"shirts,omitempty"`
	Accessories float64 `json:"accessories,omitempty"`
	Socks       float64 `json:"socks,omitempty"`
	CreditPesos float64 `json:"credit_pesos,omitempty"`
	CreditUnits float64 `json:"credit_units,omitempty"`
}

// Metrics returns the record as a MetricSet.
func (p IndividualProgress) Metrics() MetricSet {
	return MetricSet{
		MetricPesos:       p.Pesos,
		MetricTickets:     p.Tickets,
		MetricUnits:       p.Units,
		MetricFootwear:    p.Footwear,
		MetricApparel:     p.Apparel,
		MetricShirts:      p.Shirts,
		MetricAccessories: p.Accessories,
		MetricSocks:       p.Socks,
		MetricCreditPesos: p.CreditPesos,
		MetricCreditUnits: p.CreditUnits,
	}
}

// =============================================================================
// AGGREGATION
// =============================================================================

// AggregateStore sums all store-level records falling in month.
func AggregateStore(records []StoreProgress, month Month) MetricSet {
	total := MetricSet{}
	for _, r := range records {
		if month.Contains(r.Date) {
			total.Add(r.Metrics())
		}
	}
	return total
}

// AggregateIndividual sums all of userID's records falling in month.
func AggregateIndividual(records []IndividualProgress, userID string, month Month) MetricSet {
	total := MetricSet{}
	for _, r := range records {
		if r.UserID == userID && month.Contains(r.Date) {
			total.Add(r.Metrics())
		}
	}
	return total
}
