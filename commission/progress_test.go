package commission_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mcbanda/commission-engine/commission"
)

func TestMonth_Contains(t *testing.T) {
	m := commission.Month("2025-03")

	assert.True(t, m.Contains("2025-03-01"))
	assert.True(t, m.Contains("2025-03-31"))
	assert.False(t, m.Contains("2025-04-01"))
	assert.False(t, m.Contains("2024-03-15"))
	assert.False(t, m.Contains(""))
}

func TestMonth_Days(t *testing.T) {
	assert.Equal(t, 31, commission.Month("2025-03").Days())
	assert.Equal(t, 28, commission.Month("2025-02").Days())
	assert.Equal(t, 29, commission.Month("2024-02").Days())
	assert.Equal(t, 0, commission.Month("not-a-month").Days())
}

func TestParseMonth(t *testing.T) {
	m, err := commission.ParseMonth("2025-03")
	assert.NoError(t, err)
	assert.Equal(t, commission.Month("2025-03"), m)

	_, err = commission.ParseMonth("2025-3")
	assert.Error(t, err)
	_, err = commission.ParseMonth("2025-03-01")
	assert.Error(t, err)
}

func TestAggregateStore_FiltersByMonth(t *testing.T) {
	// GIVEN: Records inside and outside the target month
	// WHEN: Aggregating for 2025-03
	// THEN: Only March records contribute

	records := []commission.StoreProgress{
		{ID: "1", Date: "2025-03-01", Pesos: 100000, Footwear: 10},
		{ID: "2", Date: "2025-03-15", Pesos: 50000, Footwear: 5, Socks: 2},
		{ID: "3", Date: "2025-04-01", Pesos: 999999},
		{ID: "4", Date: "2024-03-10", Pesos: 777777},
	}

	agg := commission.AggregateStore(records, "2025-03")

	assert.Equal(t, 150000.0, agg.Get(commission.MetricPesos))
	assert.Equal(t, 15.0, agg.Get(commission.MetricFootwear))
	assert.Equal(t, 2.0, agg.Get(commission.MetricSocks))
	assert.Equal(t, 0.0, agg.Get(commission.MetricTickets))
}

func TestAggregateStore_Empty(t *testing.T) {
	agg := commission.AggregateStore(nil, "2025-03")
	assert.Equal(t, 0.0, agg.Get(commission.MetricPesos))
}

func TestAggregateIndividual_FiltersByUserAndMonth(t *testing.T) {
	records := []commission.IndividualProgress{
		{ID: "1", UserID: "ana", Date: "2025-03-02", Pesos: 4000, CreditPesos: 500},
		{ID: "2", UserID: "ana", Date: "2025-03-20", Pesos: 6000},
		{ID: "3", UserID: "juan", Date: "2025-03-02", Pesos: 9999},
		{ID: "4", UserID: "ana", Date: "2025-02-28", Pesos: 1234},
	}

	agg := commission.AggregateIndividual(records, "ana", "2025-03")

	assert.Equal(t, 10000.0, agg.Get(commission.MetricPesos))
	assert.Equal(t, 500.0, agg.Get(commission.MetricCreditPesos))
}

func TestMetricSet_AddAndClone(t *testing.T) {
	a := commission.MetricSet{commission.MetricPesos: 100}
	a.Add(commission.MetricSet{commission.MetricPesos: 50, commission.MetricSocks: 3})

	assert.Equal(t, 150.0, a.Get(commission.MetricPesos))
	assert.Equal(t, 3.0, a.Get(commission.MetricSocks))

	b := a.Clone()
	b[commission.MetricPesos] = 0
	assert.Equal(t, 150.0, a.Get(commission.MetricPesos), "clone must be independent")

	var nilSet commission.MetricSet
	assert.Equal(t, 0.0, nilSet.Get(commission.MetricPesos))
}
