package factory_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcbanda/commission-engine/commission"
	"github.com/mcbanda/commission-engine/factory"
)

func TestParsePlan_YAMLTierOverride(t *testing.T) {
	// GIVEN: A YAML plan overriding only the seller tier
	// WHEN: Parsing
	// THEN: The seller anchors change, everything else keeps the defaults

	data := []byte(`
tiers:
  seller: {min: 50000, theo: 150000, max: 200000}
`)

	plan, err := factory.ParsePlan(data, true)
	require.NoError(t, err)

	seller := plan.Tiers[commission.TierSeller]
	assert.Equal(t, "50000", seller.Min.String())
	assert.Equal(t, "150000", seller.Theo.String())
	assert.Equal(t, "200000", seller.Max.String())

	defaults := commission.DefaultPlan()
	assert.True(t, plan.Tiers[commission.TierManager].Max.Equal(defaults.Tiers[commission.TierManager].Max))
	assert.Equal(t, defaults.ManagerWeights, plan.ManagerWeights)
}

func TestParsePlan_JSONManagerWeights(t *testing.T) {
	data := []byte(`{
		"manager_weights": [
			{"metric": "pesos", "weight": 0.5, "label": "Ventas ($)"},
			{"metric": "footwear", "weight": 0.5, "label": "Calzado"}
		]
	}`)

	plan, err := factory.ParsePlan(data, false)
	require.NoError(t, err)

	require.Len(t, plan.ManagerWeights, 2)
	assert.Equal(t, commission.MetricPesos, plan.ManagerWeights[0].Metric)
	assert.Equal(t, 0.5, plan.ManagerWeights[0].Weight)
	assert.Equal(t, "Ventas ($)", plan.ManagerWeights[0].Label)
}

func TestParsePlan_EmptyFileKeepsDefaults(t *testing.T) {
	plan, err := factory.ParsePlan([]byte(`{}`), false)
	require.NoError(t, err)
	assert.Equal(t, commission.DefaultPlan(), plan)
}

func TestParsePlan_Rejections(t *testing.T) {
	cases := []struct {
		name string
		data string
	}{
		{"weights off sum", `{"manager_weights": [{"metric": "pesos", "weight": 0.9}]}`},
		{"negative weight", `{"manager_weights": [{"metric": "pesos", "weight": -0.5}, {"metric": "footwear", "weight": 1.5}]}`},
		{"unknown metric", `{"manager_weights": [{"metric": "perfume", "weight": 1.0}]}`},
		{"unknown tier", `{"tiers": {"supervisor": {"min": 1, "theo": 2, "max": 3}}}`},
		{"min above theo", `{"tiers": {"seller": {"min": 100, "theo": 50, "max": 200}}}`},
		{"negative min", `{"tiers": {"seller": {"min": -1, "theo": 50, "max": 200}}}`},
		{"malformed", `{"tiers": `},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := factory.ParsePlan([]byte(tc.data), false)
			assert.Error(t, err)
		})
	}
}

func TestLoadPlanFile_ExtensionDispatch(t *testing.T) {
	dir := t.TempDir()

	yamlPath := filepath.Join(dir, "plan.yaml")
	require.NoError(t, os.WriteFile(yamlPath, []byte("tiers:\n  cashier: {min: 1000, theo: 2000, max: 3000}\n"), 0o644))

	jsonPath := filepath.Join(dir, "plan.json")
	require.NoError(t, os.WriteFile(jsonPath, []byte(`{"tiers": {"cashier": {"min": 1000, "theo": 2000, "max": 3000}}}`), 0o644))

	for _, path := range []string{yamlPath, jsonPath} {
		plan, err := factory.LoadPlanFile(path)
		require.NoError(t, err, path)
		assert.Equal(t, "2000", plan.Tiers[commission.TierCashier].Theo.String())
	}
}

func TestLoadPlanFile_Missing(t *testing.T) {
	_, err := factory.LoadPlanFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
