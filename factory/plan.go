/*
Package factory provides JSON/YAML to commission.Plan conversion.

PURPOSE:
  Converts plan definition files into a commission.Plan. This lets an
  operator adjust tier anchors or the manager weight table for a store
  without code changes; the shipped defaults are used for anything a
  file leaves out.

FILE SCHEMA (YAML shown; JSON is the same shape):

    manager_weights:
      - metric: pesos
        weight: 0.25
        label: Store sales ($)
      # ... 8 entries, weights must sum to 1.0
    tiers:
      manager:        {min: 170000, theo: 280000, max: 384000}
      seller:         {min: 40000, theo: 140000, max: 192000}
      seller_reduced: {min: 20000, theo: 70000, max: 96000}
      cashier:        {min: 40000, theo: 80000, max: 96000}

VALIDATION:
  - manager weights reference known metrics and sum to 1.0 (epsilon 1e-9)
  - every tier satisfies 0 <= min <= theo <= max
  - unknown tier keys are rejected

KEY FEATURES:
  - Missing sections fall back to the shipped defaults
  - File format is chosen by extension (.yaml/.yml vs anything else)

SEE ALSO:
  - commission/tiers.go: Plan, TierSchedule, DefaultPlan
  - commission/score.go: WeightTable consumed by the manager composite
*/
package factory

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/mcbanda/commission-engine/commission"
)

const weightEpsilon = 1e-9

// =============================================================================
// FILE SCHEMA TYPES
// =============================================================================

// PlanFile is the serialized plan shape. Anchors are plain numbers in
// the file and converted to decimal when the Plan is built.
type PlanFile struct {
	ManagerWeights []WeightEntry       `json:"manager_weights" yaml:"manager_weights"`
	Tiers          map[string]TierFile `json:"tiers" yaml:"tiers"`
}

type WeightEntry struct {
	Metric string  `json:"metric" yaml:"metric"`
	Weight float64 `json:"weight" yaml:"weight"`
	Label  string  `json:"label" yaml:"label"`
}

type TierFile struct {
	Min  float64 `json:"min" yaml:"min"`
	Theo float64 `json:"theo" yaml:"theo"`
	Max  float64 `json:"max" yaml:"max"`
}

// =============================================================================
// PARSING
// =============================================================================

var knownMetrics = map[commission.Metric]bool{
	commission.MetricPesos:       true,
	commission.MetricTickets:     true,
	commission.MetricUnits:       true,
	commission.MetricFootwear:    true,
	commission.MetricApparel:     true,
	commission.MetricShirts:      true,
	commission.MetricAccessories: true,
	commission.MetricSocks:       true,
	commission.MetricCreditPesos: true,
	commission.MetricCreditUnits: true,
}

var knownTiers = map[commission.TierKey]bool{
	commission.TierManager:       true,
	commission.TierSeller:        true,
	commission.TierSellerReduced: true,
	commission.TierCashier:       true,
}

// ParsePlan builds a Plan from serialized bytes. yamlFormat selects the
// decoder; JSON otherwise.
func ParsePlan(data []byte, yamlFormat bool) (commission.Plan, error) {
	var file PlanFile
	var err error
	if yamlFormat {
		err = yaml.Unmarshal(data, &file)
	} else {
		err = json.Unmarshal(data, &file)
	}
	if err != nil {
		return commission.Plan{}, fmt.Errorf("parse plan: %w", err)
	}
	return buildPlan(file)
}

// LoadPlanFile reads and parses a plan file, format by extension.
func LoadPlanFile(path string) (commission.Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return commission.Plan{}, fmt.Errorf("read plan file: %w", err)
	}
	lower := strings.ToLower(path)
	isYAML := strings.HasSuffix(lower, ".yaml") || strings.HasSuffix(lower, ".yml")
	return ParsePlan(data, isYAML)
}

func buildPlan(file PlanFile) (commission.Plan, error) {
	plan := commission.DefaultPlan()

	if len(file.ManagerWeights) > 0 {
		table := make(commission.WeightTable, 0, len(file.ManagerWeights))
		for _, e := range file.ManagerWeights {
			metric := commission.Metric(e.Metric)
			if !knownMetrics[metric] {
				return commission.Plan{}, fmt.Errorf("unknown metric %q in manager weights", e.Metric)
			}
			if e.Weight < 0 {
				return commission.Plan{}, fmt.Errorf("negative weight for metric %q", e.Metric)
			}
			table = append(table, commission.WeightedMetric{
				Metric: metric,
				Weight: e.Weight,
				Label:  e.Label,
			})
		}
		if total := table.TotalWeight(); math.Abs(total-1.0) > weightEpsilon {
			return commission.Plan{}, fmt.Errorf("manager weights sum to %v, want 1.0", total)
		}
		plan.ManagerWeights = table
	}

	for key, t := range file.Tiers {
		tierKey := commission.TierKey(key)
		if !knownTiers[tierKey] {
			return commission.Plan{}, fmt.Errorf("unknown tier %q", key)
		}
		if t.Min < 0 || t.Min > t.Theo || t.Theo > t.Max {
			return commission.Plan{}, fmt.Errorf("tier %q: want 0 <= min <= theo <= max", key)
		}
		plan.Tiers[tierKey] = commission.TierSchedule{
			Min:  decimal.NewFromFloat(t.Min),
			Theo: decimal.NewFromFloat(t.Theo),
			Max:  decimal.NewFromFloat(t.Max),
		}
	}

	return plan, nil
}
