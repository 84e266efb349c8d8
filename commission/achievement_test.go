package commission_test

import (
	"testing"

	"github.com/mcbanda/commission-engine/commission"
)

func TestAchievement_ZeroGoal_YieldsZero(t *testing.T) {
	// GIVEN: A goal of 0 (or absent, which reads as 0)
	// WHEN: Computing the achievement ratio
	// THEN: The result is 0, never a division by zero

	if got := commission.Achievement(5000, 0); got != 0 {
		t.Errorf("expected 0 for zero goal, got %v", got)
	}
	if got := commission.Achievement(0, 0); got != 0 {
		t.Errorf("expected 0 for zero actual and goal, got %v", got)
	}
	if got := commission.Achievement(100, -10); got != 0 {
		t.Errorf("expected 0 for negative goal, got %v", got)
	}
}

func TestAchievement_Ratio(t *testing.T) {
	if got := commission.Achievement(50, 100); got != 0.5 {
		t.Errorf("expected 0.5, got %v", got)
	}
	if got := commission.Achievement(150, 100); got != 1.5 {
		t.Errorf("expected uncapped 1.5, got %v", got)
	}
}

func TestCapScore_CapsAtOneTwenty(t *testing.T) {
	if got := commission.CapScore(1.5); got != commission.ScoreCap {
		t.Errorf("expected cap %v, got %v", commission.ScoreCap, got)
	}
	if got := commission.CapScore(0.9); got != 0.9 {
		t.Errorf("expected 0.9 untouched, got %v", got)
	}
	if got := commission.CappedAchievement(300, 100); got != commission.ScoreCap {
		t.Errorf("expected capped achievement %v, got %v", commission.ScoreCap, got)
	}
}

func TestDisplayBarWidth_ClampsWidthOnly(t *testing.T) {
	// The bar clamps at 100% while the literal ratio stays uncapped.
	if got := commission.DisplayBarWidth(1.5); got != 100 {
		t.Errorf("expected 100, got %v", got)
	}
	if got := commission.DisplayBarWidth(0.42); got != 42 {
		t.Errorf("expected 42, got %v", got)
	}
	if got := commission.DisplayBarWidth(-0.1); got != 0 {
		t.Errorf("expected 0 for negative ratio, got %v", got)
	}
}
