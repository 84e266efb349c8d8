/*
achievement.go - Achievement ratios and caps

PURPOSE:
  Converts an (actual, goal) pair for one metric into an achievement
  ratio. Two different caps exist and must not be conflated:

  SCORING cap (ScoreCap = 1.2):
    Applied before weighted composition. Overperformance beyond 120%
    never buys more score.

  DISPLAY clamp (DisplayBarMax = 100):
    Progress bars clamp their visual width at 100%, but the literal
    percentage text stays uncapped.

EDGE CASE:
  A goal of 0 (or absent, which reads as 0) always yields achievement 0.
  Never a division by zero, never +Inf.
*/
package commission

// ScoreCap is the upper bound on any achievement ratio entering weighted
// composition: 1.2, i.e. 120% of goal.
const ScoreCap = 1.2

// Achievement returns actual/goal, or 0 when the goal is not positive.
// The result is uncapped; use CapScore before composing.
func Achievement(actual, goal float64) float64 {
	if goal <= 0 {
		return 0
	}
	return actual / goal
}

// CapScore caps an achievement ratio at ScoreCap for scoring purposes.
func CapScore(a float64) float64 {
	if a > ScoreCap {
		return ScoreCap
	}
	return a
}

// CappedAchievement is Achievement followed by CapScore.
func CappedAchievement(actual, goal float64) float64 {
	return CapScore(Achievement(actual, goal))
}

// DisplayBarWidth returns the progress-bar width percentage for an
// achievement ratio: the ratio as a percentage, clamped at 100. The
// percentage text shown next to the bar should use the uncapped ratio.
func DisplayBarWidth(a float64) float64 {
	pct := a * 100
	if pct > 100 {
		return 100
	}
	if pct < 0 {
		return 0
	}
	return pct
}
