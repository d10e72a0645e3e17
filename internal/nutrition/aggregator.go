package nutrition

import "math"

// ComputeEntryMacros scales an ingredient's per-reference macros to the
// requested quantity and unit. A nil ingredient (an unmatched name)
// contributes zero.
func ComputeEntryMacros(ref *IngredientReference, quantity float64, unit string) ResolvedMacros {
	if ref == nil {
		return ResolvedMacros{}
	}
	m := ResolveMultiplier(ref.ReferenceAmount, quantity, unit)
	return ResolvedMacros{
		Calories: roundCalories(ref.CaloriesPer * m),
		Protein:  roundTenth(ref.ProteinPer * m),
		Carbs:    roundTenth(ref.CarbsPer * m),
		Fat:      roundTenth(ref.FatPer * m),
		Fiber:    roundTenth(ref.FiberPer * m),
	}
}

// SumMacros sums each field independently and re-rounds the totals with
// the same integer/tenth rule as the entries. Summing already-rounded
// values accepts a small cumulative drift so that a displayed
// per-ingredient breakdown always adds up to the displayed total.
func SumMacros(entries []ResolvedMacros) ResolvedMacros {
	var calories int
	var protein, carbs, fat, fiber float64
	for _, e := range entries {
		calories += e.Calories
		protein += e.Protein
		carbs += e.Carbs
		fat += e.Fat
		fiber += e.Fiber
	}
	return ResolvedMacros{
		Calories: calories,
		Protein:  roundTenth(protein),
		Carbs:    roundTenth(carbs),
		Fat:      roundTenth(fat),
		Fiber:    roundTenth(fiber),
	}
}

// DailyProgress compares a day's summed macros against the plan's daily
// targets. A missing or zero target reads as 0% rather than dividing by
// zero; overshooting a target clamps at 100%. Fiber is tracked on the
// totals but has no target, so it carries no percentage.
func DailyProgress(daySums, targets ResolvedMacros) Progress {
	return Progress{
		Calories: progressPct(float64(daySums.Calories), float64(targets.Calories)),
		Protein:  progressPct(daySums.Protein, targets.Protein),
		Carbs:    progressPct(daySums.Carbs, targets.Carbs),
		Fat:      progressPct(daySums.Fat, targets.Fat),
	}
}

func progressPct(sum, target float64) int {
	if target <= 0 {
		return 0
	}
	pct := int(math.Round(sum / target * 100))
	if pct > 100 {
		return 100
	}
	if pct < 0 {
		return 0
	}
	return pct
}

func roundCalories(v float64) int {
	return int(math.Round(v))
}

func roundTenth(v float64) float64 {
	return math.Round(v*10) / 10
}
