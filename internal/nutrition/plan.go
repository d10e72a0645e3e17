package nutrition

// MealSlot names one of the six fixed meal positions in a day plan.
type MealSlot string

const (
	SlotBreakfast      MealSlot = "breakfast"
	SlotMorningSnack   MealSlot = "morning_snack"
	SlotLunch          MealSlot = "lunch"
	SlotAfternoonSnack MealSlot = "afternoon_snack"
	SlotDinner         MealSlot = "dinner"
	SlotEveningSnack   MealSlot = "evening_snack"
)

// MealSlots returns the slots in display order.
func MealSlots() []MealSlot {
	return []MealSlot{
		SlotBreakfast,
		SlotMorningSnack,
		SlotLunch,
		SlotAfternoonSnack,
		SlotDinner,
		SlotEveningSnack,
	}
}

// Weekday names one of the seven plan days.
type Weekday string

const (
	Monday    Weekday = "monday"
	Tuesday   Weekday = "tuesday"
	Wednesday Weekday = "wednesday"
	Thursday  Weekday = "thursday"
	Friday    Weekday = "friday"
	Saturday  Weekday = "saturday"
	Sunday    Weekday = "sunday"
)

// Weekdays returns the days in display order.
func Weekdays() []Weekday {
	return []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}
}

// MealIngredient is one quantity request inside a meal slot, referring
// to a catalog ingredient by free-text name.
type MealIngredient struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
}

// Meal is the content of one slot: either coach-written free text, a
// list of ingredient entries, or both. Only the entries carry macros.
type Meal struct {
	Note        string           `json:"note,omitempty"`
	Ingredients []MealIngredient `json:"ingredients,omitempty"`
}

// DayPlan maps meal slots to meals. Slots with no meal are simply
// absent.
type DayPlan struct {
	Meals map[MealSlot]Meal `json:"meals"`
}

// WeeklyPlan maps the seven days to day plans and carries the client's
// daily macro targets.
type WeeklyPlan struct {
	Days    map[Weekday]DayPlan `json:"days"`
	Targets ResolvedMacros      `json:"targets"`
}

// DaySummary is the computed view of one day: summed macros, progress
// against the daily targets, and the ingredient names that matched
// nothing in the catalog (zero contribution, caller decides whether to
// warn).
type DaySummary struct {
	Totals    ResolvedMacros `json:"totals"`
	Progress  Progress       `json:"progress"`
	Unmatched []string       `json:"unmatched,omitempty"`
}

// WeekSummary is the computed view of a weekly plan.
type WeekSummary struct {
	Days   map[Weekday]DaySummary `json:"days"`
	Totals ResolvedMacros         `json:"totals"`
}

// MealMacros resolves every ingredient entry in a meal against the
// catalog and sums the results. Unmatched names are returned alongside
// the sum; they contribute zero.
func MealMacros(meal Meal, catalog []IngredientReference) (ResolvedMacros, []string) {
	entries := make([]ResolvedMacros, 0, len(meal.Ingredients))
	var unmatched []string
	for _, ing := range meal.Ingredients {
		ref, ok := FindIngredient(ing.Name, catalog)
		if !ok {
			unmatched = append(unmatched, ing.Name)
			entries = append(entries, ResolvedMacros{})
			continue
		}
		entries = append(entries, ComputeEntryMacros(&ref, ing.Quantity, ing.Unit))
	}
	return SumMacros(entries), unmatched
}

// DayMacros sums a day's meals slot by slot.
func DayMacros(day DayPlan, catalog []IngredientReference) (ResolvedMacros, []string) {
	meals := make([]ResolvedMacros, 0, len(day.Meals))
	var unmatched []string
	for _, slot := range MealSlots() {
		meal, ok := day.Meals[slot]
		if !ok {
			continue
		}
		sum, missing := MealMacros(meal, catalog)
		meals = append(meals, sum)
		unmatched = append(unmatched, missing...)
	}
	return SumMacros(meals), unmatched
}

// SummarizeDay computes totals and progress for one day.
func SummarizeDay(day DayPlan, targets ResolvedMacros, catalog []IngredientReference) DaySummary {
	totals, unmatched := DayMacros(day, catalog)
	return DaySummary{
		Totals:    totals,
		Progress:  DailyProgress(totals, targets),
		Unmatched: unmatched,
	}
}

// SummarizeWeek computes per-day summaries and the week's grand total.
func SummarizeWeek(plan WeeklyPlan, catalog []IngredientReference) WeekSummary {
	summary := WeekSummary{Days: make(map[Weekday]DaySummary, len(plan.Days))}
	dayTotals := make([]ResolvedMacros, 0, len(plan.Days))
	for _, day := range Weekdays() {
		dp, ok := plan.Days[day]
		if !ok {
			continue
		}
		ds := SummarizeDay(dp, plan.Targets, catalog)
		summary.Days[day] = ds
		dayTotals = append(dayTotals, ds.Totals)
	}
	summary.Totals = SumMacros(dayTotals)
	return summary
}
