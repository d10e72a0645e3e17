// Package nutrition implements the macro calculation core: resolving a
// stored per-reference nutrition record plus a requested quantity into
// absolute macros, matching free-text ingredient names against a catalog,
// and aggregating macros across meals, days, and weekly plans.
//
// Everything in this package is a pure function over its arguments. No
// call performs I/O or returns an error; malformed input degrades to a
// safe default instead, because downstream displays assume a best-effort
// total is always available.
package nutrition

// IngredientReference is one catalog record. All macro values are
// expressed per ReferenceAmount, a free-text descriptor of the base
// quantity ("100g", "100ml", "1 piece", "1 scoop (15g)").
type IngredientReference struct {
	Name            string  `json:"name"`
	AlternateName   string  `json:"alternate_name,omitempty"`
	CaloriesPer     float64 `json:"calories_per"`
	ProteinPer      float64 `json:"protein_per"`
	CarbsPer        float64 `json:"carbs_per"`
	FatPer          float64 `json:"fat_per"`
	FiberPer        float64 `json:"fiber_per"`
	ReferenceAmount string  `json:"reference_amount"`
}

// ResolvedMacros holds absolute macro values for a requested quantity.
// Calories are rounded to the nearest integer, the gram fields to one
// decimal place, matching what the plan views display.
type ResolvedMacros struct {
	Calories int     `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
	Fiber    float64 `json:"fiber,omitempty"`
}

// Progress is the percentage-of-target figure per macro for one day,
// clamped to [0, 100] so progress bars never overflow.
type Progress struct {
	Calories int `json:"calories"`
	Protein  int `json:"protein"`
	Carbs    int `json:"carbs"`
	Fat      int `json:"fat"`
}
