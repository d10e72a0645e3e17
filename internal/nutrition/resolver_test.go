package nutrition

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveMultiplierCases(t *testing.T) {
	tests := []struct {
		name     string
		ref      string
		quantity float64
		unit     string
		want     float64
	}{
		{"per-100 grams", "100g", 50, "g", 0.5},
		{"per-100 milliliters", "100ml", 250, "ml", 2.5},
		{"per-100 full amount", "100g", 100, "g", 1},
		{"per-100 pieces assume 50g each", "100g", 2, "piece", 1},
		{"per-100 pieces plural", "100g", 1, "pieces", 0.5},
		{"countable single piece", "1 piece", 3, "piece", 3},
		{"countable plural unit", "1 piece", 2, "pieces", 2},
		{"scoop exact grams", "1 scoop (15g)", 15, "g", 1},
		{"scoop within tolerance low", "1 scoop (15g)", 14.2, "g", 1},
		{"scoop within tolerance high", "1 scoop (15g)", 15.9, "g", 1},
		{"scoop double", "1 scoop (15g)", 30, "g", 2},
		{"scoop half", "1 scoop (30g)", 15, "g", 0.5},
		{"scoop as pieces", "1 scoop (15g)", 2, "piece", 2},
		{"scoop unannotated defaults to 15g", "1 scoop", 30, "g", 2},
		{"scoop odd unit divides by grams", "1 scoop (20g)", 10, "serving", 0.5},
		{"fallback leading number", "250g", 125, "g", 0.5},
		{"fallback unparseable defaults to 100", "one handful", 50, "g", 0.5},
		{"empty reference defaults to 100", "", 25, "g", 0.25},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveMultiplier(tt.ref, tt.quantity, tt.unit)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestResolveMultiplierRuleOrder(t *testing.T) {
	// "1 scoop (15g)" contains "1" and a unit request of "piece" would
	// also satisfy the countable rule; the scoop rule must win.
	assert.InDelta(t, 2.0, ResolveMultiplier("1 scoop (15g)", 2, "piece"), 1e-9)

	// "100g" contains "1"; the countable rule must not claim it for
	// piece requests, the per-100 rule owns anything with "100".
	assert.InDelta(t, 0.5, ResolveMultiplier("100g", 1, "piece"), 1e-9)
}

func TestResolveMultiplierNeverNegative(t *testing.T) {
	assert.Equal(t, 0.0, ResolveMultiplier("100g", 0, "g"))
	assert.Equal(t, 0.0, ResolveMultiplier("100g", -5, "g"))
	assert.GreaterOrEqual(t, ResolveMultiplier("garbage base", 10, "whatever"), 0.0)
}

func TestResolveMultiplierCustomCalibration(t *testing.T) {
	cfg := DefaultResolverConfig()
	cfg.AssumedPieceGrams = 30

	assert.InDelta(t, 0.6, cfg.ResolveMultiplier("100g", 2, "piece"), 1e-9)

	cfg.DefaultScoopGrams = 25
	assert.InDelta(t, 2.0, cfg.ResolveMultiplier("1 scoop", 50, "g"), 1e-9)
}

func TestAnnotatedGramsParsing(t *testing.T) {
	assert.InDelta(t, 15, annotatedGrams("1 scoop (15g)", 15), 1e-9)
	assert.InDelta(t, 32.5, annotatedGrams("1 scoop 32.5 g", 15), 1e-9)
	assert.InDelta(t, 14.8, annotatedGrams("1 scoop (14,8g)", 15), 1e-9)
	assert.InDelta(t, 15, annotatedGrams("1 scoop", 15), 1e-9)
}

func TestLeadingNumberParsing(t *testing.T) {
	assert.InDelta(t, 100, leadingNumber("100g", 100), 1e-9)
	assert.InDelta(t, 1, leadingNumber("1 piece", 100), 1e-9)
	assert.InDelta(t, 100, leadingNumber("a pinch", 100), 1e-9)
	assert.InDelta(t, 100, leadingNumber("0g", 100), 1e-9)
}
