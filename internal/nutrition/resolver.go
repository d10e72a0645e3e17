package nutrition

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// ResolverConfig carries the calibration values the resolver falls back
// on when a reference amount is ambiguous or unparseable. The defaults
// reproduce the catalog's historical behavior; deployments with better
// data can tune them.
type ResolverConfig struct {
	// DefaultBaseAmount is assumed when no numeric base can be parsed
	// from a reference amount.
	DefaultBaseAmount float64
	// DefaultScoopGrams is the gram weight assumed for a scoop whose
	// annotation is missing or unparseable.
	DefaultScoopGrams float64
	// AssumedPieceGrams is the average weight of one piece of an
	// ingredient stored per-100.
	AssumedPieceGrams float64
	// ScoopToleranceGrams is the band within which a gram request is
	// treated as exactly one scoop. Scoop weights are commonly rounded
	// in the catalog (stored "15g", measured 14.8g), so exact-match
	// requests would otherwise drift slightly off a multiplier of 1.
	ScoopToleranceGrams float64
}

// DefaultResolverConfig returns the calibration used across the catalog.
func DefaultResolverConfig() ResolverConfig {
	return ResolverConfig{
		DefaultBaseAmount:   100,
		DefaultScoopGrams:   15,
		AssumedPieceGrams:   50,
		ScoopToleranceGrams: 1,
	}
}

var (
	gramAnnotationRe = regexp.MustCompile(`(?i)(\d+(?:[.,]\d+)?)\s*g`)
	numberRe         = regexp.MustCompile(`\d+(?:[.,]\d+)?`)
)

// resolverRule pairs a predicate with a handler. The rules are evaluated
// in a fixed order and the first match wins; special cases must stay
// ahead of the generic per-100 and fallback rules.
type resolverRule struct {
	name  string
	match func(ref, unit string) bool
	apply func(cfg ResolverConfig, ref string, quantity float64, unit string) float64
}

var resolverRules = []resolverRule{
	{
		name: "scoop",
		match: func(ref, unit string) bool {
			return strings.Contains(strings.ToLower(ref), "scoop")
		},
		apply: resolveScoop,
	},
	{
		name: "countable",
		match: func(ref, unit string) bool {
			return strings.Contains(ref, "1") && !strings.Contains(ref, "100") && isPieceUnit(unit)
		},
		apply: func(cfg ResolverConfig, ref string, quantity float64, unit string) float64 {
			// Each requested piece consumes one reference unit.
			return quantity
		},
	},
	{
		name: "per-100",
		match: func(ref, unit string) bool {
			return strings.Contains(ref, "100")
		},
		apply: resolvePer100,
	},
	{
		name: "fallback",
		match: func(ref, unit string) bool {
			return true
		},
		apply: func(cfg ResolverConfig, ref string, quantity float64, unit string) float64 {
			return quantity / leadingNumber(ref, cfg.DefaultBaseAmount)
		},
	},
}

// ResolveMultiplier computes the dimensionless factor m such that
// absoluteMacro = referenceMacro * m for the requested quantity and unit,
// using the default calibration. It never returns a negative or
// non-finite value; unparseable input degrades to quantity over the
// default base amount.
func ResolveMultiplier(referenceAmount string, quantity float64, unit string) float64 {
	return DefaultResolverConfig().ResolveMultiplier(referenceAmount, quantity, unit)
}

// ResolveMultiplier applies the ordered rule set with this calibration.
func (cfg ResolverConfig) ResolveMultiplier(referenceAmount string, quantity float64, unit string) float64 {
	if quantity <= 0 || math.IsNaN(quantity) || math.IsInf(quantity, 0) {
		return 0
	}
	ref := strings.TrimSpace(referenceAmount)
	u := normalizeUnit(unit)
	for _, rule := range resolverRules {
		if !rule.match(ref, u) {
			continue
		}
		m := rule.apply(cfg, ref, quantity, u)
		if m < 0 || math.IsNaN(m) || math.IsInf(m, 0) {
			return quantity / cfg.DefaultBaseAmount
		}
		return m
	}
	return quantity / cfg.DefaultBaseAmount
}

func resolveScoop(cfg ResolverConfig, ref string, quantity float64, unit string) float64 {
	grams := annotatedGrams(ref, cfg.DefaultScoopGrams)
	if unit == "g" {
		if math.Abs(quantity-grams) < cfg.ScoopToleranceGrams {
			// Within a gram of one scoop: treat as exactly one.
			return 1
		}
		return quantity / grams
	}
	if isPieceUnit(unit) {
		// One piece is one scoop.
		return quantity
	}
	return quantity / grams
}

func resolvePer100(cfg ResolverConfig, ref string, quantity float64, unit string) float64 {
	base := leadingNumber(ref, cfg.DefaultBaseAmount)
	if isPieceUnit(unit) {
		return quantity * cfg.AssumedPieceGrams / base
	}
	return quantity / base
}

func normalizeUnit(unit string) string {
	return strings.ToLower(strings.TrimSpace(unit))
}

func isPieceUnit(unit string) bool {
	return unit == "piece" || unit == "pieces"
}

// annotatedGrams extracts the first numeric-before-g weight from a
// reference amount, e.g. the 15 in "1 scoop (15g)".
func annotatedGrams(ref string, fallback float64) float64 {
	m := gramAnnotationRe.FindStringSubmatch(ref)
	if m == nil {
		return fallback
	}
	return parsePositive(m[1], fallback)
}

// leadingNumber extracts the first numeric token from a reference
// amount, e.g. the 100 in "100g".
func leadingNumber(ref string, fallback float64) float64 {
	tok := numberRe.FindString(ref)
	if tok == "" {
		return fallback
	}
	return parsePositive(tok, fallback)
}

func parsePositive(tok string, fallback float64) float64 {
	v, err := strconv.ParseFloat(strings.ReplaceAll(tok, ",", "."), 64)
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}
