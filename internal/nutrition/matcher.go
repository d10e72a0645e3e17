package nutrition

import "strings"

// FindIngredient maps a free-text ingredient name to a catalog record,
// tolerating language variants and partial names. Exact case-insensitive
// matches on either name win over substring matches, and within a pass
// the first hit in catalog order wins; the catalog is curated so
// ambiguity is rare and no further ranking is done.
//
// The second return value is false when nothing matches; callers treat
// that as a zero-contribution entry rather than an error.
func FindIngredient(query string, catalog []IngredientReference) (IngredientReference, bool) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return IngredientReference{}, false
	}
	for _, ref := range catalog {
		if nameEquals(q, ref.Name) || nameEquals(q, ref.AlternateName) {
			return ref, true
		}
	}
	for _, ref := range catalog {
		if nameContains(q, ref.Name) || nameContains(q, ref.AlternateName) {
			return ref, true
		}
	}
	return IngredientReference{}, false
}

func nameEquals(query, name string) bool {
	return name != "" && strings.ToLower(name) == query
}

// nameContains matches in both directions: a catalog name containing the
// query ("chicken" finds "chicken breast") and a query containing the
// catalog name ("rolled oats" finds "oats").
func nameContains(query, name string) bool {
	if name == "" {
		return false
	}
	n := strings.ToLower(name)
	return strings.Contains(n, query) || strings.Contains(query, n)
}
