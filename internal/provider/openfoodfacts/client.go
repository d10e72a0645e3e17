// Package openfoodfacts fetches per-100g nutrition records from the
// OpenFoodFacts search API for the catalog import command.
package openfoodfacts

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/trainhq/coachplan/backend/internal/nutrition"
)

const defaultBaseURL = "https://world.openfoodfacts.org"

type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

type searchResponse struct {
	Products []struct {
		ProductName string `json:"product_name"`
		Nutriments  struct {
			EnergyKcal100g float64 `json:"energy-kcal_100g"`
			Proteins100g   float64 `json:"proteins_100g"`
			Carbs100g      float64 `json:"carbohydrates_100g"`
			Fat100g        float64 `json:"fat_100g"`
			Fiber100g      float64 `json:"fiber_100g"`
		} `json:"nutriments"`
	} `json:"products"`
}

// SearchIngredient looks up a food by name and maps the best hit to a
// catalog reference. OpenFoodFacts reports nutriments per 100 g, so the
// reference amount is always "100g".
func (c *Client) SearchIngredient(ctx context.Context, name string) (nutrition.IngredientReference, error) {
	base := strings.TrimRight(strings.TrimSpace(c.BaseURL), "/")
	if base == "" {
		base = defaultBaseURL
	}
	httpClient := c.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 12 * time.Second}
	}

	q := url.Values{}
	q.Set("search_terms", name)
	q.Set("search_simple", "1")
	q.Set("action", "process")
	q.Set("json", "1")
	q.Set("page_size", "1")
	endpoint := fmt.Sprintf("%s/cgi/search.pl?%s", base, q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nutrition.IngredientReference{}, fmt.Errorf("create openfoodfacts request: %w", err)
	}
	req.Header.Set("User-Agent", "coachplan-backend/1.0 (+https://github.com/trainhq/coachplan)")

	resp, err := httpClient.Do(req)
	if err != nil {
		return nutrition.IngredientReference{}, fmt.Errorf("execute openfoodfacts request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nutrition.IngredientReference{}, fmt.Errorf("read openfoodfacts response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nutrition.IngredientReference{}, fmt.Errorf("openfoodfacts request failed with status %d", resp.StatusCode)
	}

	var parsed searchResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nutrition.IngredientReference{}, fmt.Errorf("decode openfoodfacts response: %w", err)
	}
	if len(parsed.Products) == 0 || parsed.Products[0].ProductName == "" {
		return nutrition.IngredientReference{}, fmt.Errorf("no openfoodfacts product found for %q", name)
	}

	p := parsed.Products[0]
	return nutrition.IngredientReference{
		Name:            p.ProductName,
		AlternateName:   ingredientAlias(name, p.ProductName),
		CaloriesPer:     p.Nutriments.EnergyKcal100g,
		ProteinPer:      p.Nutriments.Proteins100g,
		CarbsPer:        p.Nutriments.Carbs100g,
		FatPer:          p.Nutriments.Fat100g,
		FiberPer:        p.Nutriments.Fiber100g,
		ReferenceAmount: "100g",
	}, nil
}

// ingredientAlias keeps the queried name as the alternate when the
// provider's product name differs, so later matching still finds the
// record under the name the coach typed.
func ingredientAlias(query, productName string) string {
	if strings.EqualFold(strings.TrimSpace(query), strings.TrimSpace(productName)) {
		return ""
	}
	return strings.TrimSpace(query)
}
