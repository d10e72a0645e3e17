package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/trainhq/coachplan/backend/internal/nutrition"
)

// JSONBStringArray is a custom type for handling string arrays in JSONB
type JSONBStringArray []string

// Value implements the driver.Valuer interface
func (a JSONBStringArray) Value() (driver.Value, error) {
	if len(a) == 0 {
		return "[]", nil
	}
	return json.Marshal(a)
}

// Scan implements the sql.Scanner interface
func (a *JSONBStringArray) Scan(value interface{}) error {
	if value == nil {
		*a = JSONBStringArray{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return nil
	}

	return json.Unmarshal(bytes, a)
}

// RecipeIngredients stores the quantity-bearing ingredient entries as a
// typed JSONB document, so the aggregator consumes them directly instead
// of re-parsing JSON embedded in strings.
type RecipeIngredients []nutrition.MealIngredient

// Value implements the driver.Valuer interface
func (r RecipeIngredients) Value() (driver.Value, error) {
	if len(r) == 0 {
		return "[]", nil
	}
	return json.Marshal(r)
}

// Scan implements the sql.Scanner interface
func (r *RecipeIngredients) Scan(value interface{}) error {
	if value == nil {
		*r = RecipeIngredients{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return nil
	}

	return json.Unmarshal(bytes, r)
}

// Recipe is a seeded recipe with macro totals computed once at seed
// time from its ingredient entries and the catalog.
type Recipe struct {
	ID           uuid.UUID         `gorm:"type:uuid;primary_key" json:"id"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`
	DeletedAt    gorm.DeletedAt    `gorm:"index" json:"-"`
	Name         string            `gorm:"size:255;not null" json:"name"`
	Description  string            `gorm:"type:text" json:"description"`
	Category     string            `gorm:"size:50" json:"category"`
	Ingredients  RecipeIngredients `gorm:"type:jsonb;not null;default:'[]'" json:"ingredients"`
	Instructions JSONBStringArray  `gorm:"type:jsonb;not null;default:'[]'" json:"instructions"`
	Calories     int               `gorm:"not null;default:0" json:"calories"`
	Protein      float64           `gorm:"type:float" json:"protein"`
	Carbs        float64           `gorm:"type:float" json:"carbs"`
	Fat          float64           `gorm:"type:float" json:"fat"`
	Fiber        float64           `gorm:"type:float" json:"fiber"`
}

// BeforeCreate assigns an ID so bulk creates work on any dialect.
func (r *Recipe) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// SetMacros copies computed totals onto the row.
func (r *Recipe) SetMacros(m nutrition.ResolvedMacros) {
	r.Calories = m.Calories
	r.Protein = m.Protein
	r.Carbs = m.Carbs
	r.Fat = m.Fat
	r.Fiber = m.Fiber
}

// Macros returns the stored totals.
func (r *Recipe) Macros() nutrition.ResolvedMacros {
	return nutrition.ResolvedMacros{
		Calories: r.Calories,
		Protein:  r.Protein,
		Carbs:    r.Carbs,
		Fat:      r.Fat,
		Fiber:    r.Fiber,
	}
}
