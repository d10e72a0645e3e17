package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/trainhq/coachplan/backend/internal/nutrition"
)

// Ingredient is a catalog row. Macro columns are per ReferenceAmount,
// mirroring nutrition.IngredientReference. Position preserves the seed
// file order so name matching stays deterministic across stores.
type Ingredient struct {
	ID              uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`
	Name            string         `gorm:"size:255;not null" json:"name"`
	AlternateName   string         `gorm:"size:255" json:"alternate_name,omitempty"`
	CaloriesPer     float64        `gorm:"type:float;not null" json:"calories_per"`
	ProteinPer      float64        `gorm:"type:float" json:"protein_per"`
	CarbsPer        float64        `gorm:"type:float" json:"carbs_per"`
	FatPer          float64        `gorm:"type:float" json:"fat_per"`
	FiberPer        float64        `gorm:"type:float" json:"fiber_per"`
	ReferenceAmount string         `gorm:"size:64;not null" json:"reference_amount"`
	Position        int            `gorm:"not null;default:0;index" json:"position"`
}

// BeforeCreate assigns an ID so bulk creates work on any dialect.
func (i *Ingredient) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// Reference converts the row into the pure calculation type.
func (i *Ingredient) Reference() nutrition.IngredientReference {
	return nutrition.IngredientReference{
		Name:            i.Name,
		AlternateName:   i.AlternateName,
		CaloriesPer:     i.CaloriesPer,
		ProteinPer:      i.ProteinPer,
		CarbsPer:        i.CarbsPer,
		FatPer:          i.FatPer,
		FiberPer:        i.FiberPer,
		ReferenceAmount: i.ReferenceAmount,
	}
}

// IngredientFromReference builds a row for seeding.
func IngredientFromReference(ref nutrition.IngredientReference, position int) Ingredient {
	return Ingredient{
		Name:            ref.Name,
		AlternateName:   ref.AlternateName,
		CaloriesPer:     ref.CaloriesPer,
		ProteinPer:      ref.ProteinPer,
		CarbsPer:        ref.CarbsPer,
		FatPer:          ref.FatPer,
		FiberPer:        ref.FiberPer,
		ReferenceAmount: ref.ReferenceAmount,
		Position:        position,
	}
}
