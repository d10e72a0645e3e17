package service

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/trainhq/coachplan/backend/internal/models"
	"github.com/trainhq/coachplan/backend/internal/nutrition"
)

// IngredientService handles catalog storage operations. The catalog is
// seeded in bulk by the maintenance commands and read-only afterwards.
type IngredientService struct {
	db *gorm.DB
}

// NewIngredientService creates a new IngredientService instance
func NewIngredientService(db *gorm.DB) *IngredientService {
	return &IngredientService{db: db}
}

// Catalog returns the full catalog in seed order as pure references,
// ready for matching and aggregation.
func (s *IngredientService) Catalog(ctx context.Context) ([]nutrition.IngredientReference, error) {
	var rows []models.Ingredient
	if err := s.db.WithContext(ctx).Order("position asc").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("load ingredient catalog: %w", err)
	}
	refs := make([]nutrition.IngredientReference, len(rows))
	for i := range rows {
		refs[i] = rows[i].Reference()
	}
	return refs, nil
}

// CreateBatch appends references to the catalog after the current
// highest seed position.
func (s *IngredientService) CreateBatch(ctx context.Context, refs []nutrition.IngredientReference) error {
	if len(refs) == 0 {
		return nil
	}
	var maxPos int
	err := s.db.WithContext(ctx).
		Model(&models.Ingredient{}).
		Select("COALESCE(MAX(position), -1)").
		Scan(&maxPos).Error
	if err != nil {
		return fmt.Errorf("find catalog tail position: %w", err)
	}

	rows := make([]models.Ingredient, len(refs))
	for i, ref := range refs {
		rows[i] = models.IngredientFromReference(ref, maxPos+1+i)
	}
	if err := s.db.WithContext(ctx).Create(&rows).Error; err != nil {
		return fmt.Errorf("create ingredients: %w", err)
	}
	return nil
}

// ReplaceCatalog is the clear-and-reseed operation: it drops every
// existing row and writes the new catalog in fixture order, all in one
// transaction so readers never observe a half-seeded catalog.
func (s *IngredientService) ReplaceCatalog(ctx context.Context, refs []nutrition.IngredientReference) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).
			Unscoped().
			Delete(&models.Ingredient{}).Error; err != nil {
			return fmt.Errorf("clear ingredient catalog: %w", err)
		}
		if len(refs) == 0 {
			return nil
		}
		rows := make([]models.Ingredient, len(refs))
		for i, ref := range refs {
			rows[i] = models.IngredientFromReference(ref, i)
		}
		if err := tx.Create(&rows).Error; err != nil {
			return fmt.Errorf("seed ingredient catalog: %w", err)
		}
		return nil
	})
}

// Count returns the number of catalog rows.
func (s *IngredientService) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := s.db.WithContext(ctx).Model(&models.Ingredient{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("count ingredients: %w", err)
	}
	return n, nil
}
