package service

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/trainhq/coachplan/backend/internal/models"
	"github.com/trainhq/coachplan/backend/internal/nutrition"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	path := filepath.Join(t.TempDir(), "service_test.db")
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.Ingredient{},
		&models.Recipe{},
		&models.WeeklyPlan{},
	))
	return db
}

func testCatalog() []nutrition.IngredientReference {
	return []nutrition.IngredientReference{
		{Name: "Oats", ReferenceAmount: "100g", CaloriesPer: 389, ProteinPer: 17, CarbsPer: 66, FatPer: 7},
		{Name: "Egg", ReferenceAmount: "1 piece", CaloriesPer: 78, ProteinPer: 6.3, CarbsPer: 0.6, FatPer: 5.3},
		{Name: "Whey", AlternateName: "Myseprotein", ReferenceAmount: "1 scoop (30g)", CaloriesPer: 113, ProteinPer: 24, CarbsPer: 1.5, FatPer: 1},
	}
}
