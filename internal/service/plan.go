package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/trainhq/coachplan/backend/internal/models"
	"github.com/trainhq/coachplan/backend/internal/nutrition"
)

// ErrPlanNotFound is returned when a weekly plan id matches no row.
var ErrPlanNotFound = errors.New("weekly plan not found")

// PlanService reads and writes weekly plans and recomputes their macro
// summaries against the current catalog. The admin UI owns plan
// authoring; this service only persists what it is given and derives
// the summary views.
type PlanService struct {
	db          *gorm.DB
	ingredients *IngredientService
}

// NewPlanService creates a new PlanService instance
func NewPlanService(db *gorm.DB) *PlanService {
	return &PlanService{db: db, ingredients: NewIngredientService(db)}
}

// GetWeeklyPlan retrieves a plan by ID
func (s *PlanService) GetWeeklyPlan(ctx context.Context, id uuid.UUID) (*models.WeeklyPlan, error) {
	var plan models.WeeklyPlan
	if err := s.db.WithContext(ctx).First(&plan, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPlanNotFound
		}
		return nil, fmt.Errorf("load weekly plan %s: %w", id, err)
	}
	return &plan, nil
}

// ListWeeklyPlans lists all plans, newest first.
func (s *PlanService) ListWeeklyPlans(ctx context.Context) ([]models.WeeklyPlan, error) {
	var plans []models.WeeklyPlan
	if err := s.db.WithContext(ctx).Order("created_at desc").Find(&plans).Error; err != nil {
		return nil, fmt.Errorf("list weekly plans: %w", err)
	}
	return plans, nil
}

// SaveWeeklyPlan creates or updates a plan row.
func (s *PlanService) SaveWeeklyPlan(ctx context.Context, plan *models.WeeklyPlan) error {
	if err := s.db.WithContext(ctx).Save(plan).Error; err != nil {
		return fmt.Errorf("save weekly plan: %w", err)
	}
	return nil
}

// WeekSummary recomputes a plan's per-day totals and progress against
// the current catalog. Unmatched ingredient names appear in the
// per-day summaries; they never fail the computation.
func (s *PlanService) WeekSummary(ctx context.Context, id uuid.UUID) (*nutrition.WeekSummary, error) {
	plan, err := s.GetWeeklyPlan(ctx, id)
	if err != nil {
		return nil, err
	}
	refs, err := s.ingredients.Catalog(ctx)
	if err != nil {
		return nil, err
	}
	summary := nutrition.SummarizeWeek(plan.Plan(), refs)
	return &summary, nil
}

// DaySummary recomputes a single day of a plan.
func (s *PlanService) DaySummary(ctx context.Context, id uuid.UUID, day nutrition.Weekday) (*nutrition.DaySummary, error) {
	plan, err := s.GetWeeklyPlan(ctx, id)
	if err != nil {
		return nil, err
	}
	refs, err := s.ingredients.Catalog(ctx)
	if err != nil {
		return nil, err
	}
	p := plan.Plan()
	summary := nutrition.SummarizeDay(p.Days[day], p.Targets, refs)
	return &summary, nil
}
