package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/trainhq/coachplan/backend/internal/nutrition"
)

// PlanDays stores a week's day plans as a typed JSONB document keyed by
// weekday.
type PlanDays map[nutrition.Weekday]nutrition.DayPlan

// Value implements the driver.Valuer interface
func (d PlanDays) Value() (driver.Value, error) {
	if len(d) == 0 {
		return "{}", nil
	}
	return json.Marshal(d)
}

// Scan implements the sql.Scanner interface
func (d *PlanDays) Scan(value interface{}) error {
	if value == nil {
		*d = PlanDays{}
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

	return json.Unmarshal(bytes, d)
}

// WeeklyPlan is an authored nutrition plan for one client: seven day
// plans plus the daily macro targets the progress view compares against.
type WeeklyPlan struct {
	ID             uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
	ClientName     string         `gorm:"size:255;not null" json:"client_name"`
	Title          string         `gorm:"size:255" json:"title"`
	Days           PlanDays       `gorm:"type:jsonb;not null;default:'{}'" json:"days"`
	TargetCalories int            `gorm:"not null;default:0" json:"target_calories"`
	TargetProtein  float64        `gorm:"type:float" json:"target_protein"`
	TargetCarbs    float64        `gorm:"type:float" json:"target_carbs"`
	TargetFat      float64        `gorm:"type:float" json:"target_fat"`
}

// BeforeCreate assigns an ID so creates work on any dialect.
func (p *WeeklyPlan) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// Plan converts the row into the pure calculation type.
func (p *WeeklyPlan) Plan() nutrition.WeeklyPlan {
	return nutrition.WeeklyPlan{
		Days: map[nutrition.Weekday]nutrition.DayPlan(p.Days),
		Targets: nutrition.ResolvedMacros{
			Calories: p.TargetCalories,
			Protein:  p.TargetProtein,
			Carbs:    p.TargetCarbs,
			Fat:      p.TargetFat,
		},
	}
}
