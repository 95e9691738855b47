package types

import (
	"fmt"
	"math"
)

type UserProfile struct {
	Name     string   `json:"name"`
	Email    string   `json:"email"`
	WeightKg *float64 `json:"weightKg,omitempty"`
	HeightCm *float64 `json:"heightCm,omitempty"`
	Sex      *string  `json:"sex,omitempty"`
	Age      *int     `json:"age,omitempty"`
}

// CustomActivity is a user-defined exercise. Key is generated from the
// creation timestamp and never changes afterwards.
type CustomActivity struct {
	Key      string   `json:"key"`
	Label    string   `json:"label"`
	Met      float64  `json:"met"`
	SpeedKmh *float64 `json:"speedKmh,omitempty"`
}

type Preferences struct {
	ActivityKey      string           `json:"activityKey"`
	Units            string           `json:"units"`
	CustomActivities []CustomActivity `json:"customActivities,omitempty"`
	DefaultServings  float64          `json:"defaultServings,omitempty"`
}

type Options struct {
	IncludeShockFactor  bool    `json:"includeShockFactor"`
	IncludeEducation    bool    `json:"includeEducation"`
	IntensityMultiplier float64 `json:"intensityMultiplier,omitempty"`
	ShockFactorCount    int     `json:"shockFactorCount,omitempty"`
}

// FoodItem keeps per-serving base values as the invariant; the displayed
// totals are always base x servings, rounded.
type FoodItem struct {
	Name             string  `json:"name"`
	Serving          string  `json:"serving"`
	CaloriesKcal     int     `json:"caloriesKcal"`
	EatMinutes       int     `json:"eatMinutes"`
	Servings         float64 `json:"servings"`
	BaseCaloriesKcal float64 `json:"baseCaloriesKcal"`
	BaseEatMinutes   float64 `json:"baseEatMinutes"`
}

// SetServings rescales the totals from the base values.
func (f *FoodItem) SetServings(servings float64) {
	f.Servings = servings
	f.CaloriesKcal = int(math.Round(f.BaseCaloriesKcal * servings))
	f.EatMinutes = int(math.Round(f.BaseEatMinutes * servings))
}

// SetTotalCalories overrides the total directly and back-derives the base.
func (f *FoodItem) SetTotalCalories(kcal int) {
	f.CaloriesKcal = kcal
	if f.Servings != 0 {
		f.BaseCaloriesKcal = float64(kcal) / f.Servings
	}
}

// SetTotalEatMinutes overrides the total directly and back-derives the base.
func (f *FoodItem) SetTotalEatMinutes(minutes int) {
	f.EatMinutes = minutes
	if f.Servings != 0 {
		f.BaseEatMinutes = float64(minutes) / f.Servings
	}
}

type Scenario struct {
	User        UserProfile `json:"user"`
	Preferences Preferences `json:"preferences"`
	Options     Options     `json:"options"`
	Foods       []FoodItem  `json:"foods"`
}

// Validate applies the pre-submission checks. A failing scenario is never
// sent to the analysis provider.
func (s *Scenario) Validate() error {
	if len(s.Foods) == 0 {
		return fmt.Errorf("add at least one food item before analyzing")
	}
	for i, food := range s.Foods {
		if food.CaloriesKcal <= 0 {
			return fmt.Errorf("food %q (item %d) must have positive calories", food.Name, i+1)
		}
		if food.EatMinutes <= 0 {
			return fmt.Errorf("food %q (item %d) must have positive eat minutes", food.Name, i+1)
		}
	}
	return nil
}

// Computation is produced by the analysis provider and treated as opaque
// once received; nothing here is recomputed locally.
type ItemBurn struct {
	Name        string  `json:"name"`
	Activity    string  `json:"activity"`
	BurnMinutes float64 `json:"burnMinutes"`
	EatMinutes  int     `json:"eatMinutes"`
	Ratio       float64 `json:"ratio"`
}

type ShockFactor struct {
	TimesPerYear     int     `json:"timesPerYear"`
	AnnualCalories   float64 `json:"annualCalories"`
	AnnualBurnHours  float64 `json:"annualBurnHours"`
	EquivalentWeight float64 `json:"equivalentWeightKg"`
}

type Computation struct {
	Items            []ItemBurn   `json:"items"`
	TotalCalories    float64      `json:"totalCalories"`
	TotalBurnMinutes float64      `json:"totalBurnMinutes"`
	ShockFactor      *ShockFactor `json:"shockFactor,omitempty"`
	EducationNotes   []string     `json:"educationNotes,omitempty"`
	ReportMarkdown   string       `json:"reportMarkdown"`
}
