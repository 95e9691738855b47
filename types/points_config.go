package types

const (
	FIRST_ANALYSIS_BONUS_POINTS = 100
	AI_ANALYSIS_POINTS          = 20
	HEALTHY_SWAP_BASE_POINTS    = 50
	SWAP_CALORIES_PER_POINT     = 10
)

type PointsConfig struct {
	FirstAnalysisBonusPoints int
	AiAnalysisPoints         int
	HealthySwapBasePoints    int
	SwapCaloriesPerPoint     int
}

func GetPointsConfig() PointsConfig {
	return PointsConfig{
		FirstAnalysisBonusPoints: FIRST_ANALYSIS_BONUS_POINTS,
		AiAnalysisPoints:         AI_ANALYSIS_POINTS,
		HealthySwapBasePoints:    HEALTHY_SWAP_BASE_POINTS,
		SwapCaloriesPerPoint:     SWAP_CALORIES_PER_POINT,
	}
}

// Achievement keys. These are persisted in the gamification profile, so
// renaming one orphans already-unlocked flags.
const (
	ACHIEVEMENT_FIRST_STEP       = "firstStep"
	ACHIEVEMENT_SAVVY_SWAPPER    = "savvySwapper"
	ACHIEVEMENT_CALORIE_COMMANDO = "calorieCommando"
	ACHIEVEMENT_AI_ANALYST       = "aiAnalyst"
	ACHIEVEMENT_WEEKEND_WARRIOR  = "weekendWarrior"
)

type Achievement struct {
	Key         string `json:"key"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

func GetAchievementCatalog() []Achievement {
	return []Achievement{
		{
			Key:         ACHIEVEMENT_FIRST_STEP,
			Title:       "First Step",
			Description: "Run your first reality check",
			Icon:        "footprints",
		},
		{
			Key:         ACHIEVEMENT_SAVVY_SWAPPER,
			Title:       "Savvy Swapper",
			Description: "Swap a food for a lighter alternative",
			Icon:        "swap",
		},
		{
			Key:         ACHIEVEMENT_CALORIE_COMMANDO,
			Title:       "Calorie Commando",
			Description: "Save 1,000 calories through healthy swaps",
			Icon:        "medal",
		},
		{
			Key:         ACHIEVEMENT_AI_ANALYST,
			Title:       "AI Analyst",
			Description: "Analyze 5 food photos",
			Icon:        "camera",
		},
		{
			Key:         ACHIEVEMENT_WEEKEND_WARRIOR,
			Title:       "Weekend Warrior",
			Description: "Log a meal on a Saturday or Sunday",
			Icon:        "calendar",
		},
	}
}

type Reward struct {
	ID             string `json:"id"`
	Partner        string `json:"partner"`
	Title          string `json:"title"`
	Description    string `json:"description"`
	PointsRequired int    `json:"pointsRequired"`
	Code           string `json:"code"`
}

func GetRewardCatalog() []Reward {
	return []Reward{
		{
			ID:             "smoothie-10",
			Partner:        "GreenBlend Smoothies",
			Title:          "10% off any smoothie",
			Description:    "One-time discount at participating GreenBlend locations",
			PointsRequired: 500,
			Code:           "REALITY10",
		},
		{
			ID:             "gym-day-pass",
			Partner:        "IronWorks Gyms",
			Title:          "Free day pass",
			Description:    "Single day pass to any IronWorks gym",
			PointsRequired: 1200,
			Code:           "IRONDAY",
		},
		{
			ID:             "meal-kit-15",
			Partner:        "FreshCrate",
			Title:          "15% off first meal kit",
			Description:    "New FreshCrate customers only",
			PointsRequired: 2000,
			Code:           "CRATE15",
		},
		{
			ID:             "run-club-tee",
			Partner:        "Sunrise Run Club",
			Title:          "Club t-shirt",
			Description:    "Claim in person at any Sunrise weekly run",
			PointsRequired: 3500,
			Code:           "SUNRISETEE",
		},
	}
}

func FindReward(id string) (Reward, bool) {
	for _, reward := range GetRewardCatalog() {
		if reward.ID == id {
			return reward, true
		}
	}
	return Reward{}, false
}
