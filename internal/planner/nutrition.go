package planner

import (
	"fmt"
	"math"

	"github.com/mansoorceksport/fitpro/internal/domain"
)

// Fixed model parameters. Age is not collected, so the Mifflin-St Jeor formula runs with a constant.
const (
	assumedAge          = 25
	activityMultiplier  = 1.55
	calorieAdjustment   = 500
	proteinPerKg        = 2.2
	fatCalorieShare     = 0.25
	caloriesPerGramProt = 4
	caloriesPerGramCarb = 4
	caloriesPerGramFat  = 9
	mealsPerDay         = 5
)

// MealNames are the fixed daily meals, in order
var MealNames = [mealsPerDay]string{
	"Breakfast",
	"Morning Snack",
	"Lunch",
	"Afternoon Snack",
	"Dinner",
}

// Rand is the random source used to pick foods. *math/rand/v2.Rand satisfies it.
type Rand interface {
	IntN(n int) int
}

// DailyTargets computes unrounded daily targets.
// overflow reports that protein and fat calories alone exceed the budget; carbs are then clamped to 0.
func DailyTargets(weightKg, heightCm float64, goal domain.Goal) (targets domain.MacroTargets, bmr, tdee float64, overflow bool, err error) {
	if !goal.Valid() {
		return domain.MacroTargets{}, 0, 0, false, fmt.Errorf("%w: %q", domain.ErrInvalidGoal, goal)
	}
	if !(weightKg > 0) || !(heightCm > 0) || math.IsInf(weightKg, 0) || math.IsInf(heightCm, 0) {
		return domain.MacroTargets{}, 0, 0, false, fmt.Errorf("%w: weight=%v height=%v", domain.ErrInvalidBiometric, weightKg, heightCm)
	}

	bmr = 10*weightKg + 6.25*heightCm - 5*assumedAge + 5
	tdee = bmr * activityMultiplier
	calories := tdee - calorieAdjustment
	if goal == domain.GoalBulking {
		calories = tdee + calorieAdjustment
	}

	targets, overflow = SplitMacros(calories, weightKg)
	return targets, bmr, tdee, overflow, nil
}

// SplitMacros divides a calorie budget into protein (by body weight), fats (a fixed share of calories)
// and carbs (the remainder). A negative budget or remainder is clamped to 0 and reported as overflow.
func SplitMacros(calories, weightKg float64) (targets domain.MacroTargets, overflow bool) {
	if calories < 0 {
		calories = 0
		overflow = true
	}

	protein := weightKg * proteinPerKg
	fats := calories * fatCalorieShare / caloriesPerGramFat
	carbs := (calories - (protein*caloriesPerGramProt + fats*caloriesPerGramFat)) / caloriesPerGramCarb
	if carbs < 0 {
		carbs = 0
		overflow = true
	}

	return domain.MacroTargets{Calories: calories, Protein: protein, Carbs: carbs, Fats: fats}, overflow
}

// ComputeNutritionPlan derives the daily targets and a 5-meal breakdown.
// Daily targets on the plan are rounded; meals are built from the unrounded values.
func ComputeNutritionPlan(weightKg, heightCm float64, goal domain.Goal, preferredFoods []string, rng Rand) (*domain.NutritionPlan, error) {
	if err := ValidateFoodNames(preferredFoods); err != nil {
		return nil, err
	}
	daily, bmr, tdee, overflow, err := DailyTargets(weightKg, heightCm, goal)
	if err != nil {
		return nil, err
	}

	return &domain.NutritionPlan{
		Goal: goal,
		BMR:  math.Round(bmr),
		TDEE: math.Round(tdee),
		Daily: domain.MacroTargets{
			Calories: math.Round(daily.Calories),
			Protein:  math.Round(daily.Protein),
			Carbs:    math.Round(daily.Carbs),
			Fats:     math.Round(daily.Fats),
		},
		MacroOverflow: overflow,
		Meals:         GenerateMeals(daily, preferredFoods, rng),
	}, nil
}

// GenerateMeals splits daily targets evenly into the five meals and picks one food per category for each.
// Foods are drawn from the preferred set when it is non-empty; a category with no preferred food
// falls back to its first catalog entry.
func GenerateMeals(daily domain.MacroTargets, preferredFoods []string, rng Rand) []domain.Meal {
	perMeal := domain.MacroTargets{
		Calories: daily.Calories / mealsPerDay,
		Protein:  daily.Protein / mealsPerDay,
		Carbs:    daily.Carbs / mealsPerDay,
		Fats:     daily.Fats / mealsPerDay,
	}

	preferred := make(map[string]struct{}, len(preferredFoods))
	for _, n := range preferredFoods {
		preferred[n] = struct{}{}
	}

	meals := make([]domain.Meal, 0, mealsPerDay)
	for _, name := range MealNames {
		meal := domain.Meal{
			Name:    name,
			Targets: perMeal,
			Foods:   make([]domain.MealFood, 0, len(domain.FoodCategories)),
		}
		for _, cat := range domain.FoodCategories {
			food := pickFood(cat, preferred, rng)
			meal.Foods = append(meal.Foods, AdjustPortion(food, perMeal.Protein, perMeal.Carbs, perMeal.Fats))
		}
		meals = append(meals, meal)
	}
	return meals
}

func pickFood(cat domain.FoodCategory, preferred map[string]struct{}, rng Rand) domain.Food {
	foods := catalog[cat]
	candidates := foods
	if len(preferred) > 0 {
		candidates = make([]domain.Food, 0, len(foods))
		for _, f := range foods {
			if _, ok := preferred[f.Name]; ok {
				candidates = append(candidates, f)
			}
		}
	}
	if len(candidates) == 0 {
		return foods[0]
	}
	return candidates[rng.IntN(len(candidates))]
}

// AdjustPortion scales a food toward the meal target of its dominant macro.
// The first axis that applies wins: protein above 10, then carbs above 15, then fats above 10.
// The portion is rounded and clamped to the food's bounds; reported macros are rounded.
func AdjustPortion(food domain.Food, mealProtein, mealCarbs, mealFats float64) domain.MealFood {
	factor := 1.0
	switch {
	case food.Protein > 10:
		factor = mealProtein / food.Protein
	case food.Carbs > 15:
		factor = mealCarbs / food.Carbs
	case food.Fats > 10:
		factor = mealFats / food.Fats
	}

	portion := math.Round(100 * factor)
	portion = math.Max(food.MinPortion, math.Min(portion, food.MaxPortion))

	return domain.MealFood{
		Name:     food.Name,
		Category: food.Category,
		Portion:  portion,
		Serving:  food.Serving,
		Protein:  math.Round(food.Protein * portion / 100),
		Carbs:    math.Round(food.Carbs * portion / 100),
		Fats:     math.Round(food.Fats * portion / 100),
		Calories: math.Round(food.Calories * portion / 100),
	}
}
