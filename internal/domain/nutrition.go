package domain

import "time"

// FoodCategory groups the catalog into the three slots every meal fills
type FoodCategory string

const (
	FoodCategoryProtein FoodCategory = "protein"
	FoodCategoryCarbs   FoodCategory = "carbs"
	FoodCategoryFats    FoodCategory = "fats"
)

// FoodCategories lists the categories in the order foods are placed into a meal
var FoodCategories = []FoodCategory{FoodCategoryProtein, FoodCategoryCarbs, FoodCategoryFats}

// Food is a catalog entry. Macros and calories are per 100 units of the food's serving.
type Food struct {
	Name       string       `toml:"name" json:"name" bson:"name"`
	Category   FoodCategory `toml:"category" json:"category" bson:"category"`
	Protein    float64      `toml:"protein" json:"protein" bson:"protein"`
	Carbs      float64      `toml:"carbs" json:"carbs" bson:"carbs"`
	Fats       float64      `toml:"fats" json:"fats" bson:"fats"`
	Calories   float64      `toml:"calories" json:"calories" bson:"calories"`
	Serving    string       `toml:"serving" json:"serving" bson:"serving"`
	MinPortion float64      `toml:"min_portion" json:"min_portion" bson:"min_portion"`
	MaxPortion float64      `toml:"max_portion" json:"max_portion" bson:"max_portion"`
}

// MacroTargets holds daily (or per-meal) energy and macronutrient targets
type MacroTargets struct {
	Calories float64 `json:"calories" bson:"calories"`
	Protein  float64 `json:"protein" bson:"protein"`
	Carbs    float64 `json:"carbs" bson:"carbs"`
	Fats     float64 `json:"fats" bson:"fats"`
}

// MealFood is one food placed into a meal with its adjusted portion
type MealFood struct {
	Name     string       `json:"name" bson:"name"`
	Category FoodCategory `json:"category" bson:"category"`
	Portion  float64      `json:"portion" bson:"portion"`
	Serving  string       `json:"serving" bson:"serving"`
	Protein  float64      `json:"protein" bson:"protein"`
	Carbs    float64      `json:"carbs" bson:"carbs"`
	Fats     float64      `json:"fats" bson:"fats"`
	Calories float64      `json:"calories" bson:"calories"`
}

// Meal is one of the five daily meals
type Meal struct {
	Name    string       `json:"name" bson:"name"`
	Targets MacroTargets `json:"targets" bson:"targets"`
	Foods   []MealFood   `json:"foods" bson:"foods"`
}

// Totals sums the macros of the foods actually placed in the meal.
// Portions are clamped, so totals approximate the targets rather than match them.
func (m Meal) Totals() MacroTargets {
	var t MacroTargets
	for _, f := range m.Foods {
		t.Calories += f.Calories
		t.Protein += f.Protein
		t.Carbs += f.Carbs
		t.Fats += f.Fats
	}
	return t
}

// NutritionPlan is the daily macro target plus its meal breakdown
type NutritionPlan struct {
	Goal          Goal         `json:"goal"`
	BMR           float64      `json:"bmr"`
	TDEE          float64      `json:"tdee"`
	Daily         MacroTargets `json:"daily"`
	MacroOverflow bool         `json:"macro_overflow"`
	Meals         []Meal       `json:"meals"`
	GeneratedAt   time.Time    `json:"generated_at"`
}
