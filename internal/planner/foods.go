package planner

import (
	_ "embed"
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/mansoorceksport/fitpro/internal/domain"
)

//go:embed foods.toml
var foodsTOML string

type foodCatalogFile struct {
	Foods []domain.Food `toml:"foods"`
}

// catalog is decoded once at init and never mutated afterwards
var catalog = mustLoadCatalog(foodsTOML)

func mustLoadCatalog(doc string) map[domain.FoodCategory][]domain.Food {
	c, err := loadCatalog(doc)
	if err != nil {
		panic(fmt.Sprintf("planner: invalid food catalog: %v", err))
	}
	return c
}

func loadCatalog(doc string) (map[domain.FoodCategory][]domain.Food, error) {
	var file foodCatalogFile
	if _, err := toml.Decode(doc, &file); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}

	c := make(map[domain.FoodCategory][]domain.Food, len(domain.FoodCategories))
	seen := make(map[string]struct{}, len(file.Foods))
	for _, f := range file.Foods {
		if _, dup := seen[f.Name]; dup {
			return nil, fmt.Errorf("duplicate food %q", f.Name)
		}
		seen[f.Name] = struct{}{}

		switch f.Category {
		case domain.FoodCategoryProtein, domain.FoodCategoryCarbs, domain.FoodCategoryFats:
		default:
			return nil, fmt.Errorf("food %q: unknown category %q", f.Name, f.Category)
		}
		if f.MinPortion <= 0 || f.MinPortion > f.MaxPortion {
			return nil, fmt.Errorf("food %q: invalid portion bounds [%v, %v]", f.Name, f.MinPortion, f.MaxPortion)
		}
		if f.Protein < 0 || f.Carbs < 0 || f.Fats < 0 || f.Calories < 0 {
			return nil, fmt.Errorf("food %q: negative macros", f.Name)
		}
		c[f.Category] = append(c[f.Category], f)
	}

	for _, cat := range domain.FoodCategories {
		if len(c[cat]) == 0 {
			return nil, fmt.Errorf("category %q has no foods", cat)
		}
	}
	return c, nil
}

// Foods returns a copy of the catalog entries of one category, in catalog order
func Foods(category domain.FoodCategory) []domain.Food {
	return append([]domain.Food(nil), catalog[category]...)
}

// Catalog returns a copy of the full catalog keyed by category
func Catalog() map[domain.FoodCategory][]domain.Food {
	out := make(map[domain.FoodCategory][]domain.Food, len(catalog))
	for cat := range catalog {
		out[cat] = Foods(cat)
	}
	return out
}

// LookupFood finds a catalog entry by exact name
func LookupFood(name string) (domain.Food, bool) {
	for _, cat := range domain.FoodCategories {
		for _, f := range catalog[cat] {
			if f.Name == name {
				return f, true
			}
		}
	}
	return domain.Food{}, false
}

// ValidateFoodNames fails with ErrUnknownFood on the first name missing from the catalog
func ValidateFoodNames(names []string) error {
	for _, n := range names {
		if _, ok := LookupFood(n); !ok {
			return fmt.Errorf("%w: %q", domain.ErrUnknownFood, n)
		}
	}
	return nil
}
