package game

import (
	"fmt"
	"math"

	"github.com/lixenwraith/fruit-catcher/parameter"
)

// Category identifies the kind of a falling item
type Category string

const (
	CategoryApple  Category = "apple"
	CategoryOrange Category = "orange"
	CategoryBomb   Category = "bomb"
)

// CategoryDef is one row of the spawn table
type CategoryDef struct {
	Category    Category
	BaseScore   int
	BaseSpeed   float64 // Units per tick before the level bonus
	Probability float64 // Spawn weight, the table sums to 1.0
	MinLevel    int     // Below this level the lowest tier spawns instead
	Hazard      bool    // Catching a hazard ends the game
}

// Catalog is the ordered spawn table; order defines the cumulative distribution
// The first entry is the lowest tier and the substitute for gated categories
type Catalog []CategoryDef

// DefaultCatalog returns the standard apple/orange/bomb table
func DefaultCatalog() Catalog {
	return Catalog{
		{Category: CategoryApple, BaseScore: 100, BaseSpeed: 3, Probability: 0.6, MinLevel: 1},
		{Category: CategoryOrange, BaseScore: 250, BaseSpeed: 4, Probability: 0.3, MinLevel: 2},
		{Category: CategoryBomb, BaseScore: 0, BaseSpeed: 5, Probability: 0.1, MinLevel: 3, Hazard: true},
	}
}

// Validate checks the table invariants
func (c Catalog) Validate() error {
	if len(c) == 0 {
		return fmt.Errorf("%w: empty table", ErrInvalidCatalog)
	}
	if c[0].MinLevel > 1 {
		return fmt.Errorf("%w: lowest tier %q must be available at level 1", ErrInvalidCatalog, c[0].Category)
	}
	if c[0].Hazard {
		return fmt.Errorf("%w: lowest tier %q cannot be a hazard", ErrInvalidCatalog, c[0].Category)
	}

	seen := make(map[Category]bool, len(c))
	sum := 0.0
	for _, def := range c {
		if def.Category == "" {
			return fmt.Errorf("%w: empty category name", ErrInvalidCatalog)
		}
		if seen[def.Category] {
			return fmt.Errorf("%w: duplicate category %q", ErrInvalidCatalog, def.Category)
		}
		seen[def.Category] = true

		if def.Probability < 0 || def.Probability > 1 || math.IsNaN(def.Probability) {
			return fmt.Errorf("%w: %q probability %v out of [0,1]", ErrInvalidCatalog, def.Category, def.Probability)
		}
		if def.BaseSpeed <= 0 {
			return fmt.Errorf("%w: %q speed must be positive", ErrInvalidCatalog, def.Category)
		}
		if def.BaseScore < 0 {
			return fmt.Errorf("%w: %q score must be non-negative", ErrInvalidCatalog, def.Category)
		}
		sum += def.Probability
	}

	if math.Abs(sum-1.0) > parameter.ProbabilityEpsilon {
		return fmt.Errorf("%w: probabilities sum to %v, want 1.0", ErrInvalidCatalog, sum)
	}
	return nil
}

// Lowest returns the lowest-tier category
func (c Catalog) Lowest() CategoryDef {
	return c[0]
}

// Def looks up a category definition
func (c Catalog) Def(cat Category) (CategoryDef, bool) {
	for _, def := range c {
		if def.Category == cat {
			return def, true
		}
	}
	return CategoryDef{}, false
}

// Pick selects a category for draw r in [0,1) at the given level
// Walks the table accumulating probability and takes the first row whose
// cumulative sum reaches r, then substitutes the lowest tier for rows gated above level
func (c Catalog) Pick(r float64, level int) CategoryDef {
	picked := c[len(c)-1]
	cumulative := 0.0
	for _, def := range c {
		cumulative += def.Probability
		if cumulative >= r {
			picked = def
			break
		}
	}

	if picked.MinLevel > level {
		return c.Lowest()
	}
	return picked
}
