package game

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalogValid(t *testing.T) {
	require.NoError(t, DefaultCatalog().Validate())
}

func TestCatalogValidateRejects(t *testing.T) {
	tests := []struct {
		name    string
		catalog Catalog
	}{
		{"empty", Catalog{}},
		{"sum below one", Catalog{
			{Category: CategoryApple, BaseScore: 1, BaseSpeed: 1, Probability: 0.5, MinLevel: 1},
		}},
		{"duplicate", Catalog{
			{Category: CategoryApple, BaseScore: 1, BaseSpeed: 1, Probability: 0.5, MinLevel: 1},
			{Category: CategoryApple, BaseScore: 1, BaseSpeed: 1, Probability: 0.5, MinLevel: 1},
		}},
		{"unnamed", Catalog{
			{Category: "", BaseScore: 1, BaseSpeed: 1, Probability: 1, MinLevel: 1},
		}},
		{"hazard lowest tier", Catalog{
			{Category: CategoryBomb, BaseSpeed: 1, Probability: 1, MinLevel: 1, Hazard: true},
		}},
		{"gated lowest tier", Catalog{
			{Category: CategoryApple, BaseScore: 1, BaseSpeed: 1, Probability: 1, MinLevel: 2},
		}},
		{"zero speed", Catalog{
			{Category: CategoryApple, BaseScore: 1, BaseSpeed: 0, Probability: 1, MinLevel: 1},
		}},
		{"negative score", Catalog{
			{Category: CategoryApple, BaseScore: -1, BaseSpeed: 1, Probability: 1, MinLevel: 1},
		}},
		{"nan probability", Catalog{
			{Category: CategoryApple, BaseScore: 1, BaseSpeed: 1, Probability: math.NaN(), MinLevel: 1},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.catalog.Validate(), ErrInvalidCatalog)
		})
	}
}

func TestCatalogPickGating(t *testing.T) {
	c := DefaultCatalog()

	tests := []struct {
		r     float64
		level int
		want  Category
	}{
		{0.0, 1, CategoryApple},
		{0.5, 1, CategoryApple},
		{0.7, 1, CategoryApple},  // orange suppressed below level 2
		{0.95, 1, CategoryApple}, // bomb suppressed below level 3
		{0.7, 2, CategoryOrange},
		{0.95, 2, CategoryApple},
		{0.5, 3, CategoryApple},
		{0.7, 3, CategoryOrange},
		{0.95, 3, CategoryBomb},
		{0.95, 10, CategoryBomb},
	}

	for _, tt := range tests {
		got := c.Pick(tt.r, tt.level)
		assert.Equal(t, tt.want, got.Category, "r=%v level=%d", tt.r, tt.level)
	}
}

func TestCatalogPickReachesAllAtLevelThree(t *testing.T) {
	c := DefaultCatalog()
	seen := make(map[Category]bool)
	for i := 0; i < 100; i++ {
		seen[c.Pick(float64(i)/100, 3).Category] = true
	}
	assert.Len(t, seen, 3)
}

func TestCatalogDef(t *testing.T) {
	c := DefaultCatalog()

	def, ok := c.Def(CategoryBomb)
	require.True(t, ok)
	assert.True(t, def.Hazard)

	_, ok = c.Def("pear")
	assert.False(t, ok)
}

func TestSpawnInterval(t *testing.T) {
	assert.Equal(t, 2600*time.Millisecond, SpawnInterval(1))
	assert.Equal(t, 2200*time.Millisecond, SpawnInterval(2))
	assert.Equal(t, 1000*time.Millisecond, SpawnInterval(5))
	assert.Equal(t, 800*time.Millisecond, SpawnInterval(6))
	assert.Equal(t, 800*time.Millisecond, SpawnInterval(100))

	prev := SpawnInterval(1)
	for level := 2; level <= 20; level++ {
		cur := SpawnInterval(level)
		assert.LessOrEqual(t, cur, prev, "level %d", level)
		assert.GreaterOrEqual(t, cur, 800*time.Millisecond)
		prev = cur
	}
}

func TestLevelForScore(t *testing.T) {
	cases := map[int]int{0: 1, 499: 1, 500: 2, 600: 2, 999: 2, 1000: 3, 1500: 4}
	for score, want := range cases {
		assert.Equal(t, want, LevelForScore(score), "score %d", score)
	}
}
