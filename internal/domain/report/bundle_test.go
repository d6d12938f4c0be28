package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPercentage(t *testing.T) {
	assert.Equal(t, 50.0, Percentage(1, 2))
	assert.Equal(t, 33.3, Percentage(1, 3))
	assert.Equal(t, 66.7, Percentage(2, 3))
	assert.Equal(t, 100.0, Percentage(5, 5))
}

func TestPercentage_ZeroTotal(t *testing.T) {
	assert.Equal(t, 0.0, Percentage(0, 0))
	assert.Equal(t, 0.0, Percentage(3, 0))
}

func TestRate_ZeroTotal(t *testing.T) {
	assert.Equal(t, 0.0, Rate(10, 0))
	assert.Equal(t, 25.0, Rate(1, 4))
}

func TestBuildBreakdown_Ordering(t *testing.T) {
	b := BuildBreakdown(map[string]int{
		"repair":      3,
		"maintenance": 5,
		"inspection":  3,
	}, nil)

	assert.Len(t, b, 3)
	assert.Equal(t, "maintenance", b[0].Category)
	// Ties broken alphabetically
	assert.Equal(t, "inspection", b[1].Category)
	assert.Equal(t, "repair", b[2].Category)
}

func TestBuildBreakdown_PercentageClosure(t *testing.T) {
	counts := map[string]int{"a": 1, "b": 1, "c": 1, "d": 1, "e": 1, "f": 1, "g": 1}
	b := BuildBreakdown(counts, nil)

	var sum float64
	for _, e := range b {
		sum += e.Percentage
	}
	assert.InDelta(t, 100.0, sum, 0.1)
}

func TestBuildBreakdown_Empty(t *testing.T) {
	b := BuildBreakdown(map[string]int{}, nil)
	assert.Empty(t, b)
}

func TestBuildBreakdown_Amounts(t *testing.T) {
	b := BuildBreakdown(
		map[string]int{"paid": 2, "pending": 1},
		map[string]float64{"paid": 150.505, "pending": 20},
	)

	assert.Equal(t, "paid", b[0].Category)
	assert.Equal(t, 150.51, b[0].Amount)
	assert.Equal(t, 20.0, b[1].Amount)
}

func TestThemeFor_KnownTypes(t *testing.T) {
	for _, typ := range AllTypes() {
		theme := ThemeFor(typ)
		assert.NotEmpty(t, theme.Primary, "theme for %s", typ)
		assert.NotEmpty(t, theme.Background, "theme for %s", typ)
	}
}

func TestThemeFor_FallsBackToDefault(t *testing.T) {
	theme := ThemeFor(Type("nonexistent"))
	assert.Equal(t, defaultTheme, theme)

	// Dashboard has no dedicated palette either
	assert.Equal(t, defaultTheme, ThemeFor(TypeDashboard))
}

func TestTypeIsValid(t *testing.T) {
	assert.True(t, TypeBookings.IsValid())
	assert.True(t, TypeDashboard.IsValid())
	assert.False(t, Type("sales").IsValid())
}
