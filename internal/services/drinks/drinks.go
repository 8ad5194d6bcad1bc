// Package drinks groups standardized events by category and by drink name,
// producing counts, shares, favorites and regularity scores.
package drinks

import (
	"math"
	"sort"
	"time"

	"github.com/m-renshaw/pourwatch-tui/internal/models"
)

// regularityScale converts the standard deviation of inter-occurrence day
// gaps to the 0-100 score: a spread of 30 days or more scores zero.
const regularityScale = 30.0

// categoryAccum is the internal working aggregate. Its sets are collapsed to
// counts by the projection step; they never reach the caller.
type categoryAccum struct {
	name        string
	count       int
	volumeCL    float64
	grams       float64
	locations   map[string]struct{}
	units       map[string]struct{}
	drinkCounts map[string]int
	drinkOrder  []string
}

type drinkAccum struct {
	name     string
	category string
	count    int
	volumeCL float64
	grams    float64
	dates    map[string]struct{}
}

// Aggregate builds the category and drink reports. limit bounds the number
// of drinks returned (0 means all). Favorites resolve ties to the item
// encountered first in input order.
func Aggregate(events []models.StandardizedEvent, limit int) (models.CategoryReport, models.DrinkReport) {
	cats := make(map[string]*categoryAccum)
	var catOrder []string
	byDrink := make(map[string]*drinkAccum)
	var drinkOrder []string

	for _, ev := range events {
		category := ev.Category
		if category == "" {
			category = "uncategorized"
		}

		c, ok := cats[category]
		if !ok {
			c = &categoryAccum{
				name:        category,
				locations:   make(map[string]struct{}),
				units:       make(map[string]struct{}),
				drinkCounts: make(map[string]int),
			}
			cats[category] = c
			catOrder = append(catOrder, category)
		}
		c.count++
		c.volumeCL += ev.VolumeCL
		c.grams += ev.EthanolGrams
		if ev.Location != "" {
			c.locations[ev.Location] = struct{}{}
		}
		if ev.Unit != "" {
			c.units[ev.Unit] = struct{}{}
		}
		if _, seen := c.drinkCounts[ev.Name]; !seen {
			c.drinkOrder = append(c.drinkOrder, ev.Name)
		}
		c.drinkCounts[ev.Name]++

		d, ok := byDrink[ev.Name]
		if !ok {
			d = &drinkAccum{name: ev.Name, category: category, dates: make(map[string]struct{})}
			byDrink[ev.Name] = d
			drinkOrder = append(drinkOrder, ev.Name)
		}
		d.count++
		d.volumeCL += ev.VolumeCL
		d.grams += ev.EthanolGrams
		d.dates[ev.Date] = struct{}{}
	}

	return projectCategories(cats, catOrder, len(events)),
		projectDrinks(byDrink, drinkOrder, len(events), limit)
}

// projectCategories is the explicit projection from working aggregates to the
// output DTOs.
func projectCategories(cats map[string]*categoryAccum, order []string, total int) models.CategoryReport {
	report := models.CategoryReport{TotalEvents: total}
	if total == 0 {
		return report
	}

	topShare := 0.0
	for _, name := range order {
		c := cats[name]
		stat := models.CategoryStat{
			Name:              c.name,
			Count:             c.count,
			Percentage:        wholePercent(c.count, total),
			TotalVolumeCL:     round1(c.volumeCL),
			TotalEthanolGrams: round1(c.grams),
			LocationCount:     len(c.locations),
			UnitCount:         len(c.units),
			FavoriteDrink:     favorite(c.drinkCounts, c.drinkOrder),
		}
		report.Categories = append(report.Categories, stat)

		share := float64(c.count) / float64(total) * 100
		if share > topShare {
			topShare = share
			report.TopCategory = c.name
		}
	}

	sort.SliceStable(report.Categories, func(i, j int) bool {
		return report.Categories[i].Count > report.Categories[j].Count
	})

	report.Balanced = topShare <= 60
	report.Concentrated = topShare >= 80
	return report
}

func projectDrinks(byDrink map[string]*drinkAccum, order []string, total, limit int) models.DrinkReport {
	report := models.DrinkReport{TotalEvents: total}
	if total == 0 {
		return report
	}

	for _, name := range order {
		d := byDrink[name]
		report.Drinks = append(report.Drinks, models.DrinkStat{
			Name:              d.name,
			Category:          d.category,
			Count:             d.count,
			Percentage:        wholePercent(d.count, total),
			TotalVolumeCL:     round1(d.volumeCL),
			TotalEthanolGrams: round1(d.grams),
			Regularity:        regularity(d.dates),
		})
	}

	sort.SliceStable(report.Drinks, func(i, j int) bool {
		return report.Drinks[i].Count > report.Drinks[j].Count
	})
	report.Favorite = report.Drinks[0].Name

	if limit > 0 && len(report.Drinks) > limit {
		report.Drinks = report.Drinks[:limit]
	}
	return report
}

// favorite picks the most frequent drink, resolving ties to the name
// encountered first.
func favorite(counts map[string]int, order []string) string {
	best := ""
	bestCount := 0
	for _, name := range order {
		if counts[name] > bestCount {
			best = name
			bestCount = counts[name]
		}
	}
	return best
}

// regularity measures how evenly spaced repeat consumption is: the standard
// deviation of day gaps between sorted distinct dates, mapped to 0-100. A
// drink seen on fewer than two days has no gaps and scores zero.
func regularity(dateSet map[string]struct{}) float64 {
	days := make([]time.Time, 0, len(dateSet))
	for d := range dateSet {
		if t, err := time.Parse(models.DateLayout, d); err == nil {
			days = append(days, t)
		}
	}
	if len(days) < 2 {
		return 0
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })

	gaps := make([]float64, 0, len(days)-1)
	for i := 1; i < len(days); i++ {
		gaps = append(gaps, days[i].Sub(days[i-1]).Hours()/24)
	}

	mean := 0.0
	for _, g := range gaps {
		mean += g
	}
	mean /= float64(len(gaps))

	variance := 0.0
	for _, g := range gaps {
		variance += (g - mean) * (g - mean)
	}
	stdDev := math.Sqrt(variance / float64(len(gaps)))

	score := 100 - (stdDev/regularityScale)*100
	if score < 0 {
		return 0
	}
	return round1(score)
}

func wholePercent(part, total int) int {
	return int(math.Round(float64(part) / float64(total) * 100))
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
