package dashboard

import (
	"sort"

	"github.com/ougirez/lwc/internal/domain"
	"github.com/shopspring/decimal"
)

const (
	popularLimit   = 5
	featuredLimit  = 8
	nameCutRunes   = 15
	nameCutSuffix  = "..."
	ratingDecimals = 1
)

type Service struct{}

func NewDashboardService() *Service {
	return &Service{}
}

func (s *Service) Summary(places []domain.Place, desserts []domain.ThaiDessert) domain.DashboardSummary {
	summary := domain.DashboardSummary{
		TotalPlaces:   len(places),
		TotalDesserts: len(desserts),
		CategoryData:  []domain.NameValue{},
		PopularPlaces: []domain.NameVisits{},
		Featured:      []domain.Place{},
	}

	ratingSum := decimal.Zero
	perCategory := make(map[domain.Category]int, len(domain.Categories))
	for _, p := range places {
		summary.TotalVisits += p.Visits
		ratingSum = ratingSum.Add(decimal.NewFromFloat(p.Rating))
		perCategory[p.Category]++
	}

	if len(places) > 0 {
		summary.AvgRating = ratingSum.
			Div(decimal.NewFromInt(int64(len(places)))).
			Round(ratingDecimals).
			InexactFloat64()
	}

	for _, c := range domain.Categories {
		if n := perCategory[c]; n > 0 {
			summary.CategoryData = append(summary.CategoryData, domain.NameValue{Name: string(c), Value: n})
		}
	}

	byVisits := sortedCopy(places, func(a, b domain.Place) bool { return a.Visits > b.Visits })
	for _, p := range byVisits[:min(popularLimit, len(byVisits))] {
		summary.PopularPlaces = append(summary.PopularPlaces, domain.NameVisits{Name: shortName(p.Name), Visits: p.Visits})
	}

	byRating := sortedCopy(places, func(a, b domain.Place) bool { return a.Rating > b.Rating })
	summary.Featured = append(summary.Featured, byRating[:min(featuredLimit, len(byRating))]...)

	return summary
}

func sortedCopy(places []domain.Place, less func(a, b domain.Place) bool) []domain.Place {
	out := make([]domain.Place, len(places))
	copy(out, places)
	sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out
}

func shortName(name string) string {
	r := []rune(name)
	return string(r[:min(nameCutRunes, len(r))]) + nameCutSuffix
}
