package search

import (
	"strings"

	"github.com/ougirez/lwc/internal/domain"
)

// Filter keeps the items for which any field contains query as a
// case-sensitive substring. An empty query keeps everything. Order is preserved.
func Filter[T any](items []T, query string, fields func(T) []string) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if Matches(query, fields(item)...) {
			out = append(out, item)
		}
	}
	return out
}

func Matches(query string, fields ...string) bool {
	if query == "" {
		return true
	}
	for _, f := range fields {
		if strings.Contains(f, query) {
			return true
		}
	}
	return false
}

func PlaceFields(p domain.Place) []string {
	return []string{p.Name, p.Description, string(p.Category)}
}

func DessertFields(d domain.ThaiDessert) []string {
	return []string{d.Name, d.Description, d.Origin}
}

func Places(places []domain.Place, query string) []domain.Place {
	return Filter(places, query, PlaceFields)
}

func Desserts(desserts []domain.ThaiDessert, query string) []domain.ThaiDessert {
	return Filter(desserts, query, DessertFields)
}
