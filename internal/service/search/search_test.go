package search

import (
	"testing"

	"github.com/ougirez/lwc/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestPlaces(t *testing.T) {
	places := []domain.Place{
		{ID: "1", Name: "Riverside Library"},
		{ID: "2", Name: "Mountain Hut"},
	}

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"substring of first", "River", []string{"1"}},
		{"empty matches all in order", "", []string{"1", "2"}},
		{"case sensitive", "river", []string{}},
		{"no match", "Lake", []string{}},
		{"mid-word", "tain", []string{"2"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Places(places, tt.query)
			ids := make([]string, 0, len(got))
			for _, p := range got {
				ids = append(ids, p.ID)
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}

func TestPlaces_MatchesDescriptionAndCategory(t *testing.T) {
	places := []domain.Place{
		{ID: "1", Name: "A", Description: "ทอผ้าไหม"},
		{ID: "2", Name: "B", Category: domain.CategoryCoLearning},
		{ID: "3", Name: "C"},
	}

	assert.Len(t, Places(places, "ผ้าไหม"), 1)
	assert.Equal(t, "2", Places(places, "Co-Learning")[0].ID)
}

func TestDesserts_MatchesOrigin(t *testing.T) {
	desserts := []domain.ThaiDessert{
		{ID: "1", Name: "ขนมชั้น", Origin: "กรุงเทพฯ"},
		{ID: "2", Name: "ขนมเทียน", Origin: "เชียงราย", Description: "ห่อใบตอง"},
	}

	assert.Equal(t, "2", Desserts(desserts, "เชียงราย")[0].ID)
	assert.Equal(t, "2", Desserts(desserts, "ใบตอง")[0].ID)
	assert.Len(t, Desserts(desserts, "ขนม"), 2)
}
