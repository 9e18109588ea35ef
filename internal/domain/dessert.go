package domain

type DessertIngredient struct {
	Name   string `json:"name"`
	Amount string `json:"amount"`
}

type DessertImages struct {
	Main        string   `json:"main"`
	Process     []string `json:"process"`
	Ingredients []string `json:"ingredients"`
}

type Nutrition struct {
	Calories    *float64 `json:"calories,omitempty"`
	HealthNotes string   `json:"healthNotes,omitempty"`
}

// ThaiDessert is a traditional recipe with its cultural context.
// Steps are kept in procedure order.
type ThaiDessert struct {
	ID          string              `json:"id"`
	Name        string              `json:"name"`
	LocalName   string              `json:"localName,omitempty"`
	Origin      string              `json:"origin"`
	SubDistrict string              `json:"subDistrict,omitempty"`
	District    string              `json:"district,omitempty"`
	Description string              `json:"description"`
	Images      DessertImages       `json:"images"`
	Lat         float64             `json:"lat"`
	Lng         float64             `json:"lng"`
	Address     string              `json:"address,omitempty"`
	History     string              `json:"history"`
	Beliefs     string              `json:"beliefs,omitempty"`
	Season      string              `json:"season"`
	Ingredients []DessertIngredient `json:"ingredients"`
	Equipment   []string            `json:"equipment"`
	Steps       []string            `json:"steps"`
	Tips        string              `json:"tips,omitempty"`
	Nutrition   Nutrition           `json:"nutrition"`
	Rating      *float64            `json:"rating,omitempty"`
	Reviews     []Review            `json:"reviews"`
	YoutubeURL  string              `json:"youtubeUrl,omitempty"`
}

func (d ThaiDessert) RecordID() string {
	return d.ID
}
