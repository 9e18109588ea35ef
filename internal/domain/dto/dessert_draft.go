package dto

import "github.com/ougirez/lwc/internal/domain"

type DessertDraft struct {
	Name        string                     `json:"name" validate:"required"`
	LocalName   string                     `json:"localName"`
	Origin      string                     `json:"origin"`
	SubDistrict string                     `json:"subDistrict"`
	District    string                     `json:"district"`
	Description string                     `json:"description" validate:"required"`
	Images      DessertImagesDraft         `json:"images"`
	Lat         *float64                   `json:"lat" validate:"omitempty,latitude"`
	Lng         *float64                   `json:"lng" validate:"omitempty,longitude"`
	Address     string                     `json:"address"`
	History     string                     `json:"history"`
	Beliefs     string                     `json:"beliefs"`
	Season      string                     `json:"season"`
	Ingredients []domain.DessertIngredient `json:"ingredients"`
	Equipment   []string                   `json:"equipment"`
	Steps       []string                   `json:"steps"`
	Tips        string                     `json:"tips"`
	Nutrition   NutritionDraft             `json:"nutrition"`
	Rating      *float64                   `json:"rating" validate:"omitempty,gte=0,lte=5"`
	Reviews     []domain.Review            `json:"reviews"`
	YoutubeURL  string                     `json:"youtubeUrl"`
}

// DessertImagesDraft requires a main picture; process and ingredient shots are optional.
type DessertImagesDraft struct {
	Main        string   `json:"main" validate:"notblank"`
	Process     []string `json:"process"`
	Ingredients []string `json:"ingredients"`
}

type NutritionDraft struct {
	Calories    *float64 `json:"calories" validate:"omitempty,gte=0"`
	HealthNotes string   `json:"healthNotes"`
}

func (d *DessertDraft) CommitNew(id string) (domain.ThaiDessert, error) {
	if err := Validate(d); err != nil {
		return domain.ThaiDessert{}, err
	}

	return d.fill(domain.ThaiDessert{
		ID:  id,
		Lat: DefaultLat,
		Lng: DefaultLng,
	}), nil
}

// CommitEdit overlays the draft on existing; rating and reviews survive when the draft omits them.
func (d *DessertDraft) CommitEdit(existing domain.ThaiDessert) (domain.ThaiDessert, error) {
	if err := Validate(d); err != nil {
		return domain.ThaiDessert{}, err
	}

	return d.fill(existing), nil
}

func (d *DessertDraft) fill(t domain.ThaiDessert) domain.ThaiDessert {
	t.Name = d.Name
	t.LocalName = d.LocalName
	t.Origin = d.Origin
	t.SubDistrict = d.SubDistrict
	t.District = d.District
	t.Description = d.Description
	t.Images = domain.DessertImages{
		Main:        d.Images.Main,
		Process:     d.Images.Process,
		Ingredients: d.Images.Ingredients,
	}
	t.Lat = derefOr(d.Lat, t.Lat)
	t.Lng = derefOr(d.Lng, t.Lng)
	t.Address = d.Address
	t.History = d.History
	t.Beliefs = d.Beliefs
	t.Season = d.Season
	t.Ingredients = d.Ingredients
	t.Equipment = d.Equipment
	t.Steps = d.Steps
	t.Tips = d.Tips
	t.Nutrition = domain.Nutrition{Calories: d.Nutrition.Calories, HealthNotes: d.Nutrition.HealthNotes}
	t.YoutubeURL = d.YoutubeURL
	if d.Rating != nil {
		t.Rating = d.Rating
	}
	if d.Reviews != nil {
		t.Reviews = d.Reviews
	}
	return t
}
