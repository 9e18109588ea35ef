package dto

import "github.com/ougirez/lwc/internal/domain"

const (
	DefaultLat = 13.75
	DefaultLng = 100.50

	newPlaceRating = 5.0
)

// PlaceDraft is an admin form submission. Every field may be missing until Commit.
type PlaceDraft struct {
	Name        string          `json:"name" validate:"required"`
	Description string          `json:"description" validate:"required"`
	Category    domain.Category `json:"category" validate:"omitempty,category"`
	CoverImage  string          `json:"coverImage"`
	Images      []string        `json:"images"`
	Lat         *float64        `json:"lat" validate:"omitempty,latitude"`
	Lng         *float64        `json:"lng" validate:"omitempty,longitude"`
	Address     string          `json:"address"`
	SubDistrict string          `json:"subDistrict"`
	District    string          `json:"district"`
	Province    string          `json:"province"`
	Contact     string          `json:"contact"`
	OwnerName   string          `json:"ownerName"`
	SocialMedia string          `json:"socialMedia"`
	YoutubeURL  string          `json:"youtubeUrl"`
	Rating      *float64        `json:"rating" validate:"omitempty,gte=0,lte=5"`
	Visits      *int            `json:"visits" validate:"omitempty,gte=0"`
	Reviews     []domain.Review `json:"reviews"`
}

// CommitNew validates the draft and builds a fresh place: rating 5, no visits, no reviews.
func (d *PlaceDraft) CommitNew(id string) (domain.Place, error) {
	if err := Validate(d); err != nil {
		return domain.Place{}, err
	}

	p := d.fill(domain.Place{
		ID:       id,
		Category: domain.CategorySubDistrict,
		Lat:      DefaultLat,
		Lng:      DefaultLng,
	})
	p.Rating = newPlaceRating
	p.Visits = 0
	p.Reviews = []domain.Review{}

	return p, nil
}

// CommitEdit validates the draft and overlays it on existing. Rating, visits and
// reviews are kept from existing unless the draft carries them.
func (d *PlaceDraft) CommitEdit(existing domain.Place) (domain.Place, error) {
	if err := Validate(d); err != nil {
		return domain.Place{}, err
	}

	p := d.fill(existing)
	p.Rating = derefOr(d.Rating, existing.Rating)
	p.Visits = derefOr(d.Visits, existing.Visits)
	if d.Reviews != nil {
		p.Reviews = d.Reviews
	}

	return p, nil
}

func (d *PlaceDraft) fill(p domain.Place) domain.Place {
	p.Name = d.Name
	p.Description = d.Description
	if d.Category != "" {
		p.Category = d.Category
	}
	p.CoverImage = d.CoverImage
	p.Images = nonBlank(d.Images)
	p.Lat = derefOr(d.Lat, p.Lat)
	p.Lng = derefOr(d.Lng, p.Lng)
	p.Address = d.Address
	p.SubDistrict = d.SubDistrict
	p.District = d.District
	p.Province = d.Province
	p.Contact = d.Contact
	p.OwnerName = d.OwnerName
	p.SocialMedia = d.SocialMedia
	p.YoutubeURL = d.YoutubeURL
	return p
}
