package domain

// Place is a registered learning or tourism site.
type Place struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Category    Category `json:"category"`
	CoverImage  string   `json:"coverImage"`
	Images      []string `json:"images"`
	Lat         float64  `json:"lat"`
	Lng         float64  `json:"lng"`
	Address     string   `json:"address"`
	SubDistrict string   `json:"subDistrict,omitempty"`
	District    string   `json:"district,omitempty"`
	Province    string   `json:"province,omitempty"`
	Contact     string   `json:"contact"`
	Rating      float64  `json:"rating"`
	Reviews     []Review `json:"reviews"`
	Visits      int      `json:"visits"`
	OwnerName   string   `json:"ownerName,omitempty"`
	SocialMedia string   `json:"socialMedia,omitempty"`
	YoutubeURL  string   `json:"youtubeUrl,omitempty"`
}

func (p Place) RecordID() string {
	return p.ID
}

// Marker is the slice of a place a map renderer needs.
type Marker struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Category Category `json:"category"`
	Lat      float64  `json:"lat"`
	Lng      float64  `json:"lng"`
}

func (p Place) Marker() Marker {
	return Marker{ID: p.ID, Name: p.Name, Category: p.Category, Lat: p.Lat, Lng: p.Lng}
}
