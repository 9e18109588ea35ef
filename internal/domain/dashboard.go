package domain

type NameValue struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

type NameVisits struct {
	Name   string `json:"name"`
	Visits int    `json:"visits"`
}

type DashboardSummary struct {
	TotalVisits   int          `json:"totalVisits"`
	TotalPlaces   int          `json:"totalPlaces"`
	TotalDesserts int          `json:"totalDesserts"`
	AvgRating     float64      `json:"avgRating"`
	CategoryData  []NameValue  `json:"categoryData"`
	PopularPlaces []NameVisits `json:"popularPlaces"`
	Featured      []Place      `json:"featured"`
}
