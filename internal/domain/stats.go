package domain

// VisitorStatistics is the persisted layout of the lwc_stats blob.
type VisitorStatistics struct {
	Online    int    `json:"online"`
	Today     int    `json:"today"`
	Month     int    `json:"month"`
	Year      int    `json:"year"`
	LastDate  string `json:"lastDate"`
	LastMonth string `json:"lastMonth"`
	LastYear  string `json:"lastYear"`
}
