package domain

// Review is a visitor rating attached to a place or a dessert.
type Review struct {
	ID      string `json:"id"`
	User    string `json:"user"`
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
	Date    string `json:"date"`
}

// PrependReview returns reviews with r in front. The input slice is not modified.
func PrependReview(reviews []Review, r Review) []Review {
	out := make([]Review, 0, len(reviews)+1)
	out = append(out, r)
	return append(out, reviews...)
}

// ReviewComments returns the comment texts in stored order.
func ReviewComments(reviews []Review) []string {
	comments := make([]string, 0, len(reviews))
	for _, r := range reviews {
		comments = append(comments, r.Comment)
	}
	return comments
}
