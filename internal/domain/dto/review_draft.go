package dto

import (
	"strings"

	"github.com/ougirez/lwc/internal/domain"
)

const GuestUser = "ผู้เยี่ยมชม (Guest)"

// ReviewDraft is a visitor submission. A zero rating means "not rated".
type ReviewDraft struct {
	User    string `json:"user"`
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
	Comment string `json:"comment" validate:"notblank"`
}

func (d *ReviewDraft) Commit(id, date string) (domain.Review, error) {
	if err := Validate(d); err != nil {
		return domain.Review{}, err
	}

	user := strings.TrimSpace(d.User)
	if user == "" {
		user = GuestUser
	}

	return domain.Review{
		ID:      id,
		User:    user,
		Rating:  d.Rating,
		Comment: d.Comment,
		Date:    date,
	}, nil
}
