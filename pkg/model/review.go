package model

import "time"

type Review struct {
	ID         string    `json:"id,omitempty" bson:"_id,omitempty" validate:"omitempty,mongodb"`
	ListingID  string    `json:"listingId" bson:"listing_id" validate:"omitempty,mongodb"`
	UserID     string    `json:"userId,omitempty" bson:"user_id,omitempty"`
	AuthorName string    `json:"authorName" bson:"author_name" validate:"required,min=1,max=100"`
	Rating     float64   `json:"rating" bson:"rating" validate:"min=0,max=5"`
	Comment    string    `json:"comment" bson:"comment" validate:"omitempty,max=2000"`
	CreatedAt  time.Time `json:"createdAt" bson:"created_at" validate:"omitempty"`
}
