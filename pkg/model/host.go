package model

import "time"

// Host is the profile of a user who lists properties. Identity itself comes
// from the external provider; this record only carries marketplace-facing
// fields.
type Host struct {
	ID        string    `json:"id,omitempty" bson:"_id,omitempty" validate:"omitempty,mongodb"`
	UserID    string    `json:"userId" bson:"user_id" validate:"required"`
	Name      string    `json:"name" bson:"name" validate:"required,min=2,max=100"`
	Email     string    `json:"email" bson:"email" validate:"required,email"`
	Phone     string    `json:"phone,omitempty" bson:"phone,omitempty" validate:"omitempty,e164"`
	AvatarURL string    `json:"avatarUrl,omitempty" bson:"avatar_url,omitempty" validate:"omitempty,url"`
	About     string    `json:"about,omitempty" bson:"about,omitempty" validate:"omitempty,max=3000"`
	CreatedAt time.Time `json:"createdAt" bson:"created_at" validate:"omitempty"`
}

type HostUpdate struct {
	Name      string  `json:"name,omitempty" validate:"omitempty,min=2,max=100"`
	Email     string  `json:"email,omitempty" validate:"omitempty,email"`
	Phone     *string `json:"phone,omitempty" validate:"omitempty,e164"`
	AvatarURL *string `json:"avatarUrl,omitempty" validate:"omitempty,url"`
	About     *string `json:"about,omitempty" validate:"omitempty,max=3000"`
}
