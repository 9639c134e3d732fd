package model

import "time"

const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCompleted = "completed"
	BookingStatusCancelled = "cancelled"
)

type Booking struct {
	ID         string    `json:"id,omitempty" bson:"_id,omitempty" validate:"omitempty,mongodb"`
	ListingID  string    `json:"listingId" bson:"listing_id" validate:"required,mongodb"`
	UserID     string    `json:"userId" bson:"user_id" validate:"required"`
	StartDate  time.Time `json:"startDate" bson:"start_date" validate:"required"`
	EndDate    time.Time `json:"endDate" bson:"end_date" validate:"required,gtfield=StartDate"`
	TotalPrice float64   `json:"totalPrice" bson:"total_price" validate:"required,gt=0"`
	Status     string    `json:"status" bson:"status" validate:"required,oneof=pending confirmed completed cancelled"`
	Guests     int       `json:"guests" bson:"guests" validate:"required,min=1,max=200"`
	CreatedAt  time.Time `json:"createdAt" bson:"created_at" validate:"omitempty"`
}

type BookingUpdate struct {
	StartDate  *time.Time `json:"startDate,omitempty" validate:"omitempty"`
	EndDate    *time.Time `json:"endDate,omitempty" validate:"omitempty,gtfield=StartDate"`
	TotalPrice *float64   `json:"totalPrice,omitempty" validate:"omitempty,gt=0"`
	Status     string     `json:"status,omitempty" validate:"omitempty,oneof=pending confirmed completed cancelled"`
	Guests     *int       `json:"guests,omitempty" validate:"omitempty,min=1,max=200"`
}
