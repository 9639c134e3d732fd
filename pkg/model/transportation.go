package model

import "time"

const (
	VehicleTypeCar      = "car"
	VehicleTypeVan      = "van"
	VehicleTypeMinibus  = "minibus"
	VehicleTypeMotobike = "motorbike"
)

// Transportation is a transport add-on attached to a stay: an airport pickup
// or a rental arranged alongside the booking.
type Transportation struct {
	ID              string    `json:"id,omitempty" bson:"_id,omitempty" validate:"omitempty,mongodb"`
	UserID          string    `json:"userId" bson:"user_id" validate:"required"`
	BookingID       string    `json:"bookingId,omitempty" bson:"booking_id,omitempty" validate:"omitempty,mongodb"`
	VehicleType     string    `json:"vehicleType" bson:"vehicle_type" validate:"required,oneof=car van minibus motorbike"`
	PickupLocation  string    `json:"pickupLocation" bson:"pickup_location" validate:"required,min=2,max=300"`
	DropoffLocation string    `json:"dropoffLocation" bson:"dropoff_location" validate:"required,min=2,max=300"`
	Date            time.Time `json:"date" bson:"date" validate:"required"`
	Price           float64   `json:"price" bson:"price" validate:"required,gt=0"`
	Status          string    `json:"status" bson:"status" validate:"required,oneof=pending confirmed completed cancelled"`
	CreatedAt       time.Time `json:"createdAt" bson:"created_at" validate:"omitempty"`
}
