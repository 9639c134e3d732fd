package model

import "time"

// Property types the catalog recognizes. Filtering compares against these
// exact labels.
const (
	PropertyTypeApartment = "Apartment"
	PropertyTypeHouse     = "House"
	PropertyTypeVilla     = "Villa"
	PropertyTypeCondo     = "Condo"
	PropertyTypeCabin     = "Cabin"
	PropertyTypeCottage   = "Cottage"
	PropertyTypeStudio    = "Studio"
	PropertyTypeTownhouse = "Townhouse"
)

func PropertyTypes() []string {
	return []string{
		PropertyTypeApartment,
		PropertyTypeHouse,
		PropertyTypeVilla,
		PropertyTypeCondo,
		PropertyTypeCabin,
		PropertyTypeCottage,
		PropertyTypeStudio,
		PropertyTypeTownhouse,
	}
}

type Location struct {
	City    string   `json:"city" bson:"city" validate:"required,min=1,max=100"`
	Country string   `json:"country" bson:"country" validate:"required,min=2,max=100"`
	Address string   `json:"address,omitempty" bson:"address,omitempty" validate:"omitempty,max=300"`
	Lat     *float64 `json:"lat,omitempty" bson:"lat,omitempty" validate:"omitempty,latitude"`
	Lng     *float64 `json:"lng,omitempty" bson:"lng,omitempty" validate:"omitempty,longitude"`
}

// Listing is the canonical internal representation of a rentable unit. The
// bson tags carry the data source's snake_case field names, the json tags the
// camelCase API names; nothing else maps between the two spellings.
type Listing struct {
	ID           string    `json:"id,omitempty" bson:"_id,omitempty" validate:"omitempty,mongodb"`
	Title        string    `json:"title" bson:"title" validate:"required,min=2,max=200"`
	Description  string    `json:"description" bson:"description" validate:"omitempty,max=5000"`
	Location     Location  `json:"location" bson:"location" validate:"required"`
	NightlyPrice float64   `json:"nightlyPrice" bson:"nightly_price" validate:"required,gt=0"`
	Currency     string    `json:"currency" bson:"currency" validate:"required,iso4217"`
	Images       []string  `json:"images" bson:"images" validate:"omitempty,dive,url"`
	Amenities    []string  `json:"amenities" bson:"amenities" validate:"omitempty,max=50,dive,required"`
	HostID       string    `json:"hostId" bson:"host_id" validate:"omitempty,mongodb"`
	Rating       float64   `json:"rating" bson:"rating" validate:"min=0,max=5"`
	Bedrooms     int       `json:"bedrooms" bson:"bedrooms" validate:"min=0,max=50"`
	Bathrooms    float64   `json:"bathrooms" bson:"bathrooms" validate:"min=0,max=50"`
	Capacity     int       `json:"capacity" bson:"capacity" validate:"min=0,max=200"`
	PropertyType string    `json:"propertyType" bson:"property_type" validate:"required,property_type"`
	Featured     bool      `json:"featured" bson:"featured"`
	Reviews      []Review  `json:"reviews,omitempty" bson:"reviews,omitempty" validate:"omitempty,dive"`
	CreatedAt    time.Time `json:"createdAt" bson:"created_at" validate:"omitempty"`
	UpdatedAt    time.Time `json:"updatedAt" bson:"updated_at" validate:"omitempty"`
}

type ListingUpdate struct {
	Title        string    `json:"title,omitempty" validate:"omitempty,min=2,max=200"`
	Description  *string   `json:"description,omitempty" validate:"omitempty,max=5000"`
	NightlyPrice *float64  `json:"nightlyPrice,omitempty" validate:"omitempty,gt=0"`
	Images       *[]string `json:"images,omitempty" validate:"omitempty,dive,url"`
	Amenities    *[]string `json:"amenities,omitempty" validate:"omitempty,max=50,dive,required"`
	Bedrooms     *int      `json:"bedrooms,omitempty" validate:"omitempty,min=0,max=50"`
	Bathrooms    *float64  `json:"bathrooms,omitempty" validate:"omitempty,min=0,max=50"`
	Capacity     *int      `json:"capacity,omitempty" validate:"omitempty,min=0,max=200"`
	PropertyType string    `json:"propertyType,omitempty" validate:"omitempty,property_type"`
	Featured     *bool     `json:"featured,omitempty"`
}
