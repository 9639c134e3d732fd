package model

import (
	"encoding/json"
	"sort"
	"strings"
)

// FilterSet is the combination of search constraints applied to listings.
// Zero-valued fields impose no constraint. Callers must supply MinPrice <=
// MaxPrice; inverted ranges are not guarded.
type FilterSet struct {
	Location     string   `json:"location,omitempty"`
	Guests       int      `json:"guests,omitempty" validate:"omitempty,min=1"`
	MinPrice     float64  `json:"minPrice,omitempty" validate:"omitempty,min=0"`
	MaxPrice     float64  `json:"maxPrice,omitempty" validate:"omitempty,min=0,gtefield=MinPrice"`
	PropertyType string   `json:"propertyType,omitempty" validate:"omitempty,property_type"`
	Amenities    []string `json:"amenities,omitempty" validate:"omitempty,max=50,dive,required"`
	Bedrooms     int      `json:"bedrooms,omitempty" validate:"omitempty,min=1"`
}

// fingerprintForm pins field order so that encoding/json output is canonical.
type fingerprintForm struct {
	Location     string   `json:"l"`
	Guests       int      `json:"g"`
	MinPrice     float64  `json:"pmin"`
	MaxPrice     float64  `json:"pmax"`
	PropertyType string   `json:"t"`
	Amenities    []string `json:"a"`
	Bedrooms     int      `json:"b"`
}

// Fingerprint returns the canonical serialized form of the filter set. Two
// FilterSets with the same constraints produce byte-identical fingerprints:
// location and amenities are case- and whitespace-insensitive, and amenity
// order is irrelevant, matching how the filter stage compares them.
func (f FilterSet) Fingerprint() string {
	amenities := make([]string, len(f.Amenities))
	for i, a := range f.Amenities {
		amenities[i] = strings.ToLower(strings.TrimSpace(a))
	}
	sort.Strings(amenities)

	form := fingerprintForm{
		Location:     strings.ToLower(strings.TrimSpace(f.Location)),
		Guests:       f.Guests,
		MinPrice:     f.MinPrice,
		MaxPrice:     f.MaxPrice,
		PropertyType: f.PropertyType,
		Amenities:    amenities,
		Bedrooms:     f.Bedrooms,
	}

	data, _ := json.Marshal(form)
	return string(data)
}

// IsEmpty reports whether no constraint is set.
func (f FilterSet) IsEmpty() bool {
	return f.Location == "" &&
		f.Guests == 0 &&
		f.MinPrice == 0 &&
		f.MaxPrice == 0 &&
		f.PropertyType == "" &&
		len(f.Amenities) == 0 &&
		f.Bedrooms == 0
}
