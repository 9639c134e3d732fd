package synthetic

import (
	"fmt"
	"time"

	"staymarket/pkg/model"
)

// cityPool is the set of locations derived listings are placed in.
var cityPool = []model.Location{
	{City: "Lisbon", Country: "Portugal"},
	{City: "Porto", Country: "Portugal"},
	{City: "Barcelona", Country: "Spain"},
	{City: "Madrid", Country: "Spain"},
	{City: "Amsterdam", Country: "Netherlands"},
	{City: "Berlin", Country: "Germany"},
	{City: "Prague", Country: "Czech Republic"},
	{City: "Vienna", Country: "Austria"},
	{City: "Rome", Country: "Italy"},
	{City: "Florence", Country: "Italy"},
	{City: "Athens", Country: "Greece"},
	{City: "Istanbul", Country: "Turkey"},
	{City: "Bodrum", Country: "Turkey"},
	{City: "Dubrovnik", Country: "Croatia"},
	{City: "Copenhagen", Country: "Denmark"},
	{City: "Edinburgh", Country: "United Kingdom"},
}

// amenityPool feeds the random amenity subsets of derived listings.
var amenityPool = []string{
	"wifi",
	"kitchen",
	"heating",
	"air conditioning",
	"washer",
	"dryer",
	"parking",
	"pool",
	"hot tub",
	"gym",
	"workspace",
	"tv",
	"balcony",
	"garden",
	"fireplace",
	"bbq grill",
	"dishwasher",
	"crib",
	"elevator",
	"breakfast",
}

// reviewTemplates are attached in pairs to every listing, with the author
// rotated and the rating tied to the listing's own.
var reviewTemplates = []model.Review{
	{
		AuthorName: "Maya",
		Comment:    "Spotless place and the host answered every question within minutes. Would happily stay again.",
	},
	{
		AuthorName: "Jonas",
		Comment:    "Great location, easy check-in. The photos match what you actually get.",
	},
	{
		AuthorName: "Priya",
		Comment:    "Comfortable beds and a quiet street. Grocery store around the corner.",
	},
	{
		AuthorName: "Tomas",
		Comment:    "Exactly as described. The kitchen had everything we needed for a week.",
	},
}

func seedDate(day int) time.Time {
	return time.Date(2025, time.February, day, 0, 0, 0, 0, time.UTC)
}

// seedReviews stamps two rotating templates for a hand-written listing, with
// fixed ids so the seed set is identical in every catalog.
func seedReviews(listingID string, index int, rating float64) []model.Review {
	reviews := make([]model.Review, 0, 2)
	for k := 0; k < 2; k++ {
		tpl := reviewTemplates[(index+k)%len(reviewTemplates)]
		tpl.ID = fmt.Sprintf("5eedfeed000000000000%02d%02d", index, k)
		tpl.ListingID = listingID
		tpl.Rating = rating
		tpl.CreatedAt = seedDate(index + 1).AddDate(0, 0, 7*(k+1))
		reviews = append(reviews, tpl)
	}
	return reviews
}

// baseListings are the hand-written seed set. They appear in the catalog
// exactly as written here, and every derived listing starts as a copy of one
// of them.
var baseListings = []model.Listing{
	{
		ID:           "5eedc0de0000000000000001",
		Title:        "Sunlit Canal-Side Loft",
		Description:  "Top-floor loft with original beams, a full kitchen and a view over the water. Steps from cafes and the tram.",
		Location:     model.Location{City: "Amsterdam", Country: "Netherlands"},
		NightlyPrice: 41500,
		Currency:     "EUR",
		PropertyType: model.PropertyTypeApartment,
		Rating:       4.8,
		Bedrooms:     2,
		Bathrooms:    1,
		Capacity:     4,
		Featured:     true,
		Amenities:    []string{"wifi", "kitchen", "heating", "washer", "workspace", "tv"},
		Images: []string{
			"https://images.staymarket.dev/seed/loft-1.jpg",
			"https://images.staymarket.dev/seed/loft-2.jpg",
		},
		Reviews:   seedReviews("5eedc0de0000000000000001", 0, 4.8),
		CreatedAt: seedDate(1),
		UpdatedAt: seedDate(1),
	},
	{
		ID:           "5eedc0de0000000000000002",
		Title:        "Whitewashed Hillside Villa",
		Description:  "Private villa with a pool terrace and sweeping sea views. Sleeps a full family with room to spare.",
		Location:     model.Location{City: "Bodrum", Country: "Turkey"},
		NightlyPrice: 98000,
		Currency:     "EUR",
		PropertyType: model.PropertyTypeVilla,
		Rating:       4.9,
		Bedrooms:     4,
		Bathrooms:    3,
		Capacity:     8,
		Featured:     true,
		Amenities:    []string{"wifi", "pool", "air conditioning", "parking", "bbq grill", "garden", "dishwasher"},
		Images: []string{
			"https://images.staymarket.dev/seed/villa-1.jpg",
			"https://images.staymarket.dev/seed/villa-2.jpg",
		},
		Reviews:   seedReviews("5eedc0de0000000000000002", 1, 4.9),
		CreatedAt: seedDate(2),
		UpdatedAt: seedDate(2),
	},
	{
		ID:           "5eedc0de0000000000000003",
		Title:        "Old Town Stone Cottage",
		Description:  "A restored cottage inside the city walls. Thick stone, warm wood, and a tiny courtyard for morning coffee.",
		Location:     model.Location{City: "Dubrovnik", Country: "Croatia"},
		NightlyPrice: 37000,
		Currency:     "EUR",
		PropertyType: model.PropertyTypeCottage,
		Rating:       4.7,
		Bedrooms:     1,
		Bathrooms:    1,
		Capacity:     2,
		Amenities:    []string{"wifi", "kitchen", "heating", "garden", "breakfast"},
		Images: []string{
			"https://images.staymarket.dev/seed/cottage-1.jpg",
		},
		Reviews:   seedReviews("5eedc0de0000000000000003", 2, 4.7),
		CreatedAt: seedDate(3),
		UpdatedAt: seedDate(3),
	},
	{
		ID:           "5eedc0de0000000000000004",
		Title:        "Minimal Studio by the Station",
		Description:  "Compact, bright and quiet. Everything within arm's reach, and the airport train two minutes away.",
		Location:     model.Location{City: "Copenhagen", Country: "Denmark"},
		NightlyPrice: 30000,
		Currency:     "EUR",
		PropertyType: model.PropertyTypeStudio,
		Rating:       4.5,
		Bedrooms:     1,
		Bathrooms:    1,
		Capacity:     2,
		Amenities:    []string{"wifi", "kitchen", "heating", "workspace", "elevator"},
		Images: []string{
			"https://images.staymarket.dev/seed/studio-1.jpg",
		},
		Reviews:   seedReviews("5eedc0de0000000000000004", 3, 4.5),
		CreatedAt: seedDate(4),
		UpdatedAt: seedDate(4),
	},
	{
		ID:           "5eedc0de0000000000000005",
		Title:        "Forest-Edge Timber Cabin",
		Description:  "A cabin at the end of the track with a wood stove and a deck facing the trees. No neighbours, plenty of stars.",
		Location:     model.Location{City: "Edinburgh", Country: "United Kingdom"},
		NightlyPrice: 45000,
		Currency:     "EUR",
		PropertyType: model.PropertyTypeCabin,
		Rating:       4.9,
		Bedrooms:     2,
		Bathrooms:    1,
		Capacity:     4,
		Featured:     true,
		Amenities:    []string{"wifi", "kitchen", "heating", "fireplace", "parking", "garden"},
		Images: []string{
			"https://images.staymarket.dev/seed/cabin-1.jpg",
			"https://images.staymarket.dev/seed/cabin-2.jpg",
		},
		Reviews:   seedReviews("5eedc0de0000000000000005", 4, 4.9),
		CreatedAt: seedDate(5),
		UpdatedAt: seedDate(5),
	},
	{
		ID:           "5eedc0de0000000000000006",
		Title:        "Riverside Townhouse",
		Description:  "Three floors of calm over the river promenade. Workspace on the top floor, bikes in the hallway.",
		Location:     model.Location{City: "Porto", Country: "Portugal"},
		NightlyPrice: 52500,
		Currency:     "EUR",
		PropertyType: model.PropertyTypeTownhouse,
		Rating:       4.6,
		Bedrooms:     3,
		Bathrooms:    2,
		Capacity:     6,
		Amenities:    []string{"wifi", "kitchen", "heating", "washer", "dryer", "workspace", "balcony"},
		Images: []string{
			"https://images.staymarket.dev/seed/townhouse-1.jpg",
		},
		Reviews:   seedReviews("5eedc0de0000000000000006", 5, 4.6),
		CreatedAt: seedDate(6),
		UpdatedAt: seedDate(6),
	},
	{
		ID:           "5eedc0de0000000000000007",
		Title:        "Market Square Apartment",
		Description:  "Second-floor apartment above the morning market. Lively by day, surprisingly quiet at night.",
		Location:     model.Location{City: "Barcelona", Country: "Spain"},
		NightlyPrice: 34000,
		Currency:     "EUR",
		PropertyType: model.PropertyTypeApartment,
		Rating:       4.4,
		Bedrooms:     2,
		Bathrooms:    1,
		Capacity:     3,
		Amenities:    []string{"wifi", "kitchen", "air conditioning", "tv", "elevator"},
		Images: []string{
			"https://images.staymarket.dev/seed/market-1.jpg",
		},
		Reviews:   seedReviews("5eedc0de0000000000000007", 6, 4.4),
		CreatedAt: seedDate(7),
		UpdatedAt: seedDate(7),
	},
	{
		ID:           "5eedc0de0000000000000008",
		Title:        "Garden House with Veranda",
		Description:  "Family house behind a walled garden. Long table on the veranda, barbecue under the fig tree.",
		Location:     model.Location{City: "Florence", Country: "Italy"},
		NightlyPrice: 61000,
		Currency:     "EUR",
		PropertyType: model.PropertyTypeHouse,
		Rating:       4.7,
		Bedrooms:     3,
		Bathrooms:    2,
		Capacity:     7,
		Amenities:    []string{"wifi", "kitchen", "heating", "garden", "bbq grill", "parking", "crib"},
		Images: []string{
			"https://images.staymarket.dev/seed/garden-1.jpg",
			"https://images.staymarket.dev/seed/garden-2.jpg",
		},
		Reviews:   seedReviews("5eedc0de0000000000000008", 7, 4.7),
		CreatedAt: seedDate(8),
		UpdatedAt: seedDate(8),
	},
}
