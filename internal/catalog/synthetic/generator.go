// Package synthetic builds a deterministic stand-in catalog: the hand-written
// base listings as-is, plus sixty listings derived from them. The catalog
// fills in for the real data source when it is unreachable or empty, so
// browsing always has something to show.
package synthetic

import (
	"math"
	"math/rand"
	"sync"
	"time"

	"staymarket/pkg/model"
)

const (
	// SeedCount matches len(baseListings).
	SeedCount = 8

	// DerivedCount is the number of listings derived from the seed set.
	DerivedCount = 60

	// CatalogSize is the seed set plus the derived listings.
	CatalogSize = SeedCount + DerivedCount

	// FeaturedBackfill is how many listings get promoted when the random
	// draw produced no featured ones.
	FeaturedBackfill = 6

	minPriceCents = 30000
	maxPriceCents = 130000
)

const hexDigits = "0123456789abcdef"

// Generator derives the synthetic catalog exactly once per instance. The same
// seed always yields the same catalog, listing for listing.
type Generator struct {
	seed    int64
	once    sync.Once
	catalog []model.Listing
}

func New(seed int64) *Generator {
	return &Generator{seed: seed}
}

// Catalog returns the seed and derived listings, generating them on first
// call. Callers must treat the returned slice as read-only.
func (g *Generator) Catalog() []model.Listing {
	g.once.Do(func() {
		g.catalog = generate(g.seed)
	})
	return g.catalog
}

func generate(seed int64) []model.Listing {
	r := rand.New(rand.NewSource(seed))
	createdAt := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)

	catalog := make([]model.Listing, 0, CatalogSize)
	// The seed set goes in unchanged; only the slice fields are copied so a
	// careless caller cannot reach the fixtures through the catalog.
	for _, l := range baseListings {
		l.Images = append([]string(nil), l.Images...)
		l.Amenities = append([]string(nil), l.Amenities...)
		l.Reviews = append([]model.Review(nil), l.Reviews...)
		catalog = append(catalog, l)
	}
	for i := 0; i < DerivedCount; i++ {
		catalog = append(catalog, derive(r, i, createdAt.AddDate(0, 0, i)))
	}

	backfillFeatured(catalog)
	return catalog
}

// derive copies a random base listing and replaces everything location- and
// pricing-shaped with fresh random values.
func derive(r *rand.Rand, index int, createdAt time.Time) model.Listing {
	l := baseListings[r.Intn(len(baseListings))]

	l.ID = objectID(r)
	l.Location = cityPool[r.Intn(len(cityPool))]
	l.PropertyType = model.PropertyTypes()[r.Intn(len(model.PropertyTypes()))]
	l.NightlyPrice = priceCents(r)
	l.Rating = roundTenth(3.5 + r.Float64()*1.5)
	l.Bedrooms = 1 + r.Intn(5)
	l.Bathrooms = float64(1 + r.Intn(3))
	l.Capacity = 1 + r.Intn(8)
	l.Featured = r.Float64() < 0.25
	l.Amenities = pickAmenities(r)
	l.Images = append([]string(nil), l.Images...)
	l.CreatedAt = createdAt
	l.UpdatedAt = createdAt
	l.Reviews = deriveReviews(r, l, index, createdAt)

	return l
}

// priceCents draws a nightly price in cents, rounded to the nearest ten.
func priceCents(r *rand.Rand) float64 {
	cents := minPriceCents + r.Intn(maxPriceCents-minPriceCents+1)
	return float64((cents + 5) / 10 * 10)
}

// pickAmenities takes a random 5..15-element subset of the pool, no
// duplicates, in shuffled order.
func pickAmenities(r *rand.Rand) []string {
	pool := append([]string(nil), amenityPool...)
	r.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})
	return pool[:5+r.Intn(11)]
}

func deriveReviews(r *rand.Rand, l model.Listing, index int, createdAt time.Time) []model.Review {
	reviews := make([]model.Review, 0, 2)
	for k := 0; k < 2; k++ {
		tpl := reviewTemplates[(index+k)%len(reviewTemplates)]
		tpl.ID = objectID(r)
		tpl.ListingID = l.ID
		tpl.Rating = clampRating(roundTenth(l.Rating + r.Float64()*0.6 - 0.3))
		tpl.CreatedAt = createdAt.AddDate(0, 0, 7*(k+1))
		reviews = append(reviews, tpl)
	}
	return reviews
}

// backfillFeatured promotes the first few listings when nothing came out of
// the random draw featured, so the featured shelf is never empty.
func backfillFeatured(catalog []model.Listing) {
	for _, l := range catalog {
		if l.Featured {
			return
		}
	}
	for i := 0; i < FeaturedBackfill && i < len(catalog); i++ {
		catalog[i].Featured = true
	}
}

// objectID draws a 24-char hex identifier from the generator's own stream, so
// IDs are as reproducible as the rest of the listing.
func objectID(r *rand.Rand) string {
	b := make([]byte, 24)
	for i := range b {
		b[i] = hexDigits[r.Intn(len(hexDigits))]
	}
	return string(b)
}

func roundTenth(v float64) float64 {
	return math.Round(v*10) / 10
}

func clampRating(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 5 {
		return 5
	}
	return v
}
