package synthetic

import (
	"reflect"
	"testing"

	"staymarket/pkg/model"
)

func TestCatalogSizeAndShape(t *testing.T) {
	catalog := New(42).Catalog()

	if len(catalog) != CatalogSize {
		t.Fatalf("expected %d listings, got %d", CatalogSize, len(catalog))
	}

	types := make(map[string]bool)
	for _, pt := range model.PropertyTypes() {
		types[pt] = true
	}

	seen := make(map[string]bool, len(catalog))
	for i, l := range catalog {
		if len(l.ID) != 24 {
			t.Errorf("listing %d: id %q is not 24 hex chars", i, l.ID)
		}
		if seen[l.ID] {
			t.Errorf("listing %d: duplicate id %q", i, l.ID)
		}
		seen[l.ID] = true

		if l.Title == "" || l.Description == "" {
			t.Errorf("listing %d: empty title or description", i)
		}
		if l.Location.City == "" || l.Location.Country == "" {
			t.Errorf("listing %d: empty location", i)
		}
		if !types[l.PropertyType] {
			t.Errorf("listing %d: unknown property type %q", i, l.PropertyType)
		}
		if l.NightlyPrice < minPriceCents || l.NightlyPrice > maxPriceCents {
			t.Errorf("listing %d: price %v outside [%d, %d]", i, l.NightlyPrice, minPriceCents, maxPriceCents)
		}
		if int(l.NightlyPrice)%10 != 0 {
			t.Errorf("listing %d: price %v not rounded to nearest ten", i, l.NightlyPrice)
		}
		if l.Rating < 3.5 || l.Rating > 5.0 {
			t.Errorf("listing %d: rating %v outside [3.5, 5.0]", i, l.Rating)
		}
		if l.Bedrooms < 1 || l.Bedrooms > 5 {
			t.Errorf("listing %d: bedrooms %d outside [1, 5]", i, l.Bedrooms)
		}
		if l.Bathrooms < 1 || l.Bathrooms > 3 {
			t.Errorf("listing %d: bathrooms %v outside [1, 3]", i, l.Bathrooms)
		}
		if l.Capacity < 1 || l.Capacity > 8 {
			t.Errorf("listing %d: capacity %d outside [1, 8]", i, l.Capacity)
		}
		if len(l.Amenities) < 5 || len(l.Amenities) > 15 {
			t.Errorf("listing %d: %d amenities outside [5, 15]", i, len(l.Amenities))
		}
		if len(l.Reviews) != 2 {
			t.Errorf("listing %d: expected 2 reviews, got %d", i, len(l.Reviews))
		}
		for _, rv := range l.Reviews {
			if rv.ListingID != l.ID {
				t.Errorf("listing %d: review points at %q", i, rv.ListingID)
			}
		}
	}
}

func TestSeedListingsIncludedVerbatim(t *testing.T) {
	if len(baseListings) != SeedCount {
		t.Fatalf("SeedCount = %d, but there are %d base listings", SeedCount, len(baseListings))
	}

	catalog := New(42).Catalog()
	byID := make(map[string]model.Listing, len(catalog))
	for _, l := range catalog {
		byID[l.ID] = l
	}

	for _, want := range baseListings {
		got, ok := byID[want.ID]
		if !ok {
			t.Errorf("seed listing %q missing from the catalog", want.Title)
			continue
		}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("seed listing %q altered by generation:\n got %+v\nwant %+v", want.Title, got, want)
		}
	}
}

func TestAmenitiesHaveNoDuplicates(t *testing.T) {
	for _, l := range New(7).Catalog() {
		seen := make(map[string]bool, len(l.Amenities))
		for _, a := range l.Amenities {
			if seen[a] {
				t.Fatalf("listing %s repeats amenity %q", l.ID, a)
			}
			seen[a] = true
		}
	}
}

func TestSameSeedSameCatalog(t *testing.T) {
	first := New(1234).Catalog()
	second := New(1234).Catalog()

	if !reflect.DeepEqual(first, second) {
		t.Error("two generators with the same seed diverged")
	}
}

func TestDifferentSeedsDiverge(t *testing.T) {
	first := New(1).Catalog()
	second := New(2).Catalog()

	if reflect.DeepEqual(first, second) {
		t.Error("different seeds produced identical catalogs")
	}
}

func TestCatalogIsGeneratedOnce(t *testing.T) {
	g := New(99)

	first := g.Catalog()
	second := g.Catalog()

	if &first[0] != &second[0] {
		t.Error("repeated calls re-generated the catalog")
	}
}

func TestFeaturedNeverEmpty(t *testing.T) {
	// A spread of seeds; whatever the draw, the featured shelf must have
	// something on it.
	for seed := int64(0); seed < 25; seed++ {
		featured := 0
		for _, l := range New(seed).Catalog() {
			if l.Featured {
				featured++
			}
		}
		if featured == 0 {
			t.Errorf("seed %d: no featured listings", seed)
		}
	}
}

func TestBackfillFeatured(t *testing.T) {
	catalog := make([]model.Listing, 10)
	backfillFeatured(catalog)

	for i := 0; i < FeaturedBackfill; i++ {
		if !catalog[i].Featured {
			t.Errorf("listing %d not promoted", i)
		}
	}
	for i := FeaturedBackfill; i < len(catalog); i++ {
		if catalog[i].Featured {
			t.Errorf("listing %d promoted unexpectedly", i)
		}
	}
}

func TestBackfillLeavesExistingFeaturedAlone(t *testing.T) {
	catalog := make([]model.Listing, 10)
	catalog[7].Featured = true
	backfillFeatured(catalog)

	for i, l := range catalog {
		if l.Featured != (i == 7) {
			t.Errorf("listing %d: featured = %v", i, l.Featured)
		}
	}
}
