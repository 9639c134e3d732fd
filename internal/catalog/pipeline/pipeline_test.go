package pipeline

import (
	"reflect"
	"testing"

	"staymarket/pkg/model"
)

func fixtureListings() []model.Listing {
	return []model.Listing{
		{
			ID:           "a",
			Title:        "Canal House",
			Location:     model.Location{City: "Amsterdam", Country: "Netherlands"},
			PropertyType: model.PropertyTypeHouse,
			NightlyPrice: 21000,
			Rating:       4.8,
			Bedrooms:     3,
			Bathrooms:    2,
			Capacity:     6,
			Amenities:    []string{"wifi", "kitchen", "heating"},
		},
		{
			ID:           "b",
			Title:        "Harbour Studio",
			Location:     model.Location{City: "Lisbon", Country: "Portugal"},
			PropertyType: model.PropertyTypeStudio,
			NightlyPrice: 9000,
			Rating:       4.2,
			Bedrooms:     1,
			Bathrooms:    1,
			Capacity:     2,
			Amenities:    []string{"wifi", "air conditioning"},
		},
		{
			ID:           "c",
			Title:        "Old Town Apartment",
			Location:     model.Location{City: "Lisbon", Country: "Portugal"},
			PropertyType: model.PropertyTypeApartment,
			NightlyPrice: 14000,
			Rating:       4.5,
			Bedrooms:     2,
			Bathrooms:    1,
			Capacity:     4,
			Amenities:    []string{"wifi", "kitchen", "washer"},
		},
		{
			ID:           "d",
			Title:        "Hillside Villa",
			Location:     model.Location{City: "Bodrum", Country: "Turkey"},
			PropertyType: model.PropertyTypeVilla,
			NightlyPrice: 45000,
			Rating:       4.9,
			Bedrooms:     4,
			Bathrooms:    3,
			Capacity:     8,
			Amenities:    []string{"wifi", "pool", "kitchen", "parking"},
		},
	}
}

func ids(listings []model.Listing) []string {
	out := make([]string, 0, len(listings))
	for _, l := range listings {
		out = append(out, l.ID)
	}
	return out
}

func TestFilter(t *testing.T) {
	listings := fixtureListings()

	tests := []struct {
		name   string
		filter model.FilterSet
		want   []string
	}{
		{
			name:   "empty filter keeps everything",
			filter: model.FilterSet{},
			want:   []string{"a", "b", "c", "d"},
		},
		{
			name:   "location matches city substring case-insensitively",
			filter: model.FilterSet{Location: "lisb"},
			want:   []string{"b", "c"},
		},
		{
			name:   "location matches country",
			filter: model.FilterSet{Location: "Turkey"},
			want:   []string{"d"},
		},
		{
			name:   "guests is a minimum capacity",
			filter: model.FilterSet{Guests: 5},
			want:   []string{"a", "d"},
		},
		{
			name:   "price band is inclusive",
			filter: model.FilterSet{MinPrice: 9000, MaxPrice: 14000},
			want:   []string{"b", "c"},
		},
		{
			name:   "property type and bedrooms combine with AND",
			filter: model.FilterSet{PropertyType: model.PropertyTypeApartment, Bedrooms: 2},
			want:   []string{"c"},
		},
		{
			name:   "all requested amenities must be present",
			filter: model.FilterSet{Amenities: []string{"wifi", "pool"}},
			want:   []string{"d"},
		},
		{
			name:   "amenity matching ignores case",
			filter: model.FilterSet{Amenities: []string{"WiFi", "Kitchen"}},
			want:   []string{"a", "c", "d"},
		},
		{
			name:   "unsatisfiable filter yields empty, not nil panic",
			filter: model.FilterSet{Guests: 50},
			want:   []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ids(Filter(listings, tt.filter))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Filter() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFilterIsIdempotent(t *testing.T) {
	listings := fixtureListings()
	f := model.FilterSet{Location: "Lisbon", Guests: 2}

	once := Filter(listings, f)
	twice := Filter(once, f)

	if !reflect.DeepEqual(ids(once), ids(twice)) {
		t.Errorf("filtering twice changed the result: %v vs %v", ids(once), ids(twice))
	}
}

func TestFilterDoesNotMutateInput(t *testing.T) {
	listings := fixtureListings()
	before := ids(listings)

	Filter(listings, model.FilterSet{PropertyType: model.PropertyTypeVilla})

	if !reflect.DeepEqual(ids(listings), before) {
		t.Error("Filter() reordered or mutated its input")
	}
}

func TestSort(t *testing.T) {
	listings := fixtureListings()

	tests := []struct {
		name string
		key  string
		want []string
	}{
		{name: "recommended keeps input order", key: SortRecommended, want: []string{"a", "b", "c", "d"}},
		{name: "price ascending", key: SortPriceAsc, want: []string{"b", "c", "a", "d"}},
		{name: "price descending", key: SortPriceDesc, want: []string{"d", "a", "c", "b"}},
		{name: "rating descending", key: SortRating, want: []string{"d", "a", "c", "b"}},
		{name: "unknown key behaves like recommended", key: "bogus", want: []string{"a", "b", "c", "d"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ids(Sort(listings, tt.key))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Sort(%q) = %v, want %v", tt.key, got, tt.want)
			}
			if ids(listings)[0] != "a" {
				t.Error("Sort() mutated its input")
			}
		})
	}
}

func TestSortIsStable(t *testing.T) {
	listings := []model.Listing{
		{ID: "x", NightlyPrice: 10000},
		{ID: "y", NightlyPrice: 10000},
		{ID: "z", NightlyPrice: 5000},
	}

	got := ids(Sort(listings, SortPriceAsc))
	want := []string{"z", "x", "y"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("equal-price listings lost input order: got %v, want %v", got, want)
	}
}

func TestPaginate(t *testing.T) {
	listings := make([]model.Listing, 20)
	for i := range listings {
		listings[i].ID = string(rune('a' + i))
	}

	tests := []struct {
		name     string
		page     int
		wantLen  int
		wantHead string
	}{
		{name: "first page is full", page: 1, wantLen: 9, wantHead: "a"},
		{name: "second page is full", page: 2, wantLen: 9, wantHead: "j"},
		{name: "last page holds the remainder", page: 3, wantLen: 2, wantHead: "s"},
		{name: "page past the end is empty", page: 4, wantLen: 0},
		{name: "page zero falls back to the first page", page: 0, wantLen: 9, wantHead: "a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Paginate(listings, tt.page, DefaultPageSize)
			if len(got) != tt.wantLen {
				t.Fatalf("Paginate(page=%d) returned %d listings, want %d", tt.page, len(got), tt.wantLen)
			}
			if tt.wantLen > 0 && got[0].ID != tt.wantHead {
				t.Errorf("Paginate(page=%d) starts at %q, want %q", tt.page, got[0].ID, tt.wantHead)
			}
		})
	}
}

func TestPaginatePartitionsWithoutLoss(t *testing.T) {
	listings := make([]model.Listing, 25)
	for i := range listings {
		listings[i].ID = string(rune('a' + i))
	}

	var rebuilt []model.Listing
	for page := 1; page <= TotalPages(len(listings), DefaultPageSize); page++ {
		rebuilt = append(rebuilt, Paginate(listings, page, DefaultPageSize)...)
	}

	if !reflect.DeepEqual(ids(rebuilt), ids(listings)) {
		t.Error("concatenating all pages did not reconstruct the input")
	}
}

func TestTotalPages(t *testing.T) {
	tests := []struct {
		total int
		want  int
	}{
		{total: 0, want: 1},
		{total: 1, want: 1},
		{total: 9, want: 1},
		{total: 10, want: 2},
		{total: 18, want: 2},
		{total: 19, want: 3},
		{total: 60, want: 7},
	}

	for _, tt := range tests {
		if got := TotalPages(tt.total, DefaultPageSize); got != tt.want {
			t.Errorf("TotalPages(%d) = %d, want %d", tt.total, got, tt.want)
		}
	}
}

func TestPageTokens(t *testing.T) {
	tests := []struct {
		name    string
		current int
		total   int
		want    []any
	}{
		{name: "few pages list every number", current: 1, total: 3, want: []any{1, 2, 3}},
		{name: "exactly five pages list every number", current: 4, total: 5, want: []any{1, 2, 3, 4, 5}},
		{name: "middle page windows around current", current: 5, total: 10, want: []any{1, Ellipsis, 4, 5, 6, Ellipsis, 10}},
		{name: "near the start only trails an ellipsis", current: 2, total: 10, want: []any{1, 2, 3, 4, Ellipsis, 10}},
		{name: "near the end only leads with an ellipsis", current: 9, total: 10, want: []any{1, Ellipsis, 7, 8, 9, 10}},
		{name: "first page of many", current: 1, total: 20, want: []any{1, 2, 3, 4, Ellipsis, 20}},
		{name: "last page of many", current: 20, total: 20, want: []any{1, Ellipsis, 17, 18, 19, 20}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PageTokens(tt.current, tt.total)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("PageTokens(%d, %d) = %v, want %v", tt.current, tt.total, got, tt.want)
			}
		})
	}
}

func TestPageTokensNeverExceedSeven(t *testing.T) {
	for total := 1; total <= 40; total++ {
		for current := 1; current <= total; current++ {
			if got := PageTokens(current, total); len(got) > 7 {
				t.Fatalf("PageTokens(%d, %d) produced %d tokens", current, total, len(got))
			}
		}
	}
}
