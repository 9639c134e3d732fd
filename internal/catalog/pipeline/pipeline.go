// Package pipeline is the pure transformation stage of the catalog: filter,
// sort and paginate listing slices without touching I/O. Every function
// returns fresh slices; inputs are never mutated.
package pipeline

import (
	"sort"
	"strings"

	"staymarket/pkg/model"
)

const DefaultPageSize = 9

// Sort keys accepted by Sort. Recommended preserves input order.
const (
	SortRecommended = "recommended"
	SortPriceAsc    = "price-asc"
	SortPriceDesc   = "price-desc"
	SortRating      = "rating"
)

// Ellipsis is the gap marker in page-token lists.
const Ellipsis = "ellipsis"

func ValidSortKey(key string) bool {
	switch key {
	case SortRecommended, SortPriceAsc, SortPriceDesc, SortRating:
		return true
	}
	return false
}

// Filter keeps listings satisfying every set constraint. Dimensions combine
// with AND; within amenities every requested name must be present. Unset
// fields pass everything.
func Filter(listings []model.Listing, f model.FilterSet) []model.Listing {
	result := make([]model.Listing, 0, len(listings))
	for _, l := range listings {
		if matches(l, f) {
			result = append(result, l)
		}
	}
	return result
}

func matches(l model.Listing, f model.FilterSet) bool {
	if f.Location != "" && !matchesLocation(l, f.Location) {
		return false
	}
	if f.Guests > 0 && l.Capacity < f.Guests {
		return false
	}
	if l.NightlyPrice < f.MinPrice {
		return false
	}
	if f.MaxPrice > 0 && l.NightlyPrice > f.MaxPrice {
		return false
	}
	if f.PropertyType != "" && l.PropertyType != f.PropertyType {
		return false
	}
	if f.Bedrooms > 0 && l.Bedrooms < f.Bedrooms {
		return false
	}
	return hasAllAmenities(l.Amenities, f.Amenities)
}

func matchesLocation(l model.Listing, location string) bool {
	needle := strings.ToLower(strings.TrimSpace(location))
	return strings.Contains(strings.ToLower(l.Location.City), needle) ||
		strings.Contains(strings.ToLower(l.Location.Country), needle)
}

func hasAllAmenities(have, want []string) bool {
	if len(want) == 0 {
		return true
	}

	set := make(map[string]bool, len(have))
	for _, a := range have {
		set[strings.ToLower(strings.TrimSpace(a))] = true
	}

	for _, a := range want {
		if !set[strings.ToLower(strings.TrimSpace(a))] {
			return false
		}
	}
	return true
}

// Sort orders a copy of the input by the given key. The sort is stable:
// listings with equal keys keep their relative input order. Unknown keys
// behave like recommended.
func Sort(listings []model.Listing, key string) []model.Listing {
	result := make([]model.Listing, len(listings))
	copy(result, listings)

	switch key {
	case SortPriceAsc:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].NightlyPrice < result[j].NightlyPrice
		})
	case SortPriceDesc:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].NightlyPrice > result[j].NightlyPrice
		})
	case SortRating:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].Rating > result[j].Rating
		})
	}

	return result
}

// Paginate returns the 1-based page of the given size. Pages past the end
// are empty, not an error.
func Paginate(listings []model.Listing, page, pageSize int) []model.Listing {
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	if page < 1 {
		page = 1
	}

	start := (page - 1) * pageSize
	if start >= len(listings) {
		return []model.Listing{}
	}

	end := start + pageSize
	if end > len(listings) {
		end = len(listings)
	}

	result := make([]model.Listing, end-start)
	copy(result, listings[start:end])
	return result
}

// TotalPages is ceil(total/pageSize), never less than 1 so an empty result
// still renders one page.
func TotalPages(total, pageSize int) int {
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	pages := (total + pageSize - 1) / pageSize
	if pages < 1 {
		return 1
	}
	return pages
}

// PageTokens builds the compact page-number display list: all pages when
// total <= 5, otherwise the first and last page bracketing a three-page
// window around current, with ellipsis markers for the gaps. At most 7
// tokens come back regardless of total.
func PageTokens(current, total int) []any {
	if total <= 5 {
		tokens := make([]any, 0, total)
		for p := 1; p <= total; p++ {
			tokens = append(tokens, p)
		}
		return tokens
	}

	tokens := []any{1}

	switch {
	case current <= 3:
		tokens = append(tokens, 2, 3, 4, Ellipsis)
	case current >= total-2:
		tokens = append(tokens, Ellipsis, total-3, total-2, total-1)
	default:
		tokens = append(tokens, Ellipsis, current-1, current, current+1, Ellipsis)
	}

	return append(tokens, total)
}
