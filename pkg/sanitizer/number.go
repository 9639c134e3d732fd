package sanitizer

const (
	MinRating = 0.0
	MaxRating = 5.0
)

func ClampRating(rating float64) float64 {
	if rating < MinRating {
		return MinRating
	}
	if rating > MaxRating {
		return MaxRating
	}
	return rating
}

func ClampGuests(guests, maxGuests int) int {
	if guests < 0 {
		return 0
	}
	if guests > maxGuests {
		return maxGuests
	}
	return guests
}
