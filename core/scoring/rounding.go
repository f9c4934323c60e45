// ABOUTME: Rounding helpers shared by the final score and star rating
// ABOUTME: Ties round half to even for both

package scoring

import "math"

// RoundHalfEven rounds value to the given number of decimal places
func RoundHalfEven(value float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	return math.RoundToEven(value*scale) / scale
}

// StarRating maps a 0-100 final score onto 1-5 stars
func StarRating(finalScore float64) int {
	stars := int(math.RoundToEven(finalScore * 5 / 100))
	if stars < 1 {
		return 1
	}
	if stars > 5 {
		return 5
	}
	return stars
}

func clamp(value, lo, hi float64) float64 {
	if math.IsNaN(value) || value < lo {
		return lo
	}
	if value > hi {
		return hi
	}
	return value
}
