package review

import "math"

// Summary aggregates the reviews of one venue.
type Summary struct {
	Count   int     `json:"count"`
	Average float64 `json:"average"`
	// Stars is Average rounded half up, 0 with no reviews.
	Stars int `json:"stars"`
	// Distribution[i] counts reviews rated i+1. Ratings outside 1..5 count
	// toward Average only.
	Distribution [MaxRating]int `json:"distribution"`
}

func Summarize(reviews []Review) Summary {
	var s Summary
	if len(reviews) == 0 {
		return s
	}

	total := 0
	for _, r := range reviews {
		total += r.Rating
		if r.Rating >= MinRating && r.Rating <= MaxRating {
			s.Distribution[r.Rating-1]++
		}
	}

	s.Count = len(reviews)
	s.Average = float64(total) / float64(s.Count)
	s.Stars = int(math.Floor(s.Average + 0.5))
	return s
}
