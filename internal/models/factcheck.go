package models

import "strings"

type Rating string

const (
	RatingTrue          Rating = "True"
	RatingFalse         Rating = "False"
	RatingMisleading    Rating = "Misleading"
	RatingPartiallyTrue Rating = "Partially True"
	RatingUnverifiable  Rating = "Unverifiable"
)

// Ratings lists the verdicts the provider is asked to choose from.
var Ratings = []Rating{
	RatingTrue,
	RatingPartiallyTrue,
	RatingMisleading,
	RatingFalse,
	RatingUnverifiable,
}

// RatingValues returns Ratings as plain strings, for schema enums.
func RatingValues() []string {
	out := make([]string, 0, len(Ratings))
	for _, r := range Ratings {
		out = append(out, string(r))
	}
	return out
}

// ParseRating maps a provider value onto a known rating, ignoring case, spaces,
// underscores and hyphens. Unknown values come back verbatim with ok=false.
func ParseRating(value string) (Rating, bool) {
	key := normalizeRating(value)
	for _, r := range Ratings {
		if normalizeRating(string(r)) == key {
			return r, true
		}
	}
	return Rating(strings.TrimSpace(value)), false
}

func (r Rating) Known() bool {
	for _, known := range Ratings {
		if r == known {
			return true
		}
	}
	return false
}

func normalizeRating(value string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '_', '-', '\t':
			return -1
		}
		return r
	}, strings.ToLower(strings.TrimSpace(value)))
}

type Citation struct {
	URI   string `json:"uri"`
	Title string `json:"title"`
}

type FactCheckResult struct {
	Rating        Rating     `json:"rating"`
	Summary       string     `json:"summary"`
	Justification string     `json:"justification"`
	Sources       []Citation `json:"sources"`
}
