package review

import (
	"unicode/utf8"

	"spacehub/internal/pkg/errs"
)

// maxContentLength bounds review and comment text, counted in runes.
const maxContentLength = 500

var (
	ErrInvalidRating  = errs.New("rating must be between 1 and 5")
	ErrEmptyContent   = errs.New("review content cannot be empty")
	ErrContentTooLong = errs.New("review content exceeds 500 characters")
)

type Rating int

func NewRating(v int) (Rating, error) {
	if v < 1 || v > 5 {
		return 0, ErrInvalidRating
	}
	return Rating(v), nil
}

func (r Rating) Int() int { return int(r) }

// AverageRating is the mean over a space's live ratings. A space with no
// reviews reads as 0.
func AverageRating(ratings []Rating) float64 {
	if len(ratings) == 0 {
		return 0
	}
	sum := 0
	for _, r := range ratings {
		sum += r.Int()
	}
	return float64(sum) / float64(len(ratings))
}

type Content string

func NewContent(s string) (Content, error) {
	if s == "" {
		return "", ErrEmptyContent
	}
	if utf8.RuneCountInString(s) > maxContentLength {
		return "", ErrContentTooLong
	}
	return Content(s), nil
}

func (c Content) String() string { return string(c) }
