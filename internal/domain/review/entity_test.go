package review

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRating(t *testing.T) {
	tests := []struct {
		name    string
		value   int
		wantErr bool
	}{
		{name: "minimum", value: 1},
		{name: "maximum", value: 5},
		{name: "zero", value: 0, wantErr: true},
		{name: "six", value: 6, wantErr: true},
		{name: "negative", value: -1, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := NewRating(tt.value)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidRating)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.value, r.Int())
		})
	}
}

func TestNewContent(t *testing.T) {
	t.Run("rejects empty", func(t *testing.T) {
		_, err := NewContent("")
		assert.ErrorIs(t, err, ErrEmptyContent)
	})

	t.Run("accepts text", func(t *testing.T) {
		c, err := NewContent("great space, would book again")
		require.NoError(t, err)
		assert.Equal(t, "great space, would book again", c.String())
	})

	t.Run("accepts exactly 500 characters", func(t *testing.T) {
		_, err := NewContent(strings.Repeat("a", 500))
		assert.NoError(t, err)
	})

	t.Run("rejects 501 characters", func(t *testing.T) {
		_, err := NewContent(strings.Repeat("a", 501))
		assert.ErrorIs(t, err, ErrContentTooLong)
	})

	t.Run("counts runes, not bytes", func(t *testing.T) {
		_, err := NewContent(strings.Repeat("공", 500))
		assert.NoError(t, err)
	})
}

func TestAverageRating(t *testing.T) {
	tests := []struct {
		name    string
		ratings []Rating
		want    float64
	}{
		{name: "no reviews", ratings: nil, want: 0},
		{name: "single review", ratings: []Rating{3}, want: 3},
		{name: "five and four average to 4.5", ratings: []Rating{5, 4}, want: 4.5},
		{name: "uneven split", ratings: []Rating{5, 4, 4}, want: float64(13) / 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, AverageRating(tt.ratings), 1e-9)
		})
	}
}

func TestReview_Update(t *testing.T) {
	rating, err := NewRating(4)
	require.NoError(t, err)
	content, err := NewContent("fine")
	require.NoError(t, err)

	rv := NewReview(
		uuid.New(), uuid.New(), uuid.New(),
		rating, content,
		time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
		[]string{"a.jpg", "b.jpg"},
	)

	newRating, err := NewRating(2)
	require.NoError(t, err)
	newContent, err := NewContent("changed my mind")
	require.NoError(t, err)

	rv.Update(newRating, newContent, []string{"c.jpg"})

	assert.Equal(t, 2, rv.Rating().Int())
	assert.Equal(t, "changed my mind", rv.Content().String())
	assert.Equal(t, []string{"c.jpg"}, rv.ImageURLs())
}

func TestReview_ReservedDateTruncated(t *testing.T) {
	rating, _ := NewRating(5)
	content, _ := NewContent("ok")

	rv := NewReview(
		uuid.New(), uuid.New(), uuid.New(),
		rating, content,
		time.Date(2026, 3, 15, 17, 30, 0, 0, time.UTC),
		nil,
	)

	assert.Equal(t, time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC), rv.ReservedDate())
}
