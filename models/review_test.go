package models

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func validReview() Review {
	return Review{
		PatientName: "Alice Martin",
		DoctorName:  "Sarah Johnson",
		Rating:      4,
		Comment:     "Very gentle and thorough.",
	}
}

func TestReviewValidate(t *testing.T) {
	assert.NoError(t, validReview().Validate())

	r := validReview()
	r.PatientName = "  "
	assert.Error(t, r.Validate())

	r = validReview()
	r.DoctorName = ""
	assert.Error(t, r.Validate())

	for _, rating := range []int{0, 6, -1} {
		r = validReview()
		r.Rating = rating
		assert.Error(t, r.Validate(), "rating %d", rating)
	}
	for _, rating := range []int{1, 5} {
		r = validReview()
		r.Rating = rating
		assert.NoError(t, r.Validate(), "rating %d", rating)
	}

	r = validReview()
	r.Comment = "meh"
	assert.Error(t, r.Validate())

	r = validReview()
	r.Comment = strings.Repeat("x", 1001)
	assert.Error(t, r.Validate())

	r = validReview()
	r.Comment = strings.Repeat("x", 1000)
	assert.NoError(t, r.Validate())
}

func TestReviewerName(t *testing.T) {
	r := validReview()
	assert.Equal(t, "Alice Martin", r.ReviewerName())

	r.IsAnonymous = true
	assert.Equal(t, "Anonymous", r.ReviewerName())
}
