package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRegistrationStatus(t *testing.T) {
	for _, s := range []string{"pending", "confirmed", "cancelled"} {
		got, err := ParseRegistrationStatus(s)
		require.NoError(t, err)
		assert.Equal(t, RegistrationStatus(s), got)
	}

	for _, s := range []string{"", "bogus", "Pending", "canceled"} {
		_, err := ParseRegistrationStatus(s)
		assert.ErrorIs(t, err, ErrInvalidStatus, s)
	}
}

func TestStatuses_ReturnsCopy(t *testing.T) {
	s := Statuses()
	s[0] = "mutated"

	assert.Equal(t, StatusPending, Statuses()[0])
}

func TestCourse_Apply(t *testing.T) {
	c := Course{ID: 3, Name: "X", Description: "Y", Date: "2025-01-01", Capacity: 10, ImageURL: "https://x/y.png"}
	name := "Z"
	capacity := 12

	got := c.Apply(CourseUpdate{Name: &name, Capacity: &capacity})

	assert.Equal(t, Course{ID: 3, Name: "Z", Description: "Y", Date: "2025-01-01", Capacity: 12, ImageURL: "https://x/y.png"}, got)
	assert.Equal(t, "X", c.Name)
	assert.True(t, CourseUpdate{}.IsEmpty())
	assert.False(t, CourseUpdate{Name: &name}.IsEmpty())
}
