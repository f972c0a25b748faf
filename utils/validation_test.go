package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestValidatePhone(t *testing.T) {
	valid := []string{
		"+1-555-123-4567",
		"0712345678",
		"(020) 123 4567",
		"1234567",
	}
	for _, phone := range valid {
		assert.NoError(t, ValidatePhone(phone), "expected %q to be valid", phone)
	}

	invalid := []string{
		"",
		"123456",                // too short
		"123456789012345678901", // too long
		"call me maybe",
		"555-123x4567",
	}
	for _, phone := range invalid {
		assert.Error(t, ValidatePhone(phone), "expected %q to be rejected", phone)
	}
}

func TestValidateEmail(t *testing.T) {
	assert.NoError(t, ValidateEmail("sarah.johnson@dentalclinicpro.example"))
	assert.NoError(t, ValidateEmail("a@b.co"))

	assert.Error(t, ValidateEmail(""))
	assert.Error(t, ValidateEmail("not-an-email"))
	assert.Error(t, ValidateEmail("missing@domain"))
	assert.Error(t, ValidateEmail("@example.com"))
}

func TestValidateAppointmentDate(t *testing.T) {
	now := time.Date(2026, time.March, 10, 15, 0, 0, 0, time.UTC)

	t.Run("tomorrow is valid", func(t *testing.T) {
		assert.NoError(t, ValidateAppointmentDate("2026-03-11", now))
	})

	t.Run("today is rejected", func(t *testing.T) {
		err := ValidateAppointmentDate("2026-03-10", now)
		assert.ErrorContains(t, err, "future")
	})

	t.Run("past date is rejected", func(t *testing.T) {
		err := ValidateAppointmentDate("2026-03-01", now)
		assert.ErrorContains(t, err, "future")
	})

	t.Run("day 90 is the last bookable day", func(t *testing.T) {
		day90 := now.AddDate(0, 0, 90).Format(DateLayout)
		assert.NoError(t, ValidateAppointmentDate(day90, now))

		day91 := now.AddDate(0, 0, 91).Format(DateLayout)
		err := ValidateAppointmentDate(day91, now)
		assert.ErrorContains(t, err, "90 days")
	})

	t.Run("garbage is rejected", func(t *testing.T) {
		assert.Error(t, ValidateAppointmentDate("next tuesday", now))
		assert.Error(t, ValidateAppointmentDate("11/03/2026", now))
		assert.Error(t, ValidateAppointmentDate("", now))
	})
}

func TestValidateAppointmentTime(t *testing.T) {
	valid := []string{"08:00", "08:30", "12:00", "19:00", "19:30"}
	for _, ts := range valid {
		assert.NoError(t, ValidateAppointmentTime(ts), "expected %q to be valid", ts)
	}

	t.Run("outside business hours", func(t *testing.T) {
		for _, ts := range []string{"07:30", "20:00", "22:00", "00:00"} {
			assert.Error(t, ValidateAppointmentTime(ts), "expected %q to be rejected", ts)
		}
	})

	t.Run("off the half-hour grid", func(t *testing.T) {
		for _, ts := range []string{"08:15", "19:45", "12:01"} {
			assert.Error(t, ValidateAppointmentTime(ts), "expected %q to be rejected", ts)
		}
	})

	t.Run("bad format", func(t *testing.T) {
		for _, ts := range []string{"", "noon", "8pm", "25:00"} {
			assert.Error(t, ValidateAppointmentTime(ts), "expected %q to be rejected", ts)
		}
	})
}
