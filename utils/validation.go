// File: utils/validation.go
package utils

import (
	"fmt"
	"regexp"
	"time"
)

// Appointment scheduling rules.
const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"

	// Clinic business hours: bookings start at 08:00, last slot 19:30.
	OpeningHour = 8
	ClosingHour = 20

	// Bookings are accepted at most 90 days ahead.
	MaxBookingDaysAhead = 90
)

var (
	phonePattern = regexp.MustCompile(`^[0-9\s\-\+\(\)]{7,20}$`)
	emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9\-]+(\.[a-zA-Z0-9\-]+)*\.[a-zA-Z]{2,}$`)
)

// ValidatePhone checks a phone number for format compliance.
// Digits, spaces, hyphens, plus and parentheses are allowed, 7-20 characters.
func ValidatePhone(phone string) error {
	if !phonePattern.MatchString(phone) {
		return fmt.Errorf("please provide a valid phone number (7-20 digits, e.g. +1-555-123-4567)")
	}
	return nil
}

// ValidateEmail checks an email address for standard local@domain format.
func ValidateEmail(email string) error {
	if !emailPattern.MatchString(email) {
		return fmt.Errorf("please provide a valid email address (e.g. name@example.com)")
	}
	return nil
}

// ValidateAppointmentDate checks that dateStr is a parseable calendar date,
// strictly after the current date, and no more than 90 days ahead.
// The reference time is passed in so callers and tests share one clock.
func ValidateAppointmentDate(dateStr string, now time.Time) error {
	date, err := time.ParseInLocation(DateLayout, dateStr, now.Location())
	if err != nil {
		return fmt.Errorf("invalid date format, please use YYYY-MM-DD (e.g. %s)", now.AddDate(0, 0, 5).Format(DateLayout))
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if !date.After(today) {
		return fmt.Errorf("date must be in the future")
	}
	if date.After(today.AddDate(0, 0, MaxBookingDaysAhead)) {
		return fmt.Errorf("cannot book appointments more than %d days in advance", MaxBookingDaysAhead)
	}
	return nil
}

// ValidateAppointmentTime checks that timeStr is a parseable HH:MM time on a
// 30-minute boundary within business hours. The last bookable slot is 19:30.
func ValidateAppointmentTime(timeStr string) error {
	t, err := time.Parse(TimeLayout, timeStr)
	if err != nil {
		return fmt.Errorf("invalid time format, please use HH:MM (e.g. 14:30)")
	}

	if t.Hour() < OpeningHour || t.Hour() >= ClosingHour {
		return fmt.Errorf("clinic hours are %02d:00 to %02d:00", OpeningHour, ClosingHour)
	}
	if t.Minute() != 0 && t.Minute() != 30 {
		return fmt.Errorf("please select a time on 30-minute intervals (e.g. 14:00 or 14:30)")
	}
	return nil
}
