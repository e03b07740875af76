// Package models defines the user record exchanged with the REST API and the
// draft the form edits locally.
package models

import (
	"fmt"
	"strings"
	"time"
)

// Gender is the enumerated gender value accepted by the API.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// Genders lists the allowed values in display order.
var Genders = []Gender{GenderMale, GenderFemale}

// UserRecord is the server-held representation of a user.
type UserRecord struct {
	ID          string `json:"_id"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
	Birthday    string `json:"birthday"`
	Gender      Gender `json:"gender"`
	Image       string `json:"image"`
}

// FormDraft is the unsaved state of a record being created or edited.
// Birthday holds a normalised YYYY-MM-DD string, "" when unset.
type FormDraft struct {
	FirstName   string
	LastName    string
	Email       string
	Password    string
	PhoneNumber string
	Birthday    string
	Gender      Gender
	Image       string
}

// DraftFromRecord copies the editable fields of u. Password is left empty.
func DraftFromRecord(u UserRecord) FormDraft {
	d := FormDraft{
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		Email:       u.Email,
		PhoneNumber: u.PhoneNumber,
		Gender:      u.Gender,
		Image:       u.Image,
	}
	if date, err := ParseDate(u.Birthday); err == nil {
		d.Birthday = date.String()
	}
	return d
}

// Payload is the JSON body of create and update requests.
type Payload struct {
	FirstName   string  `json:"firstName"`
	LastName    string  `json:"lastName"`
	Email       string  `json:"email"`
	Password    string  `json:"password,omitempty"`
	PhoneNumber string  `json:"phoneNumber"`
	Birthday    *string `json:"birthday"`
	Gender      Gender  `json:"gender"`
	Image       string  `json:"image"`
}

// Payload builds the request body. An unset birthday is sent as null.
func (d FormDraft) Payload() Payload {
	p := Payload{
		FirstName:   d.FirstName,
		LastName:    d.LastName,
		Email:       d.Email,
		Password:    d.Password,
		PhoneNumber: d.PhoneNumber,
		Gender:      d.Gender,
		Image:       d.Image,
	}
	if d.Birthday != "" {
		b := d.Birthday
		p.Birthday = &b
	}
	return p
}

// Date is a calendar date without a time-of-day component.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// DateOf takes the calendar fields of t in t's own location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// String renders the date as zero-padded YYYY-MM-DD.
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// TrimTime cuts s at its first 'T', turning an ISO timestamp into its date
// part without any time-zone conversion.
func TrimTime(s string) string {
	date, _, _ := strings.Cut(s, "T")
	return date
}

// ParseDate parses YYYY-MM-DD, accepting a trailing ISO time part.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(time.DateOnly, TrimTime(strings.TrimSpace(s)))
	if err != nil {
		return Date{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return DateOf(t), nil
}
