// Package missionclock renders the mission-elapsed style UTC clock shown
// in the operator console: day-of-year plus wall time, e.g.
// "042.09:03:07 UTC".
package missionclock

import (
	"fmt"
	"time"
)

// Reading is one sample of the mission clock. The split fields are
// zero-padded strings so clients can render segments directly.
type Reading struct {
	Today   time.Time `json:"today"`
	Year    int       `json:"year"`
	Days    string    `json:"days"`
	Hours   string    `json:"hours"`
	Minutes string    `json:"minutes"`
	Seconds string    `json:"seconds"`
	UTC     string    `json:"utc"`
}

// Now samples the mission clock at the current time.
func Now() Reading {
	return At(time.Now())
}

// At renders the mission clock for the given instant, in UTC.
func At(t time.Time) Reading {
	u := t.UTC()
	r := Reading{
		Today:   u,
		Year:    u.Year(),
		Days:    fmt.Sprintf("%03d", u.YearDay()),
		Hours:   fmt.Sprintf("%02d", u.Hour()),
		Minutes: fmt.Sprintf("%02d", u.Minute()),
		Seconds: fmt.Sprintf("%02d", u.Second()),
	}
	r.UTC = fmt.Sprintf("%s.%s:%s:%s UTC", r.Days, r.Hours, r.Minutes, r.Seconds)
	return r
}
