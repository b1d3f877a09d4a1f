// Package localtime resolves absolute instants to the canteen's local
// calendar. The canteen clock is a fixed +05:30 offset with no DST, so the
// conversion is pure arithmetic and never consults the tz database.
package localtime

import "time"

var Zone = time.FixedZone("IST", 5*60*60+30*60)

// Stamp is an instant resolved to the canteen calendar: minute-granularity
// wall time, weekday and calendar date.
type Stamp struct {
	Time    string // "HH:MM"
	Weekday time.Weekday
	Date    string // "YYYY-MM-DD"
}

func Resolve(t time.Time) Stamp {
	local := t.In(Zone)
	return Stamp{
		Time:    local.Format("15:04"),
		Weekday: local.Weekday(),
		Date:    local.Format("2006-01-02"),
	}
}
