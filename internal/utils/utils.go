package utils

// Weekday tokens as stored on custom-rule recurring orders. Three-letter
// form matching time.Weekday.String()[:3].
var WeekdayTokens = []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// IsValidFireTime reports whether s is a zero-padded 24h "HH:MM" string.
func IsValidFireTime(s string) bool {
	if len(s) != 5 || s[2] != ':' {
		return false
	}
	for _, i := range []int{0, 1, 3, 4} {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	hour := int(s[0]-'0')*10 + int(s[1]-'0')
	minute := int(s[3]-'0')*10 + int(s[4]-'0')
	return hour <= 23 && minute <= 59
}

func IsValidWeekdayToken(s string) bool {
	for _, token := range WeekdayTokens {
		if s == token {
			return true
		}
	}
	return false
}
