package autoorder

import (
	"time"

	"github.com/and161185/canteen/internal/model"
)

// FiresOn reports whether a recurring order's rule fires on the given local
// weekday. Unrecognized rules never fire.
func FiresOn(ro model.RecurringOrder, weekday time.Weekday) bool {
	switch ro.Rule {
	case model.RuleDaily:
		return true
	case model.RuleWeekdays:
		return weekday >= time.Monday && weekday <= time.Friday
	case model.RuleCustom:
		token := weekday.String()[:3]
		for _, day := range ro.CustomDays {
			if day == token {
				return true
			}
		}
		return false
	default:
		return false
	}
}
