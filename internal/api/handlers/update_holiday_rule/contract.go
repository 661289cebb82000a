package update_holiday_rule

import "context"

type CalendarService interface {
	SetHolidayRuleActive(ctx context.Context, ruleID int64, active bool) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
