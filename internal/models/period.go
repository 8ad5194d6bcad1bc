package models

// PeriodType labels the semantics of an analysis window.
type PeriodType string

const (
	// PeriodDay analyzes a single calendar day.
	PeriodDay PeriodType = "day"
	// PeriodWeek analyzes up to seven days.
	PeriodWeek PeriodType = "week"
	// PeriodMonth analyzes up to one calendar month.
	PeriodMonth PeriodType = "month"
	// PeriodYear analyzes up to one calendar year.
	PeriodYear PeriodType = "year"
	// PeriodCustom analyzes an arbitrary date span, uncapped.
	PeriodCustom PeriodType = "custom"
)

// String returns the display name for a period type.
func (p PeriodType) String() string {
	switch p {
	case PeriodDay:
		return "Today"
	case PeriodWeek:
		return "Week"
	case PeriodMonth:
		return "Month"
	case PeriodYear:
		return "Year"
	default:
		return "Custom"
	}
}

// Next cycles to the next selectable period type.
func (p PeriodType) Next() PeriodType {
	switch p {
	case PeriodDay:
		return PeriodWeek
	case PeriodWeek:
		return PeriodMonth
	case PeriodMonth:
		return PeriodYear
	default:
		return PeriodDay
	}
}

// DateRange is an inclusive calendar-day window in YYYY-MM-DD form.
type DateRange struct {
	Start string
	End   string
}
