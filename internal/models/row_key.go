package models

import (
	"strconv"
	"time"
)

// rowKeySeparator never appears in user-entered text fields.
const rowKeySeparator = "\x1f"

const DayLayout = "2006-01-02"

func formatDay(value time.Time) string {
	return value.UTC().Format(DayLayout)
}

func formatFloat(value float64) string {
	return strconv.FormatFloat(value, 'g', -1, 64)
}
