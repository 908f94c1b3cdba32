package dto

import (
	"fmt"
	"time"
)

// DateLayout is the wire format of calendar dates (check-in/check-out)
const DateLayout = "2006-01-02"

func parseDate(field string, value *string) (*time.Time, error) {
	if value == nil {
		return nil, nil
	}
	t, err := time.Parse(DateLayout, *value)
	if err != nil {
		return nil, fmt.Errorf("%s must be a date in YYYY-MM-DD format", field)
	}
	return &t, nil
}
