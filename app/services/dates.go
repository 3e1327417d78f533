package services

import (
	"time"

	"github.com/pkg/errors"
)

const (
	dateLayout    = "2006-01-02"
	displayLayout = "January 02, 2006"
)

// FormatDisplayDate converts an ISO date string into its long display form,
// e.g. "2023-03-05" becomes "March 05, 2023". Anything that is not a valid
// YYYY-MM-DD calendar date is an error.
func FormatDisplayDate(datePosted string) (string, error) {
	t, err := time.Parse(dateLayout, datePosted)
	if err != nil {
		return "", errors.Wrapf(err, "parse date %q", datePosted)
	}
	return t.Format(displayLayout), nil
}
