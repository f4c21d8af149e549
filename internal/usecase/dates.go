package usecase

import "time"

const dateLayout = "2006-01-02"

// parseDate parses a YYYY-MM-DD request field. Callers validate the format
// first, so a parse failure only happens on a missed validation.
func parseDate(s string) (time.Time, error) {
	return time.Parse(dateLayout, s)
}

func parseDatePtr(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
