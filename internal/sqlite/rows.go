package sqlite

import (
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/estatedesk/estatedesk/pkg/types"
)

func nowString() string {
	return time.Now().UTC().Format(timeFormat)
}

func isNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}

// isUniqueViolation reports whether err is the driver's UNIQUE constraint
// failure. The driver exposes no typed error for it.
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}

func isNotFound(err error) bool {
	var nf *types.NotFoundError
	return errors.As(err, &nf)
}

// parseTime decodes a persisted timestamp, tolerating legacy rows with
// unparseable values by returning the zero time.
func parseTime(v string) time.Time {
	t, err := time.Parse(timeFormat, v)
	if err != nil {
		return time.Time{}
	}
	return t
}
