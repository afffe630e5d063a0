package types

import "errors"

// Fatal analysis errors. Callers branch on these with errors.Is rather
// than matching message strings.
var (
	// ErrNoData means zero records were obtained across both comparison
	// periods for every institution, so no trend is computable.
	ErrNoData = errors.New("no chat records in either period")

	// ErrUnknownInstitution means a caller-supplied name or queue does
	// not resolve in the institution directory.
	ErrUnknownInstitution = errors.New("unknown institution")

	// ErrInvalidWindow means a window's boundaries are malformed or
	// out of order.
	ErrInvalidWindow = errors.New("invalid time window")

	// ErrWindowTooLong means a window exceeds MaxWindowDays.
	ErrWindowTooLong = errors.New("time window too long")
)
