// Package errs defines the sentinel errors returned by the vizu library.
//
// All errors are plain sentinel values so callers can match them with
// errors.Is regardless of the context wrapped around them at the call site.
package errs

import "errors"

var (
	// ErrInvalidInput indicates the value supplied at session construction
	// is not a usable structured table (nil, or has no columns).
	ErrInvalidInput = errors.New("input is not a structured table")

	// ErrMissingColumn indicates a named field (entity, group, time or
	// measure) does not exist in the supplied table. The wrapping error
	// identifies the field name.
	ErrMissingColumn = errors.New("column not found")

	// ErrUnsupportedFeature indicates a chart variant that is declared but
	// not implemented yet, such as the line chart race.
	ErrUnsupportedFeature = errors.New("feature not implemented")

	// ErrInvalidTimeRange indicates timeEnd is smaller than timeStart.
	ErrInvalidTimeRange = errors.New("invalid time range")

	// ErrNoNumericColumns indicates a wide-format table contains no column
	// whose header parses as an integer time period.
	ErrNoNumericColumns = errors.New("no numeric period columns")

	// ErrEmptyTable indicates a preparation call on a table with no rows.
	ErrEmptyTable = errors.New("table has no rows")

	// ErrNoRenderer indicates an animation was started without a frame
	// renderer configured.
	ErrNoRenderer = errors.New("no frame renderer configured")

	// ErrInvalidCompression indicates an unknown artifact compression type.
	ErrInvalidCompression = errors.New("invalid compression type")
)
