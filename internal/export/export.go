// Package export writes the loaded datasets out as a spreadsheet or as
// chart images.
package export

import "errors"

// ErrNoData is returned when the requested country or view has nothing to
// export.
var ErrNoData = errors.New("no data")
