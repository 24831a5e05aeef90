package minmax

import "github.com/pkg/errors"

// ErrEmptyInput is returned when the selection is asked for the bounds of an
// empty sequence. No comparison is attempted in that case.
var ErrEmptyInput = errors.New("minmax: empty input sequence")
