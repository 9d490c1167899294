package paths

import "errors"

// ErrLength indicates a non-positive codeword length.
var ErrLength = errors.New("paths: codeword length must be positive")
