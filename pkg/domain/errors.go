package domain

import "errors"

// ErrNotAnObject is returned by edge-layer loaders when a file parses as JSON
// but is not an object. The core itself never returns errors; malformed data
// inside a document degrades to defaults instead.
var ErrNotAnObject = errors.New("trace document is not a JSON object")
