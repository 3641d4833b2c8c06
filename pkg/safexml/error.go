package safexml

import "errors"

var ErrNilInput = errors.New("nil XML input")
var ErrNilOutput = errors.New("nil XML output writer")
var ErrNoInput = errors.New("no input bound to parser")
var ErrInvalidLimit = errors.New("parse limit must be greater than 0")
var ErrLimitExceeded = errors.New("XML security limit exceeded")
var ErrDTDRefused = errors.New("DTD processing is disabled")
var ErrCharsetRefused = errors.New("non-UTF-8 input encodings are disabled")
var ErrNoRootElement = errors.New("document has no root element")
var ErrMultipleRoots = errors.New("document has more than one root element")
