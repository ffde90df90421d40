package mtl

import "errors"

var (
	// ErrCorrupt indicates the document violates MTL structural rules
	// (for example, a property statement before any newmtl declaration).
	ErrCorrupt = errors.New("corrupt mtl")

	// ErrLimit indicates a configured parse limit was exceeded.
	ErrLimit = errors.New("mtl limit exceeded")

	// ErrScan indicates a malformed statement (scanner failure).
	ErrScan = errors.New("scan error")

	// ErrEncode indicates a writer failure (unnamed material).
	ErrEncode = errors.New("encode error")
)
