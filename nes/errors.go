package nes

import "github.com/pkg/errors"

// Sentinel ROM-load failures, distinguishable from each other via
// errors.Cause rather than string matching.
var (
	ErrBadMagic          = errors.New("nes: bad iNES magic number")
	ErrTruncatedRom      = errors.New("nes: truncated ROM file")
	ErrUnsupportedMapper = errors.New("nes: unsupported mapper number")
)
