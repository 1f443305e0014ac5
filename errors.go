package iccmax

import (
	"errors"
	"fmt"
)

var (
	// ErrCorrupt is matched (via errors.Is) by every decode failure.
	ErrCorrupt = errors.New("corrupt profile")
	// ErrDepthExceeded is the cause attached when nested tag data exceeds ParseOptions.MaxDepth.
	ErrDepthExceeded = errors.New("maximum nesting depth exceeded")
	// ErrUnknownType is the cause attached to unrecognised type signatures when
	// ParseOptions.ErrorOnUnknownTypes is set.
	ErrUnknownType = errors.New("unknown tag type")
)

// DefaultMaxDepth is the nesting limit used when ParseOptions.MaxDepth is zero.
const DefaultMaxDepth = 32

// CorruptionError describes malformed profile data.
type CorruptionError struct {
	// Offset is the absolute byte offset within the profile where the problem was found
	Offset int64
	// Structure is the path of the structure being decoded, e.g. "A2B0/mAB"
	Structure string
	// Reason is a short description of the problem
	Reason string
	// Err is the underlying cause, if any
	Err error
}

func (e *CorruptionError) Error() string {
	msg := fmt.Sprintf("iccmax: corrupt %s at byte %d: %s", e.Structure, e.Offset, e.Reason)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *CorruptionError) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrCorrupt, e.Err}
	}
	return []error{ErrCorrupt}
}

func corrupt(structure string, offset int64, format string, args ...any) *CorruptionError {
	return &CorruptionError{
		Offset:    offset,
		Structure: structure,
		Reason:    fmt.Sprintf(format, args...),
	}
}

func corruptCause(structure string, offset int64, cause error, format string, args ...any) *CorruptionError {
	ce := corrupt(structure, offset, format, args...)
	ce.Err = cause
	return ce
}
