package filecache

import (
	"errors"
	"strings"
)

var (
	// ErrDirectoryUnresolvable: the Resolver could not produce a path. No I/O was attempted.
	ErrDirectoryUnresolvable = errors.New("directory unresolvable")
	// ErrIncorrectData: the file does not have the top-level shape of its format
	// (not an array; no lines at all).
	ErrIncorrectData = errors.New("incorrect data")
	// ErrCannotSaveData: encoding or writing failed. The previous file is untouched.
	ErrCannotSaveData = errors.New("cannot save data")
	// ErrCannotLoadData: reading or decoding failed for a reason other than shape.
	ErrCannotLoadData = errors.New("cannot load data")
)

// OpError describes a failed Save, Load, Encode or Decode.
// errors.Is matches both Kind (one of the Err* sentinels) and the underlying cause.
type OpError struct {
	Op     string // "save", "load", "encode", "decode"
	Name   string // logical file name, empty for Encode/Decode
	Path   string // resolved path, empty if resolution failed
	Format Format
	Kind   error
	Err    error
}

func (e *OpError) Error() string {
	var b strings.Builder
	b.WriteString("filecache: ")
	b.WriteString(e.Op)
	if e.Path != "" {
		b.WriteString(" " + e.Path)
	} else if e.Name != "" {
		b.WriteString(" " + e.Name)
	}
	b.WriteString(" (" + e.Format.String() + "): ")
	b.WriteString(e.Kind.Error())
	if e.Err != nil {
		b.WriteString(": " + e.Err.Error())
	}
	return b.String()
}

func (e *OpError) Unwrap() []error {
	errs := make([]error, 0, 2)
	if e.Kind != nil {
		errs = append(errs, e.Kind)
	}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

var (
	errNotArray      = errors.New("top-level value is not an array")
	errNoLines       = errors.New("file has no lines")
	errUnknownFormat = errors.New("unknown format")
	errInvalidUTF8   = errors.New("file is not valid UTF-8")
)

// loadKind classifies a decode failure.
func loadKind(err error) error {
	if errors.Is(err, errNotArray) || errors.Is(err, errNoLines) {
		return ErrIncorrectData
	}
	return ErrCannotLoadData
}
