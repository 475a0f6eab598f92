package types

import (
	"errors"
	"fmt"
)

// Error kinds for problems with the file contents
type Format_kind int

const (
	FK_TRUNCATED Format_kind = iota
	FK_BAD_SIGNATURE
	FK_OUT_OF_RANGE
)

func (k Format_kind) String() string {
	return []string{"truncated", "bad signature", "value out of range"}[k]
}

var (
	ErrTruncated    = errors.New("savefile is truncated")
	ErrBadSignature = errors.New("savefile does not start with " + MAGIC)
	ErrOutOfRange   = errors.New("value out of range")
)

// FormatError is something wrong with the bytes of a savefile.
//
// Truncation is fatal.  A bad signature or an out-of-range value is only reported when decoding
// (see Savegame.Anomalies), but stops a save.
type FormatError struct {
	File    string
	Section string
	Index   int // record index within the section, or -1 for single-record sections
	Field   string
	Kind    Format_kind
	Value   uint32
	Limit   uint32
}

func (e *FormatError) where() string {
	out := ""
	if e.File != "" {
		out = e.File + ": "
	}
	if e.Section != "" {
		out += e.Section
		if e.Index >= 0 {
			out += fmt.Sprintf("[%v]", e.Index)
		}
		if e.Field != "" {
			out += "." + e.Field
		}
		out += ": "
	}
	return out
}

func (e *FormatError) Error() string {
	switch e.Kind {
	case FK_TRUNCATED:
		return e.where() + "unexpected end of file"
	case FK_BAD_SIGNATURE:
		return e.where() + "bad signature (expected " + MAGIC + ")"
	case FK_OUT_OF_RANGE:
		return e.where() + fmt.Sprintf("value %v out of range (max %v)", e.Value, e.Limit)
	}
	return e.where() + e.Kind.String()
}

func (e *FormatError) Is(target error) bool {
	switch target {
	case ErrTruncated:
		return e.Kind == FK_TRUNCATED
	case ErrBadSignature:
		return e.Kind == FK_BAD_SIGNATURE
	case ErrOutOfRange:
		return e.Kind == FK_OUT_OF_RANGE
	}
	return false
}

// IoError is a failure of the underlying file, not of its contents
type IoError struct {
	File string
	Op   string // "open", "read", "write"...
	Err  error
}

func (e *IoError) Error() string {
	if e.File == "" {
		return e.Op + ": " + e.Err.Error()
	}
	return e.File + ": " + e.Op + ": " + e.Err.Error()
}

func (e *IoError) Unwrap() error { return e.Err }

// LogicError means a mutation could not be applied to this particular savegame
type LogicError struct {
	Mutation string
	Reason   string
}

func (e *LogicError) Error() string {
	return e.Mutation + ": " + e.Reason
}

// IndexError is a lookup past the end of a section
type IndexError struct {
	Collection string
	Index      int
	Len        int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("%v[%v]: index out of range (have %v)", e.Collection, e.Index, e.Len)
}

// With_file stamps a filename into any savefile error that doesn't have one yet
func With_file(err error, filename string) error {
	var fe *FormatError
	if errors.As(err, &fe) && fe.File == "" {
		fe.File = filename
	}
	var ie *IoError
	if errors.As(err, &ie) && ie.File == "" {
		ie.File = filename
	}
	return err
}
