package leveldata

import "fmt"

// ParseError is returned when the TMX document cannot be read or lacks the
// map attributes conversion depends on.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// MissingFieldError is returned when an object lacks a field its kind requires,
// or when the level has no player start at all.
type MissingFieldError struct {
	ObjectID uint32 // zero for level-wide fields
	Kind     ObjectKind
	Field    string
	Err      error
}

func (e *MissingFieldError) Error() string {
	if e.ObjectID == 0 && e.Kind == KindPlayerStart {
		return fmt.Sprintf("level has no %s object", e.Field)
	}
	msg := fmt.Sprintf("%s object %d: missing %s", e.Kind, e.ObjectID, e.Field)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *MissingFieldError) Unwrap() error { return e.Err }
