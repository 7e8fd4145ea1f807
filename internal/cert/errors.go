package cert

import (
	"errors"
	"fmt"
)

var (
	ErrRecordLocked     = errors.New("record is locked and can no longer be edited")
	ErrBundleLocked     = errors.New("evaluation documents are locked and can no longer be replaced")
	ErrNotPDF           = errors.New("only PDF files are allowed")
	ErrFileTooLarge     = errors.New("file exceeds the size limit")
	ErrInvalidNIK       = errors.New("NIK must be exactly 8 numeric digits")
	ErrUnknownStation   = errors.New("unknown station")
	ErrUnknownCriterion = errors.New("unknown criterion")
	ErrUnknownProcess   = errors.New("unknown process")
	ErrInvalidBase64    = errors.New("invalid base64 file content")
)

// SubmitError carries the full list of reasons a record cannot be submitted,
// so callers can show every violation at once.
type SubmitError struct {
	Violations []string
}

func (e *SubmitError) Error() string {
	return fmt.Sprintf("cannot submit: %d item(s) must be Pass", len(e.Violations))
}
