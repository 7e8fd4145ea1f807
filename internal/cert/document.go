package cert

import (
	"fmt"
	"time"

	"github.com/gabriel-vasile/mimetype"
)

// DocumentType is a certificate upload slot.
type DocumentType int

const (
	DocSoldering DocumentType = iota
	DocScrewing
	DocMSA
)

// AllDocumentTypes is the gate order used for violation messages.
var AllDocumentTypes = []DocumentType{DocSoldering, DocScrewing, DocMSA}

func (d DocumentType) String() string {
	switch d {
	case DocSoldering:
		return "Soldering"
	case DocScrewing:
		return "Screwing"
	case DocMSA:
		return "MSA"
	default:
		return "Unknown"
	}
}

// FileAttachment is a selected file with its declared media type and size.
type FileAttachment struct {
	Name      string
	MediaType string
	Size      int64
	Content   []byte
}

// DocumentGate validates uploads for one call site. Ceilings differ between
// the certification slots and the evaluation bundle, so the limit is
// configuration, never a package constant.
type DocumentGate struct {
	MaxBytes int64
}

// Check accepts only PDFs within the ceiling. When content is available the
// declared type is also verified against the actual bytes.
func (g DocumentGate) Check(f FileAttachment) error {
	if f.MediaType != PDFMediaType {
		return ErrNotPDF
	}
	if g.MaxBytes > 0 && f.Size > g.MaxBytes {
		return fmt.Errorf("%w (%d bytes, limit %d)", ErrFileTooLarge, f.Size, g.MaxBytes)
	}
	if len(f.Content) > 0 && !mimetype.Detect(f.Content).Is(PDFMediaType) {
		return ErrNotPDF
	}
	return nil
}

// DocumentSlot tracks one certificate's number, dates and file. The expiry
// date is always derived from the training date and cannot be set directly.
type DocumentSlot struct {
	docType        DocumentType
	documentNumber string
	trainingDate   time.Time
	expiryDate     time.Time
	file           *FileAttachment
}

func NewDocumentSlot(t DocumentType) *DocumentSlot {
	return &DocumentSlot{docType: t}
}

func (s *DocumentSlot) Type() DocumentType {
	return s.docType
}

func (s *DocumentSlot) SetDocumentNumber(n string) {
	s.documentNumber = n
}

func (s *DocumentSlot) DocumentNumber() string {
	return s.documentNumber
}

// SetTrainingDate stores the date and recomputes the expiry in the same
// step. A zero time clears both.
func (s *DocumentSlot) SetTrainingDate(t time.Time) {
	if t.IsZero() {
		s.trainingDate = time.Time{}
		s.expiryDate = time.Time{}
		return
	}
	s.trainingDate = t
	s.expiryDate = ComputeExpiry(t)
}

func (s *DocumentSlot) TrainingDate() (time.Time, bool) {
	return s.trainingDate, !s.trainingDate.IsZero()
}

func (s *DocumentSlot) ExpiryDate() (time.Time, bool) {
	return s.expiryDate, !s.expiryDate.IsZero()
}

// Attach runs the gate and stores the file. A rejected file never sticks:
// the slot's selection is cleared before the error is returned.
func (s *DocumentSlot) Attach(g DocumentGate, f FileAttachment) error {
	if err := g.Check(f); err != nil {
		s.file = nil
		return err
	}
	s.file = &f
	return nil
}

func (s *DocumentSlot) File() (FileAttachment, bool) {
	if s.file == nil {
		return FileAttachment{}, false
	}
	return *s.file, true
}

func (s *DocumentSlot) ClearFile() {
	s.file = nil
}

// IsComplete requires the document number, a valid file and both dates.
func (s *DocumentSlot) IsComplete() bool {
	return s.documentNumber != "" &&
		s.file != nil &&
		!s.trainingDate.IsZero() &&
		!s.expiryDate.IsZero()
}

// Status renders the slot the way the upload table shows it.
func (s *DocumentSlot) Status() string {
	if s.IsComplete() {
		return "Pass"
	}
	return "Not Yet"
}
