package cert

import (
	"encoding/base64"
	"strings"
)

// PDFMediaType is the only media type any upload gate accepts.
const PDFMediaType = "application/pdf"

// StripDataURI drops a leading data:<mime>;base64, prefix so stored and
// transmitted content is always raw base64.
func StripDataURI(s string) string {
	if !strings.HasPrefix(s, "data:") {
		return s
	}
	if idx := strings.IndexByte(s, ','); idx >= 0 {
		return s[idx+1:]
	}
	return s
}

// DecodeBase64 decodes file content that may arrive with or without a data
// URI prefix.
func DecodeBase64(s string) ([]byte, error) {
	raw := strings.TrimSpace(StripDataURI(s))
	if raw == "" {
		return nil, nil
	}
	b, err := base64.StdEncoding.DecodeString(raw)
	if err != nil {
		return nil, ErrInvalidBase64
	}
	return b, nil
}

func EncodeBase64(content []byte) string {
	if len(content) == 0 {
		return ""
	}
	return base64.StdEncoding.EncodeToString(content)
}

// PDFDataURI re-adds the display prefix for content going back to a viewer.
func PDFDataURI(b64 string) string {
	s := strings.TrimSpace(b64)
	if s == "" {
		return ""
	}
	if strings.HasPrefix(s, "data:") {
		return s
	}
	return "data:" + PDFMediaType + ";base64," + s
}
