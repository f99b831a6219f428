package extract

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/ledongthuc/pdf"
)

// ErrorMarker prefixes every diagnostic string returned instead of document text.
const ErrorMarker = "[extraction error]"

// Format is the declared format of an uploaded document.
type Format string

const (
	FormatText Format = "txt"
	FormatPDF  Format = "pdf"
)

// ParseFormat derives the format from a file name extension, case-insensitively.
// Unknown extensions are returned as-is and reported by Supported.
func ParseFormat(name string) Format {
	ext := strings.TrimPrefix(filepath.Ext(strings.TrimSpace(name)), ".")
	return Format(strings.ToLower(ext))
}

func (f Format) Supported() bool {
	return f == FormatText || f == FormatPDF
}

// Document is an uploaded RFP. Text is filled once by NewDocument and is always
// a string: failures leave a diagnostic starting with ErrorMarker.
type Document struct {
	Name   string
	Raw    []byte
	Format Format
	Text   string
}

func NewDocument(name string, raw []byte, format Format) Document {
	return Document{
		Name:   name,
		Raw:    raw,
		Format: format,
		Text:   Extract(raw, format),
	}
}

// Failed reports whether extraction produced a diagnostic instead of text.
func (d Document) Failed() bool {
	return IsDiagnostic(d.Text)
}

// IsDiagnostic reports whether text is an extraction diagnostic.
func IsDiagnostic(text string) bool {
	return strings.HasPrefix(text, ErrorMarker)
}

// Extract converts a raw blob into plain text. It never fails: unreadable input
// yields a diagnostic string so the pipeline can still produce a decision.
func Extract(raw []byte, format Format) string {
	switch format {
	case FormatText:
		return extractText(raw)
	case FormatPDF:
		return extractPDF(raw)
	default:
		return diagnostic("unsupported format: %q", string(format))
	}
}

func diagnostic(format string, args ...any) string {
	return ErrorMarker + " " + fmt.Sprintf(format, args...)
}

func extractText(raw []byte) string {
	if !utf8.Valid(raw) {
		return diagnostic("could not read text document: content is not valid UTF-8")
	}
	return string(raw)
}

func extractPDF(raw []byte) (text string) {
	// the pdf parser panics on some malformed inputs
	defer func() {
		if r := recover(); r != nil {
			text = diagnostic("could not read PDF document: %v", r)
		}
	}()

	if len(raw) == 0 {
		return diagnostic("could not read PDF document: file is empty")
	}

	reader, err := pdf.NewReader(bytes.NewReader(raw), int64(len(raw)))
	if err != nil {
		return diagnostic("could not read PDF document: %v", err)
	}

	total := reader.NumPage()
	pages := make([]string, 0, total)
	for i := 1; i <= total; i++ {
		pageText, ok := extractPage(reader, i)
		if !ok {
			continue
		}
		pages = append(pages, pageText)
	}

	return strings.Join(pages, "\n")
}

// extractPage returns false when the page could not be read. Such pages are skipped.
func extractPage(reader *pdf.Reader, num int) (text string, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			text, ok = "", false
		}
	}()

	page := reader.Page(num)
	if page.V.IsNull() {
		return "", false
	}

	text, err := page.GetPlainText(nil)
	if err != nil {
		return "", false
	}

	return text, true
}
