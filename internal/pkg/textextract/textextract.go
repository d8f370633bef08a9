// Package textextract decodes uploaded files into plain text before they
// are handed to the document store.
package textextract

import (
	"bytes"
	"io"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
)

// FromUpload decodes raw upload bytes into text. PDFs go through text
// extraction; everything else is treated as UTF-8 with invalid bytes
// replaced rather than rejected.
func FromUpload(filename string, data []byte) (string, error) {
	if strings.EqualFold(filepath.Ext(filename), ".pdf") {
		return FromPDF(data)
	}
	return ToValidText(data), nil
}

// FromPDF extracts plain text from a PDF. Returns empty string and nil
// error when the PDF has no extractable text.
func FromPDF(data []byte) (string, error) {
	if len(data) == 0 {
		return "", nil
	}
	readerAt := bytes.NewReader(data)
	pdfReader, err := pdf.NewReader(readerAt, int64(len(data)))
	if err != nil {
		return "", err
	}
	plainReader, err := pdfReader.GetPlainText()
	if err != nil {
		return "", err
	}
	out, err := io.ReadAll(plainReader)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// ToValidText replaces invalid UTF-8 sequences with the replacement rune.
func ToValidText(data []byte) string {
	return strings.ToValidUTF8(string(data), "�")
}
