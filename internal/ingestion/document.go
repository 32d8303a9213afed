package ingestion

import (
	"bytes"
	"errors"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/nguyenthenguyen/docx"
	"github.com/unidoc/unipdf/v3/extractor"
	"github.com/unidoc/unipdf/v3/model"
)

// ErrUnsupportedFormat indicates the uploaded file extension is not handled.
var ErrUnsupportedFormat = errors.New("unsupported file format, expected .pdf or .docx")

// ErrNoText indicates the document decoded but yielded no extractable text,
// typically a scanned image PDF.
var ErrNoText = errors.New("no text could be extracted from the document")

// ExtractDocument extracts plain text from an uploaded résumé. The format is
// chosen by file extension. The returned text is already normalized via
// CleanText.
func ExtractDocument(data []byte, filename string) (string, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return extractPDF(data)
	case ".docx":
		return extractDOCX(data)
	case ".txt":
		return extractPlain(data)
	default:
		return "", ErrUnsupportedFormat
	}
}

// extractPDF walks every page and concatenates its text. A page that fails
// to decode is skipped rather than aborting the whole document, since
// résumés occasionally carry a decorative page the extractor chokes on.
func extractPDF(data []byte) (string, error) {
	reader, err := model.NewPdfReader(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("failed to read PDF: %w", err)
	}

	numPages, err := reader.GetNumPages()
	if err != nil {
		return "", fmt.Errorf("failed to get PDF page count: %w", err)
	}
	if numPages == 0 {
		return "", ErrNoText
	}

	var builder strings.Builder
	for i := 1; i <= numPages; i++ {
		page, err := reader.GetPage(i)
		if err != nil {
			continue
		}
		ex, err := extractor.New(page)
		if err != nil {
			continue
		}
		pageText, err := ex.ExtractText()
		if err != nil {
			continue
		}
		if pageText != "" {
			builder.WriteString(pageText)
			builder.WriteString("\n\n")
		}
	}

	text := CleanText(builder.String())
	if text == "" {
		return "", ErrNoText
	}
	return text, nil
}

// runRe matches a single text run in the document body XML. Runs inside one
// paragraph are joined directly; paragraph boundaries become newlines.
var runRe = regexp.MustCompile(`<w:t[^>]*>([^<]*)</w:t>`)
var paragraphEndRe = regexp.MustCompile(`</w:p>`)

func extractDOCX(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to read DOCX: %w", err)
	}
	defer func() { _ = doc.Close() }()

	content := doc.Editable().GetContent()
	content = paragraphEndRe.ReplaceAllString(content, "\n")

	var builder strings.Builder
	for _, line := range strings.Split(content, "\n") {
		for _, match := range runRe.FindAllStringSubmatch(line, -1) {
			builder.WriteString(decodeXMLEntities(match[1]))
		}
		builder.WriteString("\n")
	}

	text := CleanText(builder.String())
	if text == "" {
		return "", ErrNoText
	}
	return text, nil
}

func extractPlain(data []byte) (string, error) {
	if !utf8.Valid(data) {
		return "", fmt.Errorf("text file is not valid UTF-8")
	}
	text := CleanText(string(data))
	if text == "" {
		return "", ErrNoText
	}
	return text, nil
}

var xmlEntityReplacer = strings.NewReplacer(
	"&amp;", "&",
	"&lt;", "<",
	"&gt;", ">",
	"&quot;", `"`,
	"&apos;", "'",
)

func decodeXMLEntities(s string) string {
	return xmlEntityReplacer.Replace(s)
}
