package extract

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"io"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/gen2brain/go-fitz"
)

// Extractor converts raw document bytes into plain text. It is stateless
// and never fails: a format it cannot handle yields an empty string, which
// the knowledge base builder counts as a processing failure rather than a
// fatal error.
type Extractor struct{}

func New() *Extractor {
	return &Extractor{}
}

// Extract returns the plain text of a document. The declared MIME type is
// consulted first; when it is generic (octet-stream or empty) the filename
// extension decides.
func (e *Extractor) Extract(data []byte, mimeType, filename string) string {
	if len(data) == 0 {
		return ""
	}

	switch normalizeFormat(mimeType, filename) {
	case formatPDF:
		return extractPDF(data)
	case formatDOCX:
		return extractDOCX(data)
	case formatXLSX:
		return extractXLSX(data)
	case formatHTML:
		return stripHTML(sanitize(data))
	case formatText:
		return sanitize(data)
	default:
		return ""
	}
}

type format int

const (
	formatUnknown format = iota
	formatPDF
	formatDOCX
	formatXLSX
	formatHTML
	formatText
)

func normalizeFormat(mimeType, filename string) format {
	mt := strings.ToLower(mimeType)
	if i := strings.Index(mt, ";"); i >= 0 {
		mt = mt[:i]
	}

	switch mt {
	case "application/pdf":
		return formatPDF
	case "application/vnd.openxmlformats-officedocument.wordprocessingml.document":
		return formatDOCX
	case "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet":
		return formatXLSX
	case "text/html", "application/xhtml+xml":
		return formatHTML
	case "text/plain", "text/csv", "text/markdown", "application/json", "application/xml", "text/xml":
		return formatText
	}
	if strings.HasPrefix(mt, "text/") {
		return formatText
	}

	// Generic or missing MIME type: fall back to the extension
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return formatPDF
	case ".docx":
		return formatDOCX
	case ".xlsx":
		return formatXLSX
	case ".html", ".htm":
		return formatHTML
	case ".txt", ".csv", ".md", ".json", ".xml", ".log":
		return formatText
	}

	return formatUnknown
}

func extractPDF(data []byte) string {
	doc, err := fitz.NewFromMemory(data)
	if err != nil {
		return ""
	}
	defer doc.Close()

	var parts []string
	for i := 0; i < doc.NumPage(); i++ {
		text, err := doc.Text(i)
		if err != nil {
			continue
		}
		if strings.TrimSpace(text) != "" {
			parts = append(parts, text)
		}
	}

	return strings.TrimSpace(strings.Join(parts, "\n\n"))
}

// documentXML mirrors the paragraph/run structure of word/document.xml
type documentXML struct {
	Body struct {
		Paragraphs []struct {
			Runs []struct {
				Text []struct {
					Content string `xml:",chardata"`
				} `xml:"t"`
			} `xml:"r"`
		} `xml:"p"`
	} `xml:"body"`
}

func extractDOCX(data []byte) string {
	reader, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return ""
	}

	content := readZipFile(reader, "word/document.xml")
	if content == nil {
		return ""
	}

	var doc documentXML
	if err := xml.Unmarshal(content, &doc); err != nil {
		return ""
	}

	var sb strings.Builder
	for i, para := range doc.Body.Paragraphs {
		if i > 0 {
			sb.WriteString("\n")
		}
		for _, run := range para.Runs {
			for _, text := range run.Text {
				sb.WriteString(text.Content)
			}
		}
	}

	return strings.TrimSpace(sb.String())
}

// sharedStringsXML mirrors xl/sharedStrings.xml. Cell values referencing
// the shared string table cover the text content of typical pricing
// workbooks; numeric-only cells are not recovered.
type sharedStringsXML struct {
	Items []struct {
		Text  string   `xml:"t"`
		Parts []string `xml:"r>t"`
	} `xml:"si"`
}

func extractXLSX(data []byte) string {
	reader, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return ""
	}

	content := readZipFile(reader, "xl/sharedStrings.xml")
	if content == nil {
		return ""
	}

	var shared sharedStringsXML
	if err := xml.Unmarshal(content, &shared); err != nil {
		return ""
	}

	var parts []string
	for _, item := range shared.Items {
		if item.Text != "" {
			parts = append(parts, item.Text)
		}
		for _, p := range item.Parts {
			if p != "" {
				parts = append(parts, p)
			}
		}
	}

	return strings.TrimSpace(strings.Join(parts, "\n"))
}

func readZipFile(reader *zip.Reader, name string) []byte {
	for _, file := range reader.File {
		if file.Name != name {
			continue
		}
		rc, err := file.Open()
		if err != nil {
			return nil
		}
		content, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return nil
		}
		return content
	}
	return nil
}

var (
	htmlTagPattern    = regexp.MustCompile(`(?s)<(script|style)[^>]*>.*?</(script|style)>|<[^>]+>`)
	whitespacePattern = regexp.MustCompile(`[ \t]+`)
)

func stripHTML(s string) string {
	s = htmlTagPattern.ReplaceAllString(s, " ")
	s = whitespacePattern.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

func sanitize(data []byte) string {
	return strings.TrimSpace(strings.ToValidUTF8(string(data), ""))
}
