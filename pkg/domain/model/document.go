package model

import "github.com/construct-hq/tenderbase/pkg/domain/types"

// Document is a folder-store listing entry. It only lives for the duration
// of a knowledge base build; the extracted text survives, the raw bytes do
// not.
type Document struct {
	Name        string
	Path        string
	DownloadRef string
	MIMEType    string
	ByteSize    int64
}

// ExtractedContent is the processed form of a document accepted into a
// knowledge base. Text is truncated to the builder's per-document ceiling.
type ExtractedContent struct {
	DocumentName string
	Category     types.DocumentCategory
	Path         string
	MIMEType     string
	Text         string
	TextLength   int
}
