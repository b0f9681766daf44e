package extract_test

import (
	"archive/zip"
	"bytes"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/construct-hq/tenderbase/pkg/service/extract"
)

func buildZip(t *testing.T, files map[string]string) []byte {
	t.Helper()

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, content := range files {
		w, err := zw.Create(name)
		gt.NoError(t, err).Required()
		_, err = w.Write([]byte(content))
		gt.NoError(t, err).Required()
	}
	gt.NoError(t, zw.Close()).Required()
	return buf.Bytes()
}

func TestExtract_PlainText(t *testing.T) {
	e := extract.New()

	got := e.Extract([]byte("  completion date 2026  \n"), "text/plain", "notes.txt")
	gt.Value(t, got).Equal("completion date 2026")
}

func TestExtract_MIMEParametersIgnored(t *testing.T) {
	e := extract.New()

	got := e.Extract([]byte("csv,content"), "text/csv; charset=utf-8", "rates.csv")
	gt.Value(t, got).Equal("csv,content")
}

func TestExtract_ExtensionFallback(t *testing.T) {
	e := extract.New()

	got := e.Extract([]byte("site diary entry"), "application/octet-stream", "diary.log")
	gt.Value(t, got).Equal("site diary entry")
}

func TestExtract_HTML(t *testing.T) {
	e := extract.New()

	html := `<html><head><style>body { color: red; }</style></head>
<body><h1>Tender Notice</h1><p>Submission by <b>Friday</b>.</p>
<script>alert("x")</script></body></html>`

	got := e.Extract([]byte(html), "text/html", "notice.html")
	gt.Bool(t, len(got) > 0).True()
	gt.S(t, got).Contains("Tender Notice")
	gt.S(t, got).Contains("Submission by Friday")
	gt.S(t, got).NotContains("<h1>")
	gt.S(t, got).NotContains("alert")
	gt.S(t, got).NotContains("color: red")
}

func TestExtract_DOCX(t *testing.T) {
	e := extract.New()

	docXML := `<?xml version="1.0"?>
<document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <body>
    <p><r><t>Scope of works</t></r><r><t> includes demolition.</t></r></p>
    <p><r><t>Retention is three percent.</t></r></p>
  </body>
</document>`
	data := buildZip(t, map[string]string{"word/document.xml": docXML})

	got := e.Extract(data, "application/vnd.openxmlformats-officedocument.wordprocessingml.document", "scope.docx")
	gt.Value(t, got).Equal("Scope of works includes demolition.\nRetention is three percent.")
}

func TestExtract_XLSX(t *testing.T) {
	e := extract.New()

	sharedXML := `<?xml version="1.0"?>
<sst>
  <si><t>Groundworks</t></si>
  <si><r><t>Steel </t></r><r><t>frame</t></r></si>
</sst>`
	data := buildZip(t, map[string]string{"xl/sharedStrings.xml": sharedXML})

	got := e.Extract(data, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", "boq.xlsx")
	gt.S(t, got).Contains("Groundworks")
	gt.S(t, got).Contains("Steel ")
	gt.S(t, got).Contains("frame")
}

func TestExtract_CorruptArchive(t *testing.T) {
	e := extract.New()

	got := e.Extract([]byte("not a zip"), "", "broken.docx")
	gt.Value(t, got).Equal("")
}

func TestExtract_CorruptPDF(t *testing.T) {
	e := extract.New()

	got := e.Extract([]byte("not a pdf"), "application/pdf", "broken.pdf")
	gt.Value(t, got).Equal("")
}

func TestExtract_UnknownFormat(t *testing.T) {
	e := extract.New()

	gt.Value(t, e.Extract([]byte{0x00, 0x01}, "application/octet-stream", "blob.bin")).Equal("")
	gt.Value(t, e.Extract(nil, "text/plain", "empty.txt")).Equal("")
}

func TestExtract_InvalidUTF8Dropped(t *testing.T) {
	e := extract.New()

	got := e.Extract([]byte{'o', 'k', 0xff, 0xfe}, "text/plain", "notes.txt")
	gt.Value(t, got).Equal("ok")
}
