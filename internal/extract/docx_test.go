package extract

import (
	"archive/zip"
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coursedeck/syllabus-tracker/constants"
	"github.com/coursedeck/syllabus-tracker/internal/common"
)

// buildDocx assembles a minimal word-processor archive with the given
// document.xml body.
func buildDocx(t *testing.T, documentXML string) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	f, err := w.Create("word/document.xml")
	require.NoError(t, err)
	_, err = f.Write([]byte(documentXML))
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return buf.Bytes()
}

const sampleDocumentXML = `<?xml version="1.0"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p><w:r><w:t>WW-HUMN 340 Introduction to the Humanities</w:t></w:r></w:p>
    <w:p><w:r><w:t>Spring 2025</w:t></w:r></w:p>
    <w:p></w:p>
    <w:p><w:r><w:t>3/10/25</w:t><w:tab/><w:t>Module 1 Discussion</w:t></w:r></w:p>
  </w:body>
</w:document>`

func TestExtractDocx(t *testing.T) {
	e := NewExtractor(nil)

	res, err := e.Extract(context.Background(), RawDocument{
		Bytes:    buildDocx(t, sampleDocumentXML),
		Filename: "syllabus.docx",
	})
	require.NoError(t, err)
	assert.Equal(t, constants.DOCX, res.Format)
	assert.Equal(t,
		"WW-HUMN 340 Introduction to the Humanities\nSpring 2025\n3/10/25\tModule 1 Discussion",
		res.Content)
}

func TestExtractDocExtensionUsesSameStrategy(t *testing.T) {
	e := NewExtractor(nil)

	res, err := e.Extract(context.Background(), RawDocument{
		Bytes:    buildDocx(t, sampleDocumentXML),
		Filename: "syllabus.doc",
	})
	require.NoError(t, err)
	assert.Equal(t, constants.DOC, res.Format)
	assert.Contains(t, res.Content, "Spring 2025")
}

func TestExtractDocxNotAZip(t *testing.T) {
	e := NewExtractor(nil)

	_, err := e.Extract(context.Background(), RawDocument{
		Bytes:    []byte("plain bytes, not an archive"),
		Filename: "syllabus.docx",
	})
	assert.ErrorIs(t, err, common.ErrExtractionFailed)
}

func TestExtractDocxMissingDocumentXML(t *testing.T) {
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	f, err := w.Create("word/styles.xml")
	require.NoError(t, err)
	_, err = f.Write([]byte("<styles/>"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	e := NewExtractor(nil)
	_, err = e.Extract(context.Background(), RawDocument{
		Bytes:    buf.Bytes(),
		Filename: "syllabus.docx",
	})
	assert.ErrorIs(t, err, common.ErrExtractionFailed)
}

func TestExtractDocxNoText(t *testing.T) {
	empty := `<?xml version="1.0"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body><w:p></w:p></w:body>
</w:document>`

	e := NewExtractor(nil)
	_, err := e.Extract(context.Background(), RawDocument{
		Bytes:    buildDocx(t, empty),
		Filename: "syllabus.docx",
	})
	assert.ErrorIs(t, err, common.ErrExtractionFailed)
}
