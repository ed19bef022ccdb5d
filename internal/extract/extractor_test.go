package extract

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coursedeck/syllabus-tracker/constants"
	"github.com/coursedeck/syllabus-tracker/internal/common"
)

func TestExtractPlainText(t *testing.T) {
	e := NewExtractor(nil)

	res, err := e.Extract(context.Background(), RawDocument{
		Bytes:    []byte("CS 101 Intro\r\nSpring 2025\rline three"),
		Filename: "syllabus.txt",
	})
	require.NoError(t, err)
	assert.Equal(t, "CS 101 Intro\nSpring 2025\nline three", res.Content)
	assert.Equal(t, constants.TXT, res.Format)
	assert.Equal(t, 0, res.Pages)
}

func TestExtractPlainTextStripsBOM(t *testing.T) {
	e := NewExtractor(nil)

	res, err := e.Extract(context.Background(), RawDocument{
		Bytes:    append([]byte{0xEF, 0xBB, 0xBF}, []byte("hello")...),
		Filename: "notes.TXT",
	})
	require.NoError(t, err)
	assert.Equal(t, "hello", res.Content)
}

func TestExtractPlainTextRejectsInvalidUTF8(t *testing.T) {
	e := NewExtractor(nil)

	_, err := e.Extract(context.Background(), RawDocument{
		Bytes:    []byte{0xff, 0xfe, 0x00},
		Filename: "bad.txt",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrExtractionFailed)
}

func TestExtractUnsupportedExtension(t *testing.T) {
	e := NewExtractor(nil)

	for _, name := range []string{"syllabus.rtf", "syllabus.png", "syllabus", "syllabus.pdf.bak"} {
		_, err := e.Extract(context.Background(), RawDocument{Bytes: []byte("x"), Filename: name})
		require.Error(t, err, "filename %s", name)
		assert.ErrorIs(t, err, common.ErrUnsupportedFormat, "filename %s", name)
	}
}

func TestExtractExtensionCaseInsensitive(t *testing.T) {
	e := NewExtractor(nil)

	res, err := e.Extract(context.Background(), RawDocument{
		Bytes:    []byte("case test"),
		Filename: "Syllabus.TxT",
	})
	require.NoError(t, err)
	assert.Equal(t, constants.TXT, res.Format)
}

func TestExtractCancelledContext(t *testing.T) {
	e := NewExtractor(nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := e.Extract(ctx, RawDocument{Bytes: []byte("x"), Filename: "a.txt"})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestExtractCorruptPDFFailsTyped(t *testing.T) {
	e := NewExtractor(nil)

	_, err := e.Extract(context.Background(), RawDocument{
		Bytes:    []byte("definitely not a pdf"),
		Filename: "broken.pdf",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrExtractionFailed)
	assert.True(t, strings.Contains(err.Error(), "PDF"))
}
