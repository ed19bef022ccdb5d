package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeExt(t *testing.T) {
	assert.Equal(t, "pdf", NormalizeExt(".PDF"))
	assert.Equal(t, "docx", NormalizeExt("docx"))
	assert.Equal(t, "txt", NormalizeExt(".txt"))
	assert.Equal(t, "", NormalizeExt("."))
}

func TestMapExtToFormat(t *testing.T) {
	assert.Equal(t, TXT, MapExtToFormat("txt"))
	assert.Equal(t, PDF, MapExtToFormat(".PDF"))
	assert.Equal(t, DOCX, MapExtToFormat("docx"))
	assert.Equal(t, DOC, MapExtToFormat("doc"))
	assert.Equal(t, DocumentFormat(""), MapExtToFormat("rtf"))
	assert.Equal(t, DocumentFormat(""), MapExtToFormat(""))
}

func TestAllowedExtensionsMatchFormats(t *testing.T) {
	for _, ft := range FileTypes {
		_, ok := AllowedExtensions[NormalizeExt(ft)]
		assert.True(t, ok, "format %s has no allowed extension", ft)
	}
}
