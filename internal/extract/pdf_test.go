package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTextFromContentStream(t *testing.T) {
	stream := []byte(`BT
/F1 12 Tf
(WW-HUMN 340 Introduction to the Humanities) Tj
0 -14 Td
(Spring 2025) Tj
T*
[(3/10/25 ) (Module 1 Discussion)] TJ
ET`)

	got := textFromContentStream(stream)
	assert.Equal(t,
		"WW-HUMN 340 Introduction to the Humanities\nSpring 2025\n3/10/25 Module 1 Discussion",
		got)
}

func TestTextFromContentStreamQuoteOperator(t *testing.T) {
	stream := []byte(`(first line) Tj
(second line) '`)

	got := textFromContentStream(stream)
	assert.Equal(t, "first line\nsecond line", got)
}

func TestTextFromContentStreamIgnoresNonText(t *testing.T) {
	stream := []byte(`q
1 0 0 1 50 700 cm
0.5 g
Q`)
	assert.Equal(t, "", textFromContentStream(stream))
}

func TestDecodePDFString(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "hello", "hello"},
		{"escaped parens", `\(quoted\)`, "(quoted)"},
		{"escaped backslash", `a\\b`, `a\b`},
		{"tab and newline", `a\tb\nc`, "a\tb\nc"},
		{"octal space", `a\040b`, "a b"},
		{"short octal", `\12`, "\n"},
		{"unknown escape passes through", `\x`, "x"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, decodePDFString([]byte(tt.in)))
		})
	}
}

func TestCleanPDFText(t *testing.T) {
	in := "  spaced   out  \n\n\nmiddle\n   \nlast  "
	assert.Equal(t, "spaced out\nmiddle\nlast", cleanPDFText(in))
}
