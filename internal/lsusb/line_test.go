package lsusb

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenize(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	text := "Device Descriptor:\n  bLength 18\n\n    bDescriptorType 1\n\t\ttabbed\n"

	// --- Act ---
	lines := tokenize(text)

	// --- Assert ---
	require.Len(t, lines, 4, "blank lines must be dropped")
	assert.Equal(t, Line{Number: 1, Indent: 0, Content: "Device Descriptor:"}, lines[0])
	assert.Equal(t, Line{Number: 2, Indent: 2, Content: "bLength 18"}, lines[1])
	assert.Equal(t, Line{Number: 4, Indent: 4, Content: "bDescriptorType 1"}, lines[2])
	assert.Equal(t, Line{Number: 5, Indent: 2, Content: "tabbed"}, lines[3], "tabs count as one indent unit each")
}

func TestScanner_BodyBoundary(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// A body ends at the first line whose indent is not strictly greater
	// than the header's, blank lines in between notwithstanding.
	text := "Header:\n  a 1\n\n  b 2\nNext:\n"
	s := newScanner(text)

	header, ok := s.current()
	require.True(t, ok)
	require.Equal(t, "Header:", header.Content)
	s.advance()

	// --- Act ---
	var body []string
	for s.inBody(header.Indent) {
		line, _ := s.current()
		body = append(body, line.Content)
		s.advance()
	}

	// --- Assert ---
	assert.Equal(t, []string{"a 1", "b 2"}, body)
	next, ok := s.current()
	require.True(t, ok)
	assert.Equal(t, "Next:", next.Content, "sibling header must be left unconsumed")
}

func TestScanner_LookaheadInt(t *testing.T) {
	t.Parallel()

	text := "Descriptor:\n  bLength 9\n  bDescriptorSubtype 3 (OUTPUT_TERMINAL)\n  bTerminalID 6\nNext:\n"
	s := newScanner(text)
	header, _ := s.current()
	s.advance()

	subtype, ok := s.lookaheadInt(header.Indent, "bDescriptorSubtype")
	require.True(t, ok)
	assert.Equal(t, 3, subtype)

	// Lookahead must not move the cursor.
	line, _ := s.current()
	assert.Equal(t, "bLength 9", line.Content)

	// A field absent from the body reports not found, even with more input
	// after the body.
	_, ok = s.lookaheadInt(header.Indent, "bUnitID")
	assert.False(t, ok)
}

func TestScanner_SkipBody(t *testing.T) {
	t.Parallel()

	text := "Descriptor:\n  a 1\n    nested 2\n  b 3\nNext:\n"
	s := newScanner(text)
	header, _ := s.current()
	s.advance()

	s.skipBody(header.Indent)

	line, ok := s.current()
	require.True(t, ok)
	assert.Equal(t, "Next:", line.Content)
}
