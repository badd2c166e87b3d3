package lsusb

import "strings"

// Line is one non-blank physical line of lsusb output together with its
// indentation depth. Indent is the count of leading whitespace characters;
// it is the only structural signal in the format.
type Line struct {
	Number  int
	Indent  int
	Content string
}

// tokenize splits raw text into Lines. Blank lines are dropped entirely and
// never participate in indentation boundaries.
func tokenize(text string) []Line {
	var lines []Line
	for i, raw := range strings.Split(text, "\n") {
		content := strings.TrimSpace(raw)
		if content == "" {
			continue
		}
		indent := 0
		for _, r := range raw {
			if r != ' ' && r != '\t' {
				break
			}
			indent++
		}
		lines = append(lines, Line{Number: i + 1, Indent: indent, Content: content})
	}
	return lines
}

// scanner is a cursor over the tokenized line stream with lookahead.
type scanner struct {
	lines []Line
	pos   int
}

func newScanner(text string) *scanner {
	return &scanner{lines: tokenize(text)}
}

// current returns the line under the cursor. ok is false at end of input.
func (s *scanner) current() (Line, bool) {
	if s.pos >= len(s.lines) {
		return Line{}, false
	}
	return s.lines[s.pos], true
}

// advance moves the cursor to the next line.
func (s *scanner) advance() {
	s.pos++
}

// peek returns the line at the given offset from the cursor without
// consuming anything.
func (s *scanner) peek(offset int) (Line, bool) {
	p := s.pos + offset
	if p < 0 || p >= len(s.lines) {
		return Line{}, false
	}
	return s.lines[p], true
}

// inBody reports whether the cursor still sits inside the body of a section
// whose header had the given indent.
func (s *scanner) inBody(headerIndent int) bool {
	line, ok := s.current()
	return ok && line.Indent > headerIndent
}

// skipBody consumes and discards the rest of the current section body.
func (s *scanner) skipBody(headerIndent int) {
	for s.inBody(headerIndent) {
		s.advance()
	}
}

// lookaheadInt scans the pending body for a field without moving the cursor
// and returns its decoded integer value. Used for subtype dispatch, where
// the distinguishing field sits somewhere inside the body that is about to
// be parsed.
func (s *scanner) lookaheadInt(headerIndent int, field string) (int, bool) {
	for off := 0; ; off++ {
		line, ok := s.peek(off)
		if !ok || line.Indent <= headerIndent {
			return 0, false
		}
		if hasField(line.Content, field) {
			return decodeInt(line.Content), true
		}
	}
}
