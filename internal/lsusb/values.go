package lsusb

import (
	"strconv"
	"strings"
)

// hasField reports whether the line content starts with the given field
// name, case-insensitively. Callers order their checks so that the most
// specific field name is tried first.
func hasField(content, field string) bool {
	if len(content) < len(field) {
		return false
	}
	return strings.EqualFold(content[:len(field)], field)
}

func isWordByte(b byte) bool {
	return b == '_' ||
		(b >= '0' && b <= '9') ||
		(b >= 'a' && b <= 'z') ||
		(b >= 'A' && b <= 'Z')
}

func isHexDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		b := s[i]
		if !(b >= '0' && b <= '9' || b >= 'a' && b <= 'f' || b >= 'A' && b <= 'F') {
			return false
		}
	}
	return true
}

// decodeInt returns the first standalone decimal number in the text, where
// standalone means not glued to a letter or underscore on either side.
// Malformed or missing values decode to zero.
func decodeInt(text string) int {
	for i := 0; i < len(text); i++ {
		if text[i] < '0' || text[i] > '9' {
			continue
		}
		if i > 0 && isWordByte(text[i-1]) {
			// Digits embedded in an identifier, skip the whole run.
			for i < len(text) && isWordByte(text[i]) {
				i++
			}
			continue
		}
		j := i
		for j < len(text) && text[j] >= '0' && text[j] <= '9' {
			j++
		}
		if j < len(text) && isWordByte(text[j]) {
			i = j
			continue
		}
		n, err := strconv.Atoi(text[i:j])
		if err != nil {
			return 0
		}
		return n
	}
	return 0
}

// decodeHex returns a hexadecimal value from the text. A literal "0x" marker
// wins; without one the second whitespace-separated token is read as bare
// hex when it looks like one. Malformed or missing values decode to zero.
func decodeHex(text string) int {
	if i := strings.Index(text, "0x"); i >= 0 {
		j := i + 2
		for j < len(text) && isHexDigits(text[j:j+1]) {
			j++
		}
		if j > i+2 {
			n, err := strconv.ParseInt(text[i+2:j], 16, 64)
			if err == nil {
				return int(n)
			}
		}
	}
	parts := strings.Fields(text)
	if len(parts) >= 2 && isHexDigits(parts[1]) {
		n, err := strconv.ParseInt(parts[1], 16, 64)
		if err == nil {
			return int(n)
		}
	}
	return 0
}

// decodeBCD reads a fixed-point "major.minor" version and packs it as
// (major<<8)|minor, so "2.00" becomes 0x0200. Malformed values decode to
// zero.
func decodeBCD(text string) int {
	for i := 0; i < len(text); i++ {
		if text[i] < '0' || text[i] > '9' {
			continue
		}
		j := i
		for j < len(text) && text[j] >= '0' && text[j] <= '9' {
			j++
		}
		if j >= len(text) || text[j] != '.' || j+1 >= len(text) || text[j+1] < '0' || text[j+1] > '9' {
			i = j
			continue
		}
		k := j + 1
		for k < len(text) && text[k] >= '0' && text[k] <= '9' {
			k++
		}
		major, err1 := strconv.Atoi(text[i:j])
		minor, err2 := strconv.Atoi(text[j+1 : k])
		if err1 != nil || err2 != nil {
			return 0
		}
		return major<<8 | minor
	}
	return 0
}

// decodeStringIndex reads a "fieldName  3 Label text" triple: the numeric
// string-table index is discarded and the trailing label is captured
// verbatim. A missing label decodes to "".
func decodeStringIndex(content, field string) string {
	if !hasField(content, field) {
		return ""
	}
	rest := strings.TrimLeft(content[len(field):], " \t")
	i := 0
	for i < len(rest) && rest[i] >= '0' && rest[i] <= '9' {
		i++
	}
	if i == 0 {
		return ""
	}
	label := strings.TrimLeft(rest[i:], " \t")
	return label
}

// decodeHexLabel captures the text following a 0x-prefixed value, e.g. the
// vendor name on an "idVendor  0x1234 Acme Corp" line.
func decodeHexLabel(text string) string {
	i := strings.Index(text, "0x")
	if i < 0 {
		return ""
	}
	j := i + 2
	for j < len(text) && isHexDigits(text[j:j+1]) {
		j++
	}
	if j == i+2 {
		return ""
	}
	return strings.TrimSpace(text[j:])
}

// decodeIndexed reads the value of an indexed field such as
// "baSourceID(2)  9" or "tSamFreq[ 1]  48000": the value sits after the
// closing bracket, the index inside it is not re-interpreted.
func decodeIndexed(content string) int {
	if i := strings.LastIndexAny(content, ")]"); i >= 0 {
		return decodeInt(content[i+1:])
	}
	return decodeInt(content)
}

// decodeIndexedHex is decodeIndexed for hex-valued fields such as
// "bmaControls( 0)  0x03".
func decodeIndexedHex(content string) int {
	if i := strings.LastIndexAny(content, ")]"); i >= 0 {
		return decodeHex(content[i+1:])
	}
	return decodeHex(content)
}
