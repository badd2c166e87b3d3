package lsusb

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecodeInt(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		in   string
		want int
	}{
		{"simple field", "bTerminalID             1", 1},
		{"digits glued to the field name are skipped", "bMaxPacketSize0        64", 64},
		{"trailing unit glued to the value", "MaxPower              100mA", 0},
		{"value with trailing text", "bDelay                  1 frames", 1},
		{"no number at all", "bTerminalID", 0},
		{"malformed value", "bTerminalID          abc", 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tc := tc
			t.Parallel()
			assert.Equal(t, tc.want, decodeInt(tc.in))
		})
	}
}

func TestDecodeHex(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		in   string
		want int
	}{
		{"0x marker", "wTerminalType      0x0101 USB Streaming", 0x0101},
		{"bare hex second token", "bCategory               8", 8},
		{"missing value", "wTerminalType", 0},
		{"non-hex second token", "wTerminalType      zz", 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tc := tc
			t.Parallel()
			assert.Equal(t, tc.want, decodeHex(tc.in))
		})
	}
}

func TestDecodeBCD(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0x0200, decodeBCD("bcdADC               2.00"))
	assert.Equal(t, 0x0100, decodeBCD("bcdADC               1.00"))
	assert.Equal(t, 0, decodeBCD("bcdADC"), "missing value decodes to zero")
	assert.Equal(t, 0, decodeBCD("bcdADC               garbage"))
}

func TestDecodeStringIndex(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "GN Netcom A/S", decodeStringIndex("iManufacturer           1 GN Netcom A/S", "iManufacturer"))
	assert.Equal(t, "", decodeStringIndex("iTerminal               0", "iTerminal"), "index without a label decodes to empty")
	assert.Equal(t, "", decodeStringIndex("iTerminal", "iTerminal"))
	assert.Equal(t, "", decodeStringIndex("iProduct                2 X", "iManufacturer"), "field name must match")
}

func TestDecodeIndexed(t *testing.T) {
	t.Parallel()

	// The value sits after the bracketed index; the index itself must never
	// be read as the value.
	assert.Equal(t, 9, decodeIndexed("baSourceID(2)  9"))
	assert.Equal(t, 48000, decodeIndexed("tSamFreq[ 1]        48000"))
	assert.Equal(t, 0x03, decodeIndexedHex("bmaControls( 0)      0x03"))
	assert.Equal(t, 3, decodeIndexedHex("bmaControls( 1)  0x00000003"))
}

func TestHasField(t *testing.T) {
	t.Parallel()

	assert.True(t, hasField("bTerminalID             1", "bTerminalID"))
	assert.True(t, hasField("BTERMINALID 1", "bTerminalID"), "matching is case-insensitive")
	assert.False(t, hasField("bTerminal", "bTerminalID"))
	assert.False(t, hasField("idProduct          0x0343", "iProduct"))
}
