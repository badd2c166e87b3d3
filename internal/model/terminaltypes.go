package model

import "fmt"

// terminalTypeNames maps USB audio terminal type codes to their names per
// the USB Device Class Definition for Terminal Types.
var terminalTypeNames = map[int]string{
	0x0100: "USB Undefined",
	0x0101: "USB Streaming",
	0x01FF: "USB Vendor Specific",
	0x0200: "Input Undefined",
	0x0201: "Microphone",
	0x0202: "Desktop Microphone",
	0x0203: "Personal Microphone",
	0x0204: "Omni-directional Microphone",
	0x0205: "Microphone Array",
	0x0206: "Processing Microphone Array",
	0x0300: "Output Undefined",
	0x0301: "Speaker",
	0x0302: "Headphones",
	0x0303: "Head Mounted Display Audio",
	0x0304: "Desktop Speaker",
	0x0305: "Room Speaker",
	0x0306: "Communication Speaker",
	0x0307: "Low Frequency Effects Speaker",
	0x0400: "Bi-directional Undefined",
	0x0401: "Handset",
	0x0402: "Headset",
	0x0403: "Speakerphone (no echo reduction)",
	0x0404: "Echo-suppressing Speakerphone",
	0x0405: "Echo-canceling Speakerphone",
	0x0500: "Telephony Undefined",
	0x0501: "Phone Line",
	0x0502: "Telephone",
	0x0503: "Down Line Phone",
	0x0600: "External Undefined",
	0x0601: "Analog Connector",
	0x0602: "Digital Audio Interface",
	0x0603: "Line Connector",
	0x0604: "Legacy Audio Connector",
	0x0605: "S/PDIF Interface",
	0x0606: "1394 DA Stream",
	0x0607: "1394 DV Stream",
	0x0700: "Embedded Undefined",
	0x0701: "Level Calibration Noise Source",
	0x0702: "Equalization Noise",
	0x0703: "CD Player",
	0x0704: "DAT",
	0x0705: "DCC",
	0x0706: "MiniDisk",
	0x0707: "Analog Tape",
	0x0708: "Phonograph",
	0x0709: "VCR Audio",
	0x070A: "Video Disc Audio",
	0x070B: "DVD Audio",
	0x070C: "TV Tuner Audio",
	0x070D: "Satellite Receiver Audio",
	0x070E: "Cable Tuner Audio",
	0x070F: "DSS Audio",
	0x0710: "Radio Receiver",
	0x0711: "Radio Transmitter",
	0x0712: "Multi-track Recorder",
	0x0713: "Synthesizer",
	0x0714: "Piano",
	0x0715: "Guitar",
	0x0716: "Drums/Rhythm",
	0x0717: "Other Musical Instrument",
}

// terminalCategories names the high byte of a terminal type code, used when
// the exact code is not in the table.
var terminalCategories = map[int]string{
	0x01: "USB",
	0x02: "Input",
	0x03: "Output",
	0x04: "Bi-directional",
	0x05: "Telephony",
	0x06: "External",
	0x07: "Embedded",
}

// TerminalTypeName returns the human-readable name for a terminal type code.
// Codes outside the table fall back to their category name plus the raw code,
// e.g. "External (0x06FE)".
func TerminalTypeName(code int) string {
	if name, ok := terminalTypeNames[code]; ok {
		return name
	}
	category, ok := terminalCategories[(code>>8)&0xFF]
	if !ok {
		category = "Unknown"
	}
	return fmt.Sprintf("%s (0x%04X)", category, code)
}
