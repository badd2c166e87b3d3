// Package lsusb parses the verbose text dump format of the lsusb utility
// into the typed device model.
//
// The input has no explicit delimiters: document structure is reconstructed
// purely from relative indentation. A section starts at a header line such
// as "Interface Descriptor:"; every following line with an indent strictly
// greater than the header's belongs to the section body, and the section
// ends at the first line with indent less than or equal to the header's.
//
// Field decoding is deliberately tolerant. Lines are matched against known
// field-name prefixes; unrecognized lines are skipped so that dumps from
// newer lsusb versions keep parsing. Malformed numeric values decode to
// zero and malformed strings to "", never to an error. Class-specific
// interface bodies (AudioControl, AudioStreaming) are dispatched on a
// bDescriptorSubtype field found by a non-consuming lookahead scan of the
// body; bodies with an unknown subtype are consumed and discarded.
package lsusb
