// Package model provides the Go struct representation of a parsed USB Audio
// Class device. Its core purpose is to hold the strongly-typed, in-memory
// model of the descriptor hierarchy produced by the lsusb parser.
//
// # Core Concepts
//
// The model is built around a few key structures:
//
//   - Device: The root container. It aggregates the device descriptor and
//     every configuration found in the input. A device may expose several
//     configurations (for example one per supported UAC version); exactly one
//     of them is "active" at a time.
//
//   - Configuration: One USB configuration together with its interfaces, its
//     AudioControl interface (terminals, units, clock entities), its
//     AudioStreaming interfaces and the derived alternate-setting list.
//
//   - AudioControlInterface: The aggregate of all audio function entities.
//     Entity IDs are unique within one AudioControlInterface; references
//     between entities (source IDs, clock pins) are plain IDs and may dangle.
//
// Why a separate model package?
//
// The model is deliberately data-only. It organizes the free-form lsusb text
// into a predictable structure that the topology builder, the bandwidth
// analyzer and the renderer can all consume without knowing anything about
// the input format. Once parsed the model is never mutated; selecting a
// different active configuration only moves a pointer on the Device.
package model
