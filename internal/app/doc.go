// Package app contains the core application logic: it wires the lsusb
// parser, topology builder, bandwidth analyzer and renderers into one
// lifecycle, decoupled from any specific entrypoint like a CLI.
package app
