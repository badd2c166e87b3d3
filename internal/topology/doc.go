// Package topology derives the audio signal flow graph of a parsed device.
//
// The builder converts every terminal, unit and clock entity of the active
// configuration's AudioControl interface into one graph node, and every
// source-ID reference into one directed edge pointing in signal flow
// direction (source to consumer). Clock references become edges tagged as
// clock edges; they describe the sample-clock tree and are excluded from
// signal path tracing. References to IDs with no corresponding entity are
// dropped silently.
//
// On top of the graph, the tracer enumerates every acyclic path from an
// input terminal to an output terminal by walking backwards from each
// output terminal over non-clock edges. Feedback loops (mixer loops are
// legitimate in real devices) are cut by refusing to revisit a node already
// on the path under construction, which also guarantees termination.
//
// A Graph is a derived, read-only value: it is rebuilt from scratch, never
// patched, when a different configuration becomes active. Rebuilding from
// an unmutated configuration yields an identical graph.
package topology
