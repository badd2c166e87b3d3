package topology

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/uacscan/internal/model"
)

func TestTracePaths_SelectorFanIn(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// A selector with two input terminals yields one complete path per
	// selectable source.
	ac := &model.AudioControlInterface{
		InputTerminals: []*model.InputTerminal{
			{TerminalID: 1, TerminalType: 0x0101, NrChannels: 2},
			{TerminalID: 2, TerminalType: 0x0603, NrChannels: 2},
		},
		SelectorUnits: []*model.SelectorUnit{
			{UnitID: 4, NrInPins: 2, SourceIDs: []int{1, 2}},
		},
		OutputTerminals: []*model.OutputTerminal{
			{TerminalID: 6, TerminalType: 0x0301, SourceID: 4},
		},
	}

	// --- Act ---
	graph := Build(context.Background(), deviceWith(ac))

	// --- Assert ---
	require.Len(t, graph.Paths, 2)
	assert.Equal(t, []int{1, 4, 6}, pathIDs(graph.Paths[0]))
	assert.Equal(t, []int{2, 4, 6}, pathIDs(graph.Paths[1]))
}

func TestTracePaths_CycleTerminates(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// Two units referencing each other form a cycle with no input terminal
	// behind them. Tracing must terminate and contribute no path.
	ac := &model.AudioControlInterface{
		MixerUnits: []*model.MixerUnit{
			{UnitID: 10, NrInPins: 1, SourceIDs: []int{11}},
		},
		ExtensionUnits: []*model.ExtensionUnit{
			{UnitID: 11, NrInPins: 1, SourceIDs: []int{10}},
		},
		OutputTerminals: []*model.OutputTerminal{
			{TerminalID: 12, TerminalType: 0x0301, SourceID: 10},
		},
	}

	// --- Act ---
	graph := Build(context.Background(), deviceWith(ac))

	// --- Assert ---
	assert.Empty(t, graph.Paths)
}

func TestTracePaths_CycleBranchDroppedOthersKept(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// The mixer is fed both by a genuine input terminal and by a cyclic
	// unit pair. Only the acyclic branch survives.
	ac := &model.AudioControlInterface{
		InputTerminals: []*model.InputTerminal{
			{TerminalID: 1, TerminalType: 0x0201, NrChannels: 1},
		},
		MixerUnits: []*model.MixerUnit{
			{UnitID: 10, NrInPins: 2, SourceIDs: []int{1, 11}},
		},
		ExtensionUnits: []*model.ExtensionUnit{
			{UnitID: 11, NrInPins: 1, SourceIDs: []int{10}},
		},
		OutputTerminals: []*model.OutputTerminal{
			{TerminalID: 12, TerminalType: 0x0101, SourceID: 10},
		},
	}

	// --- Act ---
	graph := Build(context.Background(), deviceWith(ac))

	// --- Assert ---
	require.Len(t, graph.Paths, 1)
	assert.Equal(t, []int{1, 10, 12}, pathIDs(graph.Paths[0]))
	assert.True(t, graph.Paths[0].IsCapture())
}

func TestTracePaths_DeadEndUnit(t *testing.T) {
	t.Parallel()

	// A unit without sources is a dead end, not a path origin.
	ac := &model.AudioControlInterface{
		FeatureUnits: []*model.FeatureUnit{
			{UnitID: 3},
		},
		OutputTerminals: []*model.OutputTerminal{
			{TerminalID: 6, TerminalType: 0x0301, SourceID: 3},
		},
	}

	graph := Build(context.Background(), deviceWith(ac))
	assert.Empty(t, graph.Paths)
}

func TestTracePaths_InternalPath(t *testing.T) {
	t.Parallel()

	// Analog in to speaker out without touching USB: an internal
	// (hardware monitoring) path.
	ac := &model.AudioControlInterface{
		InputTerminals: []*model.InputTerminal{
			{TerminalID: 1, TerminalType: 0x0603, NrChannels: 2},
		},
		OutputTerminals: []*model.OutputTerminal{
			{TerminalID: 6, TerminalType: 0x0301, SourceID: 1},
		},
	}

	graph := Build(context.Background(), deviceWith(ac))
	require.Len(t, graph.Paths, 1)
	assert.Empty(t, graph.PlaybackPaths())
	assert.Empty(t, graph.CapturePaths())
	require.Len(t, graph.InternalPaths(), 1)
}

func TestDescribePath(t *testing.T) {
	t.Parallel()

	graph := Build(context.Background(), deviceWith(headsetAC()))

	playback := graph.PlaybackPaths()
	require.Len(t, playback, 1)
	assert.Equal(t, "USB Streaming -> Feature (Mute, Volume) -> Speaker", playback[0].Description)

	capture := graph.CapturePaths()
	require.Len(t, capture, 1)
	assert.Equal(t, "Microphone -> Feature (Volume) -> USB Streaming", capture[0].Description)
}
