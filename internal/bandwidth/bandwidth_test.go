package bandwidth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/uacscan/internal/model"
)

// duplexDevice builds a headset-like device with one playback and one
// capture streaming interface, each with a zero-bandwidth alternate setting
// and one active setting.
func duplexDevice() *model.Device {
	ac := &model.AudioControlInterface{
		InputTerminals:  []*model.InputTerminal{{TerminalID: 1, TerminalType: 0x0101, NrChannels: 2}},
		OutputTerminals: []*model.OutputTerminal{{TerminalID: 7, TerminalType: 0x0101, SourceID: 5}},
	}

	playbackFormat := &model.FormatTypeDescriptor{
		NrChannels:        2,
		SubframeSize:      2,
		BitResolution:     16,
		SampleFrequencies: []int{44100, 48000},
	}
	playback := &model.AudioStreamingInterface{
		InterfaceNumber:  1,
		AlternateSetting: 1,
		TerminalLink:     1,
		FormatTag:        model.FormatPCM,
		Format:           playbackFormat,
	}
	playbackEP := &model.EndpointDescriptor{
		Address:       0x01,
		Direction:     "OUT",
		MaxPacketSize: 200,
		Interval:      1,
		SyncType:      model.SyncAdaptive,
		UsageType:     model.UsageData,
	}

	captureFormat := &model.FormatTypeDescriptor{
		NrChannels:        1,
		SubframeSize:      2,
		BitResolution:     16,
		SampleFrequencies: []int{48000},
	}
	capture := &model.AudioStreamingInterface{
		InterfaceNumber:  2,
		AlternateSetting: 1,
		TerminalLink:     7,
		FormatTag:        model.FormatPCM,
		Format:           captureFormat,
	}
	captureEP := &model.EndpointDescriptor{
		Address:       0x82,
		Direction:     "IN",
		MaxPacketSize: 100,
		Interval:      4,
		SyncType:      model.SyncAsync,
		UsageType:     model.UsageData,
	}

	cfg := &model.Configuration{
		Version:      model.UAC10,
		AudioControl: ac,
		Streaming:    []*model.AudioStreamingInterface{playback, capture},
		AlternateSettings: []*model.AlternateSetting{
			{InterfaceNumber: 1, AlternateSetting: 0, Streaming: &model.AudioStreamingInterface{InterfaceNumber: 1}},
			{InterfaceNumber: 1, AlternateSetting: 1, Streaming: playback, Format: playbackFormat, Endpoint: playbackEP},
			{InterfaceNumber: 2, AlternateSetting: 1, Streaming: capture, Format: captureFormat, Endpoint: captureEP},
		},
	}

	dev := &model.Device{}
	dev.AddConfiguration(cfg)
	return dev
}

func TestAnalyze_Duplex(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	dev := duplexDevice()

	// --- Act ---
	analysis := Analyze(context.Background(), dev)

	// --- Assert ---
	require.Len(t, analysis.Interfaces, 2)
	require.Len(t, analysis.PlaybackInterfaces, 1)
	require.Len(t, analysis.CaptureInterfaces, 1)

	playback := analysis.PlaybackInterfaces[0]
	assert.Equal(t, 1, playback.InterfaceNumber)
	assert.Equal(t, "OUT", playback.Direction)
	assert.Equal(t, 1, playback.TerminalID)
	assert.Equal(t, "USB Streaming", playback.TerminalType)
	require.Len(t, playback.AlternateSettings, 2)
	assert.True(t, playback.AlternateSettings[0].IsZeroBandwidth())

	active := playback.AlternateSettings[1]
	// Interval 1 means one packet per high-speed microframe.
	assert.Equal(t, 200*8000, active.BytesPerSecond)
	assert.Equal(t, "Asynchronous", analysis.CaptureInterfaces[0].AlternateSettings[0].SyncTypeString())

	capture := analysis.CaptureInterfaces[0].AlternateSettings[0]
	// Interval above 1 means full-speed millisecond framing.
	assert.Equal(t, 100*1000, capture.BytesPerSecond)

	assert.Equal(t, 1_600_000, analysis.MaxPlaybackBandwidth)
	assert.Equal(t, 100_000, analysis.MaxCaptureBandwidth)
	assert.Equal(t, 1_700_000, analysis.MaxTotalBandwidth)
	assert.Equal(t, "1.7 MB/s", analysis.TotalRateString())
}

func TestAnalyze_EmptyDevice(t *testing.T) {
	t.Parallel()

	analysis := Analyze(context.Background(), &model.Device{})
	assert.Empty(t, analysis.Interfaces)
	assert.Zero(t, analysis.MaxTotalBandwidth)
	assert.Equal(t, "0 B/s", analysis.TotalRateString())
}

func TestFormatInfo_Strings(t *testing.T) {
	t.Parallel()

	discrete := &FormatInfo{Channels: 2, BitDepth: 16, FormatName: "PCM", SampleRates: []int{48000, 44100}}
	assert.Equal(t, "2ch 16-bit PCM", discrete.String())
	assert.Equal(t, "44.1, 48.0 kHz", discrete.SampleRateString(), "rates are sorted for display")

	continuous := &FormatInfo{RateMin: 8000, RateMax: 96000}
	assert.Equal(t, "8.0-96.0 kHz", continuous.SampleRateString())

	unknown := &FormatInfo{}
	assert.Equal(t, "Unknown", unknown.SampleRateString())
}

func TestInfo_RateString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "0 (disabled)", (&Info{}).RateString())
	assert.Equal(t, "1.6 MB/s", (&Info{BytesPerSecond: 1_600_000}).RateString())
	assert.Equal(t, "100 kB/s", (&Info{BytesPerSecond: 100_000}).RateString())
}

func TestInterfaceSummary_MaxBandwidthSetting(t *testing.T) {
	t.Parallel()

	summary := &InterfaceSummary{
		AlternateSettings: []*Info{
			{AlternateSetting: 0},
			{AlternateSetting: 1, MaxPacketSize: 100, BytesPerSecond: 100_000},
			{AlternateSetting: 2, MaxPacketSize: 200, BytesPerSecond: 200_000},
		},
	}
	best := summary.MaxBandwidthSetting()
	require.NotNil(t, best)
	assert.Equal(t, 2, best.AlternateSetting)

	allZero := &InterfaceSummary{AlternateSettings: []*Info{{}, {}}}
	assert.Nil(t, allZero.MaxBandwidthSetting())
}

func TestTable(t *testing.T) {
	t.Parallel()

	analysis := Analyze(context.Background(), duplexDevice())
	table := analysis.Table()

	assert.Contains(t, table, "STREAMING INTERFACES AND BANDWIDTH")
	assert.Contains(t, table, "Interface 1: Playback")
	assert.Contains(t, table, "Interface 2: Capture")
	assert.Contains(t, table, "(zero bandwidth - disabled)")
	assert.Contains(t, table, "2ch 16-bit PCM")
	assert.Contains(t, table, "44.1, 48.0 kHz")
	assert.Contains(t, table, "Max Total Bandwidth:    1.7 MB/s")

	empty := Analyze(context.Background(), &model.Device{})
	assert.Equal(t, "No streaming interfaces found.\n", empty.Table())
}
