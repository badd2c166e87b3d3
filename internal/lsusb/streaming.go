package lsusb

import (
	"sort"

	"github.com/vk/uacscan/internal/model"
)

// parseAudioStreaming dispatches one class-specific AS interface descriptor
// body, using the same non-consuming subtype lookahead as the AudioControl
// side.
func (p *parser) parseAudioStreaming(cfg *model.Configuration, iface *model.InterfaceDescriptor, headerIndent int) {
	subtype, ok := p.s.lookaheadInt(headerIndent, "bDescriptorSubtype")
	if !ok {
		p.s.skipBody(headerIndent)
		return
	}

	switch subtype {
	case asGeneral:
		cfg.Streaming = append(cfg.Streaming, p.parseASGeneral(iface, headerIndent))
	case asFormatType:
		p.parseASFormatType(cfg, headerIndent)
	default:
		p.s.skipBody(headerIndent)
	}
}

func (p *parser) parseASGeneral(iface *model.InterfaceDescriptor, headerIndent int) *model.AudioStreamingInterface {
	st := &model.AudioStreamingInterface{
		InterfaceNumber:  iface.InterfaceNumber,
		AlternateSetting: iface.AlternateSetting,
	}

	for p.s.inBody(headerIndent) {
		line, _ := p.s.current()
		c := line.Content

		switch {
		case hasField(c, "bTerminalLink"):
			st.TerminalLink = decodeInt(c)
		case hasField(c, "bDelay"):
			st.Delay = decodeInt(c)
		case hasField(c, "wFormatTag"):
			st.FormatTag = decodeHex(c)
		case hasField(c, "bmFormats"):
			st.Formats = decodeHex(c)
		case hasField(c, "bmControls"):
			st.Controls = decodeHex(c)
		case hasField(c, "bNrChannels"):
			// UAC 2.0 moves the channel count into AS General.
			st.NrChannels = decodeInt(c)
		case hasField(c, "bClockSourceID"):
			st.ClockSourceID = decodeInt(c)
		}

		p.s.advance()
	}

	return st
}

// parseASFormatType attaches the format descriptor to the most recently
// parsed streaming interface of the configuration.
func (p *parser) parseASFormatType(cfg *model.Configuration, headerIndent int) {
	fmtDesc := &model.FormatTypeDescriptor{}

	for p.s.inBody(headerIndent) {
		line, _ := p.s.current()
		c := line.Content

		switch {
		case hasField(c, "bFormatType"):
			fmtDesc.FormatType = decodeInt(c)
		case hasField(c, "bNrChannels"):
			fmtDesc.NrChannels = decodeInt(c)
		case hasField(c, "bSubframeSize") || hasField(c, "bSubslotSize"):
			fmtDesc.SubframeSize = decodeInt(c)
		case hasField(c, "bBitResolution"):
			fmtDesc.BitResolution = decodeInt(c)
		case hasField(c, "tSamFreq"):
			fmtDesc.SampleFrequencies = append(fmtDesc.SampleFrequencies, decodeIndexed(c))
		case hasField(c, "tLowerSamFreq"):
			fmtDesc.FreqMin = decodeInt(c)
		case hasField(c, "tUpperSamFreq"):
			fmtDesc.FreqMax = decodeInt(c)
		}

		p.s.advance()
	}

	if len(cfg.Streaming) == 0 {
		return
	}
	st := cfg.Streaming[len(cfg.Streaming)-1]
	st.Format = fmtDesc
	if fmtDesc.NrChannels == 0 {
		// UAC 2.0 reports the channel count in AS General instead.
		fmtDesc.NrChannels = st.NrChannels
	}
}

// buildAlternateSettings pairs every streaming interface with its format
// and endpoint. Feedback endpoints are skipped in favor of the data
// endpoint when an interface declares both. The result is ordered by
// (interface number, alternate setting).
func buildAlternateSettings(cfg *model.Configuration) []*model.AlternateSetting {
	var alts []*model.AlternateSetting

	for _, st := range cfg.Streaming {
		alt := &model.AlternateSetting{
			InterfaceNumber:  st.InterfaceNumber,
			AlternateSetting: st.AlternateSetting,
			Streaming:        st,
			Format:           st.Format,
		}

		for _, iface := range cfg.Interfaces {
			if iface.InterfaceNumber != st.InterfaceNumber || iface.AlternateSetting != st.AlternateSetting {
				continue
			}
			for _, ep := range iface.Endpoints {
				if ep.UsageType == model.UsageData {
					alt.Endpoint = ep
					break
				}
			}
			if alt.Endpoint == nil && len(iface.Endpoints) > 0 {
				alt.Endpoint = iface.Endpoints[0]
			}
			break
		}
		st.Endpoint = alt.Endpoint

		alts = append(alts, alt)
	}

	sort.SliceStable(alts, func(i, j int) bool {
		if alts[i].InterfaceNumber != alts[j].InterfaceNumber {
			return alts[i].InterfaceNumber < alts[j].InterfaceNumber
		}
		return alts[i].AlternateSetting < alts[j].AlternateSetting
	})

	return alts
}
