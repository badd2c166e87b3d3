package lsusb

import "github.com/vk/uacscan/internal/model"

// parseAudioControl dispatches one class-specific AC interface descriptor
// body. The body cannot be parsed against a fixed field table until the
// bDescriptorSubtype somewhere inside it is known, so the body is scanned
// without consuming first. Unknown subtypes discard the whole body.
func (p *parser) parseAudioControl(cfg *model.Configuration, headerIndent int) {
	if cfg.AudioControl == nil {
		cfg.AudioControl = &model.AudioControlInterface{}
	}
	ac := cfg.AudioControl

	subtype, ok := p.s.lookaheadInt(headerIndent, "bDescriptorSubtype")
	if !ok {
		p.s.skipBody(headerIndent)
		return
	}

	switch subtype {
	case acHeader:
		ac.Header = p.parseACHeader(headerIndent)
	case acInputTerminal:
		ac.InputTerminals = append(ac.InputTerminals, p.parseInputTerminal(headerIndent))
	case acOutputTerminal:
		ac.OutputTerminals = append(ac.OutputTerminals, p.parseOutputTerminal(headerIndent))
	case acFeatureUnit:
		ac.FeatureUnits = append(ac.FeatureUnits, p.parseFeatureUnit(headerIndent))
	case acMixerUnit:
		ac.MixerUnits = append(ac.MixerUnits, p.parseMixerUnit(headerIndent))
	case acSelectorUnit:
		ac.SelectorUnits = append(ac.SelectorUnits, p.parseSelectorUnit(headerIndent))
	case acProcessingUnit:
		ac.ProcessingUnits = append(ac.ProcessingUnits, p.parseProcessingUnit(headerIndent))
	case acExtensionUnit:
		ac.ExtensionUnits = append(ac.ExtensionUnits, p.parseExtensionUnit(headerIndent))
	case acClockSource:
		ac.ClockSources = append(ac.ClockSources, p.parseClockSource(headerIndent))
	case acClockSelector:
		ac.ClockSelectors = append(ac.ClockSelectors, p.parseClockSelector(headerIndent))
	case acClockMultiplier:
		ac.ClockMultipliers = append(ac.ClockMultipliers, p.parseClockMultiplier(headerIndent))
	default:
		p.s.skipBody(headerIndent)
	}
}

func (p *parser) parseACHeader(headerIndent int) *model.AudioControlHeader {
	h := &model.AudioControlHeader{}

	for p.s.inBody(headerIndent) {
		line, _ := p.s.current()
		c := line.Content

		switch {
		case hasField(c, "bcdADC"):
			h.BCDADC = decodeBCD(c)
		case hasField(c, "wTotalLength"):
			h.TotalLength = decodeInt(c)
		case hasField(c, "bInCollection"):
			h.InCollection = decodeInt(c)
		case hasField(c, "baInterfaceNr"):
			h.InterfaceNumbers = append(h.InterfaceNumbers, decodeIndexed(c))
		case hasField(c, "bCategory"):
			h.Category = decodeHex(c)
		case hasField(c, "bmControls"):
			h.Controls = decodeHex(c)
		}

		p.s.advance()
	}

	return h
}

func (p *parser) parseInputTerminal(headerIndent int) *model.InputTerminal {
	t := &model.InputTerminal{}

	for p.s.inBody(headerIndent) {
		line, _ := p.s.current()
		c := line.Content

		switch {
		case hasField(c, "bTerminalID"):
			t.TerminalID = decodeInt(c)
		case hasField(c, "wTerminalType"):
			t.TerminalType = decodeHex(c)
		case hasField(c, "bAssocTerminal"):
			t.AssocTerminal = decodeInt(c)
		case hasField(c, "bNrChannels"):
			t.NrChannels = decodeInt(c)
		case hasField(c, "wChannelConfig") || hasField(c, "bmChannelConfig"):
			t.ChannelConfig = decodeHex(c)
		case hasField(c, "iChannelNames"):
			t.ChannelNames = decodeStringIndex(c, "iChannelNames")
		case hasField(c, "iTerminal"):
			t.Name = decodeStringIndex(c, "iTerminal")
		case hasField(c, "bCSourceID"):
			t.ClockSourceID = decodeInt(c)
		case hasField(c, "bmControls"):
			t.Controls = decodeHex(c)
		}

		p.s.advance()
	}

	return t
}

func (p *parser) parseOutputTerminal(headerIndent int) *model.OutputTerminal {
	t := &model.OutputTerminal{}

	for p.s.inBody(headerIndent) {
		line, _ := p.s.current()
		c := line.Content

		switch {
		case hasField(c, "bTerminalID"):
			t.TerminalID = decodeInt(c)
		case hasField(c, "wTerminalType"):
			t.TerminalType = decodeHex(c)
		case hasField(c, "bAssocTerminal"):
			t.AssocTerminal = decodeInt(c)
		case hasField(c, "bSourceID"):
			t.SourceID = decodeInt(c)
		case hasField(c, "iTerminal"):
			t.Name = decodeStringIndex(c, "iTerminal")
		case hasField(c, "bCSourceID"):
			t.ClockSourceID = decodeInt(c)
		case hasField(c, "bmControls"):
			t.Controls = decodeHex(c)
		}

		p.s.advance()
	}

	return t
}

func (p *parser) parseFeatureUnit(headerIndent int) *model.FeatureUnit {
	u := &model.FeatureUnit{}

	for p.s.inBody(headerIndent) {
		line, _ := p.s.current()
		c := line.Content

		switch {
		case hasField(c, "bUnitID"):
			u.UnitID = decodeInt(c)
		case hasField(c, "bSourceID"):
			u.SourceID = decodeInt(c)
		case hasField(c, "bmaControls"):
			u.Controls = append(u.Controls, decodeIndexedHex(c))
		case hasField(c, "iFeature"):
			u.Name = decodeStringIndex(c, "iFeature")
		}

		p.s.advance()
	}

	return u
}

func (p *parser) parseMixerUnit(headerIndent int) *model.MixerUnit {
	u := &model.MixerUnit{}

	for p.s.inBody(headerIndent) {
		line, _ := p.s.current()
		c := line.Content

		switch {
		case hasField(c, "bUnitID"):
			u.UnitID = decodeInt(c)
		case hasField(c, "bNrInPins"):
			u.NrInPins = decodeInt(c)
		case hasField(c, "baSourceID"):
			u.SourceIDs = append(u.SourceIDs, decodeIndexed(c))
		case hasField(c, "bNrChannels"):
			u.NrChannels = decodeInt(c)
		case hasField(c, "wChannelConfig") || hasField(c, "bmChannelConfig"):
			u.ChannelConfig = decodeHex(c)
		case hasField(c, "iChannelNames"):
			u.ChannelNames = decodeStringIndex(c, "iChannelNames")
		case hasField(c, "iMixer"):
			u.Name = decodeStringIndex(c, "iMixer")
		}

		p.s.advance()
	}

	return u
}

func (p *parser) parseSelectorUnit(headerIndent int) *model.SelectorUnit {
	u := &model.SelectorUnit{}

	for p.s.inBody(headerIndent) {
		line, _ := p.s.current()
		c := line.Content

		switch {
		case hasField(c, "bUnitID"):
			u.UnitID = decodeInt(c)
		case hasField(c, "bNrInPins"):
			u.NrInPins = decodeInt(c)
		case hasField(c, "baSourceID"):
			u.SourceIDs = append(u.SourceIDs, decodeIndexed(c))
		case hasField(c, "iSelector"):
			u.Name = decodeStringIndex(c, "iSelector")
		}

		p.s.advance()
	}

	return u
}

func (p *parser) parseProcessingUnit(headerIndent int) *model.ProcessingUnit {
	u := &model.ProcessingUnit{}

	for p.s.inBody(headerIndent) {
		line, _ := p.s.current()
		c := line.Content

		switch {
		case hasField(c, "bUnitID"):
			u.UnitID = decodeInt(c)
		case hasField(c, "wProcessType"):
			u.ProcessType = decodeHex(c)
		case hasField(c, "bNrInPins"):
			u.NrInPins = decodeInt(c)
		case hasField(c, "baSourceID"):
			u.SourceIDs = append(u.SourceIDs, decodeIndexed(c))
		case hasField(c, "bNrChannels"):
			u.NrChannels = decodeInt(c)
		case hasField(c, "wChannelConfig") || hasField(c, "bmChannelConfig"):
			u.ChannelConfig = decodeHex(c)
		case hasField(c, "iChannelNames"):
			u.ChannelNames = decodeStringIndex(c, "iChannelNames")
		case hasField(c, "bmControls"):
			u.Controls = decodeHex(c)
		case hasField(c, "iProcessing"):
			u.Name = decodeStringIndex(c, "iProcessing")
		}

		p.s.advance()
	}

	return u
}

func (p *parser) parseExtensionUnit(headerIndent int) *model.ExtensionUnit {
	u := &model.ExtensionUnit{}

	for p.s.inBody(headerIndent) {
		line, _ := p.s.current()
		c := line.Content

		switch {
		case hasField(c, "bUnitID"):
			u.UnitID = decodeInt(c)
		case hasField(c, "wExtensionCode"):
			u.ExtensionCode = decodeHex(c)
		case hasField(c, "bNrInPins"):
			u.NrInPins = decodeInt(c)
		case hasField(c, "baSourceID"):
			u.SourceIDs = append(u.SourceIDs, decodeIndexed(c))
		case hasField(c, "bNrChannels"):
			u.NrChannels = decodeInt(c)
		case hasField(c, "wChannelConfig") || hasField(c, "bmChannelConfig"):
			u.ChannelConfig = decodeHex(c)
		case hasField(c, "iChannelNames"):
			u.ChannelNames = decodeStringIndex(c, "iChannelNames")
		case hasField(c, "bmControls"):
			u.Controls = decodeHex(c)
		case hasField(c, "iExtension"):
			u.Name = decodeStringIndex(c, "iExtension")
		}

		p.s.advance()
	}

	return u
}

func (p *parser) parseClockSource(headerIndent int) *model.ClockSource {
	cs := &model.ClockSource{}

	for p.s.inBody(headerIndent) {
		line, _ := p.s.current()
		c := line.Content

		switch {
		case hasField(c, "bClockID"):
			cs.ClockID = decodeInt(c)
		case hasField(c, "bmAttributes"):
			cs.Attributes = decodeHex(c)
		case hasField(c, "bmControls"):
			cs.Controls = decodeHex(c)
		case hasField(c, "bAssocTerminal"):
			cs.AssocTerminal = decodeInt(c)
		case hasField(c, "iClockSource"):
			cs.Name = decodeStringIndex(c, "iClockSource")
		}

		p.s.advance()
	}

	return cs
}

func (p *parser) parseClockSelector(headerIndent int) *model.ClockSelector {
	cs := &model.ClockSelector{}

	for p.s.inBody(headerIndent) {
		line, _ := p.s.current()
		c := line.Content

		switch {
		case hasField(c, "bClockID"):
			cs.ClockID = decodeInt(c)
		case hasField(c, "bNrInPins"):
			cs.NrInPins = decodeInt(c)
		case hasField(c, "baCSourceID"):
			cs.ClockPinIDs = append(cs.ClockPinIDs, decodeIndexed(c))
		case hasField(c, "bmControls"):
			cs.Controls = decodeHex(c)
		case hasField(c, "iClockSelector"):
			cs.Name = decodeStringIndex(c, "iClockSelector")
		}

		p.s.advance()
	}

	return cs
}

func (p *parser) parseClockMultiplier(headerIndent int) *model.ClockMultiplier {
	cm := &model.ClockMultiplier{}

	for p.s.inBody(headerIndent) {
		line, _ := p.s.current()
		c := line.Content

		switch {
		case hasField(c, "bClockID"):
			cm.ClockID = decodeInt(c)
		case hasField(c, "bCSourceID"):
			cm.ClockSourceID = decodeInt(c)
		case hasField(c, "bmControls"):
			cm.Controls = decodeHex(c)
		case hasField(c, "iClockMultiplier"):
			cm.Name = decodeStringIndex(c, "iClockMultiplier")
		}

		p.s.advance()
	}

	return cm
}
