package lsusb

import (
	"context"
	"fmt"

	"github.com/vk/uacscan/internal/ctxlog"
	"github.com/vk/uacscan/internal/model"
)

// ParseError is reserved for conditions outside the grammar's tolerance.
// The grammar itself is total: unknown lines are skipped and malformed
// values decode to their zero value, so ParseError does not occur on
// ordinary, even badly mangled, lsusb output.
type ParseError struct {
	Line    int
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("lsusb parse error at line %d: %s", e.Line, e.Message)
}

// Audio Control descriptor subtypes (UAC 1.0, clock entities from UAC 2.0).
const (
	acHeader          = 0x01
	acInputTerminal   = 0x02
	acOutputTerminal  = 0x03
	acMixerUnit       = 0x04
	acSelectorUnit    = 0x05
	acFeatureUnit     = 0x06
	acProcessingUnit  = 0x07
	acExtensionUnit   = 0x08
	acClockSource     = 0x0A
	acClockSelector   = 0x0B
	acClockMultiplier = 0x0C
)

// Audio Streaming descriptor subtypes.
const (
	asGeneral    = 0x01
	asFormatType = 0x02
)

// Parse reads lsusb -v output and returns the populated device model. The
// parse always completes; an input without audio descriptors simply yields
// a sparsely populated device. The first configuration found becomes the
// device's active configuration.
func Parse(ctx context.Context, text string) (*model.Device, error) {
	p := &parser{s: newScanner(text)}
	dev := p.parse()
	ctxlog.FromContext(ctx).Debug("lsusb parse complete.",
		"lines", len(p.s.lines),
		"configurations", len(dev.Configurations),
	)
	return dev, nil
}

type parser struct {
	s *scanner
}

func (p *parser) parse() *model.Device {
	dev := &model.Device{}

	for {
		line, ok := p.s.current()
		if !ok {
			break
		}
		switch {
		case hasField(line.Content, "Device Descriptor:"):
			p.s.advance()
			p.parseDeviceDescriptor(&dev.Descriptor, line.Indent)
		case hasField(line.Content, "Configuration Descriptor:"):
			p.s.advance()
			dev.AddConfiguration(p.parseConfiguration(line.Indent))
		default:
			p.s.advance()
		}
	}

	return dev
}

// parseDeviceDescriptor fills in the device descriptor. lsusb nests the
// configuration descriptor inside the device descriptor body; it is left
// unconsumed here so the top-level loop picks it up.
func (p *parser) parseDeviceDescriptor(desc *model.DeviceDescriptor, headerIndent int) {
	for p.s.inBody(headerIndent) {
		line, _ := p.s.current()
		c := line.Content

		switch {
		case hasField(c, "Configuration Descriptor:"):
			return
		case hasField(c, "bcdUSB"):
			desc.USBVersion = firstToken(c[len("bcdUSB"):])
		case hasField(c, "bDeviceClass"):
			desc.DeviceClass = decodeInt(c)
		case hasField(c, "bDeviceSubClass"):
			desc.DeviceSubclass = decodeInt(c)
		case hasField(c, "bDeviceProtocol"):
			desc.DeviceProtocol = decodeInt(c)
		case hasField(c, "bMaxPacketSize0"):
			desc.MaxPacketSize0 = decodeInt(c)
		case hasField(c, "idVendor"):
			desc.VendorID = decodeHex(c)
			if label := decodeHexLabel(c); label != "" {
				desc.Manufacturer = label
			}
		case hasField(c, "idProduct"):
			desc.ProductID = decodeHex(c)
			if label := decodeHexLabel(c); label != "" {
				desc.Product = label
			}
		case hasField(c, "bcdDevice"):
			desc.BCDDevice = decodeBCD(c)
		case hasField(c, "iManufacturer"):
			if label := decodeStringIndex(c, "iManufacturer"); label != "" {
				desc.Manufacturer = label
			}
		case hasField(c, "iProduct"):
			if label := decodeStringIndex(c, "iProduct"); label != "" {
				desc.Product = label
			}
		case hasField(c, "iSerial"):
			if label := decodeStringIndex(c, "iSerial"); label != "" {
				desc.SerialNumber = label
			}
		case hasField(c, "bNumConfigurations"):
			desc.NumConfigs = decodeInt(c)
		}

		p.s.advance()
	}
}

func (p *parser) parseConfiguration(headerIndent int) *model.Configuration {
	cfg := &model.Configuration{Version: model.VersionUnknown}

	for p.s.inBody(headerIndent) {
		line, _ := p.s.current()
		c := line.Content

		switch {
		case hasField(c, "Interface Descriptor:"):
			p.s.advance()
			cfg.Interfaces = append(cfg.Interfaces, p.parseInterface(cfg, line.Indent))
		case hasField(c, "bNumInterfaces"):
			cfg.Descriptor.NumInterfaces = decodeInt(c)
			p.s.advance()
		case hasField(c, "bConfigurationValue"):
			cfg.Descriptor.ConfigValue = decodeInt(c)
			p.s.advance()
		case hasField(c, "iConfiguration"):
			if label := decodeStringIndex(c, "iConfiguration"); label != "" {
				cfg.Descriptor.Name = label
			}
			p.s.advance()
		case hasField(c, "bmAttributes"):
			cfg.Descriptor.Attributes = decodeHex(c)
			p.s.advance()
		case hasField(c, "MaxPower"):
			cfg.Descriptor.MaxPowerMA = decodeInt(c)
			p.s.advance()
		default:
			p.s.advance()
		}
	}

	cfg.Version = configVersion(cfg)
	cfg.AlternateSettings = buildAlternateSettings(cfg)
	return cfg
}

func (p *parser) parseInterface(cfg *model.Configuration, headerIndent int) *model.InterfaceDescriptor {
	iface := &model.InterfaceDescriptor{}

	for p.s.inBody(headerIndent) {
		line, _ := p.s.current()
		c := line.Content

		switch {
		case hasField(c, "Endpoint Descriptor:"):
			p.s.advance()
			iface.Endpoints = append(iface.Endpoints, p.parseEndpoint(line.Indent))
		case hasField(c, "AudioControl Interface Descriptor:"):
			p.s.advance()
			p.parseAudioControl(cfg, line.Indent)
		case hasField(c, "AudioStreaming Interface Descriptor:"):
			p.s.advance()
			p.parseAudioStreaming(cfg, iface, line.Indent)
		case hasField(c, "bInterfaceNumber"):
			iface.InterfaceNumber = decodeInt(c)
			p.s.advance()
		case hasField(c, "bAlternateSetting"):
			iface.AlternateSetting = decodeInt(c)
			p.s.advance()
		case hasField(c, "bNumEndpoints"):
			iface.NumEndpoints = decodeInt(c)
			p.s.advance()
		case hasField(c, "bInterfaceClass"):
			iface.InterfaceClass = decodeInt(c)
			p.s.advance()
		case hasField(c, "bInterfaceSubClass"):
			iface.InterfaceSubclass = decodeInt(c)
			p.s.advance()
		case hasField(c, "bInterfaceProtocol"):
			iface.InterfaceProtocol = decodeInt(c)
			p.s.advance()
		case hasField(c, "iInterface"):
			if label := decodeStringIndex(c, "iInterface"); label != "" {
				iface.Name = label
			}
			p.s.advance()
		default:
			p.s.advance()
		}
	}

	return iface
}

var transferTypes = [4]string{"Control", "Isochronous", "Bulk", "Interrupt"}
var syncTypes = [4]model.SyncType{model.SyncNone, model.SyncAsync, model.SyncAdaptive, model.SyncSync}
var usageTypes = [4]model.UsageType{model.UsageData, model.UsageFeedback, model.UsageImplicitFeedback, model.UsageData}

func (p *parser) parseEndpoint(headerIndent int) *model.EndpointDescriptor {
	ep := &model.EndpointDescriptor{UsageType: model.UsageData, SyncType: model.SyncNone}

	for p.s.inBody(headerIndent) {
		line, _ := p.s.current()
		c := line.Content

		switch {
		case hasField(c, "AudioControl Endpoint Descriptor:") || hasField(c, "AudioStreaming Endpoint Descriptor:"):
			p.s.advance()
			p.parseAudioEndpoint(ep, line.Indent)
		case hasField(c, "bEndpointAddress"):
			ep.Address = decodeHex(c)
			if ep.Address&0x80 != 0 {
				ep.Direction = "IN"
			} else {
				ep.Direction = "OUT"
			}
			p.s.advance()
		case hasField(c, "bmAttributes"):
			attrs := decodeInt(c)
			ep.TransferType = transferTypes[attrs&0x03]
			if ep.TransferType == "Isochronous" {
				ep.SyncType = syncTypes[(attrs>>2)&0x03]
				ep.UsageType = usageTypes[(attrs>>4)&0x03]
			}
			p.s.advance()
		case hasField(c, "wMaxPacketSize"):
			// Lower 11 bits carry the packet size; the upper bits encode
			// additional transactions per microframe.
			ep.MaxPacketSize = decodeHex(c) & 0x7FF
			p.s.advance()
		case hasField(c, "bInterval"):
			ep.Interval = decodeInt(c)
			p.s.advance()
		case hasField(c, "bRefresh"):
			ep.Refresh = decodeInt(c)
			p.s.advance()
		case hasField(c, "bSynchAddress"):
			ep.SynchAddress = decodeHex(c)
			p.s.advance()
		default:
			p.s.advance()
		}
	}

	return ep
}

// parseAudioEndpoint reads the audio-class endpoint extensions into the
// already-parsed standard endpoint.
func (p *parser) parseAudioEndpoint(ep *model.EndpointDescriptor, headerIndent int) {
	for p.s.inBody(headerIndent) {
		line, _ := p.s.current()
		c := line.Content

		switch {
		case hasField(c, "bmAttributes"):
			ep.MaxPacketsOnly = decodeHex(c)&0x80 != 0
		case hasField(c, "bLockDelayUnits"):
			ep.LockDelayUnits = decodeInt(c)
		case hasField(c, "wLockDelay"):
			ep.LockDelay = decodeInt(c)
		}

		p.s.advance()
	}
}

// configVersion derives the configuration's UAC version tag from its own
// AudioControl header. The 0x0200 boundary is inclusive for UAC 2.0.
func configVersion(cfg *model.Configuration) model.UACVersion {
	if cfg.AudioControl == nil || cfg.AudioControl.Header == nil {
		return model.VersionUnknown
	}
	if cfg.AudioControl.Header.BCDADC >= 0x0200 {
		return model.UAC20
	}
	return model.UAC10
}

func firstToken(s string) string {
	for len(s) > 0 && (s[0] == ' ' || s[0] == '\t') {
		s = s[1:]
	}
	for i := 0; i < len(s); i++ {
		if s[i] == ' ' || s[i] == '\t' {
			return s[:i]
		}
	}
	return s
}
