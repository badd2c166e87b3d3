package model

import "fmt"

// UACVersion identifies the USB Audio Class specification revision a
// configuration implements.
type UACVersion string

const (
	UAC10          UACVersion = "1.0"
	UAC20          UACVersion = "2.0"
	UAC30          UACVersion = "3.0"
	VersionUnknown UACVersion = "unknown"
)

// Configuration is one USB configuration: its descriptor, its interfaces,
// the AudioControl interface declared inside it and the streaming-side
// descriptors grouped per (interface, alternate setting).
type Configuration struct {
	Descriptor ConfigurationDescriptor
	Interfaces []*InterfaceDescriptor

	// Version is derived from the AudioControl header of this configuration,
	// independent of any sibling configuration.
	Version      UACVersion
	AudioControl *AudioControlInterface

	Streaming         []*AudioStreamingInterface
	AlternateSettings []*AlternateSetting
}

// Device is the complete parsed USB audio device. A device retains every
// configuration found in the input; exactly one is active at a time and all
// derived views (topology, bandwidth) are built from the active one.
//
// The parsed data is immutable. SelectVersion only moves the active index,
// so concurrent reads are safe; concurrent SelectVersion calls on the same
// Device must be serialized by the caller.
type Device struct {
	Descriptor     DeviceDescriptor
	Configurations []*Configuration

	active int
}

// Active returns the active configuration, or nil when the device has none.
func (d *Device) Active() *Configuration {
	if len(d.Configurations) == 0 {
		return nil
	}
	return d.Configurations[d.active]
}

// AddConfiguration appends a configuration. The first one added becomes
// active.
func (d *Device) AddConfiguration(c *Configuration) {
	d.Configurations = append(d.Configurations, c)
}

// SelectVersion makes the first configuration carrying the given UAC version
// active. When no retained configuration matches, it returns an error and
// the previous selection stays in effect.
func (d *Device) SelectVersion(v UACVersion) error {
	for i, c := range d.Configurations {
		if c.Version == v {
			d.active = i
			return nil
		}
	}
	return fmt.Errorf("no configuration with UAC version %s (device has %d configuration(s))", v, len(d.Configurations))
}

// Version returns the UAC version of the active configuration.
func (d *Device) Version() UACVersion {
	if c := d.Active(); c != nil {
		return c.Version
	}
	return VersionUnknown
}

// AudioControl returns the active configuration's AudioControl interface,
// or nil.
func (d *Device) AudioControl() *AudioControlInterface {
	if c := d.Active(); c != nil {
		return c.AudioControl
	}
	return nil
}

// AlternateSettings returns the active configuration's alternate-setting
// list, ordered by (interface number, alternate setting).
func (d *Device) AlternateSettings() []*AlternateSetting {
	if c := d.Active(); c != nil {
		return c.AlternateSettings
	}
	return nil
}

// Name returns the product name, falling back to the vendor/product IDs.
func (d *Device) Name() string {
	if d.Descriptor.Product != "" {
		return d.Descriptor.Product
	}
	return fmt.Sprintf("USB Audio Device %04X:%04X", d.Descriptor.VendorID, d.Descriptor.ProductID)
}

// ManufacturerName returns the manufacturer string or "Unknown".
func (d *Device) ManufacturerName() string {
	if d.Descriptor.Manufacturer != "" {
		return d.Descriptor.Manufacturer
	}
	return "Unknown"
}
