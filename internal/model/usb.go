package model

// SyncType is the synchronization type of an isochronous endpoint.
type SyncType string

const (
	SyncNone     SyncType = "none"
	SyncAsync    SyncType = "async"
	SyncAdaptive SyncType = "adaptive"
	SyncSync     SyncType = "sync"
)

// UsageType is the usage type of an isochronous endpoint.
type UsageType string

const (
	UsageData             UsageType = "data"
	UsageFeedback         UsageType = "feedback"
	UsageImplicitFeedback UsageType = "implicit_feedback"
)

// DeviceDescriptor holds the standard USB device descriptor fields.
type DeviceDescriptor struct {
	VendorID       int
	ProductID      int
	BCDDevice      int
	Manufacturer   string
	Product        string
	SerialNumber   string
	DeviceClass    int
	DeviceSubclass int
	DeviceProtocol int
	MaxPacketSize0 int
	NumConfigs     int
	USBVersion     string
}

// EndpointDescriptor holds a standard USB endpoint descriptor plus the
// audio-class endpoint extensions.
type EndpointDescriptor struct {
	Address       int
	Direction     string // "IN" or "OUT"
	TransferType  string // "Control", "Isochronous", "Bulk", "Interrupt"
	SyncType      SyncType
	UsageType     UsageType
	MaxPacketSize int
	Interval      int
	Refresh       int
	SynchAddress  int

	// Audio endpoint descriptor extensions.
	LockDelayUnits int
	LockDelay      int
	MaxPacketsOnly bool
}

// Number returns the endpoint number without the direction bit.
func (e *EndpointDescriptor) Number() int {
	return e.Address & 0x0F
}

// IsInput reports whether the endpoint carries data from device to host.
func (e *EndpointDescriptor) IsInput() bool {
	return e.Address&0x80 != 0
}

// InterfaceDescriptor holds a standard USB interface descriptor and the
// endpoints declared under it.
type InterfaceDescriptor struct {
	InterfaceNumber  int
	AlternateSetting int
	NumEndpoints     int
	InterfaceClass   int
	InterfaceSubclass int
	InterfaceProtocol int
	Name             string
	Endpoints        []*EndpointDescriptor
}

// ConfigurationDescriptor holds the standard USB configuration descriptor
// fields. The interfaces declared inside the configuration live on
// Configuration, not here.
type ConfigurationDescriptor struct {
	ConfigValue   int
	NumInterfaces int
	Name          string
	Attributes    int
	MaxPowerMA    int
}
