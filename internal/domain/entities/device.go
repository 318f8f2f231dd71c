package entities

// Device represents a nurse-call device mounted at a bed
type Device struct {
	ID           string `json:"id"`
	SerialNumber string `json:"serial_number"`
	Bed          string `json:"bed"`
}

// DeviceInput is the write shape of a Device
type DeviceInput struct {
	SerialNumber *string `json:"serial_number,omitempty"`
	Bed          *string `json:"bed,omitempty"`
}

// DeviceSummary is the device detail embedded in a Patient
type DeviceSummary struct {
	ID           string `json:"id"`
	SerialNumber string `json:"serial_number"`
}
