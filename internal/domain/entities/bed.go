package entities

// Bed represents a bed in a ward and the nurses covering it
type Bed struct {
	ID     string   `json:"id"`
	Number string   `json:"number"`
	Ward   string   `json:"ward"`
	Nurses []string `json:"nurses"`
}

// BedInput is the write shape of a Bed.
// A non-nil empty Nurses slice clears the assignment.
type BedInput struct {
	Number *string   `json:"number,omitempty"`
	Ward   *string   `json:"ward,omitempty"`
	Nurses *[]string `json:"nurses,omitempty"`
}

// BedSummary is the bed detail embedded in a Patient
type BedSummary struct {
	ID     string `json:"id"`
	Number string `json:"number"`
	Ward   string `json:"ward,omitempty"`
}
