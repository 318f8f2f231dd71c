package entities

// Patient is the read shape of a patient, with the assigned bed, nurse and
// device embedded as summaries.
type Patient struct {
	ID     string         `json:"id"`
	Name   string         `json:"name"`
	Age    int            `json:"age"`
	Gender string         `json:"gender"`
	Bed    *BedSummary    `json:"bed"`
	Nurse  *NurseSummary  `json:"nurse"`
	Device *DeviceSummary `json:"device"`
}

// PatientInput is the write shape of a Patient. Relations are sent as ids.
type PatientInput struct {
	Name   *string `json:"name,omitempty"`
	Age    *int    `json:"age,omitempty"`
	Gender *string `json:"gender,omitempty"`
	Bed    *string `json:"bed,omitempty"`
	Nurse  *string `json:"nurse,omitempty"`
	Device *string `json:"device,omitempty"`
}

// BedID returns the id of the embedded bed, or "" when unassigned
func (p Patient) BedID() string {
	if p.Bed == nil {
		return ""
	}
	return p.Bed.ID
}
