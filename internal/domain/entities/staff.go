package entities

// StaffTeam represents a team of nurses
type StaffTeam struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// StaffTeamInput is the write shape of a StaffTeam
type StaffTeamInput struct {
	Name *string `json:"name,omitempty"`
}

// Nurse represents a nurse belonging to a staff team.
// NurseID is the staff number, distinct from the record ID.
type Nurse struct {
	ID      string `json:"id"`
	Team    string `json:"team"`
	NurseID string `json:"nurse_id"`
	Name    string `json:"name"`
}

// NurseInput is the write shape of a Nurse
type NurseInput struct {
	Team    *string `json:"team,omitempty"`
	NurseID *string `json:"nurse_id,omitempty"`
	Name    *string `json:"name,omitempty"`
}

// NurseSummary is the nurse detail embedded in a Patient
type NurseSummary struct {
	ID      string `json:"id"`
	NurseID string `json:"nurse_id"`
	Name    string `json:"name"`
}

// TeamAssignment links a staff team to a ward on a floor
type TeamAssignment struct {
	ID    string `json:"id"`
	Ward  string `json:"ward"`
	Floor string `json:"floor"`
	Team  string `json:"team"`
}

// TeamAssignmentInput is the write shape of a TeamAssignment
type TeamAssignmentInput struct {
	Ward  *string `json:"ward,omitempty"`
	Floor *string `json:"floor,omitempty"`
	Team  *string `json:"team,omitempty"`
}
