package entities

// Hospital represents a hospital managed by the admin backend
type Hospital struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Address    string  `json:"address"`
	Admin      *string `json:"admin"`
	Phone      string  `json:"phone"`
	Speciality string  `json:"speciality"`
}

// HospitalInput is the write shape of a Hospital; unset fields are not sent
type HospitalInput struct {
	Name       *string `json:"name,omitempty"`
	Address    *string `json:"address,omitempty"`
	Admin      *string `json:"admin,omitempty"`
	Phone      *string `json:"phone,omitempty"`
	Speciality *string `json:"speciality,omitempty"`
}
