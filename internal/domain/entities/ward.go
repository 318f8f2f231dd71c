package entities

// Ward represents a ward on a floor. Building is denormalized from the floor.
type Ward struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Floor    string `json:"floor"`
	Building string `json:"building"`
}

// WardInput is the write shape of a Ward
type WardInput struct {
	Name     *string `json:"name,omitempty"`
	Floor    *string `json:"floor,omitempty"`
	Building *string `json:"building,omitempty"`
}
