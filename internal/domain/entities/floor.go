package entities

// Floor represents one floor of a building
type Floor struct {
	ID           string  `json:"id"`
	Number       int     `json:"number"`
	Building     string  `json:"building"`
	FloorManager *string `json:"floor_manager"`
}

// FloorInput is the write shape of a Floor
type FloorInput struct {
	Number       *int    `json:"number,omitempty"`
	Building     *string `json:"building,omitempty"`
	FloorManager *string `json:"floor_manager,omitempty"`
}
