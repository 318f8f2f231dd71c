package entities

// BuildingType classifies a building. The set is closed.
type BuildingType string

const (
	BuildingTypeAdministrator BuildingType = "administrator"
	BuildingTypeClinical      BuildingType = "clinical"
	BuildingTypeResearch      BuildingType = "research"
	BuildingTypeLab           BuildingType = "lab"
	BuildingTypeOther         BuildingType = "other"
)

// Valid reports whether t is one of the known building types
func (t BuildingType) Valid() bool {
	switch t {
	case BuildingTypeAdministrator, BuildingTypeClinical, BuildingTypeResearch, BuildingTypeLab, BuildingTypeOther:
		return true
	}
	return false
}

// Building represents a building belonging to a hospital
type Building struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Hospital     string       `json:"hospital"`
	Supervisor   *string      `json:"supervisor"`
	BuildingType BuildingType `json:"building_type"`
	Floors       int          `json:"floors"`
	Address      string       `json:"address"`
	Description  string       `json:"description"`
}

// BuildingInput is the write shape of a Building
type BuildingInput struct {
	Name         *string       `json:"name,omitempty"`
	Hospital     *string       `json:"hospital,omitempty"`
	Supervisor   *string       `json:"supervisor,omitempty"`
	BuildingType *BuildingType `json:"building_type,omitempty"`
	Floors       *int          `json:"floors,omitempty"`
	Address      *string       `json:"address,omitempty"`
	Description  *string       `json:"description,omitempty"`
}
