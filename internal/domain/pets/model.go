package pets

// Species define las especies soportadas.
// @Enum dog, cat, other
type Species string

const (
	SpeciesDog   Species = "dog"
	SpeciesCat   Species = "cat"
	SpeciesOther Species = "other"
)

// Sex define el sexo de la mascota.
// @Enum male, female, unknown
type Sex string

const (
	SexMale    Sex = "male"
	SexFemale  Sex = "female"
	SexUnknown Sex = "unknown"
)

// Status es el estado de adopción.
type Status string

const (
	StatusAvailable Status = "available"
	StatusPending   Status = "pending"
	StatusAdopted   Status = "adopted"
)

// Pet es una mascota publicada por un refugio.
type Pet struct {
	ID        string
	ShelterID string

	Name      string
	Species   Species
	Breed     string
	Sex       Sex
	AgeMonths int

	Description string
	ImageURL    string
	Status      Status
}

func (p Pet) EntityID() string { return p.ID }

func parseSpecies(s string) (Species, bool) {
	switch Species(s) {
	case SpeciesDog, SpeciesCat, SpeciesOther:
		return Species(s), true
	}
	return "", false
}

func parseSex(s string) (Sex, bool) {
	switch Sex(s) {
	case "":
		return SexUnknown, true
	case SexMale, SexFemale, SexUnknown:
		return Sex(s), true
	}
	return "", false
}

func parseStatus(s string) (Status, bool) {
	switch Status(s) {
	case "":
		return StatusAvailable, true
	case StatusAvailable, StatusPending, StatusAdopted:
		return Status(s), true
	}
	return "", false
}
