package shelters

// Shelter es un refugio publicado en el marketplace.
type Shelter struct {
	ID string

	Name        string
	City        string
	Address     string
	Phone       string
	Email       string
	Description string
	ImageURL    string
}

func (s Shelter) EntityID() string { return s.ID }
