package memory

import (
	"context"

	"pet-shelter-hub/internal/domain/pets"
	"pet-shelter-hub/internal/domain/shelters"
)

// Seed carga un par de refugios y mascotas para correr el hub sin backend.
func Seed(ctx context.Context, sr shelters.Repository, pr pets.Repository) error {
	seedShelters := []shelters.Shelter{
		{ID: "sh-1", Name: "Huellitas", City: "Quito", Phone: "+593 2 000 0001", Email: "hola@huellitas.org"},
		{ID: "sh-2", Name: "Patitas Felices", City: "Guayaquil", Email: "contacto@patitas.org"},
	}
	for _, s := range seedShelters {
		if _, err := sr.Create(ctx, s); err != nil {
			return err
		}
	}

	seedPets := []pets.Pet{
		{ID: "pet-1", ShelterID: "sh-1", Name: "Luna", Species: pets.SpeciesDog, Sex: pets.SexFemale, AgeMonths: 18, Status: pets.StatusAvailable},
		{ID: "pet-2", ShelterID: "sh-1", Name: "Michi", Species: pets.SpeciesCat, Sex: pets.SexMale, AgeMonths: 7, Status: pets.StatusAvailable},
		{ID: "pet-3", ShelterID: "sh-2", Name: "Rocky", Species: pets.SpeciesDog, Sex: pets.SexMale, AgeMonths: 40, Status: pets.StatusPending},
	}
	for _, p := range seedPets {
		if _, err := pr.Create(ctx, p); err != nil {
			return err
		}
	}
	return nil
}
