package usecase

import (
	"context"

	"petnfc/internal/domain/entity"
)

// PetUsecase defines read access to the pet directory
type PetUsecase interface {
	// GetPet returns the pet behind a tag, or domainerrors.ErrPetNotFound
	GetPet(ctx context.Context, id string) (*entity.Pet, error)

	// GetTagQR renders a PNG QR code linking to the pet's page
	GetTagQR(ctx context.Context, id string) ([]byte, error)
}
