// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"petnfc/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrPetNotFound is returned when no pet matches the requested identifier.
var ErrPetNotFound = errors.New("pet not found")

// PetRepository defines read access to the pet directory.
type PetRepository interface {
	// FindPetByID retrieves a single pet by the identifier stored in its tag.
	FindPetByID(ctx context.Context, id string) (*entity.Pet, error)
}
