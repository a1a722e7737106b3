// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"petnfc/internal/domain/entity"
	domainerrors "petnfc/internal/domain/errors"
	"petnfc/internal/domain/repository"
	"petnfc/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// petRepository implements the repository.PetRepository interface.
type petRepository struct {
	db *gorm.DB
}

// NewPetRepository is the constructor for petRepository.
func NewPetRepository(db *gorm.DB) repository.PetRepository {
	return &petRepository{
		db: db,
	}
}

// FindPetByID retrieves a pet by the identifier written on its tag.
func (repo *petRepository) FindPetByID(ctx context.Context, id string) (*entity.Pet, error) {
	var petM model.PetModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&petM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPetNotFound
		}
		if isInvalidTextRepresentation(err) {
			// the id column may be a uuid; a malformed id cannot match any row
			return nil, repository.ErrPetNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find pet by ID")
	}

	return toPetDomain(&petM), nil
}

func toPetDomain(data *model.PetModel) *entity.Pet {
	if data == nil {
		return nil
	}

	return &entity.Pet{
		ID:         data.ID,
		Name:       data.Name,
		OwnerPhone: data.OwnerPhoneE164,
		PhotoURL:   data.PhotoURL,
	}
}
