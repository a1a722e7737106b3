package impl

import (
	"context"
	"log/slog"
	"net/url"

	"petnfc/config"
	"petnfc/internal/domain/entity"
	domainerrors "petnfc/internal/domain/errors"
	"petnfc/internal/domain/repository"
	"petnfc/internal/domain/service"
	"petnfc/internal/usecase"

	"github.com/pkg/errors"
)

// petService implements the PetUsecase interface.
type petService struct {
	petRepo     repository.PetRepository
	codes       service.TagCodeGenerator
	pageBaseURL string
	logger      *slog.Logger
}

// NewPetService is the constructor for petService.
func NewPetService(
	petRepo repository.PetRepository,
	codes service.TagCodeGenerator,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.PetUsecase {
	return &petService{
		petRepo:     petRepo,
		codes:       codes,
		pageBaseURL: cfg.Tag.PageBaseURL,
		logger:      logger,
	}
}

// GetPet retrieves a pet for the tag page.
func (srv *petService) GetPet(ctx context.Context, id string) (*entity.Pet, error) {
	srv.logger.Debug("Getting pet", slog.String("pet_id", id))

	pet, err := srv.petRepo.FindPetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrPetNotFound) {
			return nil, errors.Wrap(domainerrors.ErrPetNotFound, "pet not found")
		}

		return nil, errors.Wrap(err, "failed to find pet")
	}

	return pet, nil
}

// GetTagQR encodes the page link of an existing pet.
func (srv *petService) GetTagQR(ctx context.Context, id string) ([]byte, error) {
	pet, err := srv.GetPet(ctx, id)
	if err != nil {
		return nil, err
	}

	pageURL := srv.pageBaseURL + "/pet/" + url.PathEscape(pet.ID)

	png, err := srv.codes.GeneratePNG(pageURL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tag QR code")
	}

	return png, nil
}
