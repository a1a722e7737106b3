package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"petnfc/internal/delivery/api/response"
	"petnfc/internal/domain/constants"
	"petnfc/internal/domain/entity"
	domainerrors "petnfc/internal/domain/errors"
	"petnfc/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// PetHandlerParams holds dependencies for PetHandler, injected by Fx.
type PetHandlerParams struct {
	fx.In

	PetUC  usecase.PetUsecase
	Logger *slog.Logger
}

// PetHandler serves the pet directory to the tag page
type PetHandler struct {
	petUC  usecase.PetUsecase
	logger *slog.Logger
}

// NewPetHandler is the constructor for PetHandler
func NewPetHandler(params PetHandlerParams) *PetHandler {
	return &PetHandler{
		petUC:  params.PetUC,
		logger: params.Logger,
	}
}

// PetResponse is a pet record plus the contact links shown to the finder
type PetResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	OwnerPhone  string `json:"ownerPhone"`
	PhotoURL    string `json:"photoUrl,omitempty"`
	WhatsAppURL string `json:"whatsappUrl"`
	CallURL     string `json:"callUrl"`
}

// GetPet returns the pet behind a tag id
func (h *PetHandler) GetPet(c echo.Context) error {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		return response.BadRequest(c, domainerrors.ErrValidationFailed.ErrorCode(), "Pet id is required")
	}

	pet, err := h.petUC.GetPet(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toPetResponse(pet))
}

// GetTagQR returns a PNG QR code of the pet's page, for printing on the tag
func (h *PetHandler) GetTagQR(c echo.Context) error {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		return response.BadRequest(c, domainerrors.ErrValidationFailed.ErrorCode(), "Pet id is required")
	}

	png, err := h.petUC.GetTagQR(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	c.Response().Header().Set(constants.HeaderCacheControl, "public, max-age=86400")

	return c.Blob(http.StatusOK, "image/png", png)
}

func toPetResponse(pet *entity.Pet) PetResponse {
	return PetResponse{
		ID:          pet.ID,
		Name:        pet.Name,
		OwnerPhone:  pet.OwnerPhone,
		PhotoURL:    pet.PhotoURL,
		WhatsAppURL: pet.WhatsAppLink(),
		CallURL:     pet.CallLink(),
	}
}
