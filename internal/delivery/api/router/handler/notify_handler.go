package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"petnfc/internal/delivery/api/response"
	"petnfc/internal/delivery/api/validator"
	deliverycontext "petnfc/internal/delivery/context"
	"petnfc/internal/domain/entity"
	domainerrors "petnfc/internal/domain/errors"
	"petnfc/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// NotifyHandlerParams holds dependencies for NotifyHandler, injected by Fx.
type NotifyHandlerParams struct {
	fx.In

	NotificationUC usecase.NotificationUsecase
	Logger         *slog.Logger
}

// NotifyHandler handles owner alerts sent by the tag page
type NotifyHandler struct {
	notificationUC usecase.NotificationUsecase
	logger         *slog.Logger
}

// NewNotifyHandler is the constructor for NotifyHandler
func NewNotifyHandler(params NotifyHandlerParams) *NotifyHandler {
	return &NotifyHandler{
		notificationUC: params.NotificationUC,
		logger:         params.Logger,
	}
}

// NotifyRequest is the body posted by the tag page when a finder taps "notify owner"
type NotifyRequest struct {
	PetID      string `json:"petId" validate:"required"`
	PetName    string `json:"petName" validate:"required"`
	OwnerPhone string `json:"ownerPhone" validate:"required"`
	Timestamp  string `json:"timestamp"`
	UserAgent  string `json:"userAgent"`
	URL        string `json:"url"`
}

// NotifyResponse is returned once the alert was handed to the webhook
type NotifyResponse struct {
	OK           bool   `json:"ok"`
	WebhookID    string `json:"webhookId"`
	Location     string `json:"location"`
	Timestamp    string `json:"timestamp"`
	IsSimulation bool   `json:"isSimulation"`
}

// Notify alerts the owner of a scanned pet tag
func (h *NotifyHandler) Notify(c echo.Context) error {
	if c.Request().Method != http.MethodPost {
		return response.HandleAppError(c, domainerrors.ErrMethodNotAllowed)
	}

	logger := deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger)

	var req NotifyRequest
	if err := c.Bind(&req); err != nil {
		logger.Info("Invalid owner alert body", slog.Any("error", err))

		return response.BadRequest(c, domainerrors.ErrValidationFailed.ErrorCode(), domainerrors.ErrValidationFailed.Message())
	}

	req.PetID = strings.TrimSpace(req.PetID)
	req.PetName = strings.TrimSpace(req.PetName)
	req.OwnerPhone = strings.TrimSpace(req.OwnerPhone)

	if err := c.Validate(&req); err != nil {
		missing := validator.MissingFields(err)
		logger.Info("Owner alert is missing fields", slog.Any("fields", missing))

		return response.BadRequestWithDetails(c,
			domainerrors.ErrValidationFailed.ErrorCode(),
			domainerrors.ErrValidationFailed.Message(),
			map[string]any{"missing": missing},
		)
	}

	alert := &entity.OwnerAlert{
		PetID:      req.PetID,
		PetName:    req.PetName,
		OwnerPhone: req.OwnerPhone,
		Timestamp:  req.Timestamp,
		UserAgent:  req.UserAgent,
		PageURL:    req.URL,
		ClientIP:   deliverycontext.GetClientIP(c.Request()),
		RequestID:  deliverycontext.GetRequestID(c),
	}

	receipt, err := h.notificationUC.NotifyOwner(c.Request().Context(), alert)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.JSON(http.StatusOK, NotifyResponse{
		OK:           true,
		WebhookID:    receipt.WebhookID,
		Location:     receipt.Location,
		Timestamp:    receipt.Timestamp,
		IsSimulation: receipt.IsSimulation,
	})
}
