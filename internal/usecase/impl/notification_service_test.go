package impl

import (
	"context"
	"net/http"
	"testing"
	"time"

	"petnfc/internal/domain/entity"
	domainerrors "petnfc/internal/domain/errors"
	"petnfc/internal/domain/service"
	mockService "petnfc/internal/mocks/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// notificationServiceFixtures holds all test dependencies for notification service tests.
type notificationServiceFixtures struct {
	service    *notificationService
	limiter    *mockService.MockRateLimiter
	locator    *mockService.MockGeoLocator
	dispatcher *mockService.MockAlertDispatcher
	publisher  *mockService.MockEventPublisher
}

var fixedNow = time.Date(2026, 10, 14, 9, 30, 15, 123_000_000, time.UTC)

func createTestNotificationService(t *testing.T) notificationServiceFixtures {
	limiter := mockService.NewMockRateLimiter(t)
	locator := mockService.NewMockGeoLocator(t)
	dispatcher := mockService.NewMockAlertDispatcher(t)
	publisher := mockService.NewMockEventPublisher(t)

	srv := NewNotificationService(limiter, locator, dispatcher, publisher, newDiscardLogger()).(*notificationService)
	srv.now = func() time.Time { return fixedNow }

	return notificationServiceFixtures{
		service:    srv,
		limiter:    limiter,
		locator:    locator,
		dispatcher: dispatcher,
		publisher:  publisher,
	}
}

func testAlert() *entity.OwnerAlert {
	return &entity.OwnerAlert{
		PetID:      "pet-1",
		PetName:    "Luna",
		OwnerPhone: "+34600111222",
		ClientIP:   "203.0.113.7",
		RequestID:  "req-1",
	}
}

func TestNotificationService_NotifyOwner_Simulated(t *testing.T) {
	fx := createTestNotificationService(t)
	ctx := context.Background()

	fx.limiter.EXPECT().
		Allow(ctx, "pet-1", "203.0.113.7").
		Return(&service.RateLimitResult{Allow: true}, nil)
	fx.locator.EXPECT().
		Resolve(ctx, "203.0.113.7").
		Return(entity.LocationInfo{City: "Madrid", Country: "Spain", Region: "Madrid"})
	fx.dispatcher.EXPECT().
		Send(ctx, &service.AlertMessage{
			PetName:    "Luna",
			OwnerPhone: "+34600111222",
			Location:   "Madrid, Spain",
			Timestamp:  "2026-10-14T09:30:15.123Z",
			RequestID:  "req-1",
		}).
		Return(&entity.WebhookResult{Success: true, WebhookID: "simulated_1760434215123"}, nil)
	fx.dispatcher.EXPECT().IsSimulation().Return(true)
	fx.publisher.EXPECT().
		PublishAlertEvent(ctx, &service.AlertEvent{
			RequestID:    "req-1",
			PetID:        "pet-1",
			PetName:      "Luna",
			Location:     "Madrid, Spain",
			Timestamp:    "2026-10-14T09:30:15.123Z",
			WebhookID:    "simulated_1760434215123",
			IsSimulation: true,
		}).
		Return(nil)

	receipt, err := fx.service.NotifyOwner(ctx, testAlert())

	require.NoError(t, err)
	assert.Equal(t, &entity.AlertReceipt{
		WebhookID:    "simulated_1760434215123",
		Location:     "Madrid, Spain",
		Timestamp:    "2026-10-14T09:30:15.123Z",
		IsSimulation: true,
	}, receipt)
}

func TestNotificationService_NotifyOwner_UnknownLocation(t *testing.T) {
	fx := createTestNotificationService(t)
	ctx := context.Background()

	fx.limiter.EXPECT().Allow(ctx, "pet-1", "203.0.113.7").Return(&service.RateLimitResult{Allow: true}, nil)
	fx.locator.EXPECT().Resolve(ctx, "203.0.113.7").Return(entity.UnknownLocation())
	fx.dispatcher.EXPECT().
		Send(ctx, mock.MatchedBy(func(msg *service.AlertMessage) bool {
			return msg.Location == entity.LocationUnavailable
		})).
		Return(&entity.WebhookResult{Success: true, WebhookID: "success"}, nil)
	fx.dispatcher.EXPECT().IsSimulation().Return(false)
	fx.publisher.EXPECT().PublishAlertEvent(ctx, mock.AnythingOfType("*service.AlertEvent")).Return(nil)

	receipt, err := fx.service.NotifyOwner(ctx, testAlert())

	require.NoError(t, err)
	assert.Equal(t, entity.LocationUnavailable, receipt.Location)
	assert.False(t, receipt.IsSimulation)
	assert.Equal(t, "success", receipt.WebhookID)
}

func TestNotificationService_NotifyOwner_RateLimited(t *testing.T) {
	fx := createTestNotificationService(t)
	ctx := context.Background()

	fx.limiter.EXPECT().
		Allow(ctx, "pet-1", "203.0.113.7").
		Return(&service.RateLimitResult{Allow: false, RetryAfter: 3 * time.Minute}, nil)

	receipt, err := fx.service.NotifyOwner(ctx, testAlert())

	assert.Nil(t, receipt)
	require.ErrorIs(t, err, domainerrors.ErrRateLimited)

	var rateErr *domainerrors.RateLimitError
	require.ErrorAs(t, err, &rateErr)
	assert.Equal(t, 3*time.Minute, rateErr.RetryAfter())
	assert.Equal(t, http.StatusTooManyRequests, rateErr.HTTPCode())
}

func TestNotificationService_NotifyOwner_LimiterFailureAllows(t *testing.T) {
	fx := createTestNotificationService(t)
	ctx := context.Background()

	fx.limiter.EXPECT().
		Allow(ctx, "pet-1", "203.0.113.7").
		Return(nil, errors.New("redis SETNX: connection refused"))
	fx.locator.EXPECT().Resolve(ctx, "203.0.113.7").Return(entity.UnknownLocation())
	fx.dispatcher.EXPECT().
		Send(ctx, mock.AnythingOfType("*service.AlertMessage")).
		Return(&entity.WebhookResult{Success: true, WebhookID: "wh_1"}, nil)
	fx.dispatcher.EXPECT().IsSimulation().Return(false)
	fx.publisher.EXPECT().PublishAlertEvent(ctx, mock.AnythingOfType("*service.AlertEvent")).Return(nil)

	receipt, err := fx.service.NotifyOwner(ctx, testAlert())

	require.NoError(t, err)
	assert.Equal(t, "wh_1", receipt.WebhookID)
}

func TestNotificationService_NotifyOwner_DispatchFailure(t *testing.T) {
	fx := createTestNotificationService(t)
	ctx := context.Background()

	upstream := domainerrors.ErrWebhookUpstream.Withf("Notification webhook failed: %s", "502 Bad Gateway")

	fx.limiter.EXPECT().Allow(ctx, "pet-1", "203.0.113.7").Return(&service.RateLimitResult{Allow: true}, nil)
	fx.locator.EXPECT().Resolve(ctx, "203.0.113.7").Return(entity.UnknownLocation())
	fx.dispatcher.EXPECT().
		Send(ctx, mock.AnythingOfType("*service.AlertMessage")).
		Return(nil, upstream)

	receipt, err := fx.service.NotifyOwner(ctx, testAlert())

	assert.Nil(t, receipt)
	require.ErrorIs(t, err, domainerrors.ErrWebhookUpstream)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "Notification webhook failed: 502 Bad Gateway", appErr.Message())
}

func TestNotificationService_NotifyOwner_PlainDispatchErrorSurfacesMessage(t *testing.T) {
	fx := createTestNotificationService(t)
	ctx := context.Background()

	fx.limiter.EXPECT().Allow(ctx, "pet-1", "203.0.113.7").Return(&service.RateLimitResult{Allow: true}, nil)
	fx.locator.EXPECT().Resolve(ctx, "203.0.113.7").Return(entity.UnknownLocation())
	fx.dispatcher.EXPECT().
		Send(ctx, mock.AnythingOfType("*service.AlertMessage")).
		Return(nil, errors.New("json: unsupported value"))

	receipt, err := fx.service.NotifyOwner(ctx, testAlert())

	assert.Nil(t, receipt)
	require.ErrorIs(t, err, domainerrors.ErrWebhookUpstream)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusInternalServerError, appErr.HTTPCode())
	assert.Equal(t, "json: unsupported value", appErr.Message())
}

func TestNotificationService_NotifyOwner_PublishFailureKeepsReceipt(t *testing.T) {
	fx := createTestNotificationService(t)
	ctx := context.Background()

	fx.limiter.EXPECT().Allow(ctx, "pet-1", "203.0.113.7").Return(&service.RateLimitResult{Allow: true}, nil)
	fx.locator.EXPECT().Resolve(ctx, "203.0.113.7").Return(entity.UnknownLocation())
	fx.dispatcher.EXPECT().
		Send(ctx, mock.AnythingOfType("*service.AlertMessage")).
		Return(&entity.WebhookResult{Success: true, WebhookID: "wh_2"}, nil)
	fx.dispatcher.EXPECT().IsSimulation().Return(false)
	fx.publisher.EXPECT().
		PublishAlertEvent(ctx, mock.AnythingOfType("*service.AlertEvent")).
		Return(errors.New("topic not found"))

	receipt, err := fx.service.NotifyOwner(ctx, testAlert())

	require.NoError(t, err)
	assert.Equal(t, "wh_2", receipt.WebhookID)
}
