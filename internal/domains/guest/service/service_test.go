package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"lodge/config"
	"lodge/infras/otel/mocks"
	guestMocks "lodge/internal/domains/guest/mocks"
	"lodge/internal/domains/guest/model"
	"lodge/internal/domains/guest/model/dto"
	"lodge/internal/domains/guest/service"
	cacheMocks "lodge/shared/cache/mocks"
	gDto "lodge/shared/dto"
	"lodge/shared/failure"
)

var errCacheMiss = errors.New("cache miss")

func newGuestService(t *testing.T) (service.Guest, *guestMocks.MockGuest, *cacheMocks.MockRedisCache) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRepo := guestMocks.NewMockGuest(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, cfg, mockCache, mocks.NewOtel())

	return svc, mockRepo, mockCache
}

func allowCacheWrites(mockCache *cacheMocks.MockRedisCache) {
	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
}

func TestGuestService_Create(t *testing.T) {
	t.Run("email is stored lowercased", func(t *testing.T) {
		svc, mockRepo, mockCache := newGuestService(t)
		allowCacheWrites(mockCache)

		mockRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, guest model.Guest) error {
				assert.Equal(t, "john.doe@example.com", guest.Email)
				return nil
			})

		res, err := svc.Create(context.Background(), dto.CreateGuestRequest{
			Name:     "John Doe",
			Email:    "John.Doe@Example.COM",
			Phone:    "+1234567890",
			IDProof:  "passport",
			IDNumber: "AB123456",
		})

		assert.NoError(t, err)
		assert.Equal(t, "john.doe@example.com", res.Email)
	})

	t.Run("duplicate email maps to conflict", func(t *testing.T) {
		svc, mockRepo, mockCache := newGuestService(t)
		allowCacheWrites(mockCache)

		mockRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			Return(&pq.Error{Code: "23505"})

		_, err := svc.Create(context.Background(), dto.CreateGuestRequest{
			Name:     "John Doe",
			Email:    "john.doe@example.com",
			Phone:    "+1234567890",
			IDProof:  "passport",
			IDNumber: "AB123456",
		})

		assert.Error(t, err)
		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	})
}

func TestGuestService_Get(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		svc, mockRepo, mockCache := newGuestService(t)
		allowCacheWrites(mockCache)

		mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errCacheMiss)
		mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Guest{}, nil)

		_, err := svc.Get(context.Background(), "missing")

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
		assert.Equal(t, "Guest not found", err.Error())
	})

	t.Run("address block is nested on reads", func(t *testing.T) {
		svc, mockRepo, mockCache := newGuestService(t)
		allowCacheWrites(mockCache)

		mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errCacheMiss)
		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Guest{
				ID:             "guest-1",
				Name:           "John Doe",
				Email:          "john.doe@example.com",
				AddressCity:    "New York",
				AddressCountry: "USA",
			}, nil)

		res, err := svc.Get(context.Background(), "guest-1")

		assert.NoError(t, err)
		assert.NotNil(t, res.Address)
		assert.Equal(t, "New York", res.Address.City)
	})
}

func TestGuestService_Update(t *testing.T) {
	t.Run("email patch is lowercased and address replaced whole", func(t *testing.T) {
		svc, mockRepo, mockCache := newGuestService(t)
		allowCacheWrites(mockCache)

		current := model.Guest{ID: "guest-1", Email: "john.doe@example.com"}

		mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(current, nil)
		mockRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
				assert.Equal(t, "new.mail@example.com", fields[model.FieldEmail])
				assert.Equal(t, "Berlin", fields[model.FieldAddressCity])
				assert.Equal(t, "", fields[model.FieldAddressStreet])
				return nil
			})
		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Guest{ID: "guest-1", Email: "new.mail@example.com", AddressCity: "Berlin"}, nil)

		res, err := svc.Update(context.Background(), dto.UpdateGuestRequest{
			Email:   "New.Mail@Example.com",
			Address: &dto.Address{City: "Berlin"},
		}, "guest-1")

		assert.NoError(t, err)
		assert.Equal(t, "new.mail@example.com", res.Email)
	})

	t.Run("not found", func(t *testing.T) {
		svc, mockRepo, mockCache := newGuestService(t)
		allowCacheWrites(mockCache)

		mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Guest{}, nil)

		_, err := svc.Update(context.Background(), dto.UpdateGuestRequest{Name: "New"}, "missing")

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestGuestService_Delete(t *testing.T) {
	t.Run("successful deletion", func(t *testing.T) {
		svc, mockRepo, mockCache := newGuestService(t)
		allowCacheWrites(mockCache)

		mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		mockRepo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)

		assert.NoError(t, svc.Delete(context.Background(), "guest-1"))
	})

	t.Run("not found", func(t *testing.T) {
		svc, mockRepo, mockCache := newGuestService(t)
		allowCacheWrites(mockCache)

		mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

		err := svc.Delete(context.Background(), "missing")

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}
