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
	roomMocks "lodge/internal/domains/room/mocks"
	"lodge/internal/domains/room/model"
	"lodge/internal/domains/room/model/dto"
	"lodge/internal/domains/room/service"
	cacheMocks "lodge/shared/cache/mocks"
	gDto "lodge/shared/dto"
	"lodge/shared/failure"
)

var errCacheMiss = errors.New("cache miss")

func ptrFloat(v float64) *float64 { return &v }
func ptrInt(v int) *int           { return &v }

func newRoomService(t *testing.T) (service.Room, *roomMocks.MockRoom, *cacheMocks.MockRedisCache) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRepo := roomMocks.NewMockRoom(ctrl)
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

func TestRoomService_Create(t *testing.T) {
	tests := []struct {
		name      string
		req       dto.CreateRoomRequest
		setupMock func(repo *roomMocks.MockRoom)
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful creation defaults status to available",
			req: dto.CreateRoomRequest{
				Number:   "101",
				Type:     "single",
				Price:    ptrFloat(100),
				Capacity: ptrInt(1),
			},
			setupMock: func(repo *roomMocks.MockRoom) {
				repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, room model.Room) error {
						assert.Equal(t, model.RoomStatusAvailable, room.Status)
						assert.NotEmpty(t, room.ID)
						return nil
					})
			},
		},
		{
			name: "duplicate room number maps to conflict",
			req: dto.CreateRoomRequest{
				Number:   "101",
				Type:     "single",
				Price:    ptrFloat(100),
				Capacity: ptrInt(1),
			},
			setupMock: func(repo *roomMocks.MockRoom) {
				repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(&pq.Error{Code: "23505"})
			},
			wantErr:  true,
			wantCode: http.StatusConflict,
		},
		{
			name: "repository error",
			req: dto.CreateRoomRequest{
				Number:   "101",
				Type:     "single",
				Price:    ptrFloat(100),
				Capacity: ptrInt(1),
			},
			setupMock: func(repo *roomMocks.MockRoom) {
				repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(errors.New("insert failed"))
			},
			wantErr:  true,
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockRepo, mockCache := newRoomService(t)
			allowCacheWrites(mockCache)
			tt.setupMock(mockRepo)

			res, err := svc.Create(context.Background(), tt.req)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, "101", res.Number)
			assert.Equal(t, "available", res.Status)
		})
	}
}

func TestRoomService_Get(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		svc, mockRepo, mockCache := newRoomService(t)
		allowCacheWrites(mockCache)

		mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errCacheMiss)
		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Room{ID: "room-1", Number: "101", Status: model.RoomStatusAvailable}, nil)

		res, err := svc.Get(context.Background(), "room-1")

		assert.NoError(t, err)
		assert.Equal(t, "room-1", res.ID)
		assert.Equal(t, "101", res.Number)
	})

	t.Run("not found", func(t *testing.T) {
		svc, mockRepo, mockCache := newRoomService(t)
		allowCacheWrites(mockCache)

		mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errCacheMiss)
		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Room{}, nil)

		_, err := svc.Get(context.Background(), "missing")

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
		assert.Equal(t, "Room not found", err.Error())
	})
}

func TestRoomService_GetAll(t *testing.T) {
	t.Run("returns every room matching the filter", func(t *testing.T) {
		svc, mockRepo, mockCache := newRoomService(t)
		allowCacheWrites(mockCache)

		filter := gDto.FilterGroup{
			Operator: gDto.FilterGroupOperatorAnd,
			Filters: []any{
				gDto.Filter{
					Field:    model.FieldStatus,
					Value:    "maintenance",
					Operator: gDto.FilterOperatorEq,
					Table:    model.TableName,
				},
			},
		}

		mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errCacheMiss)
		mockRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), filter).
			Return([]model.Room{
				{ID: "room-1", Number: "401", Status: model.RoomStatusMaintenance},
				{ID: "room-2", Number: "402", Status: model.RoomStatusMaintenance},
			}, nil)

		res, err := svc.GetAll(context.Background(), filter)

		assert.NoError(t, err)
		assert.Len(t, res, 2)
		assert.Equal(t, "maintenance", res[0].Status)
	})

	t.Run("cache hit skips repository", func(t *testing.T) {
		svc, _, mockCache := newRoomService(t)

		mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		res, err := svc.GetAll(context.Background(), gDto.FilterGroup{})

		assert.NoError(t, err)
		assert.Empty(t, res)
	})
}

func TestRoomService_Update(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		svc, mockRepo, mockCache := newRoomService(t)
		allowCacheWrites(mockCache)

		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Room{}, nil)

		_, err := svc.Update(context.Background(), dto.UpdateRoomRequest{Number: "102"}, "missing")

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("amenities patch uses array binding", func(t *testing.T) {
		svc, mockRepo, mockCache := newRoomService(t)
		allowCacheWrites(mockCache)

		current := model.Room{ID: "room-1", Number: "101", Status: model.RoomStatusAvailable}

		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(current, nil)
		mockRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
				assert.Equal(t, pq.StringArray{"wifi", "tv"}, fields[model.FieldAmenities])
				return nil
			})
		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Room{ID: "room-1", Number: "101", Amenities: pq.StringArray{"wifi", "tv"}}, nil)

		res, err := svc.Update(context.Background(), dto.UpdateRoomRequest{Amenities: []string{"wifi", "tv"}}, "room-1")

		assert.NoError(t, err)
		assert.Equal(t, []string{"wifi", "tv"}, res.Amenities)
	})
}

func TestRoomService_Delete(t *testing.T) {
	t.Run("successful deletion", func(t *testing.T) {
		svc, mockRepo, mockCache := newRoomService(t)
		allowCacheWrites(mockCache)

		mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		mockRepo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)

		assert.NoError(t, svc.Delete(context.Background(), "room-1"))
	})

	t.Run("not found", func(t *testing.T) {
		svc, mockRepo, mockCache := newRoomService(t)
		allowCacheWrites(mockCache)

		mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

		err := svc.Delete(context.Background(), "missing")

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}
