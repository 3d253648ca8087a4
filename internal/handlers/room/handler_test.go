package room_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"lodge/infras/otel/mocks"
	"lodge/internal/domains/room/model"
	"lodge/internal/domains/room/model/dto"
	serviceMocks "lodge/internal/domains/room/service/mocks"
	"lodge/internal/handlers/room"
	gDto "lodge/shared/dto"
	"lodge/shared/failure"
)

func newRouter(t *testing.T) (chi.Router, *serviceMocks.MockRoom) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockService := serviceMocks.NewMockRoom(ctrl)
	handler := room.New(mockService, mocks.NewOtel())

	router := chi.NewRouter()
	router.Route("/api", func(r chi.Router) {
		handler.Router(r)
	})

	return router, mockService
}

func decode(t *testing.T, recorder *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))

	return body
}

func TestHandler_CreateRoom(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		router, mockService := newRouter(t)

		mockService.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			Return(dto.RoomResponse{ID: "room-1", Number: "101", Status: "available"}, nil)

		payload := `{"number":"101","type":"single","price":100,"capacity":1}`
		request := httptest.NewRequest(http.MethodPost, "/api/rooms", strings.NewReader(payload))
		recorder := httptest.NewRecorder()

		router.ServeHTTP(recorder, request)

		body := decode(t, recorder)

		assert.Equal(t, http.StatusCreated, recorder.Code)
		assert.Equal(t, "Room created successfully", body["message"])
	})

	t.Run("duplicate number is a conflict", func(t *testing.T) {
		router, mockService := newRouter(t)

		mockService.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			Return(dto.RoomResponse{}, failure.Conflict("Room number already exists"))

		payload := `{"number":"101","type":"single","price":100,"capacity":1}`
		request := httptest.NewRequest(http.MethodPost, "/api/rooms", strings.NewReader(payload))
		recorder := httptest.NewRecorder()

		router.ServeHTTP(recorder, request)

		body := decode(t, recorder)

		assert.Equal(t, http.StatusConflict, recorder.Code)
		assert.Equal(t, "Room number already exists", body["error"])
	})

	t.Run("missing fields are a bad request", func(t *testing.T) {
		router, _ := newRouter(t)

		request := httptest.NewRequest(http.MethodPost, "/api/rooms", strings.NewReader(`{"number":"101"}`))
		recorder := httptest.NewRecorder()

		router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

func TestHandler_GetRoomsByStatus(t *testing.T) {
	t.Run("known status filters the listing", func(t *testing.T) {
		router, mockService := newRouter(t)

		mockService.EXPECT().
			GetAll(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, filter gDto.FilterGroup) ([]dto.RoomResponse, error) {
				assert.Len(t, filter.Filters, 1)

				f, ok := filter.Filters[0].(gDto.Filter)
				assert.True(t, ok)
				assert.Equal(t, model.FieldStatus, f.Field)
				assert.Equal(t, "maintenance", f.Value)

				return []dto.RoomResponse{{ID: "room-1", Status: "maintenance"}}, nil
			})

		request := httptest.NewRequest(http.MethodGet, "/api/rooms/status/maintenance", nil)
		recorder := httptest.NewRecorder()

		router.ServeHTTP(recorder, request)

		body := decode(t, recorder)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, float64(1), body["count"])
	})

	t.Run("unknown status is rejected before the service", func(t *testing.T) {
		router, _ := newRouter(t)

		request := httptest.NewRequest(http.MethodGet, "/api/rooms/status/penthouse", nil)
		recorder := httptest.NewRecorder()

		router.ServeHTTP(recorder, request)

		body := decode(t, recorder)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.Equal(t, "Invalid room status: penthouse", body["error"])
	})
}

func TestHandler_GetRoomByID(t *testing.T) {
	router, mockService := newRouter(t)

	mockService.EXPECT().
		Get(gomock.Any(), "missing").
		Return(dto.RoomResponse{}, failure.NotFound("Room not found"))

	request := httptest.NewRequest(http.MethodGet, "/api/rooms/missing", nil)
	recorder := httptest.NewRecorder()

	router.ServeHTTP(recorder, request)

	body := decode(t, recorder)

	assert.Equal(t, http.StatusNotFound, recorder.Code)
	assert.Equal(t, "Room not found", body["error"])
}

func TestHandler_DeleteRoom(t *testing.T) {
	router, mockService := newRouter(t)

	mockService.EXPECT().Delete(gomock.Any(), "room-1").Return(nil)

	request := httptest.NewRequest(http.MethodDelete, "/api/rooms/room-1", nil)
	recorder := httptest.NewRecorder()

	router.ServeHTTP(recorder, request)

	body := decode(t, recorder)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "Room deleted successfully", body["message"])
}
