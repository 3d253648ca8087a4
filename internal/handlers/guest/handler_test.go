package guest_test

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
	"lodge/internal/domains/guest/model/dto"
	serviceMocks "lodge/internal/domains/guest/service/mocks"
	"lodge/internal/handlers/guest"
	gDto "lodge/shared/dto"
	"lodge/shared/failure"
)

func newRouter(t *testing.T) (chi.Router, *serviceMocks.MockGuest) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockService := serviceMocks.NewMockGuest(ctrl)
	handler := guest.New(mockService, mocks.NewOtel())

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

func TestHandler_CreateGuest(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		router, mockService := newRouter(t)

		mockService.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			Return(dto.GuestResponse{ID: "guest-1", Name: "John Doe", Email: "john@example.com"}, nil)

		payload := `{"name":"John Doe","email":"John@Example.com","phone":"+1234567890","idProof":"passport","idNumber":"P12345678"}`
		request := httptest.NewRequest(http.MethodPost, "/api/guests", strings.NewReader(payload))
		recorder := httptest.NewRecorder()

		router.ServeHTTP(recorder, request)

		body := decode(t, recorder)

		assert.Equal(t, http.StatusCreated, recorder.Code)
		assert.Equal(t, true, body["success"])
		assert.Equal(t, "Guest created successfully", body["message"])
	})

	t.Run("duplicate email is a conflict", func(t *testing.T) {
		router, mockService := newRouter(t)

		mockService.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			Return(dto.GuestResponse{}, failure.Conflict("Guest email already exists"))

		payload := `{"name":"John Doe","email":"john@example.com","phone":"+1234567890","idProof":"passport","idNumber":"P12345678"}`
		request := httptest.NewRequest(http.MethodPost, "/api/guests", strings.NewReader(payload))
		recorder := httptest.NewRecorder()

		router.ServeHTTP(recorder, request)

		body := decode(t, recorder)

		assert.Equal(t, http.StatusConflict, recorder.Code)
		assert.Equal(t, false, body["success"])
		assert.Equal(t, "Guest email already exists", body["error"])
	})

	t.Run("invalid email is a bad request", func(t *testing.T) {
		router, _ := newRouter(t)

		payload := `{"name":"John Doe","email":"not-an-email","phone":"+1234567890","idProof":"passport","idNumber":"P12345678"}`
		request := httptest.NewRequest(http.MethodPost, "/api/guests", strings.NewReader(payload))
		recorder := httptest.NewRecorder()

		router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

func TestHandler_GetGuests(t *testing.T) {
	router, mockService := newRouter(t)

	mockService.EXPECT().
		GetAll(gomock.Any(), gDto.FilterGroup{}).
		Return([]dto.GuestResponse{{ID: "guest-1"}, {ID: "guest-2"}}, nil)

	request := httptest.NewRequest(http.MethodGet, "/api/guests", nil)
	recorder := httptest.NewRecorder()

	router.ServeHTTP(recorder, request)

	body := decode(t, recorder)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, float64(2), body["count"])
	assert.Len(t, body["data"], 2)
}

func TestHandler_GetGuestByID(t *testing.T) {
	router, mockService := newRouter(t)

	mockService.EXPECT().
		Get(gomock.Any(), "missing").
		Return(dto.GuestResponse{}, failure.NotFound("Guest not found"))

	request := httptest.NewRequest(http.MethodGet, "/api/guests/missing", nil)
	recorder := httptest.NewRecorder()

	router.ServeHTTP(recorder, request)

	body := decode(t, recorder)

	assert.Equal(t, http.StatusNotFound, recorder.Code)
	assert.Equal(t, "Guest not found", body["error"])
}

func TestHandler_DeleteGuest(t *testing.T) {
	router, mockService := newRouter(t)

	mockService.EXPECT().Delete(gomock.Any(), "guest-1").Return(nil)

	request := httptest.NewRequest(http.MethodDelete, "/api/guests/guest-1", nil)
	recorder := httptest.NewRecorder()

	router.ServeHTTP(recorder, request)

	body := decode(t, recorder)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "Guest deleted successfully", body["message"])
}
