package service_test

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"lodge/config"
	"lodge/infras/otel/mocks"
	bookingMocks "lodge/internal/domains/booking/mocks"
	"lodge/internal/domains/booking/model"
	"lodge/internal/domains/booking/model/dto"
	"lodge/internal/domains/booking/service"
	serviceMocks "lodge/internal/domains/booking/service/mocks"
	guestMocks "lodge/internal/domains/guest/mocks"
	roomMocks "lodge/internal/domains/room/mocks"
	roomModel "lodge/internal/domains/room/model"
	cacheMocks "lodge/shared/cache/mocks"
	"lodge/shared/failure"
)

var errCacheMiss = errors.New("cache miss")

type bookingFixture struct {
	svc          service.Booking
	repo         *bookingMocks.MockBooking
	rooms        *roomMocks.MockRoom
	guests       *guestMocks.MockGuest
	availability *serviceMocks.MockAvailability
	cache        *cacheMocks.MockRedisCache
}

func newBookingFixture(t *testing.T) bookingFixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	f := bookingFixture{
		repo:         bookingMocks.NewMockBooking(ctrl),
		rooms:        roomMocks.NewMockRoom(ctrl),
		guests:       guestMocks.NewMockGuest(ctrl),
		availability: serviceMocks.NewMockAvailability(ctrl),
		cache:        cacheMocks.NewMockRedisCache(ctrl),
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	f.svc = service.New(f.repo, f.rooms, f.guests, f.availability, cfg, f.cache, mocks.NewOtel())

	f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errCacheMiss).AnyTimes()
	f.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	return f
}

func availableRoom() roomModel.Room {
	return roomModel.Room{
		ID:     "room-1",
		Number: "101",
		Type:   roomModel.RoomTypeSingle,
		Price:  100,
		Status: roomModel.RoomStatusAvailable,
	}
}

func createRequest() dto.CreateBookingRequest {
	return dto.CreateBookingRequest{
		GuestID:  "guest-1",
		RoomID:   "room-1",
		CheckIn:  "2024-01-15",
		CheckOut: "2024-01-20",
	}
}

func TestBookingService_Create(t *testing.T) {
	t.Run("computes the total and claims the room after the insert", func(t *testing.T) {
		f := newBookingFixture(t)

		f.rooms.EXPECT().Get(gomock.Any(), gomock.Any()).Return(availableRoom(), nil)
		f.guests.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		f.availability.EXPECT().CanBook(availableRoom()).Return(true)

		var inserted model.Booking

		f.repo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, booking model.Booking) error {
				inserted = booking
				assert.Equal(t, float64(500), booking.TotalAmount)
				assert.Equal(t, model.BookingStatusConfirmed, booking.Status)
				assert.Equal(t, model.PaymentStatusPending, booking.PaymentStatus)
				assert.Equal(t, 1, booking.NumberOfGuests)
				return nil
			})
		f.availability.EXPECT().Occupy(gomock.Any(), "room-1").Return(nil)
		f.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, _ ...string) (model.Booking, error) {
				enriched := inserted
				enriched.GuestName = sql.NullString{String: "John Doe", Valid: true}
				enriched.RoomNumber = sql.NullString{String: "101", Valid: true}
				enriched.RoomPrice = sql.NullFloat64{Float64: 100, Valid: true}
				return enriched, nil
			})

		res, err := f.svc.Create(context.Background(), createRequest())

		assert.NoError(t, err)
		assert.Equal(t, float64(500), res.TotalAmount)
		assert.Equal(t, "confirmed", res.Status)
		assert.NotNil(t, res.Guest)
		assert.Equal(t, "John Doe", res.Guest.Name)
		assert.NotNil(t, res.Room)
		assert.Equal(t, "101", res.Room.Number)
	})

	t.Run("occupied room is rejected without touching the store", func(t *testing.T) {
		f := newBookingFixture(t)

		room := availableRoom()
		room.Status = roomModel.RoomStatusOccupied

		f.rooms.EXPECT().Get(gomock.Any(), gomock.Any()).Return(room, nil)
		f.guests.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		f.availability.EXPECT().CanBook(room).Return(false)

		_, err := f.svc.Create(context.Background(), createRequest())

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
		assert.Equal(t, "Room is occupied", err.Error())
	})

	t.Run("maintenance room reports its own status", func(t *testing.T) {
		f := newBookingFixture(t)

		room := availableRoom()
		room.Status = roomModel.RoomStatusMaintenance

		f.rooms.EXPECT().Get(gomock.Any(), gomock.Any()).Return(room, nil)
		f.guests.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		f.availability.EXPECT().CanBook(room).Return(false)

		_, err := f.svc.Create(context.Background(), createRequest())

		assert.Error(t, err)
		assert.Equal(t, "Room is maintenance", err.Error())
	})

	t.Run("missing room fails before any mutation", func(t *testing.T) {
		f := newBookingFixture(t)

		f.rooms.EXPECT().Get(gomock.Any(), gomock.Any()).Return(roomModel.Room{}, nil)

		_, err := f.svc.Create(context.Background(), createRequest())

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
		assert.Equal(t, "Room not found", err.Error())
	})

	t.Run("missing guest fails before any mutation", func(t *testing.T) {
		f := newBookingFixture(t)

		f.rooms.EXPECT().Get(gomock.Any(), gomock.Any()).Return(availableRoom(), nil)
		f.guests.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

		_, err := f.svc.Create(context.Background(), createRequest())

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
		assert.Equal(t, "Guest not found", err.Error())
	})

	t.Run("losing the occupancy race rolls the booking back", func(t *testing.T) {
		f := newBookingFixture(t)

		f.rooms.EXPECT().Get(gomock.Any(), gomock.Any()).Return(availableRoom(), nil)
		f.guests.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		f.availability.EXPECT().CanBook(availableRoom()).Return(true)
		f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
		f.availability.EXPECT().
			Occupy(gomock.Any(), "room-1").
			Return(failure.BadRequestFromString("Room is occupied"))
		f.repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)

		_, err := f.svc.Create(context.Background(), createRequest())

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
		assert.Equal(t, "Room is occupied", err.Error())
	})

	t.Run("check-out before check-in is invalid input", func(t *testing.T) {
		f := newBookingFixture(t)

		f.rooms.EXPECT().Get(gomock.Any(), gomock.Any()).Return(availableRoom(), nil)
		f.guests.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		f.availability.EXPECT().CanBook(availableRoom()).Return(true)

		req := createRequest()
		req.CheckIn = "2024-01-20"
		req.CheckOut = "2024-01-15"

		_, err := f.svc.Create(context.Background(), req)

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
		assert.Equal(t, "checkOut must be after checkIn", err.Error())
	})

	t.Run("malformed date is invalid input", func(t *testing.T) {
		f := newBookingFixture(t)

		f.rooms.EXPECT().Get(gomock.Any(), gomock.Any()).Return(availableRoom(), nil)
		f.guests.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		f.availability.EXPECT().CanBook(availableRoom()).Return(true)

		req := createRequest()
		req.CheckIn = "15/01/2024"

		_, err := f.svc.Create(context.Background(), req)

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("missing room wins over a bad date range", func(t *testing.T) {
		f := newBookingFixture(t)

		f.rooms.EXPECT().Get(gomock.Any(), gomock.Any()).Return(roomModel.Room{}, nil)

		req := createRequest()
		req.CheckIn = "2024-01-20"
		req.CheckOut = "2024-01-15"

		_, err := f.svc.Create(context.Background(), req)

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
		assert.Equal(t, "Room not found", err.Error())
	})

	t.Run("unavailable room wins over a bad date range", func(t *testing.T) {
		f := newBookingFixture(t)

		room := availableRoom()
		room.Status = roomModel.RoomStatusOccupied

		f.rooms.EXPECT().Get(gomock.Any(), gomock.Any()).Return(room, nil)
		f.guests.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		f.availability.EXPECT().CanBook(room).Return(false)

		req := createRequest()
		req.CheckIn = "2024-01-20"
		req.CheckOut = "2024-01-15"

		_, err := f.svc.Create(context.Background(), req)

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
		assert.Equal(t, "Room is occupied", err.Error())
	})
}

func TestBookingService_Delete(t *testing.T) {
	t.Run("releases the room before removing the booking", func(t *testing.T) {
		f := newBookingFixture(t)

		booking := model.Booking{ID: "booking-1", RoomID: "room-1"}

		gomock.InOrder(
			f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(booking, nil),
			f.availability.EXPECT().Release(gomock.Any(), "room-1").Return(nil),
			f.repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil),
		)

		assert.NoError(t, f.svc.Delete(context.Background(), "booking-1"))
	})

	t.Run("missing booking", func(t *testing.T) {
		f := newBookingFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Booking{}, nil)

		err := f.svc.Delete(context.Background(), "missing")

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
		assert.Equal(t, "Booking not found", err.Error())
	})

	t.Run("release failure keeps the booking", func(t *testing.T) {
		f := newBookingFixture(t)

		booking := model.Booking{ID: "booking-1", RoomID: "room-1"}

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(booking, nil)
		f.availability.EXPECT().
			Release(gomock.Any(), "room-1").
			Return(failure.NotFound("Room not found"))

		err := f.svc.Delete(context.Background(), "booking-1")

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestBookingService_Update(t *testing.T) {
	t.Run("patch skips availability and total recompute", func(t *testing.T) {
		f := newBookingFixture(t)

		current := model.Booking{
			ID:          "booking-1",
			RoomID:      "room-1",
			TotalAmount: 500,
			Status:      model.BookingStatusConfirmed,
		}

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(current, nil)
		f.repo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ any) error {
				assert.Equal(t, "checked-in", fields[model.FieldStatus])
				assert.NotContains(t, fields, model.FieldTotalAmount)
				return nil
			})

		updated := current
		updated.Status = model.BookingStatusCheckedIn
		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(updated, nil)

		res, err := f.svc.Update(context.Background(), dto.UpdateBookingRequest{Status: "checked-in"}, "booking-1")

		assert.NoError(t, err)
		assert.Equal(t, "checked-in", res.Status)
		assert.Equal(t, float64(500), res.TotalAmount)
	})

	t.Run("date patch is parsed", func(t *testing.T) {
		f := newBookingFixture(t)

		current := model.Booking{ID: "booking-1"}

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(current, nil)
		f.repo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ any) error {
				checkOut, ok := fields[model.FieldCheckOut].(time.Time)
				assert.True(t, ok)
				assert.Equal(t, 2024, checkOut.Year())
				return nil
			})
		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(current, nil)

		_, err := f.svc.Update(context.Background(), dto.UpdateBookingRequest{CheckOut: "2024-01-25"}, "booking-1")

		assert.NoError(t, err)
	})

	t.Run("missing booking", func(t *testing.T) {
		f := newBookingFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Booking{}, nil)

		_, err := f.svc.Update(context.Background(), dto.UpdateBookingRequest{Status: "cancelled"}, "missing")

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}
