package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"lodge/config"
	"lodge/infras/otel"
	"lodge/internal/domains/booking/model"
	"lodge/internal/domains/booking/model/dto"
	"lodge/internal/domains/booking/repository"
	guestModel "lodge/internal/domains/guest/model"
	guestRepo "lodge/internal/domains/guest/repository"
	roomModel "lodge/internal/domains/room/model"
	roomRepo "lodge/internal/domains/room/repository"
	"lodge/shared"
	"lodge/shared/cache"
	"lodge/shared/constant"
	gDto "lodge/shared/dto"
	"lodge/shared/failure"
	"lodge/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetBooking    = "booking:get"
	cacheGetAllBooking = "booking:gets"

	// Bookings flip room status, so room caches go stale with them.
	cacheRoomPrefix = "room:get"
)

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	GetAll(ctx context.Context, filter gDto.FilterGroup) ([]dto.BookingResponse, error)
	Get(ctx context.Context, id string) (dto.BookingResponse, error)
	Update(ctx context.Context, req dto.UpdateBookingRequest, id string) (dto.BookingResponse, error)
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo         repository.Booking
	rooms        roomRepo.Room
	guests       guestRepo.Guest
	availability Availability
	cfg          *config.Config
	cache        cache.RedisCache
	otel         otel.Otel
}

func New(
	repo repository.Booking,
	rooms roomRepo.Room,
	guests guestRepo.Guest,
	availability Availability,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Booking {
	return &serviceImpl{
		repo:         repo,
		rooms:        rooms,
		guests:       guests,
		availability: availability,
		cfg:          cfg,
		cache:        cache,
		otel:         otel,
	}
}

// Create orchestrates the booking sequence: referenced room and guest must
// exist, the room must be bookable, the dates must form a valid range, the
// total derives from the room's price, and the room is claimed only after the
// booking row lands. Each check is a precondition for the next, so a missing
// room wins over a bad date range. Losing the occupancy race after the insert
// rolls the booking back.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	room, err := s.rooms.Get(ctx, shared.FilterByID(req.RoomID, roomModel.FieldID, roomModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to look up room")

		return res, fmt.Errorf("failed to look up room: %w", err)
	}

	if room.ID == constant.Empty {
		return res, failure.NotFound("Room not found") // nolint:wrapcheck
	}

	guestExist, err := s.guests.Exist(ctx, shared.FilterByID(req.GuestID, guestModel.FieldID, guestModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to look up guest")

		return res, fmt.Errorf("failed to look up guest: %w", err)
	}

	if !guestExist {
		return res, failure.NotFound("Guest not found") // nolint:wrapcheck
	}

	if !s.availability.CanBook(room) {
		return res, failure.BadRequestFromString(fmt.Sprintf("Room is %s", room.Status)) // nolint:wrapcheck
	}

	checkIn, checkOut, err := req.ParseDates()
	if err != nil {
		return res, err
	}

	totalAmount := ComputeTotal(room.Price, checkIn, checkOut)
	booking := req.ToModel(checkIn, checkOut, totalAmount)

	if err = s.repo.Insert(ctx, booking); err != nil {
		return res, err
	}

	if err = s.availability.Occupy(ctx, req.RoomID); err != nil {
		log.Error().Err(err).Str("roomId", req.RoomID).Msg("failed to claim room, rolling booking back")

		if delErr := s.repo.Delete(ctx, shared.FilterByID(booking.ID, model.FieldID, model.TableName)); delErr != nil {
			log.Error().Err(delErr).Str("bookingId", booking.ID).Msg("failed to roll back booking")
		}

		return res, err
	}

	s.invalidate(ctx, booking.ID)

	return s.Get(ctx, booking.ID)
}

func (s *serviceImpl) GetAll(ctx context.Context, filter gDto.FilterGroup) (res []dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	params := gDto.QueryParams{
		SortBy:  model.TableName + "." + constant.FieldCreatedAt,
		SortDir: gDto.SortDirDesc,
	}

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllBooking, params, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for bookings")

		return res, nil
	}

	models, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res = dto.FromModels(models)

	if err := s.cache.Save(ctx, cacheKey, res, s.cfg.Cache.TTL); err != nil {
		log.Error().Err(err).Msg("failed to save bookings to cache")
	}

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetBooking, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking")

		return res, nil
	}

	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return res, failure.NotFound("Booking not found") // nolint:wrapcheck
	}

	res.FromModel(booking)

	if err := s.cache.Save(ctx, cacheKey, res, s.cfg.Cache.TTL); err != nil {
		log.Error().Err(err).Msg("failed to save booking to cache")
	}

	return res, nil
}

// Update applies the patch as-is: it neither re-runs the availability policy
// nor recomputes the total. Last write wins on the supplied fields.
func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateBookingRequest, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	current, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check booking existence")

		return res, err
	}

	if current.ID == constant.Empty {
		log.Error().Msg("booking not found")

		return res, failure.NotFound("Booking not found") // nolint:wrapcheck
	}

	updatedFields := shared.TransformFields(req)

	if req.CheckIn != "" {
		checkIn, err := timezone.Parse(constant.BookingDateFmt, req.CheckIn)
		if err != nil {
			return res, failure.BadRequestFromString("checkIn must be a date formatted as " + constant.BookingDateFmt) // nolint:wrapcheck
		}

		updatedFields[model.FieldCheckIn] = checkIn
	}

	if req.CheckOut != "" {
		checkOut, err := timezone.Parse(constant.BookingDateFmt, req.CheckOut)
		if err != nil {
			return res, failure.BadRequestFromString("checkOut must be a date formatted as " + constant.BookingDateFmt) // nolint:wrapcheck
		}

		updatedFields[model.FieldCheckOut] = checkOut
	}

	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update booking")

		return res, fmt.Errorf("failed to update booking: %w", err)
	}

	s.invalidate(ctx, id)

	return s.Get(ctx, id)
}

// Delete releases the referenced room before removing the booking row,
// mirroring the create ordering in reverse.
func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	booking, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return failure.NotFound("Booking not found") // nolint:wrapcheck
	}

	if err = s.availability.Release(ctx, booking.RoomID); err != nil {
		log.Error().Err(err).Str("roomId", booking.RoomID).Msg("failed to release room")

		return err
	}

	if err := s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete booking")

		return fmt.Errorf("failed to delete booking: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) invalidate(ctx context.Context, id string) {
	if err := s.cache.Delete(ctx, shared.BuildCacheKey(cacheGetBooking, id)); err != nil {
		log.Error().Err(err).Msg("failed to delete booking cache")
	}

	shared.InvalidateCaches(ctx, s.cache, cacheGetAllBooking)
	shared.InvalidateCaches(ctx, s.cache, cacheRoomPrefix)
}
