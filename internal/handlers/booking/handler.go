package booking

import (
	"net/http"

	"lodge/infras/otel"
	"lodge/internal/domains/booking/model"
	"lodge/internal/domains/booking/model/dto"
	"lodge/internal/domains/booking/service"
	"lodge/shared/constant"
	gDto "lodge/shared/dto"
	"lodge/shared/validator"
	"lodge/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Booking
	otel    otel.Otel
}

func New(service service.Booking, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/bookings", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateBooking)
		routerGroup.Get("/", handler.GetBookings)
		routerGroup.Get("/guest/{guestId}", handler.GetBookingsByGuest)
		routerGroup.Get("/room/{roomId}", handler.GetBookingsByRoom)
		routerGroup.Get("/{id}", handler.GetBookingByID)
		routerGroup.Put("/{id}", handler.UpdateBooking)
		routerGroup.Delete("/{id}", handler.DeleteBooking)
	})
}

// CreateBooking books a room for a guest.
// @Summary Create a new booking
// @Description Book a room for a guest; the referenced room and guest must exist and the room must be available.
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.CreateBookingRequest true "Booking payload"
// @Success 201 {object} response.Envelope "Booking created successfully"
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Failure 500 {object} response.Envelope
// @Router /api/bookings [post]
func (handler *Handler) CreateBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateBooking")
	defer scope.End()

	var req dto.CreateBookingRequest
	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(writer, err)

		return
	}

	booking, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create booking")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Booking created successfully")

	response.WithJSONMessage(writer, http.StatusCreated, "Booking created successfully", booking)
}

// GetBookings retrieves all bookings with guest and room enrichment.
// @Summary Get all bookings
// @Description Retrieve every booking with its guest and room details joined in.
// @Tags Booking
// @Accept json
// @Produce json
// @Success 200 {object} response.Envelope "List of bookings"
// @Failure 500 {object} response.Envelope
// @Router /api/bookings [get]
func (handler *Handler) GetBookings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookings")
	defer scope.End()

	bookings, err := handler.service.GetAll(ctx, gDto.FilterGroup{})
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get bookings")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Bookings retrieved successfully")

	response.WithCount(w, http.StatusOK, bookings, len(bookings))
}

// GetBookingsByGuest retrieves the bookings referencing a guest.
// @Summary Get bookings by guest
// @Description Retrieve every booking made by the given guest.
// @Tags Booking
// @Accept json
// @Produce json
// @Param guestId path string true "Guest ID"
// @Success 200 {object} response.Envelope "List of bookings"
// @Failure 500 {object} response.Envelope
// @Router /api/bookings/guest/{guestId} [get]
func (handler *Handler) GetBookingsByGuest(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookingsByGuest")
	defer scope.End()

	guestID := chi.URLParam(r, constant.RequestParamGuestID)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldGuestID,
				Operator: gDto.FilterOperatorEq,
				Value:    guestID,
				Table:    model.TableName,
			},
		},
	}

	bookings, err := handler.service.GetAll(ctx, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get bookings by guest")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Bookings retrieved successfully")

	response.WithCount(w, http.StatusOK, bookings, len(bookings))
}

// GetBookingsByRoom retrieves the bookings referencing a room.
// @Summary Get bookings by room
// @Description Retrieve every booking made against the given room.
// @Tags Booking
// @Accept json
// @Produce json
// @Param roomId path string true "Room ID"
// @Success 200 {object} response.Envelope "List of bookings"
// @Failure 500 {object} response.Envelope
// @Router /api/bookings/room/{roomId} [get]
func (handler *Handler) GetBookingsByRoom(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookingsByRoom")
	defer scope.End()

	roomID := chi.URLParam(r, constant.RequestParamRoomID)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldRoomID,
				Operator: gDto.FilterOperatorEq,
				Value:    roomID,
				Table:    model.TableName,
			},
		},
	}

	bookings, err := handler.service.GetAll(ctx, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get bookings by room")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Bookings retrieved successfully")

	response.WithCount(w, http.StatusOK, bookings, len(bookings))
}

// GetBookingByID retrieves a booking by its ID.
// @Summary Get a booking by ID
// @Description Retrieve a booking by its unique identifier with guest and room details joined in.
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Envelope "Booking details"
// @Failure 404 {object} response.Envelope
// @Failure 500 {object} response.Envelope
// @Router /api/bookings/{id} [get]
func (handler *Handler) GetBookingByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookingByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	booking, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get booking by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking retrieved successfully")

	response.WithJSON(w, http.StatusOK, booking)
}

// UpdateBooking updates an existing booking by its ID.
// @Summary Update a booking by ID
// @Description Apply a partial update to a booking. Availability and total are not re-evaluated.
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body dto.UpdateBookingRequest true "Booking patch"
// @Success 200 {object} response.Envelope "Booking updated successfully"
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Failure 500 {object} response.Envelope
// @Router /api/bookings/{id} [put]
func (handler *Handler) UpdateBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateBooking")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	var req dto.UpdateBookingRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	booking, err := handler.service.Update(ctx, req, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update booking")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking updated successfully")

	response.WithJSONMessage(w, http.StatusOK, "Booking updated successfully", booking)
}

// DeleteBooking deletes a booking by its ID, releasing the room.
// @Summary Delete a booking by ID
// @Description Delete a booking and mark its room available again.
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Envelope "Booking deleted successfully"
// @Failure 404 {object} response.Envelope
// @Failure 500 {object} response.Envelope
// @Router /api/bookings/{id} [delete]
func (handler *Handler) DeleteBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteBooking")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete booking")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking deleted successfully")

	response.WithMessage(w, http.StatusOK, "Booking deleted successfully")
}
