package dto

import (
	"time"

	"lodge/internal/domains/booking/model"
	"lodge/shared/constant"
	gDto "lodge/shared/dto"
	"lodge/shared/failure"
	gModel "lodge/shared/model"
	"lodge/shared/timezone"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	GuestID         string `json:"guestId"         validate:"required"`
	RoomID          string `json:"roomId"          validate:"required"`
	CheckIn         string `json:"checkIn"         validate:"required"`
	CheckOut        string `json:"checkOut"        validate:"required"`
	Status          string `json:"status"          validate:"omitempty,oneof=confirmed checked-in checked-out cancelled"`
	PaymentStatus   string `json:"paymentStatus"   validate:"omitempty,oneof=pending paid refunded"`
	SpecialRequests string `json:"specialRequests" validate:"omitempty,max=500"`
	NumberOfGuests  *int   `json:"numberOfGuests"  validate:"omitempty,min=1"`
}

// ParseDates validates the wire dates and requires check-out after check-in.
func (c *CreateBookingRequest) ParseDates() (checkIn, checkOut time.Time, err error) {
	checkIn, err = timezone.Parse(constant.BookingDateFmt, c.CheckIn)
	if err != nil {
		return checkIn, checkOut, failure.BadRequestFromString("checkIn must be a date formatted as " + constant.BookingDateFmt) // nolint:wrapcheck
	}

	checkOut, err = timezone.Parse(constant.BookingDateFmt, c.CheckOut)
	if err != nil {
		return checkIn, checkOut, failure.BadRequestFromString("checkOut must be a date formatted as " + constant.BookingDateFmt) // nolint:wrapcheck
	}

	if !checkOut.After(checkIn) {
		return checkIn, checkOut, failure.BadRequestFromString("checkOut must be after checkIn") // nolint:wrapcheck
	}

	return checkIn, checkOut, nil
}

func (c *CreateBookingRequest) ToModel(checkIn, checkOut time.Time, totalAmount float64) model.Booking {
	status := model.BookingStatusConfirmed
	if c.Status != "" {
		status = model.BookingStatus(c.Status)
	}

	paymentStatus := model.PaymentStatusPending
	if c.PaymentStatus != "" {
		paymentStatus = model.PaymentStatus(c.PaymentStatus)
	}

	numberOfGuests := 1
	if c.NumberOfGuests != nil {
		numberOfGuests = *c.NumberOfGuests
	}

	return model.Booking{
		ID:              uuid.NewString(),
		GuestID:         c.GuestID,
		RoomID:          c.RoomID,
		CheckIn:         checkIn,
		CheckOut:        checkOut,
		Status:          status,
		TotalAmount:     totalAmount,
		PaymentStatus:   paymentStatus,
		SpecialRequests: c.SpecialRequests,
		NumberOfGuests:  numberOfGuests,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
		},
	}
}

type UpdateBookingRequest struct {
	GuestID         string `db:"guest_id"         json:"guestId"         validate:"omitempty"`
	RoomID          string `db:"room_id"          json:"roomId"          validate:"omitempty"`
	CheckIn         string `json:"checkIn"         validate:"omitempty"`
	CheckOut        string `json:"checkOut"        validate:"omitempty"`
	Status          string `db:"status"           json:"status"          validate:"omitempty,oneof=confirmed checked-in checked-out cancelled"`
	PaymentStatus   string `db:"payment_status"   json:"paymentStatus"   validate:"omitempty,oneof=pending paid refunded"`
	SpecialRequests string `db:"special_requests" json:"specialRequests" validate:"omitempty,max=500"`
	NumberOfGuests  *int   `db:"number_of_guests" json:"numberOfGuests"  validate:"omitempty,min=1"`
}

type BookingGuest struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type BookingRoom struct {
	ID     string  `json:"id"`
	Number string  `json:"number"`
	Type   string  `json:"type"`
	Price  float64 `json:"price"`
	Status string  `json:"status,omitempty"`
}

type BookingResponse struct {
	ID              string        `json:"id"`
	GuestID         string        `json:"guestId"`
	RoomID          string        `json:"roomId"`
	CheckIn         string        `json:"checkIn"`
	CheckOut        string        `json:"checkOut"`
	Status          string        `json:"status"`
	TotalAmount     float64       `json:"totalAmount"`
	PaymentStatus   string        `json:"paymentStatus"`
	SpecialRequests string        `json:"specialRequests,omitempty"`
	NumberOfGuests  int           `json:"numberOfGuests"`
	Guest           *BookingGuest `json:"guest,omitempty"`
	Room            *BookingRoom  `json:"room,omitempty"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(mod model.Booking) {
	r.ID = mod.ID
	r.GuestID = mod.GuestID
	r.RoomID = mod.RoomID
	r.CheckIn = timezone.Format(mod.CheckIn, constant.BookingDateFmt)
	r.CheckOut = timezone.Format(mod.CheckOut, constant.BookingDateFmt)
	r.Status = string(mod.Status)
	r.TotalAmount = mod.TotalAmount
	r.PaymentStatus = string(mod.PaymentStatus)
	r.SpecialRequests = mod.SpecialRequests
	r.NumberOfGuests = mod.NumberOfGuests
	r.Metadata.FromModel(mod.Metadata)

	if mod.GuestName.Valid {
		r.Guest = &BookingGuest{
			ID:    mod.GuestID,
			Name:  mod.GuestName.String,
			Email: mod.GuestEmail.String,
			Phone: mod.GuestPhone.String,
		}
	}

	if mod.RoomNumber.Valid {
		r.Room = &BookingRoom{
			ID:     mod.RoomID,
			Number: mod.RoomNumber.String,
			Type:   mod.RoomType.String,
			Price:  mod.RoomPrice.Float64,
			Status: mod.RoomStatus.String,
		}
	}
}

func FromModels(models []model.Booking) []BookingResponse {
	res := make([]BookingResponse, len(models))
	for i, mod := range models {
		res[i].FromModel(mod)
	}

	return res
}
