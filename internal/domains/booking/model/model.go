package model

import (
	"database/sql"
	"time"

	"lodge/shared/model"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID              = "id"
	FieldGuestID         = "guest_id"
	FieldRoomID          = "room_id"
	FieldCheckIn         = "check_in"
	FieldCheckOut        = "check_out"
	FieldStatus          = "status"
	FieldTotalAmount     = "total_amount"
	FieldPaymentStatus   = "payment_status"
	FieldSpecialRequests = "special_requests"
	FieldNumberOfGuests  = "number_of_guests"
)

type BookingStatus string

const (
	BookingStatusConfirmed  BookingStatus = "confirmed"
	BookingStatusCheckedIn  BookingStatus = "checked-in"
	BookingStatusCheckedOut BookingStatus = "checked-out"
	BookingStatusCancelled  BookingStatus = "cancelled"
)

func (s BookingStatus) Valid() bool {
	switch s {
	case BookingStatusConfirmed, BookingStatusCheckedIn, BookingStatusCheckedOut, BookingStatusCancelled:
		return true
	default:
		return false
	}
}

type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusRefunded PaymentStatus = "refunded"
)

func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentStatusPending, PaymentStatusPaid, PaymentStatusRefunded:
		return true
	default:
		return false
	}
}

// Booking carries read-side joined guest and room columns. guest_id and
// room_id are weak references, so the joined values are nullable and a
// booking whose guest or room has been deleted still reads back cleanly.
type Booking struct {
	ID              string        `db:"id"`
	GuestID         string        `db:"guest_id"`
	RoomID          string        `db:"room_id"`
	CheckIn         time.Time     `db:"check_in"`
	CheckOut        time.Time     `db:"check_out"`
	Status          BookingStatus `db:"status"`
	TotalAmount     float64       `db:"total_amount"`
	PaymentStatus   PaymentStatus `db:"payment_status"`
	SpecialRequests string        `db:"special_requests"`
	NumberOfGuests  int           `db:"number_of_guests"`

	GuestName  sql.NullString  `db:"guest_name"  table:"guests" column:"name"`
	GuestEmail sql.NullString  `db:"guest_email" table:"guests" column:"email"`
	GuestPhone sql.NullString  `db:"guest_phone" table:"guests" column:"phone"`
	RoomNumber sql.NullString  `db:"room_number" table:"rooms"  column:"number"`
	RoomType   sql.NullString  `db:"room_type"   table:"rooms"  column:"type"`
	RoomPrice  sql.NullFloat64 `db:"room_price"  table:"rooms"  column:"price"`
	RoomStatus sql.NullString  `db:"room_status" table:"rooms"  column:"status"`

	model.Metadata
}

func (b Booking) GetJoinQuery() string {
	return "LEFT JOIN guests ON bookings.guest_id = guests.id LEFT JOIN rooms ON bookings.room_id = rooms.id"
}
