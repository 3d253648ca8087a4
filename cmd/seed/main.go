package main

import (
	"context"
	"time"

	"lodge/config"
	"lodge/infras/otel"
	"lodge/infras/postgres"
	"lodge/shared/logger"
	"lodge/shared/model"
	"lodge/shared/timezone"

	bookingModel "lodge/internal/domains/booking/model"
	bookingRepository "lodge/internal/domains/booking/repository"
	guestModel "lodge/internal/domains/guest/model"
	guestRepository "lodge/internal/domains/guest/repository"
	roomModel "lodge/internal/domains/room/model"
	roomRepository "lodge/internal/domains/room/repository"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	db := postgres.New(cfg)
	ot := otel.New(cfg)

	rooms := roomRepository.New(db, ot)
	guests := guestRepository.New(db, ot)
	bookings := bookingRepository.New(db, ot)

	ctx := context.Background()

	log.Info().Msg("Clearing old data")

	if err := bookings.DeleteAll(ctx); err != nil {
		log.Fatal().Err(err).Msg("Failed to clear bookings")
	}

	if err := guests.DeleteAll(ctx); err != nil {
		log.Fatal().Err(err).Msg("Failed to clear guests")
	}

	if err := rooms.DeleteAll(ctx); err != nil {
		log.Fatal().Err(err).Msg("Failed to clear rooms")
	}

	roomRows := seedRooms()
	guestRows := seedGuests()
	bookingRows := seedBookings(guestRows, roomRows)

	if err := rooms.InsertBulk(ctx, roomRows); err != nil {
		log.Fatal().Err(err).Msg("Failed to seed rooms")
	}

	if err := guests.InsertBulk(ctx, guestRows); err != nil {
		log.Fatal().Err(err).Msg("Failed to seed guests")
	}

	if err := bookings.InsertBulk(ctx, bookingRows); err != nil {
		log.Fatal().Err(err).Msg("Failed to seed bookings")
	}

	log.Info().
		Int("rooms", len(roomRows)).
		Int("guests", len(guestRows)).
		Int("bookings", len(bookingRows)).
		Msg("Database seeded successfully")
}

func metadata() model.Metadata {
	now := timezone.Now()

	return model.Metadata{
		CreatedAt:  now,
		ModifiedAt: now,
	}
}

func seedRooms() []roomModel.Room {
	return []roomModel.Room{
		{
			ID:        uuid.NewString(),
			Number:    "101",
			Type:      roomModel.RoomTypeSingle,
			Price:     100,
			Status:    roomModel.RoomStatusAvailable,
			Amenities: pq.StringArray{"TV", "WiFi", "AC"},
			Capacity:  1,
			Metadata:  metadata(),
		},
		{
			ID:        uuid.NewString(),
			Number:    "102",
			Type:      roomModel.RoomTypeDouble,
			Price:     150,
			Status:    roomModel.RoomStatusAvailable,
			Amenities: pq.StringArray{"TV", "WiFi", "AC", "Mini Bar"},
			Capacity:  2,
			Metadata:  metadata(),
		},
		{
			ID:        uuid.NewString(),
			Number:    "201",
			Type:      roomModel.RoomTypeSuite,
			Price:     250,
			Status:    roomModel.RoomStatusAvailable,
			Amenities: pq.StringArray{"TV", "WiFi", "AC", "Mini Bar", "Jacuzzi"},
			Capacity:  3,
			Metadata:  metadata(),
		},
		{
			ID:        uuid.NewString(),
			Number:    "202",
			Type:      roomModel.RoomTypeDeluxe,
			Price:     300,
			Status:    roomModel.RoomStatusAvailable,
			Amenities: pq.StringArray{"TV", "WiFi", "AC", "Mini Bar", "Jacuzzi", "Balcony"},
			Capacity:  4,
			Metadata:  metadata(),
		},
		{
			ID:        uuid.NewString(),
			Number:    "301",
			Type:      roomModel.RoomTypeDeluxe,
			Price:     350,
			Status:    roomModel.RoomStatusOccupied,
			Amenities: pq.StringArray{"TV", "WiFi", "AC", "Mini Bar", "Jacuzzi", "Balcony", "Kitchen"},
			Capacity:  4,
			Metadata:  metadata(),
		},
	}
}

func seedGuests() []guestModel.Guest {
	return []guestModel.Guest{
		{
			ID:             uuid.NewString(),
			Name:           "John Doe",
			Email:          "john@example.com",
			Phone:          "+1234567890",
			AddressStreet:  "123 Main St",
			AddressCity:    "New York",
			AddressCountry: "USA",
			IDProof:        "passport",
			IDNumber:       "P12345678",
			Metadata:       metadata(),
		},
		{
			ID:             uuid.NewString(),
			Name:           "Jane Smith",
			Email:          "jane@example.com",
			Phone:          "+0987654321",
			AddressStreet:  "456 Oak Ave",
			AddressCity:    "Los Angeles",
			AddressCountry: "USA",
			IDProof:        "driver-license",
			IDNumber:       "DL87654321",
			Metadata:       metadata(),
		},
		{
			ID:             uuid.NewString(),
			Name:           "Bob Wilson",
			Email:          "bob@example.com",
			Phone:          "+1122334455",
			AddressStreet:  "789 Pine Rd",
			AddressCity:    "Chicago",
			AddressCountry: "USA",
			IDProof:        "passport",
			IDNumber:       "P99887766",
			Metadata:       metadata(),
		},
		{
			ID:             uuid.NewString(),
			Name:           "Alice Johnson",
			Email:          "alice@example.com",
			Phone:          "+5566778899",
			AddressStreet:  "321 Maple St",
			AddressCity:    "Miami",
			AddressCountry: "USA",
			IDProof:        "id-card",
			IDNumber:       "ID11223344",
			Metadata:       metadata(),
		},
	}
}

func seedBookings(guests []guestModel.Guest, rooms []roomModel.Room) []bookingModel.Booking {
	date := func(day int) time.Time {
		return time.Date(2024, time.January, day, 0, 0, 0, 0, timezone.GetLocation())
	}

	return []bookingModel.Booking{
		{
			ID:              uuid.NewString(),
			GuestID:         guests[0].ID,
			RoomID:          rooms[0].ID,
			CheckIn:         date(15),
			CheckOut:        date(20),
			Status:          bookingModel.BookingStatusConfirmed,
			TotalAmount:     500,
			PaymentStatus:   bookingModel.PaymentStatusPaid,
			NumberOfGuests:  1,
			SpecialRequests: "Early check-in at 1 PM",
			Metadata:        metadata(),
		},
		{
			ID:              uuid.NewString(),
			GuestID:         guests[1].ID,
			RoomID:          rooms[1].ID,
			CheckIn:         date(18),
			CheckOut:        date(25),
			Status:          bookingModel.BookingStatusCheckedIn,
			TotalAmount:     1050,
			PaymentStatus:   bookingModel.PaymentStatusPending,
			NumberOfGuests:  2,
			SpecialRequests: "Late check-out requested",
			Metadata:        metadata(),
		},
		{
			ID:              uuid.NewString(),
			GuestID:         guests[2].ID,
			RoomID:          rooms[4].ID,
			CheckIn:         date(10),
			CheckOut:        date(17),
			Status:          bookingModel.BookingStatusCheckedIn,
			TotalAmount:     2450,
			PaymentStatus:   bookingModel.PaymentStatusPaid,
			NumberOfGuests:  3,
			SpecialRequests: "Extra towels and pillows",
			Metadata:        metadata(),
		},
	}
}
