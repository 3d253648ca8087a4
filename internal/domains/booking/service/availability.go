package service

//go:generate go run go.uber.org/mock/mockgen -source=./availability.go -destination=./mocks/availability_mock.go -package=mocks

import (
	"context"
	"fmt"

	roomModel "lodge/internal/domains/room/model"
	roomRepo "lodge/internal/domains/room/repository"
	"lodge/shared"
	"lodge/shared/failure"
)

// Availability is the single-flag occupancy policy: a room either can take a
// booking or it cannot, and claiming it is an atomic status flip.
type Availability interface {
	CanBook(room roomModel.Room) bool
	Occupy(ctx context.Context, roomID string) error
	Release(ctx context.Context, roomID string) error
}

type availabilityImpl struct {
	rooms roomRepo.Room
}

func NewAvailability(rooms roomRepo.Room) Availability {
	return &availabilityImpl{rooms: rooms}
}

func (a *availabilityImpl) CanBook(room roomModel.Room) bool {
	return room.Status == roomModel.RoomStatusAvailable
}

// Occupy claims the room with a compare-and-set on its status, so two
// concurrent bookings cannot both win the same room.
func (a *availabilityImpl) Occupy(ctx context.Context, roomID string) error {
	claimed, err := a.rooms.UpdateStatus(ctx, roomID, roomModel.RoomStatusAvailable, roomModel.RoomStatusOccupied)
	if err != nil {
		return fmt.Errorf("failed to claim room: %w", err)
	}

	if !claimed {
		return failure.BadRequestFromString("Room is occupied") // nolint:wrapcheck
	}

	return nil
}

// Release marks the room available again. A missing room is surfaced to the
// caller rather than silently skipped.
func (a *availabilityImpl) Release(ctx context.Context, roomID string) error {
	exist, err := a.rooms.Exist(ctx, shared.FilterByID(roomID, roomModel.FieldID, roomModel.TableName))
	if err != nil {
		return fmt.Errorf("failed to check room existence: %w", err)
	}

	if !exist {
		return failure.NotFound("Room not found") // nolint:wrapcheck
	}

	if _, err := a.rooms.UpdateStatus(ctx, roomID, "", roomModel.RoomStatusAvailable); err != nil {
		return fmt.Errorf("failed to release room: %w", err)
	}

	return nil
}
