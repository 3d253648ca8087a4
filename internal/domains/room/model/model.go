package model

import (
	"lodge/shared/model"

	"github.com/lib/pq"
)

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldID        = "id"
	FieldNumber    = "number"
	FieldType      = "type"
	FieldPrice     = "price"
	FieldStatus    = "status"
	FieldAmenities = "amenities"
	FieldCapacity  = "capacity"
)

type RoomType string

const (
	RoomTypeSingle RoomType = "single"
	RoomTypeDouble RoomType = "double"
	RoomTypeSuite  RoomType = "suite"
	RoomTypeDeluxe RoomType = "deluxe"
)

func (t RoomType) Valid() bool {
	switch t {
	case RoomTypeSingle, RoomTypeDouble, RoomTypeSuite, RoomTypeDeluxe:
		return true
	default:
		return false
	}
}

type RoomStatus string

const (
	RoomStatusAvailable   RoomStatus = "available"
	RoomStatusOccupied    RoomStatus = "occupied"
	RoomStatusMaintenance RoomStatus = "maintenance"
)

func (s RoomStatus) Valid() bool {
	switch s {
	case RoomStatusAvailable, RoomStatusOccupied, RoomStatusMaintenance:
		return true
	default:
		return false
	}
}

type Room struct {
	ID        string         `db:"id"`
	Number    string         `db:"number"`
	Type      RoomType       `db:"type"`
	Price     float64        `db:"price"`
	Status    RoomStatus     `db:"status"`
	Amenities pq.StringArray `db:"amenities"`
	Capacity  int            `db:"capacity"`
	model.Metadata
}
