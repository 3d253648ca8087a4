package dto

import (
	"lodge/internal/domains/room/model"
	gDto "lodge/shared/dto"
	gModel "lodge/shared/model"
	"lodge/shared/timezone"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type CreateRoomRequest struct {
	Number    string   `json:"number"    validate:"required,max=20"`
	Type      string   `json:"type"      validate:"required,oneof=single double suite deluxe"`
	Price     *float64 `json:"price"     validate:"required,min=0"`
	Status    string   `json:"status"    validate:"omitempty,oneof=available occupied maintenance"`
	Amenities []string `json:"amenities" validate:"omitempty,dive,max=100"`
	Capacity  *int     `json:"capacity"  validate:"required,min=1"`
}

func (c *CreateRoomRequest) ToModel() model.Room {
	status := model.RoomStatusAvailable
	if c.Status != "" {
		status = model.RoomStatus(c.Status)
	}

	return model.Room{
		ID:        uuid.NewString(),
		Number:    c.Number,
		Type:      model.RoomType(c.Type),
		Price:     *c.Price,
		Status:    status,
		Amenities: pq.StringArray(c.Amenities),
		Capacity:  *c.Capacity,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
		},
	}
}

type UpdateRoomRequest struct {
	Number    string   `db:"number"   json:"number"    validate:"omitempty,max=20"`
	Type      string   `db:"type"     json:"type"      validate:"omitempty,oneof=single double suite deluxe"`
	Price     *float64 `db:"price"    json:"price"     validate:"omitempty,min=0"`
	Status    string   `db:"status"   json:"status"    validate:"omitempty,oneof=available occupied maintenance"`
	Amenities []string `json:"amenities" validate:"omitempty,dive,max=100"`
	Capacity  *int     `db:"capacity" json:"capacity"  validate:"omitempty,min=1"`
}

type RoomResponse struct {
	ID        string   `json:"id"`
	Number    string   `json:"number"`
	Type      string   `json:"type"`
	Price     float64  `json:"price"`
	Status    string   `json:"status"`
	Amenities []string `json:"amenities"`
	Capacity  int      `json:"capacity"`
	gDto.Metadata
}

func (r *RoomResponse) FromModel(model model.Room) {
	r.ID = model.ID
	r.Number = model.Number
	r.Type = string(model.Type)
	r.Price = model.Price
	r.Status = string(model.Status)
	r.Amenities = []string(model.Amenities)
	r.Capacity = model.Capacity
	r.Metadata.FromModel(model.Metadata)
}

func FromModels(models []model.Room) []RoomResponse {
	res := make([]RoomResponse, len(models))
	for i, mod := range models {
		res[i].FromModel(mod)
	}

	return res
}
