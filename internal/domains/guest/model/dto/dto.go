package dto

import (
	"strings"

	"lodge/internal/domains/guest/model"
	gDto "lodge/shared/dto"
	gModel "lodge/shared/model"
	"lodge/shared/timezone"

	"github.com/google/uuid"
)

type Address struct {
	Street  string `json:"street"  validate:"omitempty,max=200"`
	City    string `json:"city"    validate:"omitempty,max=100"`
	Country string `json:"country" validate:"omitempty,max=100"`
}

type CreateGuestRequest struct {
	Name     string   `json:"name"     validate:"required,max=100"`
	Email    string   `json:"email"    validate:"required,email,max=100"`
	Phone    string   `json:"phone"    validate:"required,max=30"`
	Address  *Address `json:"address"  validate:"omitempty"`
	IDProof  string   `json:"idProof"  validate:"required,max=50"`
	IDNumber string   `json:"idNumber" validate:"required,max=50"`
}

// ToModel stores the email lowercased so the case-insensitive unique index
// compares apples to apples.
func (c *CreateGuestRequest) ToModel() model.Guest {
	guest := model.Guest{
		ID:       uuid.NewString(),
		Name:     c.Name,
		Email:    strings.ToLower(c.Email),
		Phone:    c.Phone,
		IDProof:  c.IDProof,
		IDNumber: c.IDNumber,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
		},
	}

	if c.Address != nil {
		guest.AddressStreet = c.Address.Street
		guest.AddressCity = c.Address.City
		guest.AddressCountry = c.Address.Country
	}

	return guest
}

type UpdateGuestRequest struct {
	Name     string   `db:"name"      json:"name"     validate:"omitempty,max=100"`
	Email    string   `db:"email"     json:"email"    validate:"omitempty,email,max=100"`
	Phone    string   `db:"phone"     json:"phone"    validate:"omitempty,max=30"`
	Address  *Address `json:"address" validate:"omitempty"`
	IDProof  string   `db:"id_proof"  json:"idProof"  validate:"omitempty,max=50"`
	IDNumber string   `db:"id_number" json:"idNumber" validate:"omitempty,max=50"`
}

type GuestResponse struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Email    string   `json:"email"`
	Phone    string   `json:"phone"`
	Address  *Address `json:"address,omitempty"`
	IDProof  string   `json:"idProof"`
	IDNumber string   `json:"idNumber"`
	gDto.Metadata
}

func (g *GuestResponse) FromModel(model model.Guest) {
	g.ID = model.ID
	g.Name = model.Name
	g.Email = model.Email
	g.Phone = model.Phone
	g.IDProof = model.IDProof
	g.IDNumber = model.IDNumber
	g.Metadata.FromModel(model.Metadata)

	if model.AddressStreet != "" || model.AddressCity != "" || model.AddressCountry != "" {
		g.Address = &Address{
			Street:  model.AddressStreet,
			City:    model.AddressCity,
			Country: model.AddressCountry,
		}
	}
}

func FromModels(models []model.Guest) []GuestResponse {
	res := make([]GuestResponse, len(models))
	for i, mod := range models {
		res[i].FromModel(mod)
	}

	return res
}
