package model

import "lodge/shared/model"

const (
	TableName  = "guests"
	EntityName = "guest"

	FieldID             = "id"
	FieldName           = "name"
	FieldEmail          = "email"
	FieldPhone          = "phone"
	FieldAddressStreet  = "address_street"
	FieldAddressCity    = "address_city"
	FieldAddressCountry = "address_country"
	FieldIDProof        = "id_proof"
	FieldIDNumber       = "id_number"
)

type Guest struct {
	ID             string `db:"id"`
	Name           string `db:"name"`
	Email          string `db:"email"`
	Phone          string `db:"phone"`
	AddressStreet  string `db:"address_street"`
	AddressCity    string `db:"address_city"`
	AddressCountry string `db:"address_country"`
	IDProof        string `db:"id_proof"`
	IDNumber       string `db:"id_number"`
	model.Metadata
}
