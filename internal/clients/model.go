package clients

import "time"

// Client is a customer the business bills projects against.
type Client struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone"`
	Address       string    `json:"address,omitempty"`
	City          string    `json:"city,omitempty"`
	State         string    `json:"state,omitempty"`
	ZipCode       string    `json:"zipCode,omitempty"`
	GSTIN         string    `json:"gstin,omitempty"`
	ContactPerson string    `json:"contactPerson,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}

func (c Client) RecordID() string { return c.ID }

type CreateInput struct {
	Name          string `json:"name" binding:"required"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
	City          string `json:"city"`
	State         string `json:"state"`
	ZipCode       string `json:"zipCode"`
	GSTIN         string `json:"gstin"`
	ContactPerson string `json:"contactPerson"`
}

type UpdateInput struct {
	Name          *string `json:"name"`
	Email         *string `json:"email"`
	Phone         *string `json:"phone"`
	Address       *string `json:"address"`
	City          *string `json:"city"`
	State         *string `json:"state"`
	ZipCode       *string `json:"zipCode"`
	GSTIN         *string `json:"gstin"`
	ContactPerson *string `json:"contactPerson"`
}
