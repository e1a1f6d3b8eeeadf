package client

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound   = errors.New("client not found")
	ErrInvalidNIP = errors.New("invalid NIP number")
)

// Client is an invoice recipient. Clients are soft deleted so historical
// invoices keep a valid reference.
type Client struct {
	ID   uuid.UUID
	Name string
	NIP  string

	Street     string
	City       string
	PostalCode string
	Country    string

	Email string
	Phone string

	Notes string

	CreatedAt time.Time
	UpdatedAt *time.Time
	DeletedAt *time.Time
}
