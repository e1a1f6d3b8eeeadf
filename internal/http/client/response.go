package client

import (
	"time"

	"github.com/google/uuid"

	"github.com/witmar/infirma/internal/client"
)

type clientResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	NIP  string    `json:"nip,omitempty"`

	Street     string `json:"street,omitempty"`
	City       string `json:"city,omitempty"`
	PostalCode string `json:"postal_code,omitempty"`
	Country    string `json:"country,omitempty"`

	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`

	Notes string `json:"notes,omitempty"`

	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

func toResponse(c *client.Client) clientResponse {
	return clientResponse{
		ID:         c.ID,
		Name:       c.Name,
		NIP:        c.NIP,
		Street:     c.Street,
		City:       c.City,
		PostalCode: c.PostalCode,
		Country:    c.Country,
		Email:      c.Email,
		Phone:      c.Phone,
		Notes:      c.Notes,
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  c.UpdatedAt,
	}
}

type clientSummary struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	NIP  string    `json:"nip,omitempty"`
	City string    `json:"city,omitempty"`
}

type summaryResponse struct {
	Clients []clientSummary `json:"clients"`
	Total   int             `json:"total"`
}

func toSummaryResponse(clients []*client.Client) summaryResponse {
	out := summaryResponse{
		Clients: make([]clientSummary, 0, len(clients)),
		Total:   len(clients),
	}

	for _, c := range clients {
		out.Clients = append(out.Clients, clientSummary{
			ID:   c.ID,
			Name: c.Name,
			NIP:  c.NIP,
			City: c.City,
		})
	}

	return out
}

type listResponse struct {
	Clients []clientResponse `json:"clients"`
	Total   int              `json:"total"`
}

func toListResponse(clients []*client.Client, total int) listResponse {
	out := listResponse{
		Clients: make([]clientResponse, 0, len(clients)),
		Total:   total,
	}

	for _, c := range clients {
		out.Clients = append(out.Clients, toResponse(c))
	}

	return out
}
