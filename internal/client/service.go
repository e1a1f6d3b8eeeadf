package client

import (
	"context"

	"github.com/google/uuid"

	"github.com/witmar/infirma/internal/nip"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=client
type Repository interface {
	CreateClient(ctx context.Context, c *Client) error
	GetClient(ctx context.Context, id uuid.UUID) (*Client, error)
	UpdateClient(ctx context.Context, c *Client) error
	DeleteClient(ctx context.Context, id uuid.UUID) error

	ListClients(ctx context.Context, filter ListFilter) ([]*Client, int, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	Name string
	NIP  string

	Street     string
	City       string
	PostalCode string
	Country    string

	Email string
	Phone string

	Notes string
}

type ListFilter struct {
	Search     string
	ActiveOnly bool
	Page       int
	PerPage    int
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*Client, error) {
	if params.NIP != "" && !nip.Valid(params.NIP) {
		return nil, ErrInvalidNIP
	}

	c := &Client{
		Name:       params.Name,
		NIP:        params.NIP,
		Street:     params.Street,
		City:       params.City,
		PostalCode: params.PostalCode,
		Country:    params.Country,
		Email:      params.Email,
		Phone:      params.Phone,
		Notes:      params.Notes,
	}

	if err := s.repo.CreateClient(ctx, c); err != nil {
		return nil, err
	}

	return c, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Client, error) {
	return s.repo.GetClient(ctx, id)
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]*Client, int, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}

	if filter.PerPage < 1 {
		filter.PerPage = 20
	}

	return s.repo.ListClients(ctx, filter)
}

// Active returns all non-deleted clients ordered by name, for pickers.
func (s *Service) Active(ctx context.Context) ([]*Client, error) {
	clients, _, err := s.repo.ListClients(ctx, ListFilter{ActiveOnly: true, Page: 1, PerPage: 1000})

	return clients, err
}

type UpdateParams struct {
	Name *string
	NIP  *string

	Street     *string
	City       *string
	PostalCode *string
	Country    *string

	Email *string
	Phone *string

	Notes *string
}

func (s *Service) Update(ctx context.Context, id uuid.UUID, params UpdateParams) (*Client, error) {
	c, err := s.repo.GetClient(ctx, id)
	if err != nil {
		return nil, err
	}

	if params.NIP != nil {
		if *params.NIP != "" && !nip.Valid(*params.NIP) {
			return nil, ErrInvalidNIP
		}

		c.NIP = *params.NIP
	}

	apply(&c.Name, params.Name)
	apply(&c.Street, params.Street)
	apply(&c.City, params.City)
	apply(&c.PostalCode, params.PostalCode)
	apply(&c.Country, params.Country)
	apply(&c.Email, params.Email)
	apply(&c.Phone, params.Phone)
	apply(&c.Notes, params.Notes)

	if err := s.repo.UpdateClient(ctx, c); err != nil {
		return nil, err
	}

	return c, nil
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteClient(ctx, id)
}

func apply(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}
