package client_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/witmar/infirma/internal/client"
)

func TestService_Create(t *testing.T) {
	type testCase struct {
		name       string
		params     client.CreateParams
		setupMock  func(m *client.MockRepository)
		wantErr    error
		wantAnyErr bool
	}

	tests := []testCase{
		{
			name:   "Success",
			params: client.CreateParams{Name: "Big Corp Sp. z o.o.", NIP: "5260250995", City: "Warszawa"},
			setupMock: func(m *client.MockRepository) {
				m.EXPECT().
					CreateClient(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, c *client.Client) error {
						c.ID = uuid.New()
						return nil
					})
			},
		},
		{
			name:   "NoNIPAllowed",
			params: client.CreateParams{Name: "Private Person"},
			setupMock: func(m *client.MockRepository) {
				m.EXPECT().
					CreateClient(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, c *client.Client) error {
						c.ID = uuid.New()
						return nil
					})
			},
		},
		{
			name:    "InvalidNIP",
			params:  client.CreateParams{Name: "Big Corp", NIP: "1234567890"},
			wantErr: client.ErrInvalidNIP,
		},
		{
			name:   "RepoError",
			params: client.CreateParams{Name: "Big Corp"},
			setupMock: func(m *client.MockRepository) {
				m.EXPECT().
					CreateClient(gomock.Any(), gomock.Any()).
					Return(errors.New("db error"))
			},
			wantAnyErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := client.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			svc := client.NewService(repo)
			got, err := svc.Create(context.Background(), tt.params)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)

				return
			}

			if tt.wantAnyErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.NotEmpty(t, got.ID)
		})
	}
}

func TestService_Update_PartialFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	id := uuid.New()

	repo := client.NewMockRepository(ctrl)
	repo.EXPECT().GetClient(gomock.Any(), id).Return(&client.Client{
		ID:   id,
		Name: "Big Corp",
		NIP:  "5260250995",
		City: "Warszawa",
	}, nil)
	repo.EXPECT().UpdateClient(gomock.Any(), gomock.Any()).Return(nil)

	svc := client.NewService(repo)

	newCity := "Kraków"
	got, err := svc.Update(context.Background(), id, client.UpdateParams{City: &newCity})
	require.NoError(t, err)

	assert.Equal(t, "Kraków", got.City)
	assert.Equal(t, "Big Corp", got.Name)
	assert.Equal(t, "5260250995", got.NIP)
}

func TestService_Update_ClearNIP(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	id := uuid.New()

	repo := client.NewMockRepository(ctrl)
	repo.EXPECT().GetClient(gomock.Any(), id).Return(&client.Client{ID: id, NIP: "5260250995"}, nil)
	repo.EXPECT().UpdateClient(gomock.Any(), gomock.Any()).Return(nil)

	svc := client.NewService(repo)

	empty := ""
	got, err := svc.Update(context.Background(), id, client.UpdateParams{NIP: &empty})
	require.NoError(t, err)
	assert.Empty(t, got.NIP)
}

func TestService_Update_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	id := uuid.New()

	repo := client.NewMockRepository(ctrl)
	repo.EXPECT().GetClient(gomock.Any(), id).Return(nil, client.ErrNotFound)

	svc := client.NewService(repo)

	name := "whatever"
	_, err := svc.Update(context.Background(), id, client.UpdateParams{Name: &name})
	require.ErrorIs(t, err, client.ErrNotFound)
}

func TestService_List_DefaultsPagination(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := client.NewMockRepository(ctrl)
	repo.EXPECT().
		ListClients(gomock.Any(), client.ListFilter{ActiveOnly: true, Page: 1, PerPage: 20}).
		Return([]*client.Client{{ID: uuid.New()}}, 1, nil)

	svc := client.NewService(repo)

	clients, total, err := svc.List(context.Background(), client.ListFilter{ActiveOnly: true})
	require.NoError(t, err)
	assert.Len(t, clients, 1)
	assert.Equal(t, 1, total)
}
