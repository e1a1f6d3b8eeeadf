package company_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/witmar/infirma/internal/company"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func testDefaults() company.Defaults {
	return company.Defaults{
		ZUSBaseAmount:  d("5203.80"),
		EmerytalneRate: d("19.52"),
		RentoweRate:    d("8.00"),
		WypadkoweRate:  d("1.67"),
		ChoroboweRate:  d("2.45"),
		LaborFundRate:  d("2.45"),
		FEPRate:        d("0.10"),
		VATRate:        d("23.00"),
		PITRyczaltRate: d("12.00"),
	}
}

func TestService_CreateProfile(t *testing.T) {
	type testCase struct {
		name      string
		params    company.CreateParams
		setupMock func(m *company.MockRepository)
		wantErr   error
	}

	tests := []testCase{
		{
			name: "Success",
			params: company.CreateParams{
				Name:       "Acme Software",
				NIP:        "5260250995",
				Street:     "ul. Prosta 1",
				City:       "Warszawa",
				PostalCode: "00-001",
			},
			setupMock: func(m *company.MockRepository) {
				m.EXPECT().
					CreateProfile(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, p *company.Profile, tax *company.TaxSettings, zus *company.ZUSSettings) error {
						p.ID = uuid.New()
						tax.ID = uuid.New()
						zus.ID = uuid.New()
						return nil
					})
			},
		},
		{
			name: "InvalidNIP",
			params: company.CreateParams{
				Name: "Acme Software",
				NIP:  "1234567890",
			},
			wantErr: company.ErrInvalidNIP,
		},
		{
			name: "SecondProfileRejected",
			params: company.CreateParams{
				Name: "Acme Software",
				NIP:  "5260250995",
			},
			setupMock: func(m *company.MockRepository) {
				m.EXPECT().
					CreateProfile(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(company.ErrAlreadyExists)
			},
			wantErr: company.ErrAlreadyExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := company.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			svc := company.NewService(repo, testDefaults())
			got, err := svc.CreateProfile(context.Background(), tt.params)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)

				return
			}

			require.NoError(t, err)
			assert.NotEmpty(t, got.ID)
			assert.Equal(t, "Poland", got.Country)
		})
	}
}

func TestService_CreateProfile_SeedsDefaultSettings(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := company.NewMockRepository(ctrl)

	var gotTax *company.TaxSettings

	var gotZUS *company.ZUSSettings

	repo.EXPECT().
		CreateProfile(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p *company.Profile, tax *company.TaxSettings, zus *company.ZUSSettings) error {
			gotTax = tax
			gotZUS = zus
			return nil
		})

	svc := company.NewService(repo, testDefaults())

	_, err := svc.CreateProfile(context.Background(), company.CreateParams{
		Name: "Acme Software",
		NIP:  "5260250995",
	})
	require.NoError(t, err)

	require.NotNil(t, gotTax)
	assert.True(t, gotTax.IsVATPayer)
	assert.Equal(t, company.TaxRyczalt, gotTax.TaxType)
	assert.True(t, gotTax.VATRate.Equal(d("23.00")))
	assert.True(t, gotTax.PITRyczaltRate.Equal(d("12.00")))

	require.NotNil(t, gotZUS)
	assert.True(t, gotZUS.BaseAmount.Equal(d("5203.80")))
	assert.True(t, gotZUS.IsChoroboweActive)
	assert.True(t, gotZUS.IsFEPActive)
	assert.Equal(t, company.TierMedium, gotZUS.HealthInsuranceTier)
}

func TestService_UpdateProfile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := company.NewMockRepository(ctrl)

	existing := &company.Profile{
		ID:   uuid.New(),
		Name: "Old Name",
		NIP:  "5260250995",
		City: "Warszawa",
	}

	repo.EXPECT().GetProfile(gomock.Any()).Return(existing, nil)
	repo.EXPECT().UpdateProfile(gomock.Any(), gomock.Any()).Return(nil)

	svc := company.NewService(repo, testDefaults())

	newName := "New Name"
	got, err := svc.UpdateProfile(context.Background(), company.UpdateParams{Name: &newName})
	require.NoError(t, err)

	assert.Equal(t, "New Name", got.Name)
	assert.Equal(t, "Warszawa", got.City, "unset fields must stay untouched")
}

func TestService_UpdateProfile_RejectsInvalidNIP(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := company.NewMockRepository(ctrl)
	repo.EXPECT().GetProfile(gomock.Any()).Return(&company.Profile{ID: uuid.New(), NIP: "5260250995"}, nil)

	svc := company.NewService(repo, testDefaults())

	badNIP := "0000000001"
	_, err := svc.UpdateProfile(context.Background(), company.UpdateParams{NIP: &badNIP})
	require.ErrorIs(t, err, company.ErrInvalidNIP)
}

func TestService_UpdateTaxSettings(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	companyID := uuid.New()

	repo := company.NewMockRepository(ctrl)
	repo.EXPECT().GetProfile(gomock.Any()).Return(&company.Profile{ID: companyID}, nil)
	repo.EXPECT().TaxSettings(gomock.Any(), companyID).Return(&company.TaxSettings{
		ID:             uuid.New(),
		CompanyID:      companyID,
		IsVATPayer:     true,
		VATRate:        d("23.00"),
		TaxType:        company.TaxRyczalt,
		PITRyczaltRate: d("12.00"),
	}, nil)
	repo.EXPECT().UpdateTaxSettings(gomock.Any(), gomock.Any()).Return(nil)

	svc := company.NewService(repo, testDefaults())

	newType := company.TaxLiniowy
	got, err := svc.UpdateTaxSettings(context.Background(), company.TaxSettingsUpdate{TaxType: &newType})
	require.NoError(t, err)

	assert.Equal(t, company.TaxLiniowy, got.TaxType)
	assert.True(t, got.VATRate.Equal(d("23.00")))
}

func TestService_ZUSSettings_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	companyID := uuid.New()

	repo := company.NewMockRepository(ctrl)
	repo.EXPECT().GetProfile(gomock.Any()).Return(&company.Profile{ID: companyID}, nil)
	repo.EXPECT().ZUSSettings(gomock.Any(), companyID).Return(nil, company.ErrZUSSettingsNotFound)

	svc := company.NewService(repo, testDefaults())

	_, err := svc.ZUSSettings(context.Background())
	require.ErrorIs(t, err, company.ErrZUSSettingsNotFound)
}
