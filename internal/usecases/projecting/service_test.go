package projecting

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/royalty-manager-api/infrastructure/repository"
	"github.com/vfg2006/royalty-manager-api/infrastructure/repository/mocks"
	"github.com/vfg2006/royalty-manager-api/internal/calculator"
	"github.com/vfg2006/royalty-manager-api/internal/domain"
	"github.com/vfg2006/royalty-manager-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

type testMocks struct {
	artists            *mocks.MockArtistRepository
	catalogs           *mocks.MockCatalogRepository
	distributors       *mocks.MockDistributorRepository
	projects           *mocks.MockProjectRepository
	catalogProjections *mocks.MockCatalogProjectionRepository
	concertProjections *mocks.MockConcertProjectionRepository
	projectProjections *mocks.MockProjectProjectionRepository
}

func newTestService(t *testing.T) (*Service, testMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)
	m := testMocks{
		artists:            mocks.NewMockArtistRepository(ctrl),
		catalogs:           mocks.NewMockCatalogRepository(ctrl),
		distributors:       mocks.NewMockDistributorRepository(ctrl),
		projects:           mocks.NewMockProjectRepository(ctrl),
		catalogProjections: mocks.NewMockCatalogProjectionRepository(ctrl),
		concertProjections: mocks.NewMockConcertProjectionRepository(ctrl),
		projectProjections: mocks.NewMockProjectProjectionRepository(ctrl),
	}

	calc, err := calculator.New(calculator.DefaultSettings())
	require.NoError(t, err)

	service := NewService(Repositories{
		Artists:            m.artists,
		Catalogs:           m.catalogs,
		Distributors:       m.distributors,
		Projects:           m.projects,
		CatalogProjections: m.catalogProjections,
		ConcertProjections: m.concertProjections,
		ProjectProjections: m.projectProjections,
	}, calc)
	service.newID = func() (string, error) { return "PRJ001", nil }

	return service, m
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func assertDecimal(t *testing.T, expected string, actual decimal.Decimal, field string) {
	t.Helper()
	assert.Truef(t, dec(expected).Equal(actual), "%s: esperado %s, obtido %s", field, expected, actual)
}

// assertProjectionError verifica o erro base e o código da API
func assertProjectionError(t *testing.T, err error, base error, code, field string) {
	t.Helper()

	require.Error(t, err)
	assert.ErrorIs(t, err, base)

	var projErr *ProjectionError
	require.True(t, errors.As(err, &projErr), "esperado ProjectionError, obtido %T", err)
	assert.Equal(t, code, projErr.Code)
	if field != "" {
		assert.Equal(t, field, projErr.Field)
	}
}

var (
	testArtist      = &domain.Artist{ID: "ART001", Name: "Artista"}
	testDistributor = &domain.Distributor{ID: "DST001", Name: "Distribuidora", Percentage: decimal.NewFromInt(20)}
	testCatalog     = &domain.Catalog{ID: "CAT001", Title: "Catálogo", ArtistID: "ART001", DistributorID: "DST001"}
	testProject     = &domain.Project{ID: "PRO001", Name: "Projeto", ArtistID: "ART001", Budget: decimal.NewFromInt(4000)}
)

func catalogInput() domain.CatalogProjectionInput {
	return domain.CatalogProjectionInput{
		ArtistID:                "ART001",
		CatalogID:               "CAT001",
		NumberOfTracks:          10,
		Period:                  30,
		DailyPlaysPerTrack:      1000,
		AverageValue:            dec("1000"),
		ParticipationPercentage: dec("50"),
		CompanyPercentage:       dec("40"),
	}
}

func concertInput() domain.ConcertProjectionInput {
	return domain.ConcertProjectionInput{
		ArtistID:           "ART001",
		Title:              "Turnê 2025",
		Year:               2025,
		ShowsPerYear:       12,
		Period:             12,
		AverageTicketValue: dec("5000"),
		CrewPercentage:     dec("20"),
		ArtistPercentage:   dec("40"),
	}
}

func projectInput() domain.ProjectProjectionInput {
	return domain.ProjectProjectionInput{
		ProjectID:                 "PRO001",
		DistributorID:             "DST001",
		Year:                      2025,
		NumberOfTracks:            5,
		Period:                    365,
		AverageDailyPlaysPerTrack: 2000,
		AverageValuePerMPlays:     dec("1000"),
		ParticipationPercentage:   dec("50"),
		CompanyPercentage:         dec("40"),
	}
}

func (m testMocks) expectCatalogRefs() {
	m.artists.EXPECT().GetByID(gomock.Any(), "ART001").Return(testArtist, nil)
	m.catalogs.EXPECT().GetByID(gomock.Any(), "CAT001").Return(testCatalog, nil)
	m.distributors.EXPECT().GetByID(gomock.Any(), "DST001").Return(testDistributor, nil)
}

func (m testMocks) expectProjectRefs() {
	m.projects.EXPECT().GetByID(gomock.Any(), "PRO001").Return(testProject, nil)
	m.distributors.EXPECT().GetByID(gomock.Any(), "DST001").Return(testDistributor, nil)
}

func TestService_CreateCatalogProjection(t *testing.T) {
	ctx := context.Background()

	t.Run("Calcula todos os campos derivados antes de persistir", func(t *testing.T) {
		service, m := newTestService(t)
		m.expectCatalogRefs()

		m.catalogProjections.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, p *domain.CatalogProjection) error {
				assert.Equal(t, "PRJ001", p.ID)
				assertDecimal(t, "480", p.Profitability, "profitability persistida")
				return nil
			})

		projection, err := service.CreateCatalogProjection(ctx, catalogInput())
		require.NoError(t, err)

		assert.Equal(t, "PRJ001", projection.ID)
		assert.Equal(t, int64(10000), projection.DailyPlaysPerCatalog)
		assert.Equal(t, int64(300000), projection.TotalPlays)
		assertDecimal(t, "60", projection.ArtistPercentage, "artist_percentage")
		assertDecimal(t, "20", projection.DistributorPercentage, "distributor_percentage")
		assertDecimal(t, "300", projection.GrossRevenue, "gross_revenue")
		assertDecimal(t, "240", projection.GrossProfit, "gross_profit")
		assertDecimal(t, "96", projection.ProRata, "pro_rata")
		assertDecimal(t, "480", projection.Profitability, "profitability")
	})

	t.Run("Catálogo inexistente", func(t *testing.T) {
		service, m := newTestService(t)
		m.artists.EXPECT().GetByID(gomock.Any(), "ART001").Return(testArtist, nil)
		m.catalogs.EXPECT().GetByID(gomock.Any(), "CAT001").Return(nil, nil)

		_, err := service.CreateCatalogProjection(ctx, catalogInput())
		assertProjectionError(t, err, calculator.ErrMissingReference, apiErrors.ErrMissingReference, "catalog_id")
	})

	t.Run("Catálogo de outro artista", func(t *testing.T) {
		service, m := newTestService(t)
		m.artists.EXPECT().GetByID(gomock.Any(), "ART002").Return(&domain.Artist{ID: "ART002", Name: "Outro"}, nil)
		m.catalogs.EXPECT().GetByID(gomock.Any(), "CAT001").Return(testCatalog, nil)

		in := catalogInput()
		in.ArtistID = "ART002"

		_, err := service.CreateCatalogProjection(ctx, in)
		assertProjectionError(t, err, calculator.ErrMissingReference, apiErrors.ErrMissingReference, "catalog_id")
	})

	t.Run("Distribuidora do catálogo inexistente", func(t *testing.T) {
		service, m := newTestService(t)
		m.artists.EXPECT().GetByID(gomock.Any(), "ART001").Return(testArtist, nil)
		m.catalogs.EXPECT().GetByID(gomock.Any(), "CAT001").Return(testCatalog, nil)
		m.distributors.EXPECT().GetByID(gomock.Any(), "DST001").Return(nil, nil)

		_, err := service.CreateCatalogProjection(ctx, catalogInput())
		assertProjectionError(t, err, calculator.ErrMissingReference, apiErrors.ErrMissingReference, "distributor_id")
	})

	t.Run("Artista não informado", func(t *testing.T) {
		service, _ := newTestService(t)
		in := catalogInput()
		in.ArtistID = ""

		_, err := service.CreateCatalogProjection(ctx, in)
		assertProjectionError(t, err, calculator.ErrMissingReference, apiErrors.ErrMissingReference, "artist_id")
	})

	t.Run("Período zero é rejeitado", func(t *testing.T) {
		service, m := newTestService(t)
		m.expectCatalogRefs()
		in := catalogInput()
		in.Period = 0

		_, err := service.CreateCatalogProjection(ctx, in)
		assertProjectionError(t, err, calculator.ErrInvalidInput, apiErrors.ErrInvalidInput, "period")
	})

	t.Run("Percentual da empresa acima de 100", func(t *testing.T) {
		service, m := newTestService(t)
		m.expectCatalogRefs()
		in := catalogInput()
		in.CompanyPercentage = dec("150")

		_, err := service.CreateCatalogProjection(ctx, in)
		assertProjectionError(t, err, calculator.ErrInvalidInput, apiErrors.ErrInvalidInput, "company_percentage")
	})

	t.Run("Erro do banco ao salvar", func(t *testing.T) {
		service, m := newTestService(t)
		m.expectCatalogRefs()
		m.catalogProjections.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("connection refused"))

		_, err := service.CreateCatalogProjection(ctx, catalogInput())
		assertProjectionError(t, err, ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "")
	})
}

func TestService_UpdateCatalogProjection(t *testing.T) {
	ctx := context.Background()
	createdAt := time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)

	t.Run("Recalcula a partir da entrada completa", func(t *testing.T) {
		service, m := newTestService(t)

		stored := &domain.CatalogProjection{
			ID:                     "PRJ009",
			CatalogProjectionInput: catalogInput(),
			CatalogProjectionResult: domain.CatalogProjectionResult{
				Profitability: dec("480"),
			},
			CreatedAt: createdAt,
		}
		m.catalogProjections.EXPECT().GetByID(gomock.Any(), "PRJ009").Return(stored, nil)
		m.expectCatalogRefs()
		m.catalogProjections.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)

		in := catalogInput()
		in.AverageValue = dec("2000")

		projection, err := service.UpdateCatalogProjection(ctx, "PRJ009", in)
		require.NoError(t, err)

		assert.Equal(t, "PRJ009", projection.ID)
		assert.Equal(t, createdAt, projection.CreatedAt)
		assertDecimal(t, "600", projection.GrossRevenue, "gross_revenue")
		assertDecimal(t, "960", projection.Profitability, "profitability")
	})

	t.Run("Projeção inexistente", func(t *testing.T) {
		service, m := newTestService(t)
		m.catalogProjections.EXPECT().GetByID(gomock.Any(), "NAOEXISTE").Return(nil, nil)

		_, err := service.UpdateCatalogProjection(ctx, "NAOEXISTE", catalogInput())
		assertProjectionError(t, err, ErrProjectionNotFound, apiErrors.ErrNotFound, "id")
	})
}

func TestService_PreviewCatalogProjectionDoesNotPersist(t *testing.T) {
	service, m := newTestService(t)
	m.expectCatalogRefs()

	projection, err := service.PreviewCatalogProjection(context.Background(), catalogInput())
	require.NoError(t, err)

	assert.Empty(t, projection.ID)
	assertDecimal(t, "480", projection.Profitability, "profitability")
}

func TestService_DeleteCatalogProjection(t *testing.T) {
	service, m := newTestService(t)
	m.catalogProjections.EXPECT().
		Delete(gomock.Any(), "NAOEXISTE").
		Return(repository.ErrNotFound)

	err := service.DeleteCatalogProjection(context.Background(), "NAOEXISTE")
	assertProjectionError(t, err, ErrProjectionNotFound, apiErrors.ErrNotFound, "")
}

func TestService_CreateConcertProjection(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name      string
		mutate    func(in *domain.ConcertProjectionInput)
		withRefs  bool
		wantErr   error
		wantCode  string
		wantField string
	}{
		{
			name:      "Equipe e artista passam de 100",
			mutate:    func(in *domain.ConcertProjectionInput) { in.CrewPercentage = dec("70"); in.ArtistPercentage = dec("50") },
			withRefs:  true,
			wantErr:   calculator.ErrInconsistentSplit,
			wantCode:  apiErrors.ErrInconsistentSplit,
			wantField: "company_percentage",
		},
		{
			name:      "Período acima de 12 meses",
			mutate:    func(in *domain.ConcertProjectionInput) { in.Period = 13 },
			withRefs:  true,
			wantErr:   calculator.ErrInvalidInput,
			wantCode:  apiErrors.ErrInvalidInput,
			wantField: "period",
		},
		{
			name:      "Título vazio",
			mutate:    func(in *domain.ConcertProjectionInput) { in.Title = "   " },
			wantErr:   calculator.ErrInvalidInput,
			wantCode:  apiErrors.ErrInvalidInput,
			wantField: "title",
		},
		{
			name:      "Status desconhecido",
			mutate:    func(in *domain.ConcertProjectionInput) { in.Status = "cancelled" },
			wantErr:   calculator.ErrInvalidInput,
			wantCode:  apiErrors.ErrInvalidInput,
			wantField: "status",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := newTestService(t)
			if tt.withRefs {
				m.artists.EXPECT().GetByID(gomock.Any(), "ART001").Return(testArtist, nil)
			}

			in := concertInput()
			tt.mutate(&in)

			_, err := service.CreateConcertProjection(ctx, in)
			assertProjectionError(t, err, tt.wantErr, tt.wantCode, tt.wantField)
		})
	}

	t.Run("Empresa recebe o remanescente e status padrão é draft", func(t *testing.T) {
		service, m := newTestService(t)
		m.artists.EXPECT().GetByID(gomock.Any(), "ART001").Return(testArtist, nil)
		m.concertProjections.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		projection, err := service.CreateConcertProjection(ctx, concertInput())
		require.NoError(t, err)

		assert.Equal(t, domain.ConcertStatusDraft, projection.Status)
		assertDecimal(t, "40", projection.CompanyPercentage, "company_percentage")
		assertDecimal(t, "12", projection.TotalShows, "total_shows")
		assertDecimal(t, "60000", projection.GrossRevenue, "gross_revenue")
		assertDecimal(t, "12000", projection.CrewShare, "crew_share")
		assertDecimal(t, "24000", projection.ArtistShare, "artist_share")
		assertDecimal(t, "24000", projection.CompanyShare, "company_share")
	})
}

func TestService_ListConcertProjectionsRejectsUnknownStatus(t *testing.T) {
	service, _ := newTestService(t)

	_, err := service.ListConcertProjections(context.Background(), repository.ConcertProjectionFilter{Status: "deleted"})
	assertProjectionError(t, err, calculator.ErrInvalidInput, apiErrors.ErrInvalidInput, "status")
}

func TestService_CreateProjectProjection(t *testing.T) {
	ctx := context.Background()

	t.Run("Compara o pro-rata em BRL com o orçamento do projeto", func(t *testing.T) {
		service, m := newTestService(t)
		m.expectProjectRefs()
		m.projectProjections.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		projection, err := service.CreateProjectProjection(ctx, projectInput())
		require.NoError(t, err)

		assert.Equal(t, int64(10000), projection.AverageDailyPlaysPerProject)
		assert.Equal(t, int64(3650000), projection.TotalPlays)
		assertDecimal(t, "3650", projection.GrossRevenue, "gross_revenue")
		assertDecimal(t, "2920", projection.DistributorProfit, "distributor_profit")
		assertDecimal(t, "1168", projection.ProRataUSD, "pro_rata_usd")
		assertDecimal(t, "5840", projection.ProRataBRL, "pro_rata_brl")
		assertDecimal(t, "5840", projection.NetRevenue12Months, "net_revenue_12_months")
		assertDecimal(t, "4000", projection.ProjectBudget, "project_budget")
		assertDecimal(t, "1840", projection.DigitalProfitability, "digital_profitability")
		assertDecimal(t, "0", projection.BudgetAllocation, "budget_allocation")
		assertDecimal(t, "60", projection.ArtistPercentage, "artist_percentage")
	})

	t.Run("Projeto inexistente", func(t *testing.T) {
		service, m := newTestService(t)
		m.projects.EXPECT().GetByID(gomock.Any(), "PRO001").Return(nil, nil)

		_, err := service.CreateProjectProjection(ctx, projectInput())
		assertProjectionError(t, err, calculator.ErrMissingReference, apiErrors.ErrMissingReference, "project_id")
	})

	t.Run("Distribuidora não informada", func(t *testing.T) {
		service, m := newTestService(t)
		m.projects.EXPECT().GetByID(gomock.Any(), "PRO001").Return(testProject, nil)

		in := projectInput()
		in.DistributorID = ""

		_, err := service.CreateProjectProjection(ctx, in)
		assertProjectionError(t, err, calculator.ErrMissingReference, apiErrors.ErrMissingReference, "distributor_id")
	})

	t.Run("Quantidade de faixas zero", func(t *testing.T) {
		service, m := newTestService(t)
		m.expectProjectRefs()

		in := projectInput()
		in.NumberOfTracks = 0

		_, err := service.CreateProjectProjection(ctx, in)
		assertProjectionError(t, err, calculator.ErrInvalidInput, apiErrors.ErrInvalidInput, "number_of_tracks")
	})

	t.Run("Referência removida entre a leitura e a gravação", func(t *testing.T) {
		service, m := newTestService(t)
		m.expectProjectRefs()
		m.projectProjections.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			Return(repository.ErrReferenceViolation)

		_, err := service.CreateProjectProjection(ctx, projectInput())
		assertProjectionError(t, err, calculator.ErrMissingReference, apiErrors.ErrMissingReference, "")
	})
}

func TestService_RecalculateAll(t *testing.T) {
	service, m := newTestService(t)
	ctx := context.Background()

	healthy := &domain.CatalogProjection{ID: "PRJ001", CatalogProjectionInput: catalogInput()}
	orphanInput := catalogInput()
	orphanInput.CatalogID = "CAT404"
	orphan := &domain.CatalogProjection{ID: "PRJ002", CatalogProjectionInput: orphanInput}

	m.catalogProjections.EXPECT().List(gomock.Any(), "").Return([]*domain.CatalogProjection{healthy, orphan}, nil)
	m.artists.EXPECT().GetByID(gomock.Any(), "ART001").Return(testArtist, nil).Times(3)
	m.catalogs.EXPECT().GetByID(gomock.Any(), "CAT001").Return(testCatalog, nil)
	m.catalogs.EXPECT().GetByID(gomock.Any(), "CAT404").Return(nil, nil)

	// A distribuidora passou a cobrar 25% desde o último cálculo
	m.distributors.EXPECT().
		GetByID(gomock.Any(), "DST001").
		Return(&domain.Distributor{ID: "DST001", Percentage: dec("25")}, nil).
		Times(2)

	m.catalogProjections.EXPECT().
		Update(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p *domain.CatalogProjection) error {
			assert.Equal(t, "PRJ001", p.ID)
			assertDecimal(t, "25", p.DistributorPercentage, "distributor_percentage")
			assertDecimal(t, "450", p.Profitability, "profitability")
			return nil
		})

	concert := &domain.ConcertProjection{ID: "PRJ003", ConcertProjectionInput: concertInput()}
	m.concertProjections.EXPECT().List(gomock.Any(), repository.ConcertProjectionFilter{}).Return([]*domain.ConcertProjection{concert}, nil)
	m.concertProjections.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)

	project := &domain.ProjectProjection{ID: "PRJ004", ProjectProjectionInput: projectInput()}
	m.projectProjections.EXPECT().List(gomock.Any(), "").Return([]*domain.ProjectProjection{project}, nil)
	m.projects.EXPECT().GetByID(gomock.Any(), "PRO001").Return(testProject, nil)
	m.projectProjections.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)

	summaries, err := service.RecalculateAll(ctx)
	require.NoError(t, err)
	require.Len(t, summaries, 3)

	assert.Equal(t, domain.RecalculationSummary{Kind: domain.ProjectionKindCatalog, Total: 2, Updated: 1, Failed: 1}, summaries[0])
	assert.Equal(t, domain.RecalculationSummary{Kind: domain.ProjectionKindConcert, Total: 1, Updated: 1}, summaries[1])
	assert.Equal(t, domain.RecalculationSummary{Kind: domain.ProjectionKindProject, Total: 1, Updated: 1}, summaries[2])
}

func TestService_RecalculateAllStopsOnListError(t *testing.T) {
	service, m := newTestService(t)
	m.catalogProjections.EXPECT().List(gomock.Any(), "").Return(nil, errors.New("timeout"))

	summaries, err := service.RecalculateAll(context.Background())
	assertProjectionError(t, err, ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "")
	assert.Empty(t, summaries)
}
