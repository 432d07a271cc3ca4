package service_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"mailops-backend/internal/auth"
	"mailops-backend/internal/database/models"
	apperrors "mailops-backend/internal/errors"
	"mailops-backend/internal/mocks"
	"mailops-backend/internal/repository"
	"mailops-backend/internal/service"
	"mailops-backend/internal/testutils"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"github.com/xuri/excelize/v2"
	"go.uber.org/mock/gomock"
)

type ImportServiceTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	mockResources *mocks.MockResourceRepositoryInterface
	mockProfiles  *mocks.MockProfileRepositoryInterface
	views         *fakeViewCache
	importSvc     *service.ImportService
	factories     *testutils.FactorySet

	teamID uuid.UUID
	mailer *models.Profile
}

func (suite *ImportServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockResources = mocks.NewMockResourceRepositoryInterface(suite.ctrl)
	suite.mockProfiles = mocks.NewMockProfileRepositoryInterface(suite.ctrl)
	suite.views = newFakeViewCache()
	suite.factories = testutils.NewFactorySet()
	suite.importSvc = service.NewImportService(service.NewCallerResolver(suite.mockProfiles), suite.mockResources, suite.views, validator.New(), 6)

	suite.teamID = uuid.New()
	suite.mailer = suite.factories.Profile.Mailer(suite.teamID)
}

func (suite *ImportServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *ImportServiceTestSuite) as(p *models.Profile) context.Context {
	suite.mockProfiles.EXPECT().GetByID(gomock.Any(), p.ID).Return(p, nil)
	return auth.ContextWithUserID(context.Background(), p.ID)
}

func (suite *ImportServiceTestSuite) TestDetectImportFormat() {
	for name, want := range map[string]service.ImportFormat{
		"":            service.ImportFormatCSV,
		"servers.csv": service.ImportFormatCSV,
		"list.TXT":    service.ImportFormatCSV,
		"book.xlsx":   service.ImportFormatXLSX,
	} {
		got, err := service.DetectImportFormat(name)
		suite.NoError(err, name)
		suite.Equal(want, got, name)
	}

	_, err := service.DetectImportFormat("dump.pdf")
	suite.ErrorIs(err, apperrors.ErrUnsupportedImportFmt)
}

func (suite *ImportServiceTestSuite) TestImportCSV_ItemizedResults() {
	body := strings.Join([]string{
		"ip_address,provider,hostname",
		"# datacenter A",
		"10.0.0.1,ovh,mx1",
		"",
		"10.0.0.2,ovh",
		"10.0.0.1,ovh,mx1-again",
		"not-an-ip,ovh",
		"10.0.0.3",
		"10.0.0.4,a,b,c,too-many",
	}, "\n")

	ctx := suite.as(suite.mailer)
	suite.mockResources.EXPECT().
		ExistingKeys(gomock.Any(), models.ResourceKindServer, suite.teamID, []string{"10.0.0.1", "10.0.0.2", "10.0.0.3"}).
		Return([]string{"10.0.0.3"}, nil)
	suite.mockResources.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, r models.Resource) error {
			if r.NaturalKey() == "10.0.0.2" {
				return errors.New("disk full")
			}
			return nil
		}).Times(2)

	report, err := suite.importSvc.Import(ctx, models.ResourceKindServer, service.ImportFormatCSV, strings.NewReader(body))

	suite.Require().NoError(err)
	suite.Equal(6, report.Total)
	suite.Equal(1, report.Created)
	suite.Equal(5, report.Failed)

	byLine := map[int]service.ImportRowResult{}
	for _, row := range report.Rows {
		byLine[row.Line] = row
	}
	suite.Equal(service.ImportRowCreated, byLine[3].Status)
	suite.Contains(byLine[5].Error, "disk full")
	suite.Equal("duplicate in batch", byLine[6].Error)
	suite.Contains(byLine[7].Error, "ip_address")
	suite.Equal("already exists", byLine[8].Error)
	suite.Contains(byLine[9].Error, "columns")
	suite.Equal([]uuid.UUID{suite.teamID}, suite.views.invalidated)
}

func (suite *ImportServiceTestSuite) TestImportXLSX() {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	suite.Require().NoError(f.SetSheetRow(sheet, "A1", &[]interface{}{"email_address", "provider"}))
	suite.Require().NoError(f.SetSheetRow(sheet, "A2", &[]interface{}{"Seed1@Gmail.com", "gmail"}))
	suite.Require().NoError(f.SetSheetRow(sheet, "A3", &[]interface{}{"seed1@gmail.com", "gmail"}))
	var buf bytes.Buffer
	_, err := f.WriteTo(&buf)
	suite.Require().NoError(err)

	ctx := suite.as(suite.mailer)
	suite.mockResources.EXPECT().ExistingKeys(gomock.Any(), models.ResourceKindSeedEmail, suite.teamID, []string{"seed1@gmail.com"}).Return(nil, nil)
	suite.mockResources.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

	report, err := suite.importSvc.Import(ctx, models.ResourceKindSeedEmail, service.ImportFormatXLSX, &buf)

	suite.Require().NoError(err)
	suite.Equal(2, report.Total)
	suite.Equal(1, report.Created)
	suite.Equal(2, report.Rows[0].Line)
	suite.Equal("duplicate in batch", report.Rows[1].Error)
}

func (suite *ImportServiceTestSuite) TestImportRejectsWholeBatch() {
	suite.Run("empty", func() {
		_, err := suite.importSvc.Import(suite.as(suite.mailer), models.ResourceKindProxy, service.ImportFormatCSV, strings.NewReader("connection_string\n# nothing\n\n"))
		suite.ErrorIs(err, apperrors.ErrImportEmpty)
	})

	suite.Run("too large", func() {
		body := strings.Repeat("alias-x\n", 7)
		_, err := suite.importSvc.Import(suite.as(suite.mailer), models.ResourceKindRDP, service.ImportFormatCSV, strings.NewReader(body))
		suite.ErrorIs(err, apperrors.ErrImportTooLarge)
	})

	suite.Run("not a workbook", func() {
		_, err := suite.importSvc.Import(suite.as(suite.mailer), models.ResourceKindRDP, service.ImportFormatXLSX, strings.NewReader("plain text"))
		suite.True(apperrors.IsValidation(err))
	})

	suite.Run("admin has no team", func() {
		_, err := suite.importSvc.Import(suite.as(suite.factories.Profile.Admin()), models.ResourceKindRDP, service.ImportFormatCSV, strings.NewReader("a"))
		suite.ErrorIs(err, apperrors.ErrForbiddenRole)
	})
}

func (suite *ImportServiceTestSuite) TestImport_AllRowsInvalidSkipsLookup() {
	report, err := suite.importSvc.Import(suite.as(suite.mailer), models.ResourceKindServer, service.ImportFormatCSV, strings.NewReader("bogus\nalso-bogus\n"))

	suite.Require().NoError(err)
	suite.Equal(0, report.Created)
	suite.Equal(2, report.Failed)
	suite.Empty(suite.views.invalidated)
}

func (suite *ImportServiceTestSuite) TestExport() {
	leader := suite.factories.Profile.Leader(suite.teamID)
	proxies := []models.Resource{
		suite.factories.Resource.Proxy(suite.mailer.ID, suite.teamID),
		suite.factories.Resource.Proxy(suite.mailer.ID, suite.teamID),
	}
	ctx := suite.as(leader)
	suite.mockResources.EXPECT().List(gomock.Any(), models.ResourceKindProxy, repository.ResourceFilter{TeamID: &suite.teamID}).Return(proxies, int64(2), nil)

	data, err := suite.importSvc.Export(ctx, models.ResourceKindProxy)
	suite.Require().NoError(err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	suite.Require().NoError(err)
	defer f.Close()
	rows, err := f.GetRows("proxies")
	suite.Require().NoError(err)
	suite.Require().Len(rows, 3)
	suite.Equal("connection_string", rows[0][0])
	suite.Equal(proxies[0].NaturalKey(), rows[1][0])
	suite.Equal("active", rows[1][3])

	_, err = suite.importSvc.Export(suite.as(suite.mailer), models.ResourceKindProxy)
	suite.ErrorIs(err, apperrors.ErrForbiddenRole)
}

func TestImportServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ImportServiceTestSuite))
}
