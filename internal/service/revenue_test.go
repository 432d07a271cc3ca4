package service_test

import (
	"context"
	"testing"
	"time"

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
	"go.uber.org/mock/gomock"
)

type RevenueServiceTestSuite struct {
	suite.Suite
	ctrl           *gomock.Controller
	mockRevenue    *mocks.MockRevenueRepositoryInterface
	mockProfiles   *mocks.MockProfileRepositoryInterface
	revenueService *service.RevenueService
	factories      *testutils.FactorySet

	teamID uuid.UUID
	mailer *models.Profile
	leader *models.Profile
}

func (suite *RevenueServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRevenue = mocks.NewMockRevenueRepositoryInterface(suite.ctrl)
	suite.mockProfiles = mocks.NewMockProfileRepositoryInterface(suite.ctrl)
	suite.factories = testutils.NewFactorySet()
	suite.revenueService = service.NewRevenueService(service.NewCallerResolver(suite.mockProfiles), suite.mockRevenue, validator.New()).
		WithClock(func() time.Time { return time.Date(2026, 3, 14, 22, 0, 0, 0, time.UTC) })

	suite.teamID = uuid.New()
	suite.mailer = suite.factories.Profile.Mailer(suite.teamID)
	suite.leader = suite.factories.Profile.Leader(suite.teamID)
}

func (suite *RevenueServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *RevenueServiceTestSuite) as(p *models.Profile) context.Context {
	suite.mockProfiles.EXPECT().GetByID(gomock.Any(), p.ID).Return(p, nil)
	return auth.ContextWithUserID(context.Background(), p.ID)
}

func (suite *RevenueServiceTestSuite) TestLog_DefaultsToToday() {
	ctx := suite.as(suite.mailer)
	suite.mockRevenue.EXPECT().Upsert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, entry *models.DailyRevenue) error {
			suite.Equal("2026-03-14", entry.RevenueDate)
			suite.Equal(suite.mailer.ID, entry.MailerID)
			suite.Equal(suite.teamID, entry.TeamID)
			return nil
		})

	entry, err := suite.revenueService.Log(ctx, &service.LogRevenueRequest{Amount: 42.5})

	suite.Require().NoError(err)
	suite.Equal(42.5, entry.Amount)
}

func (suite *RevenueServiceTestSuite) TestLog_Refusals() {
	_, err := suite.revenueService.Log(suite.as(suite.mailer), &service.LogRevenueRequest{RevenueDate: "2026-03-15", Amount: 1})
	suite.ErrorIs(err, apperrors.ErrRevenueDateInFuture)

	_, err = suite.revenueService.Log(suite.as(suite.mailer), &service.LogRevenueRequest{RevenueDate: "2026-03-10", Amount: -1})
	suite.True(apperrors.IsValidation(err))

	_, err = suite.revenueService.Log(suite.as(suite.mailer), &service.LogRevenueRequest{RevenueDate: "14/03/2026", Amount: 1})
	suite.True(apperrors.IsValidation(err))

	_, err = suite.revenueService.Log(suite.as(suite.leader), &service.LogRevenueRequest{Amount: 1})
	suite.ErrorIs(err, apperrors.ErrForbiddenRole)
}

func (suite *RevenueServiceTestSuite) TestList_MailerSeesOwnRows() {
	ctx := suite.as(suite.mailer)
	other := uuid.New()
	suite.mockRevenue.EXPECT().List(gomock.Any(), repository.RevenueFilter{
		MailerID: &suite.mailer.ID,
		TeamID:   &suite.teamID,
		From:     "2026-03-01",
		To:       "2026-03-14",
	}).Return(nil, int64(0), nil)

	_, _, err := suite.revenueService.List(ctx, service.RevenueQuery{From: "2026-03-01", To: "2026-03-14", MailerID: &other})
	suite.NoError(err)
}

func (suite *RevenueServiceTestSuite) TestList_InvalidRange() {
	_, _, err := suite.revenueService.List(suite.as(suite.leader), service.RevenueQuery{From: "2026-03-14", To: "2026-03-01"})
	suite.ErrorIs(err, apperrors.ErrInvalidDateRange)

	_, _, err = suite.revenueService.List(suite.as(suite.leader), service.RevenueQuery{From: "yesterday"})
	suite.ErrorIs(err, apperrors.ErrInvalidDateRange)
}

func (suite *RevenueServiceTestSuite) TestSummary() {
	suite.Run("leader gets own team", func() {
		ctx := suite.as(suite.leader)
		suite.mockRevenue.EXPECT().SummaryByMailer(gomock.Any(), suite.teamID, "", "").
			Return([]repository.MailerRevenueTotal{{MailerID: suite.mailer.ID, Days: 2, Total: 80}}, nil)

		totals, err := suite.revenueService.Summary(ctx, nil, "", "")
		suite.Require().NoError(err)
		suite.Len(totals, 1)
	})

	suite.Run("leader asks for another team", func() {
		other := uuid.New()
		_, err := suite.revenueService.Summary(suite.as(suite.leader), &other, "", "")
		suite.ErrorIs(err, apperrors.ErrForbiddenTeamMismatch)
	})

	suite.Run("admin must name a team", func() {
		_, err := suite.revenueService.Summary(suite.as(suite.factories.Profile.Admin()), nil, "", "")
		suite.True(apperrors.IsValidation(err))
	})

	suite.Run("mailer", func() {
		_, err := suite.revenueService.Summary(suite.as(suite.mailer), nil, "", "")
		suite.ErrorIs(err, apperrors.ErrForbiddenRole)
	})
}

func TestRevenueServiceTestSuite(t *testing.T) {
	suite.Run(t, new(RevenueServiceTestSuite))
}
