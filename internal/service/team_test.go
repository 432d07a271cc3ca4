package service_test

import (
	"context"
	"testing"

	"mailops-backend/internal/auth"
	"mailops-backend/internal/database/models"
	apperrors "mailops-backend/internal/errors"
	"mailops-backend/internal/mocks"
	"mailops-backend/internal/service"
	"mailops-backend/internal/testutils"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type TeamServiceTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockTeams    *mocks.MockTeamRepositoryInterface
	mockProfiles *mocks.MockProfileRepositoryInterface
	teamService  *service.TeamService
	factories    *testutils.FactorySet
	admin        *models.Profile
}

func (suite *TeamServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockTeams = mocks.NewMockTeamRepositoryInterface(suite.ctrl)
	suite.mockProfiles = mocks.NewMockProfileRepositoryInterface(suite.ctrl)
	suite.factories = testutils.NewFactorySet()
	suite.teamService = service.NewTeamService(service.NewCallerResolver(suite.mockProfiles), suite.mockTeams, suite.mockProfiles, validator.New())
	suite.admin = suite.factories.Profile.Admin()
}

func (suite *TeamServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *TeamServiceTestSuite) asAdmin() context.Context {
	suite.mockProfiles.EXPECT().GetByID(gomock.Any(), suite.admin.ID).Return(suite.admin, nil)
	return auth.ContextWithUserID(context.Background(), suite.admin.ID)
}

func (suite *TeamServiceTestSuite) TestCreate() {
	ctx := suite.asAdmin()
	suite.mockTeams.EXPECT().GetByName(gomock.Any(), "Falcon").Return(nil, gorm.ErrRecordNotFound)
	suite.mockTeams.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

	team, err := suite.teamService.Create(ctx, &service.TeamRequest{Name: " Falcon ", Description: "EU"})

	suite.Require().NoError(err)
	suite.Equal("Falcon", team.Name)
}

func (suite *TeamServiceTestSuite) TestCreate_DuplicateName() {
	ctx := suite.asAdmin()
	suite.mockTeams.EXPECT().GetByName(gomock.Any(), "Falcon").Return(suite.factories.Team.WithName("Falcon"), nil)

	_, err := suite.teamService.Create(ctx, &service.TeamRequest{Name: "Falcon"})

	suite.ErrorIs(err, apperrors.ErrTeamExists)
}

func (suite *TeamServiceTestSuite) TestCreate_Validation() {
	_, err := suite.teamService.Create(suite.asAdmin(), &service.TeamRequest{Name: "   "})
	suite.True(apperrors.IsValidation(err))
}

func (suite *TeamServiceTestSuite) TestNonAdminIsRefused() {
	leader := suite.factories.Profile.Leader(uuid.New())
	suite.mockProfiles.EXPECT().GetByID(gomock.Any(), leader.ID).Return(leader, nil)

	_, err := suite.teamService.GetAll(auth.ContextWithUserID(context.Background(), leader.ID), 1, 20)

	suite.ErrorIs(err, apperrors.ErrForbiddenRole)
}

func (suite *TeamServiceTestSuite) TestGetAll_NormalizesPagination() {
	ctx := suite.asAdmin()
	suite.mockTeams.EXPECT().GetAll(gomock.Any(), 20, 0).Return([]models.Team{*suite.factories.Team.Create()}, int64(1), nil)

	resp, err := suite.teamService.GetAll(ctx, 0, 500)

	suite.Require().NoError(err)
	suite.Equal(1, resp.Page)
	suite.Equal(20, resp.PageSize)
	suite.Len(resp.Teams, 1)
}

func (suite *TeamServiceTestSuite) TestUpdate_RenameToTakenName() {
	team := suite.factories.Team.WithName("Falcon")
	ctx := suite.asAdmin()
	suite.mockTeams.EXPECT().GetByID(gomock.Any(), team.ID).Return(team, nil)
	suite.mockTeams.EXPECT().GetByName(gomock.Any(), "Hawk").Return(suite.factories.Team.WithName("Hawk"), nil)

	_, err := suite.teamService.Update(ctx, team.ID, &service.TeamRequest{Name: "Hawk"})

	suite.ErrorIs(err, apperrors.ErrTeamExists)
}

func (suite *TeamServiceTestSuite) TestUpdate_DescriptionOnly() {
	team := suite.factories.Team.WithName("Falcon")
	ctx := suite.asAdmin()
	suite.mockTeams.EXPECT().GetByID(gomock.Any(), team.ID).Return(team, nil)
	suite.mockTeams.EXPECT().Update(gomock.Any(), team).Return(nil)

	updated, err := suite.teamService.Update(ctx, team.ID, &service.TeamRequest{Name: "Falcon", Description: "night shift"})

	suite.Require().NoError(err)
	suite.Equal("night shift", updated.Description)
}

func (suite *TeamServiceTestSuite) TestDelete() {
	suite.Run("refused while it has members", func() {
		id := uuid.New()
		ctx := suite.asAdmin()
		suite.mockProfiles.EXPECT().CountByTeam(gomock.Any(), id).Return(int64(3), nil)

		suite.ErrorIs(suite.teamService.Delete(ctx, id), apperrors.ErrTeamHasMembers)
	})

	suite.Run("missing", func() {
		id := uuid.New()
		ctx := suite.asAdmin()
		suite.mockProfiles.EXPECT().CountByTeam(gomock.Any(), id).Return(int64(0), nil)
		suite.mockTeams.EXPECT().Delete(gomock.Any(), id).Return(gorm.ErrRecordNotFound)

		suite.ErrorIs(suite.teamService.Delete(ctx, id), apperrors.ErrTeamNotFound)
	})

	suite.Run("empty team", func() {
		id := uuid.New()
		ctx := suite.asAdmin()
		suite.mockProfiles.EXPECT().CountByTeam(gomock.Any(), id).Return(int64(0), nil)
		suite.mockTeams.EXPECT().Delete(gomock.Any(), id).Return(nil)

		suite.NoError(suite.teamService.Delete(ctx, id))
	})
}

func TestTeamServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TeamServiceTestSuite))
}
