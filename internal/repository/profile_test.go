package repository

import (
	"context"
	"testing"

	"mailops-backend/internal/database/models"
	"mailops-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// ProfileRepositoryTestSuite tests the ProfileRepository
type ProfileRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *ProfileRepository
	teams         *TeamRepository
	factories     *testutils.FactorySet
	ctx           context.Context
	team          *models.Team
}

func (suite *ProfileRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewProfileRepository(suite.baseTestSuite.DB)
	suite.teams = NewTeamRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
	suite.ctx = context.Background()
}

func (suite *ProfileRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

func (suite *ProfileRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
	suite.team = suite.factories.Team.Create()
	suite.Require().NoError(suite.teams.Create(suite.ctx, suite.team))
}

func (suite *ProfileRepositoryTestSuite) TestCreateLowercasesEmail() {
	profile := suite.factories.Profile.WithEmail("  Mixed.Case@Example.COM ")
	suite.Require().NoError(suite.repo.Create(suite.ctx, profile))

	stored, err := suite.repo.GetByEmail(suite.ctx, "MIXED.case@example.com")

	suite.NoError(err)
	suite.Equal(profile.ID, stored.ID)
	suite.Equal("mixed.case@example.com", stored.Email)
	suite.Equal(models.RolePendingApproval, stored.Role)
}

func (suite *ProfileRepositoryTestSuite) TestCreateDuplicateEmail() {
	suite.Require().NoError(suite.repo.Create(suite.ctx, suite.factories.Profile.WithEmail("dup@example.com")))

	err := suite.repo.Create(suite.ctx, suite.factories.Profile.WithEmail("DUP@example.com"))

	suite.Error(err)
}

func (suite *ProfileRepositoryTestSuite) TestGetByIDNotFound() {
	_, err := suite.repo.GetByID(suite.ctx, uuid.New())

	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

func (suite *ProfileRepositoryTestSuite) TestUnknownStoredRoleFailsClosed() {
	profile := suite.factories.Profile.Create()
	suite.Require().NoError(suite.repo.Create(suite.ctx, profile))
	suite.Require().NoError(suite.baseTestSuite.DB.Exec(
		"UPDATE profiles SET role = ? WHERE id = ?", "superuser", profile.ID).Error)

	_, err := suite.repo.GetByID(suite.ctx, profile.ID)

	suite.ErrorIs(err, ErrUnknownStoredValue)
}

func (suite *ProfileRepositoryTestSuite) TestListByRoleAndTeam() {
	suite.Require().NoError(suite.repo.Create(suite.ctx, suite.factories.Profile.Mailer(suite.team.ID)))
	suite.Require().NoError(suite.repo.Create(suite.ctx, suite.factories.Profile.Leader(suite.team.ID)))
	suite.Require().NoError(suite.repo.Create(suite.ctx, suite.factories.Profile.Create()))

	members, total, err := suite.repo.List(suite.ctx, ProfileFilter{TeamID: &suite.team.ID})
	suite.NoError(err)
	suite.Equal(int64(2), total)
	suite.Len(members, 2)

	pending := models.RolePendingApproval
	waiting, total, err := suite.repo.List(suite.ctx, ProfileFilter{Role: &pending})
	suite.NoError(err)
	suite.Equal(int64(1), total)
	suite.Require().Len(waiting, 1)
	suite.Nil(waiting[0].TeamID)
}

func (suite *ProfileRepositoryTestSuite) TestUpdateRoleAndTeam() {
	profile := suite.factories.Profile.Create()
	suite.Require().NoError(suite.repo.Create(suite.ctx, profile))

	suite.NoError(suite.repo.UpdateRoleAndTeam(suite.ctx, profile.ID, models.RoleMailer, &suite.team.ID))

	stored, err := suite.repo.GetByID(suite.ctx, profile.ID)
	suite.Require().NoError(err)
	suite.Equal(models.RoleMailer, stored.Role)
	suite.Require().NotNil(stored.TeamID)
	suite.Equal(suite.team.ID, *stored.TeamID)

	suite.NoError(suite.repo.UpdateRoleAndTeam(suite.ctx, profile.ID, models.RoleAdmin, nil))
	stored, err = suite.repo.GetByID(suite.ctx, profile.ID)
	suite.Require().NoError(err)
	suite.Equal(models.RoleAdmin, stored.Role)
	suite.Nil(stored.TeamID)
}

func (suite *ProfileRepositoryTestSuite) TestUpdateDisplayNameMissingProfile() {
	err := suite.repo.UpdateDisplayName(suite.ctx, uuid.New(), "ghost")

	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

func (suite *ProfileRepositoryTestSuite) TestCountByTeamAndDelete() {
	mailer := suite.factories.Profile.Mailer(suite.team.ID)
	suite.Require().NoError(suite.repo.Create(suite.ctx, mailer))

	count, err := suite.repo.CountByTeam(suite.ctx, suite.team.ID)
	suite.NoError(err)
	suite.Equal(int64(1), count)

	suite.NoError(suite.repo.Delete(suite.ctx, mailer.ID))
	count, err = suite.repo.CountByTeam(suite.ctx, suite.team.ID)
	suite.NoError(err)
	suite.Zero(count)
	suite.ErrorIs(suite.repo.Delete(suite.ctx, mailer.ID), gorm.ErrRecordNotFound)
}

func TestProfileRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(ProfileRepositoryTestSuite))
}
