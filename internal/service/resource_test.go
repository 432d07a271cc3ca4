package service_test

import (
	"context"
	"errors"
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
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ResourceServiceTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	mockResources *mocks.MockResourceRepositoryInterface
	mockProfiles  *mocks.MockProfileRepositoryInterface
	views         *fakeViewCache
	resourceSvc   *service.ResourceService
	factories     *testutils.FactorySet

	teamID uuid.UUID
	mailer *models.Profile
	leader *models.Profile
	admin  *models.Profile
}

func (suite *ResourceServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockResources = mocks.NewMockResourceRepositoryInterface(suite.ctrl)
	suite.mockProfiles = mocks.NewMockProfileRepositoryInterface(suite.ctrl)
	suite.views = newFakeViewCache()
	suite.factories = testutils.NewFactorySet()
	suite.resourceSvc = service.NewResourceService(service.NewCallerResolver(suite.mockProfiles), suite.mockResources, suite.views, validator.New())

	suite.teamID = uuid.New()
	suite.mailer = suite.factories.Profile.Mailer(suite.teamID)
	suite.leader = suite.factories.Profile.Leader(suite.teamID)
	suite.admin = suite.factories.Profile.Admin()
}

func (suite *ResourceServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *ResourceServiceTestSuite) as(p *models.Profile) context.Context {
	suite.mockProfiles.EXPECT().GetByID(gomock.Any(), p.ID).Return(p, nil)
	return auth.ContextWithUserID(context.Background(), p.ID)
}

func (suite *ResourceServiceTestSuite) TestCreate_Success() {
	ctx := suite.as(suite.mailer)
	suite.mockResources.EXPECT().ExistingKeys(gomock.Any(), models.ResourceKindServer, suite.teamID, []string{"10.1.1.1"}).Return(nil, nil)
	suite.mockResources.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

	resource, err := suite.resourceSvc.Create(ctx, models.ResourceKindServer, map[string]string{
		"ip_address": " 10.1.1.1 ",
		"provider":   "ovh",
	})

	suite.Require().NoError(err)
	core := resource.GetCore()
	suite.Equal(suite.mailer.ID, core.OwnerMailerID)
	suite.Equal(suite.teamID, core.TeamID)
	suite.Equal(models.StatusActive, core.Status)
	suite.Equal("10.1.1.1", resource.NaturalKey())
	suite.Equal([]uuid.UUID{suite.teamID}, suite.views.invalidated)
}

func (suite *ResourceServiceTestSuite) TestCreate_SeedEmailKeyIsLowercased() {
	ctx := suite.as(suite.leader)
	suite.mockResources.EXPECT().ExistingKeys(gomock.Any(), models.ResourceKindSeedEmail, suite.teamID, []string{"seed@gmail.com"}).Return([]string{"seed@gmail.com"}, nil)

	_, err := suite.resourceSvc.Create(ctx, models.ResourceKindSeedEmail, map[string]string{"email_address": "Seed@Gmail.com"})

	suite.True(apperrors.IsAlreadyExists(err))
}

func (suite *ResourceServiceTestSuite) TestCreate_Validation() {
	testCases := []struct {
		name   string
		kind   models.ResourceKind
		fields map[string]string
		field  string
	}{
		{"bad ip", models.ResourceKindServer, map[string]string{"ip_address": "300.1.1.1"}, "ip_address"},
		{"missing ip", models.ResourceKindServer, map[string]string{"provider": "ovh"}, "ip_address"},
		{"bad seed email", models.ResourceKindSeedEmail, map[string]string{"email_address": "nope"}, "email_address"},
		{"bad recovery email", models.ResourceKindSeedEmail, map[string]string{"email_address": "a@b.co", "recovery_email": "x"}, "recovery_email"},
		{"unknown field", models.ResourceKindProxy, map[string]string{"connection_string": "http://p:1", "status": "banned"}, "status"},
		{"team id is not payload", models.ResourceKindRDP, map[string]string{"alias": "box", "team_id": uuid.NewString()}, "team_id"},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			_, err := suite.resourceSvc.Create(suite.as(suite.mailer), tc.kind, tc.fields)

			var validationErr *apperrors.ValidationError
			suite.Require().True(errors.As(err, &validationErr), "got %v", err)
			suite.Equal(tc.field, validationErr.Field)
		})
	}
}

func (suite *ResourceServiceTestSuite) TestCreate_RoleChecks() {
	_, err := suite.resourceSvc.Create(suite.as(suite.admin), models.ResourceKindServer, map[string]string{"ip_address": "10.0.0.1"})
	suite.ErrorIs(err, apperrors.ErrForbiddenRole)

	pending := suite.factories.Profile.Create()
	_, err = suite.resourceSvc.Create(suite.as(pending), models.ResourceKindServer, map[string]string{"ip_address": "10.0.0.1"})
	suite.ErrorIs(err, apperrors.ErrForbiddenRole)

	_, err = suite.resourceSvc.Create(context.Background(), models.ResourceKindServer, map[string]string{"ip_address": "10.0.0.1"})
	suite.True(apperrors.IsAuthentication(err))
}

func (suite *ResourceServiceTestSuite) TestList_ScopesByRole() {
	otherTeam := uuid.New()
	testCases := []struct {
		name   string
		caller *models.Profile
		query  service.ResourceListQuery
		check  func(filter repository.ResourceFilter)
	}{
		{"mailer sees own", suite.mailer, service.ResourceListQuery{TeamID: &otherTeam}, func(f repository.ResourceFilter) {
			assert.Equal(suite.T(), suite.teamID, *f.TeamID)
			assert.Equal(suite.T(), suite.mailer.ID, *f.OwnerID)
		}},
		{"leader sees team", suite.leader, service.ResourceListQuery{TeamID: &otherTeam}, func(f repository.ResourceFilter) {
			assert.Equal(suite.T(), suite.teamID, *f.TeamID)
			assert.Nil(suite.T(), f.OwnerID)
		}},
		{"admin picks team", suite.admin, service.ResourceListQuery{TeamID: &otherTeam, Status: "banned"}, func(f repository.ResourceFilter) {
			assert.Equal(suite.T(), otherTeam, *f.TeamID)
			assert.Equal(suite.T(), models.StatusBanned, *f.Status)
		}},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			ctx := suite.as(tc.caller)
			suite.mockResources.EXPECT().List(gomock.Any(), models.ResourceKindProxy, gomock.Any()).
				DoAndReturn(func(_ context.Context, _ models.ResourceKind, filter repository.ResourceFilter) ([]models.Resource, int64, error) {
					tc.check(filter)
					return nil, 0, nil
				})

			_, _, err := suite.resourceSvc.List(ctx, models.ResourceKindProxy, tc.query)
			suite.NoError(err)
		})
	}
}

func (suite *ResourceServiceTestSuite) TestList_InvalidStatusFilter() {
	_, _, err := suite.resourceSvc.List(suite.as(suite.leader), models.ResourceKindRDP, service.ResourceListQuery{Status: "warmup"})
	suite.ErrorIs(err, apperrors.ErrInvalidStatus)
}

func (suite *ResourceServiceTestSuite) TestGet_OtherMailersResource() {
	server := suite.factories.Resource.Server(uuid.New(), suite.teamID)
	ctx := suite.as(suite.mailer)
	suite.mockResources.EXPECT().GetByID(gomock.Any(), models.ResourceKindServer, server.ID).Return(server, nil)

	_, err := suite.resourceSvc.Get(ctx, models.ResourceKindServer, server.ID)

	suite.ErrorIs(err, apperrors.ErrForbiddenNotOwner)
}

func (suite *ResourceServiceTestSuite) TestUpdate_WritesOnlySubmittedColumns() {
	server := suite.factories.Resource.Server(suite.mailer.ID, suite.teamID)
	ctx := suite.as(suite.leader)

	gomock.InOrder(
		suite.mockResources.EXPECT().GetByID(gomock.Any(), models.ResourceKindServer, server.ID).Return(server, nil),
		suite.mockResources.EXPECT().
			UpdateFields(gomock.Any(), models.ResourceKindServer, server.ID, suite.teamID, map[string]interface{}{"hostname": "mx-new.example.net"}).
			Return(int64(1), nil),
		suite.mockResources.EXPECT().GetByID(gomock.Any(), models.ResourceKindServer, server.ID).Return(server, nil),
	)

	_, err := suite.resourceSvc.Update(ctx, models.ResourceKindServer, server.ID, map[string]string{"hostname": " mx-new.example.net"})
	suite.NoError(err)
}

func (suite *ResourceServiceTestSuite) TestUpdate_KeyChangeChecksDuplicates() {
	server := suite.factories.Resource.Server(suite.mailer.ID, suite.teamID)
	ctx := suite.as(suite.mailer)

	suite.mockResources.EXPECT().GetByID(gomock.Any(), models.ResourceKindServer, server.ID).Return(server, nil)
	suite.mockResources.EXPECT().ExistingKeys(gomock.Any(), models.ResourceKindServer, suite.teamID, []string{"192.0.2.10"}).Return([]string{"192.0.2.10"}, nil)

	_, err := suite.resourceSvc.Update(ctx, models.ResourceKindServer, server.ID, map[string]string{"ip_address": "192.0.2.10"})
	suite.ErrorIs(err, apperrors.ErrResourceExists)
}

func (suite *ResourceServiceTestSuite) TestUpdate_RejectsStatus() {
	_, err := suite.resourceSvc.Update(suite.as(suite.mailer), models.ResourceKindServer, uuid.New(), map[string]string{"status": "returned"})
	suite.True(apperrors.IsValidation(err))
}

func (suite *ResourceServiceTestSuite) TestDelete() {
	suite.Run("cross team leader", func() {
		server := suite.factories.Resource.Server(uuid.New(), uuid.New())
		ctx := suite.as(suite.leader)
		suite.mockResources.EXPECT().GetByID(gomock.Any(), models.ResourceKindServer, server.ID).Return(server, nil)

		err := suite.resourceSvc.Delete(ctx, models.ResourceKindServer, server.ID)
		suite.ErrorIs(err, apperrors.ErrForbiddenTeamMismatch)
	})

	suite.Run("vanished between read and write", func() {
		server := suite.factories.Resource.Server(suite.mailer.ID, suite.teamID)
		ctx := suite.as(suite.mailer)
		suite.mockResources.EXPECT().GetByID(gomock.Any(), models.ResourceKindServer, server.ID).Return(server, nil)
		suite.mockResources.EXPECT().Delete(gomock.Any(), models.ResourceKindServer, server.ID, suite.teamID).Return(int64(0), nil)

		err := suite.resourceSvc.Delete(ctx, models.ResourceKindServer, server.ID)
		suite.ErrorIs(err, apperrors.ErrResourceNotFound)
	})

	suite.Run("admin deletes in any team", func() {
		otherTeam := uuid.New()
		server := suite.factories.Resource.Server(uuid.New(), otherTeam)
		ctx := suite.as(suite.admin)
		suite.mockResources.EXPECT().GetByID(gomock.Any(), models.ResourceKindServer, server.ID).Return(server, nil)
		suite.mockResources.EXPECT().Delete(gomock.Any(), models.ResourceKindServer, server.ID, otherTeam).Return(int64(1), nil)

		suite.NoError(suite.resourceSvc.Delete(ctx, models.ResourceKindServer, server.ID))
		suite.Contains(suite.views.invalidated, otherTeam)
	})
}

func TestResourceServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ResourceServiceTestSuite))
}
