package handlers_test

import (
	"errors"
	"net/http"
	"testing"

	"mailops-backend/internal/api/handlers"
	"mailops-backend/internal/database/models"
	apperrors "mailops-backend/internal/errors"
	"mailops-backend/internal/mocks"
	"mailops-backend/internal/service"
	"mailops-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ResourceHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockResourceServiceInterface
	httpSuite   *testutils.HTTPTestSuite
	factories   *testutils.FactorySet
}

func (suite *ResourceHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockResourceServiceInterface(suite.ctrl)
	suite.factories = testutils.NewFactorySet()
	handler := handlers.NewResourceHandler(suite.mockService)

	suite.httpSuite = testutils.SetupHTTPTest()
	resources := suite.httpSuite.Router.Group("/api/v1/resources/:kind")
	{
		resources.GET("", handler.ListResources)
		resources.POST("", handler.CreateResource)
		resources.GET("/:id", handler.GetResource)
		resources.PATCH("/:id", handler.UpdateResource)
		resources.DELETE("/:id", handler.DeleteResource)
	}
}

func (suite *ResourceHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *ResourceHandlerTestSuite) TestCreateResource() {
	teamID := uuid.New()
	proxy := suite.factories.Resource.Proxy(uuid.New(), teamID)
	fields := map[string]string{"connection_string": proxy.ConnectionString}

	suite.mockService.EXPECT().Create(gomock.Any(), models.ResourceKindProxy, fields).Return(proxy, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/resources/proxies", fields)

	var body models.Proxy
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusCreated, &body)
	suite.Equal(proxy.ID, body.ID)
}

func (suite *ResourceHandlerTestSuite) TestErrorMapping() {
	cases := map[string]struct {
		err    error
		status int
	}{
		"validation":  {apperrors.NewValidationError("ip_address", "must be a valid ip"), http.StatusBadRequest},
		"forbidden":   {apperrors.ErrForbiddenRole, http.StatusForbidden},
		"duplicate":   {apperrors.ErrResourceExists, http.StatusConflict},
		"unassigned":  {apperrors.ErrUserNotAssignedToTeam, http.StatusForbidden},
		"no session":  {apperrors.ErrUnauthenticated, http.StatusUnauthorized},
		"store error": {apperrors.NewPersistenceError("create resource", errors.New("deadlock")), http.StatusInternalServerError},
	}

	for name, tc := range cases {
		suite.Run(name, func() {
			suite.mockService.EXPECT().Create(gomock.Any(), models.ResourceKindServer, gomock.Any()).Return(nil, tc.err)

			recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/resources/servers", map[string]string{"ip_address": "10.0.0.1"})

			suite.Equal(tc.status, recorder.Code)
			if tc.status == http.StatusInternalServerError {
				suite.NotContains(recorder.Body.String(), "deadlock")
			}
		})
	}
}

func (suite *ResourceHandlerTestSuite) TestListResources() {
	teamID := uuid.New()
	suite.mockService.EXPECT().
		List(gomock.Any(), models.ResourceKindSeedEmail, service.ResourceListQuery{Status: "warmup", TeamID: &teamID, Limit: 10, Offset: 20}).
		Return([]models.Resource{suite.factories.Resource.SeedEmail(uuid.New(), teamID)}, int64(21), nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/resources/seed-emails?status=warmup&team_id="+teamID.String()+"&limit=10&offset=20", nil)

	var body handlers.ListResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &body)
	suite.Equal(int64(21), body.Total)
	suite.Equal(10, body.Limit)
}

func (suite *ResourceHandlerTestSuite) TestListResources_BadFilters() {
	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/resources/servers?team_id=nope", nil)
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "team_id")

	recorder = suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/resources/printers", nil)
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "kind")
}

func (suite *ResourceHandlerTestSuite) TestGetResource_NotFound() {
	id := uuid.New()
	suite.mockService.EXPECT().Get(gomock.Any(), models.ResourceKindRDP, id).Return(nil, apperrors.ErrResourceNotFound)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/resources/rdps/"+id.String(), nil)
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "resource not found")
}

func (suite *ResourceHandlerTestSuite) TestUpdateResource() {
	teamID := uuid.New()
	server := suite.factories.Resource.Server(uuid.New(), teamID)
	suite.mockService.EXPECT().
		Update(gomock.Any(), models.ResourceKindServer, server.ID, map[string]string{"notes": "rack 4"}).
		Return(server, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodPatch, "/api/v1/resources/servers/"+server.ID.String(), map[string]string{"notes": "rack 4"})
	suite.Equal(http.StatusOK, recorder.Code)

	recorder = suite.httpSuite.MakeRequest(http.MethodPatch, "/api/v1/resources/servers/"+server.ID.String(), map[string]int{"notes": 4})
	suite.Equal(http.StatusBadRequest, recorder.Code)
}

func (suite *ResourceHandlerTestSuite) TestDeleteResource() {
	id := uuid.New()
	suite.mockService.EXPECT().Delete(gomock.Any(), models.ResourceKindProxy, id).Return(nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodDelete, "/api/v1/resources/proxies/"+id.String(), nil)
	suite.Equal(http.StatusNoContent, recorder.Code)

	recorder = suite.httpSuite.MakeRequest(http.MethodDelete, "/api/v1/resources/proxies/xyz", nil)
	suite.Equal(http.StatusBadRequest, recorder.Code)
}

func TestResourceHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ResourceHandlerTestSuite))
}
