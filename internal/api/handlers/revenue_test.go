package handlers_test

import (
	"net/http"
	"testing"

	"mailops-backend/internal/api/handlers"
	"mailops-backend/internal/database/models"
	apperrors "mailops-backend/internal/errors"
	"mailops-backend/internal/mocks"
	"mailops-backend/internal/repository"
	"mailops-backend/internal/service"
	"mailops-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type RevenueHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockRevenueServiceInterface
	httpSuite   *testutils.HTTPTestSuite
}

func (suite *RevenueHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockRevenueServiceInterface(suite.ctrl)
	handler := handlers.NewRevenueHandler(suite.mockService)

	suite.httpSuite = testutils.SetupHTTPTest()
	revenue := suite.httpSuite.Router.Group("/api/v1/revenue")
	revenue.POST("", handler.LogRevenue)
	revenue.GET("", handler.ListRevenue)
	revenue.GET("/summary", handler.RevenueSummary)
}

func (suite *RevenueHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *RevenueHandlerTestSuite) TestLogRevenue() {
	suite.mockService.EXPECT().
		Log(gomock.Any(), &service.LogRevenueRequest{RevenueDate: "2026-03-14", Amount: 99.5}).
		Return(&models.DailyRevenue{RevenueDate: "2026-03-14", Amount: 99.5}, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/revenue", map[string]interface{}{
		"revenue_date": "2026-03-14",
		"amount":       99.5,
	})
	suite.Equal(http.StatusCreated, recorder.Code)
}

func (suite *RevenueHandlerTestSuite) TestLogRevenue_FutureDate() {
	suite.mockService.EXPECT().Log(gomock.Any(), gomock.Any()).Return(nil, apperrors.ErrRevenueDateInFuture)

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/revenue", map[string]interface{}{"revenue_date": "2099-01-01", "amount": 1})
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "future")
}

func (suite *RevenueHandlerTestSuite) TestListRevenue() {
	mailerID := uuid.New()
	suite.mockService.EXPECT().
		List(gomock.Any(), service.RevenueQuery{From: "2026-03-01", To: "2026-03-14", MailerID: &mailerID, Limit: 50}).
		Return(nil, int64(0), nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/revenue?from=2026-03-01&to=2026-03-14&mailer_id="+mailerID.String(), nil)
	suite.Equal(http.StatusOK, recorder.Code)

	recorder = suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/revenue?mailer_id=me", nil)
	suite.Equal(http.StatusBadRequest, recorder.Code)
}

func (suite *RevenueHandlerTestSuite) TestRevenueSummary() {
	teamID := uuid.New()
	suite.mockService.EXPECT().Summary(gomock.Any(), &teamID, "", "").
		Return([]repository.MailerRevenueTotal{{MailerID: uuid.New(), Days: 3, Total: 120}}, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/revenue/summary?team_id="+teamID.String(), nil)

	var body []repository.MailerRevenueTotal
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &body)
	suite.Equal(float64(120), body[0].Total)

	suite.mockService.EXPECT().Summary(gomock.Any(), (*uuid.UUID)(nil), "", "").Return(nil, apperrors.ErrForbiddenTeamMismatch)
	recorder = suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/revenue/summary", nil)
	suite.Equal(http.StatusForbidden, recorder.Code)
}

func TestRevenueHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(RevenueHandlerTestSuite))
}
