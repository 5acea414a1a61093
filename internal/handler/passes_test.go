package handler

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"overpass-api/internal/lookup"
	"overpass-api/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockPassService is a mock implementation of the PassService interface
type MockPassService struct {
	mock.Mock
}

func (m *MockPassService) UpcomingPasses(ctx context.Context) ([]models.Pass, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Pass), args.Error(1)
}

func TestPassHandler_Passes(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		mockPasses     []models.Pass
		mockError      error
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "successful lookup",
			mockPasses: []models.Pass{
				{Risetime: 134564234, Duration: 600},
				{Risetime: 134570000, Duration: 540},
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `[{"risetime":134564234,"duration":600},{"risetime":134570000,"duration":540}]`,
		},
		{
			name:           "empty pass list",
			mockPasses:     []models.Pass{},
			expectedStatus: http.StatusOK,
			expectedBody:   `[]`,
		},
		{
			name:           "upstream status failure",
			mockError:      fmt.Errorf("overpass lookup: %w", &lookup.StatusError{Code: 500, Body: "boom"}),
			expectedStatus: http.StatusBadGateway,
			expectedBody:   `{"error":"upstream lookup failed"}`,
		},
		{
			name:           "upstream service-reported failure",
			mockError:      fmt.Errorf("geolocation lookup: %w", &lookup.ServiceError{Message: "Invalid IP address"}),
			expectedStatus: http.StatusBadGateway,
			expectedBody:   `{"error":"upstream lookup failed"}`,
		},
		{
			name:           "unexpected error",
			mockError:      assert.AnError,
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"error":"internal server error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Setup
			mockSvc := new(MockPassService)
			handler := NewPassHandler(mockSvc)
			mockSvc.On("UpcomingPasses", mock.Anything).Return(tt.mockPasses, tt.mockError)

			// Create request
			req := httptest.NewRequest(http.MethodGet, "/passes", nil)
			w := httptest.NewRecorder()

			// Create Gin context
			c, _ := gin.CreateTestContext(w)
			c.Request = req

			// Execute
			handler.Passes(c)

			// Assert
			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
			mockSvc.AssertExpectations(t)
		})
	}
}
