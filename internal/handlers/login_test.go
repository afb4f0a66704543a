package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/sbilibin2017/sleep-tracker/internal/services"
)

func TestLoginHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	log := zap.NewNop().Sugar()

	tests := []struct {
		name         string
		email        string
		password     string
		mockSetup    func(m *MockLoginer)
		expectedCode int
		expectedBody map[string]string
		rawBody      bool
	}{
		{
			name:     "success",
			email:    "john@example.com",
			password: "secret",
			mockSetup: func(m *MockLoginer) {
				m.EXPECT().
					Login(gomock.Any(), "john@example.com", "secret").
					Return("signed.jwt.token", nil)
			},
			expectedCode: 200,
			expectedBody: map[string]string{"token": "signed.jwt.token"},
		},
		{
			name:     "invalid credentials",
			email:    "john@example.com",
			password: "wrong",
			mockSetup: func(m *MockLoginer) {
				m.EXPECT().
					Login(gomock.Any(), "john@example.com", "wrong").
					Return("", services.ErrInvalidCredentials)
			},
			expectedCode: 401,
			expectedBody: map[string]string{"error": "Invalid credentials"},
		},
		{
			name:     "unknown user",
			email:    "nobody@example.com",
			password: "secret",
			mockSetup: func(m *MockLoginer) {
				m.EXPECT().
					Login(gomock.Any(), "nobody@example.com", "secret").
					Return("", services.ErrUserDoesNotExist)
			},
			expectedCode: 401,
			expectedBody: map[string]string{"error": "Invalid credentials"},
		},
		{
			name:     "internal server error",
			email:    "john@example.com",
			password: "secret",
			mockSetup: func(m *MockLoginer) {
				m.EXPECT().
					Login(gomock.Any(), "john@example.com", "secret").
					Return("", errors.New("database failure"))
			},
			expectedCode: 500,
			expectedBody: map[string]string{"error": "Error logging in"},
		},
		{
			name:         "invalid json",
			rawBody:      true,
			expectedCode: 400,
			expectedBody: map[string]string{"error": "invalid request body"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockLoginer(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			var body *bytes.Buffer
			if tt.rawBody {
				body = bytes.NewBufferString("{not-json")
			} else {
				b, _ := json.Marshal(map[string]string{
					"email":    tt.email,
					"password": tt.password,
				})
				body = bytes.NewBuffer(b)
			}

			req := httptest.NewRequest(http.MethodPost, "/api/login", body)
			rec := httptest.NewRecorder()

			NewLoginHandler(mockSvc, log)(rec, req)

			assert.Equal(t, tt.expectedCode, rec.Code)

			var got map[string]string
			assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
			assert.Equal(t, tt.expectedBody, got)
		})
	}
}
