// file: handler/signup_handler_test.go

package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"go-waitlist-api/common"
	"go-waitlist-api/intake"
	"go-waitlist-api/model"
	"go-waitlist-api/service"
)

// mockIntakeClient is a mock for intake.Client, shared by the handler tests.
type mockIntakeClient struct{ mock.Mock }

func (m *mockIntakeClient) Submit(ctx context.Context, sub intake.Submission) error {
	args := m.Called(ctx, sub)
	return args.Error(0)
}

func newSignupHandlerForTest() (*SignupHandler, *mockIntakeClient) {
	mockClient := new(mockIntakeClient)
	return NewSignupHandler(service.NewSignupService(mockClient)), mockClient
}

func postSignupJSON(h *SignupHandler, body string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest("POST", "/api/signups", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	ErrorHandlingMiddleware(h.Create).ServeHTTP(rr, req)
	return rr
}

func TestSignupHandler_Create(t *testing.T) {
	t.Run("valid signup resolves as delivered", func(t *testing.T) {
		h, mockClient := newSignupHandlerForTest()

		mockClient.On("Submit", mock.Anything, mock.MatchedBy(func(sub intake.Submission) bool {
			return sub.Name == "Sarah Connor" &&
				sub.Role == "Find an Expert" &&
				sub.Subject == "New signup: CLIENT"
		})).Return(nil).Once()

		rr := postSignupJSON(h, `{"name":"Sarah Connor","email":"sarah@sky.net","role":"client"}`)

		assert.Equal(t, http.StatusOK, rr.Code)

		var resp map[string]interface{}
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, "submitted", resp["state"])
		assert.Equal(t, "delivered", resp["delivery"])
		// A real delivery carries no notice at all.
		_, hasNotice := resp["notice"]
		assert.False(t, hasNotice)

		mockClient.AssertExpectations(t)
	})

	t.Run("failed delivery still resolves as submitted", func(t *testing.T) {
		h, mockClient := newSignupHandlerForTest()

		mockClient.On("Submit", mock.Anything, mock.Anything).Return(errors.New("connection refused")).Once()

		rr := postSignupJSON(h, `{"name":"Sarah Connor","email":"sarah@sky.net","role":"expert"}`)

		// The failure is absorbed: still a success response, but flagged.
		assert.Equal(t, http.StatusOK, rr.Code)

		var resp model.SignupResponse
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, "submitted", resp.State)
		assert.Equal(t, model.DeliverySimulated, resp.Delivery)
		assert.Equal(t, model.SimulatedNotice, resp.Notice)

		mockClient.AssertExpectations(t)
	})

	t.Run("validation failure keeps the form state", func(t *testing.T) {
		h, mockClient := newSignupHandlerForTest()

		rr := postSignupJSON(h, `{"name":"","email":"sarah@sky.net","role":"client"}`)

		assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)

		var resp struct {
			State  string              `json:"state"`
			Errors []common.FieldError `json:"errors"`
		}
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, "form", resp.State)
		assert.Len(t, resp.Errors, 1)
		assert.Equal(t, "name", resp.Errors[0].Field)
		assert.Equal(t, "required", resp.Errors[0].Rule)

		// Nothing may leave the building while the form is invalid.
		mockClient.AssertNotCalled(t, "Submit")
	})

	t.Run("whitespace-only fields fail validation", func(t *testing.T) {
		h, mockClient := newSignupHandlerForTest()

		rr := postSignupJSON(h, `{"name":"   ","email":"sarah@sky.net","role":"client"}`)

		assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
		mockClient.AssertNotCalled(t, "Submit")
	})

	t.Run("surrounding whitespace is trimmed before relaying", func(t *testing.T) {
		h, mockClient := newSignupHandlerForTest()

		mockClient.On("Submit", mock.Anything, mock.MatchedBy(func(sub intake.Submission) bool {
			return sub.Name == "Sarah Connor" && sub.Email == "sarah@sky.net"
		})).Return(nil).Once()

		rr := postSignupJSON(h, `{"name":"  Sarah Connor  ","email":" sarah@sky.net ","role":"client"}`)

		assert.Equal(t, http.StatusOK, rr.Code)
		mockClient.AssertExpectations(t)
	})

	t.Run("malformed body is a bad request", func(t *testing.T) {
		h, mockClient := newSignupHandlerForTest()

		rr := postSignupJSON(h, `{"name": "Sarah`)

		assert.Equal(t, http.StatusBadRequest, rr.Code)

		var appErr common.AppError
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &appErr))
		assert.Equal(t, http.StatusBadRequest, appErr.Code)
		assert.Equal(t, "Invalid request body", appErr.Message)

		mockClient.AssertNotCalled(t, "Submit")
	})

	t.Run("only POST is accepted", func(t *testing.T) {
		h, _ := newSignupHandlerForTest()

		req, _ := http.NewRequest("GET", "/api/signups", nil)
		rr := httptest.NewRecorder()
		ErrorHandlingMiddleware(h.Create).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
	})
}
