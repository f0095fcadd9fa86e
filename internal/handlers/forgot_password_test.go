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
)

func TestForgotPasswordHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("known and unknown emails get the same response", func(t *testing.T) {
		mockSvc := NewMockPasswordResetRequester(ctrl)
		mockSvc.EXPECT().
			RequestPasswordReset(gomock.Any(), "anyone@student.edu").
			Return(nil)

		handler := NewForgotPasswordHandler(mockSvc)

		req := httptest.NewRequest(http.MethodPost, "/api/auth/forgot-password",
			bytes.NewBufferString(`{"email":"anyone@student.edu"}`))
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var resp ForgotPasswordResponse
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Equal(t, "If that account exists, a reset link has been sent", resp.Message)
	})

	t.Run("internal error", func(t *testing.T) {
		mockSvc := NewMockPasswordResetRequester(ctrl)
		mockSvc.EXPECT().
			RequestPasswordReset(gomock.Any(), "anyone@student.edu").
			Return(errors.New("db error"))

		handler := NewForgotPasswordHandler(mockSvc)

		req := httptest.NewRequest(http.MethodPost, "/api/auth/forgot-password",
			bytes.NewBufferString(`{"email":"anyone@student.edu"}`))
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})

	t.Run("invalid JSON", func(t *testing.T) {
		handler := NewForgotPasswordHandler(NewMockPasswordResetRequester(ctrl))

		req := httptest.NewRequest(http.MethodPost, "/api/auth/forgot-password",
			bytes.NewBufferString(`{not json`))
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}
