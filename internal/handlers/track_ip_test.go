package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/KragoN96/berries-web-app/internal/models"
)

func strPtr(s string) *string { return &s }

func TestTrackIPHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("success", func(t *testing.T) {
		mockSvc := NewMockVisitTracker(ctrl)
		mockSvc.EXPECT().
			TrackVisit(gomock.Any(), "203.0.113.7", "test-agent").
			Return(&models.Visit{
				IP:       "203.0.113.7",
				City:     strPtr("Springfield"),
				Country:  strPtr("US"),
				Timezone: strPtr("America/Chicago"),
			}, nil)

		handler := NewTrackIPHandler(mockSvc)

		req := httptest.NewRequest(http.MethodGet, "/api/track-ip", nil)
		req.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")
		req.Header.Set("User-Agent", "test-agent")
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var resp TrackIPResponse
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.True(t, resp.Success)
		if assert.NotNil(t, resp.Data.City) {
			assert.Equal(t, "Springfield", *resp.Data.City)
		}
	})

	t.Run("error", func(t *testing.T) {
		mockSvc := NewMockVisitTracker(ctrl)
		mockSvc.EXPECT().
			TrackVisit(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errors.New("db error"))

		handler := NewTrackIPHandler(mockSvc)

		req := httptest.NewRequest(http.MethodGet, "/api/track-ip", nil)
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}

func TestClientIP(t *testing.T) {
	tests := []struct {
		name       string
		forwarded  string
		realIP     string
		remoteAddr string
		expected   string
	}{
		{"ForwardedFor", "203.0.113.7, 10.0.0.1", "", "192.0.2.1:1234", "203.0.113.7"},
		{"RealIP", "", "203.0.113.8", "192.0.2.1:1234", "203.0.113.8"},
		{"RemoteAddr", "", "", "192.0.2.1:1234", "192.0.2.1"},
		{"RemoteAddrNoPort", "", "", "192.0.2.1", "192.0.2.1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remoteAddr
			if tt.forwarded != "" {
				req.Header.Set("X-Forwarded-For", tt.forwarded)
			}
			if tt.realIP != "" {
				req.Header.Set("X-Real-IP", tt.realIP)
			}

			assert.Equal(t, tt.expected, clientIP(req))
		})
	}
}

func TestLocationsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("success", func(t *testing.T) {
		mockSvc := NewMockVisitLister(ctrl)
		mockSvc.EXPECT().
			ListRecentVisits(gomock.Any()).
			Return([]models.Visit{{IP: "8.8.8.8"}, {IP: "1.1.1.1"}}, nil)

		handler := NewLocationsHandler(mockSvc)

		req := httptest.NewRequest(http.MethodGet, "/api/locations", nil)
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var resp LocationsResponse
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.True(t, resp.Success)
		assert.Equal(t, 2, resp.Count)
		assert.Len(t, resp.Data, 2)
	})

	t.Run("error", func(t *testing.T) {
		mockSvc := NewMockVisitLister(ctrl)
		mockSvc.EXPECT().
			ListRecentVisits(gomock.Any()).
			Return(nil, errors.New("db error"))

		handler := NewLocationsHandler(mockSvc)

		req := httptest.NewRequest(http.MethodGet, "/api/locations", nil)
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}
