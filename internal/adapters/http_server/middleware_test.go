package httpserver

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRemoteIP(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.RemoteAddr = "10.0.0.1:5555"
	assert.Equal(t, "10.0.0.1", remoteIP(r))

	r.Header.Set("X-Real-IP", "10.0.0.2")
	assert.Equal(t, "10.0.0.2", remoteIP(r))

	r.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.3")
	assert.Equal(t, "203.0.113.7", remoteIP(r))
}

func TestStatusRecorder(t *testing.T) {
	rec := httptest.NewRecorder()
	sw := &srw{ResponseWriter: rec}
	assert.Equal(t, http.StatusOK, sw.Status())

	sw.WriteHeader(http.StatusConflict)
	sw.WriteHeader(http.StatusOK)
	assert.Equal(t, http.StatusConflict, sw.Status())
}

func TestTimeout_CancelsAndDropsLateResult(t *testing.T) {
	done := make(chan bool, 1)
	slow := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
		done <- stale(r)
	})

	rec := httptest.NewRecorder()
	Timeout(20*time.Millisecond)(slow).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/hotels", nil))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), "Timeout")
	assert.True(t, <-done)
}
