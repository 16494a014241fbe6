package attendancesdk

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSessionCookieRoundTrip(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("POST /auth/signin", func(w http.ResponseWriter, r *http.Request) {
		var req SigninRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Password != "secret1" {
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(ErrorResponse{Error: "Invalid credentials"})
			return
		}
		http.SetCookie(w, &http.Cookie{Name: "attendance_session", Value: "tok", Path: "/"})
		_ = json.NewEncoder(w).Encode(MessageResponse{Message: "Signin successful"})
	})
	mux.HandleFunc("GET /auth/check", func(w http.ResponseWriter, r *http.Request) {
		if c, err := r.Cookie("attendance_session"); err != nil || c.Value != "tok" {
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(CheckResponse{Authenticated: false})
			return
		}
		_ = json.NewEncoder(w).Encode(CheckResponse{Authenticated: true, AdminID: 3})
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	client := NewSDKClient(srv.URL + "/")
	ctx := t.Context()

	check, err := client.CheckSession(ctx)
	require.NoError(t, err)
	require.False(t, check.Authenticated)

	err = client.SignIn(ctx, SigninRequest{Username: "alice", Password: "wrong"})
	require.True(t, IsStatus(err, http.StatusUnauthorized))
	require.Contains(t, err.Error(), "Invalid credentials")

	require.NoError(t, client.SignIn(ctx, SigninRequest{Username: "alice", Password: "secret1"}))

	check, err = client.CheckSession(ctx)
	require.NoError(t, err)
	require.True(t, check.Authenticated)
	require.Equal(t, int64(3), check.AdminID)
}

func TestMarkAttendanceError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":"Employee not found. Did you mean: Bob (ID: 7)?","suggestions":[{"employee_id":7,"name":"Bob"}],"searchedId":"bo"}`))
	}))
	t.Cleanup(srv.Close)

	client := NewSDKClient(srv.URL)
	_, err := client.MarkAttendance(t.Context(), "bo")
	require.Error(t, err)

	apiErr, ok := err.(*APIError)
	require.True(t, ok)
	require.Equal(t, http.StatusNotFound, apiErr.StatusCode)

	details, err := apiErr.MarkError()
	require.NoError(t, err)
	require.Equal(t, "bo", details.SearchedID)
	require.Len(t, details.Suggestions, 1)
	require.Equal(t, int64(7), details.Suggestions[0].EmployeeID)
}

func TestParseErrorResponseFallback(t *testing.T) {
	t.Parallel()

	err := parseErrorResponse(&http.Response{StatusCode: http.StatusBadGateway}, []byte("upstream down"))
	require.Equal(t, "HTTP 502: Bad Gateway", err.Error())

	require.NoError(t, parseErrorResponse(&http.Response{StatusCode: http.StatusOK}, nil))
}

func TestGetAttendanceTrendQuery(t *testing.T) {
	t.Parallel()

	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		_ = json.NewEncoder(w).Encode(AttendanceTrend{Labels: []string{"Jan 1"}, Present: []int{1}, Late: []int{0}, Absent: []int{0}})
	}))
	t.Cleanup(srv.Close)

	client := NewSDKClient(srv.URL)

	trend, err := client.GetAttendanceTrend(t.Context(), 0)
	require.NoError(t, err)
	require.Empty(t, gotQuery)
	require.Equal(t, []int{1}, trend.Present)

	_, err = client.GetAttendanceTrend(t.Context(), 30)
	require.NoError(t, err)
	require.Equal(t, "days=30", gotQuery)
}

func TestGetReadinessDegraded(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte(`{"status":"degraded","uptime":"1s","version":"v0.1.0","checks":{"database":"unreachable"}}`))
	}))
	t.Cleanup(srv.Close)

	health, err := NewSDKClient(srv.URL).GetReadiness(t.Context())
	require.True(t, IsStatus(err, http.StatusServiceUnavailable))
	require.NotNil(t, health)
	require.Equal(t, "degraded", health.Status)
	require.Equal(t, "unreachable", health.Checks.Database)
}
