package http

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/robera20/employee-attendance-management/internal/attendance/service"
	"github.com/robera20/employee-attendance-management/internal/attendance/store/drivers/sqlite"
	"github.com/robera20/employee-attendance-management/pkg/attendancesdk"
	"github.com/robera20/employee-attendance-management/pkg/cryptox"
	"github.com/robera20/employee-attendance-management/pkg/httpx"
	"github.com/stretchr/testify/require"
)

var eat = time.FixedZone("UTC+03:00", 3*60*60)

func TestMain(m *testing.M) {
	pepperPath := filepath.Join(os.TempDir(), "attendance-http-test-pepper")
	cryptox.SetPepperPath(pepperPath)

	os.Remove(pepperPath)
	code := m.Run()
	os.Remove(pepperPath)

	os.Exit(code)
}

type testClock struct{ t time.Time }

func (c *testClock) Now() time.Time { return c.t }

type testEnv struct {
	t      *testing.T
	router *Router
	store  *sqlite.Store
	clock  *testClock
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	clk := &testClock{t: time.Date(2025, time.March, 3, 8, 0, 0, 0, eat)}
	cal := &service.Calendar{Location: eat, Cutoff: 8*time.Hour + 30*time.Minute, Now: clk.Now}
	qr := &service.QRService{}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	r := NewRouter("test", st, logger, RouterOptions{RedactInternalErrors: true})
	r.AuthService = &service.AuthService{Store: st, Now: clk.Now}
	r.MFAService = &service.MFAService{Store: st, Issuer: "AttendanceTest", QR: qr}
	r.EmployeeService = &service.EmployeeService{Store: st, QR: qr, Now: clk.Now}
	r.FaceService = &service.FaceService{Store: st, Now: clk.Now}
	r.AttendanceService = &service.AttendanceService{Store: st, Calendar: cal}
	r.DashboardService = &service.DashboardService{Store: st, Calendar: cal}
	r.ReportService = &service.ReportService{Store: st, Calendar: cal}
	r.ApplyRoutes()

	return &testEnv{t: t, router: r, store: st, clock: clk}
}

func (e *testEnv) do(method, path string, body any, session *http.Cookie) *httptest.ResponseRecorder {
	e.t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(e.t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if session != nil {
		req.AddCookie(session)
	}

	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func sessionCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()

	for _, c := range rec.Result().Cookies() {
		if c.Name == SessionCookieName {
			return c
		}
	}
	t.Fatalf("no %s cookie in response", SessionCookieName)
	return nil
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

// signIn registers username and returns its session cookie.
func (e *testEnv) signIn(username string) *http.Cookie {
	e.t.Helper()

	rec := e.do(http.MethodPost, "/auth/signup", attendancesdk.SignupRequest{
		Name:             "Admin " + username,
		Email:            username + "@example.com",
		Phone:            "555-0100",
		Organization:     "Acme",
		Username:         username,
		Password:         "secret1",
		SecurityQuestion: "First pet?",
		SecurityAnswer:   "Rex",
	}, nil)
	require.Equal(e.t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = e.do(http.MethodPost, "/auth/signin", attendancesdk.SigninRequest{Username: username, Password: "secret1"}, nil)
	require.Equal(e.t, http.StatusOK, rec.Code, rec.Body.String())
	return sessionCookie(e.t, rec)
}

func (e *testEnv) addEmployee(session *http.Cookie, name, email string) attendancesdk.AddEmployeeResponse {
	e.t.Helper()

	rec := e.do(http.MethodPost, "/employee/add", attendancesdk.AddEmployeeRequest{
		Name:  name,
		Email: email,
		Phone: "555-0199",
	}, session)
	require.Equal(e.t, http.StatusCreated, rec.Code, rec.Body.String())
	return decode[attendancesdk.AddEmployeeResponse](e.t, rec)
}

func TestHealthEndpoints(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	rec := env.do(http.MethodGet, "/livez", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	live := decode[attendancesdk.HealthResponse](t, rec)
	require.Equal(t, "ok", live.Status)
	require.Equal(t, "test", live.Version)

	rec = env.do(http.MethodGet, "/readyz", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	ready := decode[attendancesdk.HealthResponse](t, rec)
	require.NotNil(t, ready.Checks)
	require.Equal(t, "ok", ready.Checks.Database)
}

func TestAuthFlow(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	session := env.signIn("alice")
	require.True(t, session.HttpOnly)
	require.Equal(t, http.SameSiteStrictMode, session.SameSite)
	require.Equal(t, "/", session.Path)

	t.Run("duplicate signup is rejected", func(t *testing.T) {
		rec := env.do(http.MethodPost, "/auth/signup", attendancesdk.SignupRequest{
			Name:             "Other",
			Email:            "other@example.com",
			Username:         "alice",
			Password:         "secret1",
			SecurityQuestion: "q",
			SecurityAnswer:   "a",
		}, nil)
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.NotEmpty(t, decode[attendancesdk.ErrorResponse](t, rec).Error)
	})

	t.Run("wrong password", func(t *testing.T) {
		rec := env.do(http.MethodPost, "/auth/signin", attendancesdk.SigninRequest{Username: "alice", Password: "nope"}, nil)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.Equal(t, "Invalid credentials", decode[attendancesdk.ErrorResponse](t, rec).Error)
	})

	t.Run("check and profile", func(t *testing.T) {
		rec := env.do(http.MethodGet, "/auth/check", nil, session)
		require.Equal(t, http.StatusOK, rec.Code)
		check := decode[attendancesdk.CheckResponse](t, rec)
		require.True(t, check.Authenticated)

		rec = env.do(http.MethodGet, "/auth/profile", nil, session)
		require.Equal(t, http.StatusOK, rec.Code)
		profile := decode[attendancesdk.ProfileResponse](t, rec)
		require.True(t, profile.Success)
		require.Equal(t, "alice", profile.Admin.Username)
		require.Equal(t, check.AdminID, profile.Admin.AdminID)
	})

	t.Run("security question is public", func(t *testing.T) {
		rec := env.do(http.MethodGet, "/auth/security-question?username=alice", nil, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, "First pet?", decode[attendancesdk.SecurityQuestionResponse](t, rec).SecurityQuestion)
	})

	t.Run("logout ends the session", func(t *testing.T) {
		rec := env.do(http.MethodPost, "/auth/logout", nil, session)
		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, "Logged out successfully", decode[attendancesdk.MessageResponse](t, rec).Message)

		rec = env.do(http.MethodGet, "/auth/check", nil, session)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.False(t, decode[attendancesdk.CheckResponse](t, rec).Authenticated)
	})
}

func TestSecuredRoutesRequireSession(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/auth/profile"},
		{http.MethodPut, "/auth/password"},
		{http.MethodPost, "/auth/mfa/enroll"},
		{http.MethodPost, "/employee/add"},
		{http.MethodGet, "/employee/list"},
		{http.MethodGet, "/employee/7"},
		{http.MethodDelete, "/employee/7"},
		{http.MethodGet, "/employee/face-database"},
		{http.MethodPut, "/attendance/update/7"},
		{http.MethodGet, "/attendance/stats/7"},
		{http.MethodGet, "/attendance/export"},
		{http.MethodGet, "/dashboard/summary"},
		{http.MethodGet, "/dashboard/attendance-trend"},
		{http.MethodPost, "/reports/generate"},
		{http.MethodPost, "/reports/export"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rec := env.do(tt.method, tt.path, nil, nil)
			require.Equal(t, http.StatusUnauthorized, rec.Code)
			require.Equal(t, "Authentication required", decode[attendancesdk.ErrorResponse](t, rec).Error)
		})
	}
}

func TestAttendanceScenario(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	session := env.signIn("alice")
	bob := env.addEmployee(session, "Bob", "bob@x.com")

	var payload struct {
		ID   int64  `json:"id"`
		Name string `json:"name"`
	}
	require.NoError(t, json.Unmarshal([]byte(bob.QRData), &payload))
	require.Equal(t, bob.EmployeeID, payload.ID)
	require.Equal(t, "Bob", payload.Name)
	require.Contains(t, bob.QRCode, "data:image/png;base64,")

	bobID := strconv.FormatInt(bob.EmployeeID, 10)

	// First scan at 08:00 local, no session needed.
	rec := env.do(http.MethodPost, "/attendance/mark", attendancesdk.MarkAttendanceRequest{EmployeeID: bobID}, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	marked := decode[attendancesdk.MarkAttendanceResponse](t, rec)
	require.True(t, marked.Success)
	require.Equal(t, "Present", marked.Status)
	require.Equal(t, "Attendance marked successfully for Bob", marked.Message)

	// Second scan the same day reports the first record.
	env.clock.t = env.clock.t.Add(2 * time.Hour)
	rec = env.do(http.MethodPost, "/attendance/mark", map[string]any{"employee_id": bob.EmployeeID}, nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	conflict := decode[attendancesdk.MarkAttendanceError](t, rec)
	require.Equal(t, "Attendance already marked for today", conflict.Error)
	require.Equal(t, "Present", conflict.Status)
	require.NotNil(t, conflict.Timestamp)
	require.True(t, conflict.Timestamp.Equal(marked.Timestamp))
	require.NotNil(t, conflict.Employee)
	require.Equal(t, "Bob", conflict.Employee.Name)

	t.Run("unknown id suggests employees", func(t *testing.T) {
		rec := env.do(http.MethodPost, "/attendance/mark", attendancesdk.MarkAttendanceRequest{EmployeeID: "Bo"}, session)
		require.Equal(t, http.StatusNotFound, rec.Code)
		missing := decode[attendancesdk.MarkAttendanceError](t, rec)
		require.Equal(t, "Bo", missing.SearchedID)
		require.Len(t, missing.Suggestions, 1)
		require.Equal(t, bob.EmployeeID, missing.Suggestions[0].EmployeeID)
	})

	t.Run("kiosk rush from one address is not throttled", func(t *testing.T) {
		for i := range httpx.LenientLimit.RequestsPerWindow + 20 {
			rec := env.do(http.MethodPost, "/attendance/mark", attendancesdk.MarkAttendanceRequest{EmployeeID: "999999"}, nil)
			require.Equal(t, http.StatusNotFound, rec.Code, "scan %d", i+1)
		}
	})

	t.Run("missing id", func(t *testing.T) {
		rec := env.do(http.MethodPost, "/attendance/mark", map[string]any{}, nil)
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Equal(t, "Employee ID is required", decode[attendancesdk.ErrorResponse](t, rec).Error)
	})

	t.Run("update and stats", func(t *testing.T) {
		rec := env.do(http.MethodPut, "/attendance/update/"+bobID, attendancesdk.UpdateAttendanceRequest{Status: "Late"}, session)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		updated := decode[attendancesdk.UpdateAttendanceResponse](t, rec)
		require.Equal(t, "Present", updated.OldStatus)
		require.Equal(t, "Late", updated.NewStatus)

		rec = env.do(http.MethodGet, "/attendance/stats/"+bobID, nil, session)
		require.Equal(t, http.StatusOK, rec.Code)
		stats := decode[attendancesdk.AttendanceStats](t, rec)
		require.Equal(t, 1, stats.TotalDays)
		require.Equal(t, 1, stats.LateDays)
	})

	t.Run("csv export", func(t *testing.T) {
		rec := env.do(http.MethodGet, "/attendance/export", nil, session)
		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, "text/csv", rec.Header().Get("Content-Type"))
		require.Equal(t, `attachment; filename="attendance.csv"`, rec.Header().Get("Content-Disposition"))

		rows, err := csv.NewReader(bytes.NewReader(rec.Body.Bytes())).ReadAll()
		require.NoError(t, err)
		require.Len(t, rows, 2)
		require.Equal(t, "attendance_id", rows[0][0])
		require.Equal(t, bobID, rows[1][1])
		require.Equal(t, "Bob", rows[1][2])
	})
}

func TestTenantIsolation(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	alice := env.signIn("alice")
	carol := env.signIn("carol")
	bob := env.addEmployee(alice, "Bob", "bob@x.com")
	path := "/employee/" + strconv.FormatInt(bob.EmployeeID, 10)

	rec := env.do(http.MethodGet, path, nil, carol)
	require.Equal(t, http.StatusNotFound, rec.Code)

	rec = env.do(http.MethodDelete, path, nil, carol)
	require.Equal(t, http.StatusNotFound, rec.Code)

	rec = env.do(http.MethodGet, "/employee/list", nil, carol)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Empty(t, decode[attendancesdk.EmployeeListResponse](t, rec).Employees)

	rec = env.do(http.MethodGet, path, nil, alice)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "Bob", decode[attendancesdk.Employee](t, rec).Name)
}

func TestEmployeeLifecycle(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	session := env.signIn("alice")
	bob := env.addEmployee(session, "Bob", "bob@x.com")
	id := strconv.FormatInt(bob.EmployeeID, 10)

	t.Run("duplicate email", func(t *testing.T) {
		rec := env.do(http.MethodPost, "/employee/add", attendancesdk.AddEmployeeRequest{Name: "Bobby", Email: "bob@x.com", Phone: "1"}, session)
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("search requires two characters", func(t *testing.T) {
		rec := env.do(http.MethodGet, "/employee/search?q=b", nil, session)
		require.Equal(t, http.StatusBadRequest, rec.Code)

		rec = env.do(http.MethodGet, "/employee/search?q=bo", nil, session)
		require.Equal(t, http.StatusOK, rec.Code)
		found := decode[attendancesdk.EmployeeSearchResponse](t, rec)
		require.Equal(t, 1, found.TotalFound)
		require.Equal(t, "bo", found.SearchTerm)
	})

	t.Run("non numeric id is not found", func(t *testing.T) {
		rec := env.do(http.MethodGet, "/employee/get/abc", nil, session)
		require.Equal(t, http.StatusNotFound, rec.Code)
		require.Equal(t, "Employee not found", decode[attendancesdk.ErrorResponse](t, rec).Error)
	})

	t.Run("face training", func(t *testing.T) {
		rec := env.do(http.MethodPost, "/employee/train-face", map[string]any{
			"employee_id": id,
			"face_data": map[string]any{
				"descriptor": []float64{0.1, 0.2},
				"images":     []string{"data:image/png;base64,AAAA", "data:image/jpeg;base64,BBBB"},
			},
		}, session)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		trained := decode[attendancesdk.TrainFaceResponse](t, rec)
		require.Equal(t, 2, trained.FacesTrained)
		require.Greater(t, trained.QualityScore, 0.0)

		rec = env.do(http.MethodGet, "/employee/face-status/"+id, nil, session)
		require.Equal(t, http.StatusOK, rec.Code)
		status := decode[attendancesdk.FaceStatusResponse](t, rec)
		require.True(t, status.HasFaceData)
		require.Equal(t, 2, status.FacesTrained)

		rec = env.do(http.MethodGet, "/employee/face-database", nil, session)
		require.Equal(t, http.StatusOK, rec.Code)
		db := decode[[]attendancesdk.FaceDatabaseEntry](t, rec)
		require.Len(t, db, 1)
		require.JSONEq(t, "[0.1,0.2]", string(db[0].Descriptor))
	})

	t.Run("delete removes everything", func(t *testing.T) {
		rec := env.do(http.MethodDelete, "/employee/"+id, nil, session)
		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, bob.EmployeeID, decode[attendancesdk.DeleteEmployeeResponse](t, rec).EmployeeID)

		rec = env.do(http.MethodGet, "/attendance/stats/"+id, nil, session)
		require.Equal(t, http.StatusNotFound, rec.Code)

		rec = env.do(http.MethodGet, "/employee/face-status/"+id, nil, session)
		require.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestDashboardAndReports(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	session := env.signIn("alice")

	t.Run("trend defaults to a week", func(t *testing.T) {
		rec := env.do(http.MethodGet, "/dashboard/attendance-trend?days=oops", nil, session)
		require.Equal(t, http.StatusOK, rec.Code)
		trend := decode[attendancesdk.AttendanceTrend](t, rec)
		require.Len(t, trend.Labels, 7)
		require.Len(t, trend.Present, 7)
		require.Equal(t, "Mar 3", trend.Labels[6])
	})

	t.Run("short quick search is empty", func(t *testing.T) {
		rec := env.do(http.MethodGet, "/dashboard/search-employees?q=a", nil, session)
		require.Equal(t, http.StatusOK, rec.Code)
		require.JSONEq(t, `{"employees":[]}`, rec.Body.String())
	})

	t.Run("report needs dates", func(t *testing.T) {
		rec := env.do(http.MethodPost, "/reports/generate", attendancesdk.ReportRequest{}, session)
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Equal(t, "Start date and end date are required", decode[attendancesdk.ErrorResponse](t, rec).Error)
	})

	t.Run("xlsx export", func(t *testing.T) {
		rec := env.do(http.MethodPost, "/reports/export", attendancesdk.ReportRequest{StartDate: "2025-03-01", EndDate: "2025-03-03"}, session)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		require.Equal(t, xlsxContentType, rec.Header().Get("Content-Type"))
		require.Equal(t, `attachment; filename="attendance-report-2025-03-01-to-2025-03-03.xlsx"`, rec.Header().Get("Content-Disposition"))
		require.True(t, bytes.HasPrefix(rec.Body.Bytes(), []byte("PK")))
	})
}

func TestErrorWriter(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)

	tests := []struct {
		name   string
		redact bool
		err    error
		code   int
		msg    string
	}{
		{"validation", true, service.Validation("Status is required"), http.StatusBadRequest, "Status is required"},
		{"conflict maps to 400", true, service.ErrEmployeeEmailExists, http.StatusBadRequest, service.ErrEmployeeEmailExists.Error()},
		{"auth", true, service.ErrInvalidCredentials, http.StatusUnauthorized, "Invalid credentials"},
		{"not found", true, service.ErrEmployeeNotFound, http.StatusNotFound, "Employee not found"},
		{"internal redacted", true, errors.New("disk on fire"), http.StatusInternalServerError, "Internal server error"},
		{"internal detailed", false, errors.New("disk on fire"), http.StatusInternalServerError, "Internal server error: disk on fire"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec := httptest.NewRecorder()
			errorWriter{Redact: tt.redact}.write(rec, req, tt.err)
			require.Equal(t, tt.code, rec.Code)
			require.Equal(t, tt.msg, decode[attendancesdk.ErrorResponse](t, rec).Error)
		})
	}
}

func TestFlexibleID(t *testing.T) {
	t.Parallel()

	require.Equal(t, "7", flexibleID(json.RawMessage(`7`)))
	require.Equal(t, "7", flexibleID(json.RawMessage(`" 7 "`)))
	require.Equal(t, "Bob", flexibleID(json.RawMessage(`"Bob"`)))
	require.Empty(t, flexibleID(json.RawMessage(`null`)))
	require.Empty(t, flexibleID(nil))
	require.Empty(t, flexibleID(json.RawMessage(`{"id":7}`)))
}
