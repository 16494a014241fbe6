package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/robera20/employee-attendance-management/internal/attendance/service"
	"github.com/robera20/employee-attendance-management/internal/attendance/store"
	"github.com/robera20/employee-attendance-management/pkg/httpx"
	"github.com/robera20/employee-attendance-management/pkg/slogx"

	_ "github.com/robera20/employee-attendance-management/api/docs" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	buildVersion string
	startTime    time.Time
	logger       *slog.Logger
	errors       errorWriter
	cookieSecure bool

	store             store.Store
	AuthService       *service.AuthService
	MFAService        *service.MFAService
	EmployeeService   *service.EmployeeService
	FaceService       *service.FaceService
	AttendanceService *service.AttendanceService
	DashboardService  *service.DashboardService
	ReportService     *service.ReportService
}

// RouterOptions tunes transport behaviour that differs between environments.
type RouterOptions struct {
	// CookieSecure marks the session cookie Secure (HTTPS only)
	CookieSecure bool

	// RedactInternalErrors hides internal error details from clients
	RedactInternalErrors bool
}

func NewRouter(buildVersion string, st store.Store, logger *slog.Logger, opts RouterOptions) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
		errors:       errorWriter{Redact: opts.RedactInternalErrors},
		cookieSecure: opts.CookieSecure,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerMFA()
	r.registerEmployees()
	r.registerFace()
	r.registerAttendance()
	r.registerDashboard()
	r.registerReports()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Employee Attendance Management API
//	@version		0.1.0
//	@description	QR-badge attendance tracking for small organisations. Admins register employees,
//	@description	badges are scanned at a kiosk to mark attendance, and the dashboard and reports summarise it.
//	@description
//	@description				Admin endpoints authenticate with the session cookie set by /auth/signin.
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:5000
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	SessionCookie
//	@in							cookie
//	@name						attendance_session
//	@description				Opaque session token issued by /auth/signin.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

// secured requires a live session and rate limits per admin.
func (r *Router) secured(h http.HandlerFunc, limit httpx.RateLimitConfig) http.Handler {
	return httpx.Chain(h,
		httpx.RequireSession(r.AuthService, SessionCookieName),
		httpx.RateLimitByAdmin(limit),
	)
}

func (r *Router) registerAuth() {
	h := &AuthHandler{
		AuthService:  r.AuthService,
		CookieSecure: r.cookieSecure,
		errors:       r.errors,
	}

	// Credential endpoints - strict rate limit by IP + username (brute force prevention)
	r.Mux.Handle("POST /auth/signup",
		httpx.Chain(http.HandlerFunc(h.HandleSignup),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
	r.Mux.Handle("POST /auth/signin",
		httpx.Chain(http.HandlerFunc(h.HandleSignin),
			httpx.RateLimitByIPAndJSONField(httpx.StrictLimit, "username"),
		),
	)
	r.Mux.Handle("POST /auth/reset-password",
		httpx.Chain(http.HandlerFunc(h.HandleResetPassword),
			httpx.RateLimitByIPAndJSONField(httpx.StrictLimit, "username"),
		),
	)
	r.Mux.Handle("GET /auth/security-question",
		httpx.Chain(http.HandlerFunc(h.HandleSecurityQuestion),
			httpx.RateLimitByIPAndFormField(httpx.StrictLimit, "username"),
		),
	)

	// Session probes work with or without a session
	r.Mux.Handle("POST /auth/logout",
		httpx.Chain(http.HandlerFunc(h.HandleLogout),
			httpx.OptionalSession(r.AuthService, SessionCookieName),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /auth/check",
		httpx.Chain(http.HandlerFunc(h.HandleCheck),
			httpx.OptionalSession(r.AuthService, SessionCookieName),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)

	r.Mux.Handle("GET /auth/profile", r.secured(h.HandleGetProfile, httpx.LenientLimit))
	r.Mux.Handle("PUT /auth/profile", r.secured(h.HandleUpdateProfile, httpx.ModerateLimit))

	// Password change checks the current password - strict
	r.Mux.Handle("PUT /auth/password", r.secured(h.HandleChangePassword, httpx.StrictLimit))
}

func (r *Router) registerMFA() {
	h := &MFAHandler{MFAService: r.MFAService, errors: r.errors}

	r.Mux.Handle("POST /auth/mfa/enroll", r.secured(h.HandleEnroll, httpx.ModerateLimit))

	// Code checks - strict rate limit by admin (prevent brute force of TOTP codes)
	r.Mux.Handle("POST /auth/mfa/verify", r.secured(h.HandleVerify, httpx.StrictLimit))
	r.Mux.Handle("POST /auth/mfa/disable", r.secured(h.HandleDisable, httpx.StrictLimit))
}

func (r *Router) registerEmployees() {
	h := &EmployeeHandler{EmployeeService: r.EmployeeService, errors: r.errors}

	r.Mux.Handle("POST /employee/add", r.secured(h.HandleAdd, httpx.ModerateLimit))
	r.Mux.Handle("GET /employee/list", r.secured(h.HandleList, httpx.LenientLimit))
	r.Mux.Handle("GET /employee/search", r.secured(h.HandleSearch, httpx.LenientLimit))
	r.Mux.Handle("GET /employee/get/{id}", r.secured(h.HandleGetDetail, httpx.LenientLimit))
	r.Mux.Handle("GET /employee/{id}", r.secured(h.HandleGet, httpx.LenientLimit))
	r.Mux.Handle("POST /employee/generate-qr/{id}", r.secured(h.HandleGenerateQR, httpx.ModerateLimit))
	r.Mux.Handle("POST /employee/regenerate-all-qr", r.secured(h.HandleRegenerateAll, httpx.ModerateLimit))
	r.Mux.Handle("DELETE /employee/{id}", r.secured(h.HandleDelete, httpx.ModerateLimit))
}

func (r *Router) registerFace() {
	h := &FaceHandler{FaceService: r.FaceService, errors: r.errors}

	r.Mux.Handle("POST /employee/train-face", r.secured(h.HandleTrainFace, httpx.ModerateLimit))
	r.Mux.Handle("GET /employee/face-database", r.secured(h.HandleFaceDatabase, httpx.LenientLimit))
	r.Mux.Handle("GET /employee/face-descriptors", r.secured(h.HandleFaceDescriptors, httpx.LenientLimit))
	r.Mux.Handle("GET /employee/face-status/{id}", r.secured(h.HandleFaceStatus, httpx.LenientLimit))
	r.Mux.Handle("DELETE /employee/face-data/{id}", r.secured(h.HandleDeleteFaceData, httpx.ModerateLimit))
}

func (r *Router) registerAttendance() {
	h := &AttendanceHandler{AttendanceService: r.AttendanceService, errors: r.errors}

	// POST /attendance/mark - public kiosk endpoint, kiosk limit by IP.
	// A session, when present, only narrows suggestions.
	r.Mux.Handle("POST /attendance/mark",
		httpx.Chain(http.HandlerFunc(h.HandleMark),
			httpx.OptionalSession(r.AuthService, SessionCookieName),
			httpx.RateLimitByIP(httpx.KioskLimit),
		),
	)

	r.Mux.Handle("PUT /attendance/update/{employeeId}", r.secured(h.HandleUpdate, httpx.ModerateLimit))
	r.Mux.Handle("GET /attendance/stats/{employeeId}", r.secured(h.HandleStats, httpx.LenientLimit))
	r.Mux.Handle("GET /attendance/export", r.secured(h.HandleExport, httpx.ModerateLimit))
}

func (r *Router) registerDashboard() {
	h := &DashboardHandler{DashboardService: r.DashboardService, errors: r.errors}

	// Dashboards poll - lenient rate limit by admin
	r.Mux.Handle("GET /dashboard/summary", r.secured(h.HandleSummary, httpx.LenientLimit))
	r.Mux.Handle("GET /dashboard/employee-status", r.secured(h.HandleEmployeeStatus, httpx.LenientLimit))
	r.Mux.Handle("GET /dashboard/recent-activity", r.secured(h.HandleRecentActivity, httpx.LenientLimit))
	r.Mux.Handle("GET /dashboard/attendance-trend", r.secured(h.HandleAttendanceTrend, httpx.LenientLimit))
	r.Mux.Handle("GET /dashboard/department-performance", r.secured(h.HandleDepartmentPerformance, httpx.LenientLimit))
	r.Mux.Handle("GET /dashboard/search-employees", r.secured(h.HandleSearch, httpx.LenientLimit))
}

func (r *Router) registerReports() {
	h := &ReportsHandler{ReportService: r.ReportService, errors: r.errors}

	r.Mux.Handle("POST /reports/generate", r.secured(h.HandleGenerate, httpx.ModerateLimit))
	r.Mux.Handle("GET /reports/summary", r.secured(h.HandleSummary, httpx.LenientLimit))

	// Workbook rendering is the heaviest request - moderate
	r.Mux.Handle("POST /reports/export", r.secured(h.HandleExport, httpx.ModerateLimit))
}

func (r *Router) registerSystem() {
	h := &HealthHandler{
		Version:      r.buildVersion,
		Started:      r.startTime,
		DB:           r.store,
		RedactErrors: r.errors.Redact,
	}

	// Probes are polled by orchestrators, so they get the lenient profile
	r.Mux.Handle("GET /livez", httpx.Chain(http.HandlerFunc(h.HandleLivez), httpx.RateLimitByIP(httpx.LenientLimit)))
	r.Mux.Handle("GET /readyz", httpx.Chain(http.HandlerFunc(h.HandleReadyz), httpx.RateLimitByIP(httpx.LenientLimit)))
}
