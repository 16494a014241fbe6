package attendancesdk

import (
	"encoding/json"
	"time"
)

// ============================================================================
// Health Check Types
// ============================================================================

// HealthResponse represents the response from health check endpoints.
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

// HealthChecks contains individual component health check results.
type HealthChecks struct {
	Database string `json:"database"`
}

// ============================================================================
// Common Types
// ============================================================================

// ErrorResponse is the body of every error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse is returned by endpoints that only acknowledge a request.
type MessageResponse struct {
	Success bool   `json:"success,omitempty"`
	Message string `json:"message"`
}

// ============================================================================
// Auth Types
// ============================================================================

type SignupRequest struct {
	Name             string `json:"name"`
	Email            string `json:"email"`
	Phone            string `json:"phone"`
	Organization     string `json:"organization"`
	Username         string `json:"username"`
	Password         string `json:"password"`
	SecurityQuestion string `json:"security_question"`
	SecurityAnswer   string `json:"security_answer"`
}

type SignupResponse struct {
	Message string `json:"message"`
	AdminID int64  `json:"admin_id"`
}

// SigninRequest signs an admin in. TOTPCode is required once MFA is enabled.
type SigninRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	TOTPCode string `json:"totp_code,omitempty"`
}

type CheckResponse struct {
	Authenticated bool  `json:"authenticated"`
	AdminID       int64 `json:"adminId,omitempty"`
}

type Admin struct {
	AdminID      int64     `json:"admin_id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	Organization string    `json:"organization"`
	Username     string    `json:"username"`
	MFAEnabled   bool      `json:"mfa_enabled"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type ProfileResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Admin   Admin  `json:"admin"`
}

type UpdateProfileRequest struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Organization string `json:"organization"`
	Username     string `json:"username"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

type SecurityQuestionResponse struct {
	Username         string `json:"username"`
	SecurityQuestion string `json:"security_question"`
}

type ResetPasswordRequest struct {
	Username       string `json:"username"`
	SecurityAnswer string `json:"security_answer"`
	NewPassword    string `json:"new_password"`
}

// ============================================================================
// MFA Types
// ============================================================================

// TOTPEnrollResponse is returned when enrolling in TOTP MFA.
type TOTPEnrollResponse struct {
	Secret  string `json:"secret"`
	URL     string `json:"otpauth_url"`
	QRCode  string `json:"qr_code"`
	Issuer  string `json:"issuer"`
	Account string `json:"account"`
}

// TOTPCodeRequest carries a TOTP code for verify and disable.
type TOTPCodeRequest struct {
	Code string `json:"code"`
}

// ============================================================================
// Employee Types
// ============================================================================

type Employee struct {
	EmployeeID int64     `json:"employee_id"`
	AdminID    int64     `json:"admin_id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone"`
	Position   string    `json:"position"`
	Department string    `json:"department"`
	QRCode     string    `json:"qr_code"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type AddEmployeeRequest struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Position   string `json:"position,omitempty"`
	Department string `json:"department,omitempty"`
}

// AddEmployeeResponse carries the rendered badge. QRCode is a PNG data URL and
// QRData the JSON payload encoded in it.
type AddEmployeeResponse struct {
	Message    string `json:"message"`
	EmployeeID int64  `json:"employee_id"`
	QRCode     string `json:"qr_code"`
	QRData     string `json:"qr_data"`
}

type EmployeeListResponse struct {
	Employees []Employee `json:"employees"`
}

type EmployeeSearchResponse struct {
	Employees  []Employee `json:"employees"`
	SearchTerm string     `json:"searchTerm"`
	TotalFound int        `json:"totalFound"`
}

type EmployeeDetailResponse struct {
	Success  bool     `json:"success"`
	Employee Employee `json:"employee"`
}

type GenerateQRResponse struct {
	Success      bool   `json:"success"`
	QRCode       string `json:"qr_code"`
	QRData       string `json:"qr_data"`
	EmployeeName string `json:"employee_name"`
}

type RegenerateAllQRResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Updated int    `json:"updated"`
	Total   int    `json:"total"`
}

type DeleteEmployeeResponse struct {
	Success    bool   `json:"success"`
	Message    string `json:"message"`
	EmployeeID int64  `json:"employee_id"`
}

// ============================================================================
// Face Training Types
// ============================================================================

// TrainFaceRequest uploads face samples. FaceData is either
// {"descriptor": [...], "images": [...]} or [{"descriptor": [...], "image": "..."}];
// FaceImages is accepted on its own for image-only uploads.
type TrainFaceRequest struct {
	EmployeeID int64           `json:"employee_id"`
	FaceData   json.RawMessage `json:"face_data,omitempty"`
	FaceImages []string        `json:"face_images,omitempty"`
}

type TrainFaceResponse struct {
	Message      string  `json:"message"`
	QualityScore float64 `json:"quality_score"`
	FacesTrained int     `json:"faces_trained"`
}

type FaceDatabaseEntry struct {
	EmployeeID int64           `json:"employee_id"`
	Name       string          `json:"name"`
	Email      string          `json:"email"`
	Descriptor json.RawMessage `json:"descriptor"`
	Image      string          `json:"image"`
}

type FaceDescriptor struct {
	EmployeeID int64           `json:"employee_id"`
	Name       string          `json:"name"`
	Descriptor json.RawMessage `json:"descriptor"`
	Quality    float64         `json:"quality"`
}

type FaceStatusResponse struct {
	EmployeeID   int64 `json:"employee_id"`
	FacesTrained int   `json:"faces_trained"`
	HasFaceData  bool  `json:"has_face_data"`
}

type DeleteFaceDataResponse struct {
	Message    string `json:"message"`
	EmployeeID int64  `json:"employee_id"`
}

// ============================================================================
// Attendance Types
// ============================================================================

// MarkAttendanceRequest carries the scanned id. The server also accepts a
// JSON number.
type MarkAttendanceRequest struct {
	EmployeeID string `json:"employee_id"`
}

type MarkAttendanceResponse struct {
	Success    bool      `json:"success"`
	Message    string    `json:"message"`
	Status     string    `json:"status"`
	Timestamp  time.Time `json:"timestamp"`
	EmployeeID int64     `json:"employee_id"`
	Employee   Employee  `json:"employee"`
}

// MarkAttendanceError is the body of a failed mark. Status, Timestamp and
// Employee are set when attendance was already recorded today; Suggestions
// and SearchedID when the employee could not be found.
type MarkAttendanceError struct {
	Error       string     `json:"error"`
	Status      string     `json:"status,omitempty"`
	Timestamp   *time.Time `json:"timestamp,omitempty"`
	Employee    *Employee  `json:"employee,omitempty"`
	Suggestions []Employee `json:"suggestions,omitempty"`
	SearchedID  string     `json:"searchedId,omitempty"`
}

type UpdateAttendanceRequest struct {
	Status string `json:"status"`
	Reason string `json:"reason,omitempty"`
}

type UpdateAttendanceResponse struct {
	Success   bool     `json:"success"`
	Message   string   `json:"message"`
	OldStatus string   `json:"oldStatus"`
	NewStatus string   `json:"newStatus"`
	Employee  Employee `json:"employee"`
}

type AttendanceStats struct {
	TotalDays   int `json:"total_days"`
	PresentDays int `json:"present_days"`
	LateDays    int `json:"late_days"`
	AbsentDays  int `json:"absent_days"`
}

// ============================================================================
// Dashboard Types
// ============================================================================

type DashboardSummary struct {
	TotalEmployees int `json:"totalEmployees"`
	EmployeeGrowth int `json:"employeeGrowth"`
	NewToday       int `json:"newToday"`
	PresentToday   int `json:"presentToday"`
	PresentRate    int `json:"presentRate"`
	LateToday      int `json:"lateToday"`
	LateRate       int `json:"lateRate"`
	AbsentToday    int `json:"absentToday"`
	AbsentRate     int `json:"absentRate"`
}

type EmployeeStatus struct {
	EmployeeID   int64      `json:"employee_id"`
	Name         string     `json:"name"`
	Email        string     `json:"email"`
	Phone        string     `json:"phone"`
	Position     string     `json:"position"`
	Department   string     `json:"department"`
	Status       string     `json:"status"`
	Timestamp    *time.Time `json:"timestamp"`
	AttendanceID *int64     `json:"attendance_id"`
}

type EmployeeStatusResponse struct {
	Employees []EmployeeStatus `json:"employees"`
}

type Activity struct {
	Type        string    `json:"type"`
	Description string    `json:"description"`
	Timestamp   time.Time `json:"timestamp"`
}

type RecentActivityResponse struct {
	Activities []Activity `json:"activities"`
}

// AttendanceTrend holds parallel per-day series, oldest day first.
type AttendanceTrend struct {
	Labels  []string `json:"labels"`
	Present []int    `json:"present"`
	Late    []int    `json:"late"`
	Absent  []int    `json:"absent"`
}

type StatusCounts struct {
	Present int `json:"present"`
	Late    int `json:"late"`
	Absent  int `json:"absent"`
}

// ============================================================================
// Report Types
// ============================================================================

// ReportRequest selects an inclusive YYYY-MM-DD range.
type ReportRequest struct {
	Type      string `json:"type,omitempty"`
	Period    string `json:"period,omitempty"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

type EmployeeReportRow struct {
	EmployeeID int64  `json:"employee_id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Present    int    `json:"present"`
	Late       int    `json:"late"`
	Absent     int    `json:"absent"`
}

type ReportResponse struct {
	TotalEmployees    int                 `json:"totalEmployees"`
	TotalPresent      int                 `json:"totalPresent"`
	TotalLate         int                 `json:"totalLate"`
	TotalAbsent       int                 `json:"totalAbsent"`
	StartDate         string              `json:"startDate"`
	EndDate           string              `json:"endDate"`
	Type              string              `json:"type"`
	AttendanceDetails []EmployeeReportRow `json:"attendanceDetails"`
}

type ReportSummary struct {
	TotalEmployees int `json:"totalEmployees"`
	TodayPresent   int `json:"todayPresent"`
	TodayLate      int `json:"todayLate"`
	TodayAbsent    int `json:"todayAbsent"`
}
