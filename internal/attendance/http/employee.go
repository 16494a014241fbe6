package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/robera20/employee-attendance-management/internal/attendance/service"
	"github.com/robera20/employee-attendance-management/pkg/attendancesdk"
	"github.com/robera20/employee-attendance-management/pkg/httpx"
)

// EmployeeHandler handles the employee registry endpoints.
type EmployeeHandler struct {
	EmployeeService *service.EmployeeService
	errors          errorWriter
}

// HandleAdd handles POST /employee/add
//
//	@Summary		Add an employee
//	@Description	Registers an employee for the signed-in admin and returns its QR badge.
//	@Tags			Employees
//	@Security		SessionCookie
//	@Accept			json
//	@Produce		json
//	@Param			request	body		attendancesdk.AddEmployeeRequest	true	"Employee details"
//	@Success		201		{object}	attendancesdk.AddEmployeeResponse
//	@Failure		400		{object}	attendancesdk.ErrorResponse	"Missing fields or email already exists"
//	@Failure		401		{object}	attendancesdk.ErrorResponse
//	@Router			/employee/add [post].
func (h *EmployeeHandler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	id, err := adminID(r)
	if err != nil {
		h.errors.write(w, r, err)
		return
	}

	var req attendancesdk.AddEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, r, err)
		return
	}

	badge, err := h.EmployeeService.AddEmployee(r.Context(), id, service.AddEmployeeParams{
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		Position:   req.Position,
		Department: req.Department,
	})
	if err != nil {
		h.errors.write(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, attendancesdk.AddEmployeeResponse{
		Message:    "Employee added successfully",
		EmployeeID: badge.Employee.ID,
		QRCode:     badge.QRCode,
		QRData:     badge.QRData,
	})
}

// HandleList handles GET /employee/list
//
//	@Summary		List employees
//	@Tags			Employees
//	@Security		SessionCookie
//	@Produce		json
//	@Success		200	{object}	attendancesdk.EmployeeListResponse
//	@Failure		401	{object}	attendancesdk.ErrorResponse
//	@Router			/employee/list [get].
func (h *EmployeeHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	id, err := adminID(r)
	if err != nil {
		h.errors.write(w, r, err)
		return
	}

	emps, err := h.EmployeeService.ListEmployees(r.Context(), id)
	if err != nil {
		h.errors.write(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, attendancesdk.EmployeeListResponse{Employees: toEmployees(emps)})
}

// HandleSearch handles GET /employee/search
//
//	@Summary		Search employees
//	@Description	Matches name, email, id or phone. At most 10 results.
//	@Tags			Employees
//	@Security		SessionCookie
//	@Produce		json
//	@Param			q	query		string	true	"Search term, at least 2 characters"
//	@Success		200	{object}	attendancesdk.EmployeeSearchResponse
//	@Failure		400	{object}	attendancesdk.ErrorResponse	"Search term too short"
//	@Router			/employee/search [get].
func (h *EmployeeHandler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	id, err := adminID(r)
	if err != nil {
		h.errors.write(w, r, err)
		return
	}

	emps, term, err := h.EmployeeService.SearchEmployees(r.Context(), id, r.URL.Query().Get("q"))
	if err != nil {
		h.errors.write(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, attendancesdk.EmployeeSearchResponse{
		Employees:  toEmployees(emps),
		SearchTerm: term,
		TotalFound: len(emps),
	})
}

// HandleGetDetail handles GET /employee/get/{id}
//
//	@Summary		Get employee details
//	@Tags			Employees
//	@Security		SessionCookie
//	@Produce		json
//	@Param			id	path		int	true	"Employee ID"
//	@Success		200	{object}	attendancesdk.EmployeeDetailResponse
//	@Failure		404	{object}	attendancesdk.ErrorResponse
//	@Router			/employee/get/{id} [get].
func (h *EmployeeHandler) HandleGetDetail(w http.ResponseWriter, r *http.Request) {
	emp, ok := h.lookup(w, r)
	if !ok {
		return
	}
	httpx.WriteJSON(w, http.StatusOK, attendancesdk.EmployeeDetailResponse{Success: true, Employee: emp})
}

// HandleGet handles GET /employee/{id}
//
//	@Summary		Get employee
//	@Tags			Employees
//	@Security		SessionCookie
//	@Produce		json
//	@Param			id	path		int	true	"Employee ID"
//	@Success		200	{object}	attendancesdk.Employee
//	@Failure		404	{object}	attendancesdk.ErrorResponse
//	@Router			/employee/{id} [get].
func (h *EmployeeHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	emp, ok := h.lookup(w, r)
	if !ok {
		return
	}
	httpx.WriteJSON(w, http.StatusOK, emp)
}

func (h *EmployeeHandler) lookup(w http.ResponseWriter, r *http.Request) (attendancesdk.Employee, bool) {
	owner, err := adminID(r)
	if err != nil {
		h.errors.write(w, r, err)
		return attendancesdk.Employee{}, false
	}
	id, err := employeeIDParam(r, "id")
	if err != nil {
		h.errors.write(w, r, err)
		return attendancesdk.Employee{}, false
	}

	emp, err := h.EmployeeService.GetEmployee(r.Context(), id, owner)
	if err != nil {
		h.errors.write(w, r, err)
		return attendancesdk.Employee{}, false
	}
	return toEmployee(emp), true
}

// HandleGenerateQR handles POST /employee/generate-qr/{id}
//
//	@Summary		Regenerate one QR badge
//	@Tags			Employees
//	@Security		SessionCookie
//	@Produce		json
//	@Param			id	path		int	true	"Employee ID"
//	@Success		200	{object}	attendancesdk.GenerateQRResponse
//	@Failure		404	{object}	attendancesdk.ErrorResponse
//	@Router			/employee/generate-qr/{id} [post].
func (h *EmployeeHandler) HandleGenerateQR(w http.ResponseWriter, r *http.Request) {
	owner, err := adminID(r)
	if err != nil {
		h.errors.write(w, r, err)
		return
	}
	id, err := employeeIDParam(r, "id")
	if err != nil {
		h.errors.write(w, r, err)
		return
	}

	badge, err := h.EmployeeService.RegenerateQR(r.Context(), id, owner)
	if err != nil {
		h.errors.write(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, attendancesdk.GenerateQRResponse{
		Success:      true,
		QRCode:       badge.QRCode,
		QRData:       badge.QRData,
		EmployeeName: badge.Employee.Name,
	})
}

// HandleRegenerateAll handles POST /employee/regenerate-all-qr
//
//	@Summary		Regenerate every QR badge
//	@Description	Rewrites the payload of every employee. Individual failures are skipped.
//	@Tags			Employees
//	@Security		SessionCookie
//	@Produce		json
//	@Success		200	{object}	attendancesdk.RegenerateAllQRResponse
//	@Router			/employee/regenerate-all-qr [post].
func (h *EmployeeHandler) HandleRegenerateAll(w http.ResponseWriter, r *http.Request) {
	owner, err := adminID(r)
	if err != nil {
		h.errors.write(w, r, err)
		return
	}

	res, err := h.EmployeeService.RegenerateAllQR(r.Context(), owner)
	if err != nil {
		h.errors.write(w, r, err)
		return
	}

	msg := fmt.Sprintf("Successfully regenerated %d QR codes with new format", res.Updated)
	if res.Total == 0 {
		msg = "No employees found to regenerate QR codes"
	}
	httpx.WriteJSON(w, http.StatusOK, attendancesdk.RegenerateAllQRResponse{
		Success: true,
		Message: msg,
		Updated: res.Updated,
		Total:   res.Total,
	})
}

// HandleDelete handles DELETE /employee/{id}
//
//	@Summary		Delete an employee
//	@Description	Removes the employee together with its attendance and face data.
//	@Tags			Employees
//	@Security		SessionCookie
//	@Produce		json
//	@Param			id	path		int	true	"Employee ID"
//	@Success		200	{object}	attendancesdk.DeleteEmployeeResponse
//	@Failure		404	{object}	attendancesdk.ErrorResponse
//	@Router			/employee/{id} [delete].
func (h *EmployeeHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	owner, err := adminID(r)
	if err != nil {
		h.errors.write(w, r, err)
		return
	}
	id, err := employeeIDParam(r, "id")
	if err != nil {
		h.errors.write(w, r, err)
		return
	}

	if err := h.EmployeeService.DeleteEmployee(r.Context(), id, owner); err != nil {
		h.errors.write(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, attendancesdk.DeleteEmployeeResponse{
		Success:    true,
		Message:    "Employee deleted successfully",
		EmployeeID: id,
	})
}
