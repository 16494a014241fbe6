package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/robera20/employee-attendance-management/internal/attendance/service"
	"github.com/robera20/employee-attendance-management/pkg/attendancesdk"
	"github.com/robera20/employee-attendance-management/pkg/httpx"
)

// FaceHandler handles face training uploads and the recognition data feeds.
type FaceHandler struct {
	FaceService *service.FaceService
	errors      errorWriter
}

// trainFaceBody mirrors attendancesdk.TrainFaceRequest but accepts the
// employee id as a string too.
type trainFaceBody struct {
	EmployeeID json.RawMessage `json:"employee_id"`
	FaceData   json.RawMessage `json:"face_data"`
	FaceImages []string        `json:"face_images"`
}

// HandleTrainFace handles POST /employee/train-face
//
//	@Summary		Save face training data
//	@Description	Replaces the employee's face samples. face_data may be an object with descriptor and images, or a list of samples.
//	@Tags			Face
//	@Security		SessionCookie
//	@Accept			json
//	@Produce		json
//	@Param			request	body		attendancesdk.TrainFaceRequest	true	"Face samples"
//	@Success		200		{object}	attendancesdk.TrainFaceResponse
//	@Failure		400		{object}	attendancesdk.ErrorResponse	"Missing employee or face data"
//	@Failure		404		{object}	attendancesdk.ErrorResponse	"Employee not found"
//	@Router			/employee/train-face [post].
func (h *FaceHandler) HandleTrainFace(w http.ResponseWriter, r *http.Request) {
	owner, err := adminID(r)
	if err != nil {
		h.errors.write(w, r, err)
		return
	}

	var req trainFaceBody
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, r, err)
		return
	}

	employeeID, _ := strconv.ParseInt(flexibleID(req.EmployeeID), 10, 64)
	samples, err := service.DecodeFaceSamples(req.FaceData, req.FaceImages)
	if err != nil {
		h.errors.write(w, r, err)
		return
	}

	quality, err := h.FaceService.TrainFace(r.Context(), owner, employeeID, samples)
	if err != nil {
		h.errors.write(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, attendancesdk.TrainFaceResponse{
		Message:      "Face training data saved successfully",
		QualityScore: quality,
		FacesTrained: samples.Count,
	})
}

// HandleFaceDatabase handles GET /employee/face-database
//
//	@Summary		Face recognition database
//	@Description	One entry per trained employee with its descriptor and first sample image.
//	@Tags			Face
//	@Security		SessionCookie
//	@Produce		json
//	@Success		200	{array}	attendancesdk.FaceDatabaseEntry
//	@Router			/employee/face-database [get].
func (h *FaceHandler) HandleFaceDatabase(w http.ResponseWriter, r *http.Request) {
	owner, err := adminID(r)
	if err != nil {
		h.errors.write(w, r, err)
		return
	}

	entries, err := h.FaceService.FaceDatabase(r.Context(), owner)
	if err != nil {
		h.errors.write(w, r, err)
		return
	}

	out := make([]attendancesdk.FaceDatabaseEntry, 0, len(entries))
	for _, e := range entries {
		out = append(out, attendancesdk.FaceDatabaseEntry{
			EmployeeID: e.EmployeeID,
			Name:       e.Name,
			Email:      e.Email,
			Descriptor: e.Descriptor,
			Image:      e.Image,
		})
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleFaceDescriptors handles GET /employee/face-descriptors
//
//	@Summary		Face descriptors
//	@Tags			Face
//	@Security		SessionCookie
//	@Produce		json
//	@Success		200	{array}	attendancesdk.FaceDescriptor
//	@Router			/employee/face-descriptors [get].
func (h *FaceHandler) HandleFaceDescriptors(w http.ResponseWriter, r *http.Request) {
	owner, err := adminID(r)
	if err != nil {
		h.errors.write(w, r, err)
		return
	}

	descriptors, err := h.FaceService.FaceDescriptors(r.Context(), owner)
	if err != nil {
		h.errors.write(w, r, err)
		return
	}

	out := make([]attendancesdk.FaceDescriptor, 0, len(descriptors))
	for _, d := range descriptors {
		out = append(out, attendancesdk.FaceDescriptor{
			EmployeeID: d.EmployeeID,
			Name:       d.Name,
			Descriptor: d.Descriptor,
			Quality:    d.Quality,
		})
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleFaceStatus handles GET /employee/face-status/{id}
//
//	@Summary		Face training status
//	@Tags			Face
//	@Security		SessionCookie
//	@Produce		json
//	@Param			id	path		int	true	"Employee ID"
//	@Success		200	{object}	attendancesdk.FaceStatusResponse
//	@Failure		404	{object}	attendancesdk.ErrorResponse
//	@Router			/employee/face-status/{id} [get].
func (h *FaceHandler) HandleFaceStatus(w http.ResponseWriter, r *http.Request) {
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

	status, err := h.FaceService.FaceStatus(r.Context(), owner, id)
	if err != nil {
		h.errors.write(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, attendancesdk.FaceStatusResponse{
		EmployeeID:   status.EmployeeID,
		FacesTrained: status.FacesTrained,
		HasFaceData:  status.HasFaceData,
	})
}

// HandleDeleteFaceData handles DELETE /employee/face-data/{id}
//
//	@Summary		Delete face training data
//	@Tags			Face
//	@Security		SessionCookie
//	@Produce		json
//	@Param			id	path		int	true	"Employee ID"
//	@Success		200	{object}	attendancesdk.DeleteFaceDataResponse
//	@Failure		404	{object}	attendancesdk.ErrorResponse
//	@Router			/employee/face-data/{id} [delete].
func (h *FaceHandler) HandleDeleteFaceData(w http.ResponseWriter, r *http.Request) {
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

	if err := h.FaceService.DeleteFaceData(r.Context(), owner, id); err != nil {
		h.errors.write(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, attendancesdk.DeleteFaceDataResponse{
		Message:    "Face training data deleted successfully",
		EmployeeID: id,
	})
}
