package attendancesdk

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// AddEmployee registers an employee and returns its badge.
func (c *SDKClient) AddEmployee(ctx context.Context, req AddEmployeeRequest) (*AddEmployeeResponse, error) {
	var out AddEmployeeResponse
	if err := c.doJSON(ctx, http.MethodPost, "/employee/add", req, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *SDKClient) ListEmployees(ctx context.Context) ([]Employee, error) {
	var out EmployeeListResponse
	if err := c.doJSON(ctx, http.MethodGet, "/employee/list", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out.Employees, nil
}

// SearchEmployees matches q against name, email, id and phone. q must be at
// least two characters.
func (c *SDKClient) SearchEmployees(ctx context.Context, q string) (*EmployeeSearchResponse, error) {
	var out EmployeeSearchResponse
	path := "/employee/search?" + url.Values{"q": {q}}.Encode()
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *SDKClient) GetEmployee(ctx context.Context, id int64) (*Employee, error) {
	var out EmployeeDetailResponse
	if err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/employee/get/%d", id), nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out.Employee, nil
}

// GenerateQR re-renders one employee's badge.
func (c *SDKClient) GenerateQR(ctx context.Context, id int64) (*GenerateQRResponse, error) {
	var out GenerateQRResponse
	if err := c.doJSON(ctx, http.MethodPost, fmt.Sprintf("/employee/generate-qr/%d", id), nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *SDKClient) RegenerateAllQR(ctx context.Context) (*RegenerateAllQRResponse, error) {
	var out RegenerateAllQRResponse
	if err := c.doJSON(ctx, http.MethodPost, "/employee/regenerate-all-qr", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteEmployee removes an employee with its attendance and face data.
func (c *SDKClient) DeleteEmployee(ctx context.Context, id int64) error {
	return c.doJSON(ctx, http.MethodDelete, fmt.Sprintf("/employee/%d", id), nil, nil, http.StatusOK)
}

func (c *SDKClient) TrainFace(ctx context.Context, req TrainFaceRequest) (*TrainFaceResponse, error) {
	var out TrainFaceResponse
	if err := c.doJSON(ctx, http.MethodPost, "/employee/train-face", req, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *SDKClient) GetFaceDatabase(ctx context.Context) ([]FaceDatabaseEntry, error) {
	var out []FaceDatabaseEntry
	if err := c.doJSON(ctx, http.MethodGet, "/employee/face-database", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *SDKClient) GetFaceDescriptors(ctx context.Context) ([]FaceDescriptor, error) {
	var out []FaceDescriptor
	if err := c.doJSON(ctx, http.MethodGet, "/employee/face-descriptors", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *SDKClient) GetFaceStatus(ctx context.Context, id int64) (*FaceStatusResponse, error) {
	var out FaceStatusResponse
	if err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/employee/face-status/%d", id), nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *SDKClient) DeleteFaceData(ctx context.Context, id int64) error {
	return c.doJSON(ctx, http.MethodDelete, fmt.Sprintf("/employee/face-data/%d", id), nil, nil, http.StatusOK)
}
