package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/robera20/employee-attendance-management/internal/attendance/domain"
	"github.com/robera20/employee-attendance-management/internal/attendance/store"
	"github.com/robera20/employee-attendance-management/pkg/slogx"
)

// FaceSamples is the normalised training input for one employee. Descriptor
// is kept as opaque JSON; recognition happens in the browser.
type FaceSamples struct {
	Descriptor json.RawMessage
	Images     []string
	Count      int // samples received, used for faces_trained
}

// faceDocument is the JSON stored in face_training.face_data.
type faceDocument struct {
	Descriptor   json.RawMessage `json:"descriptor"`
	Images       []string        `json:"images"`
	Timestamp    string          `json:"timestamp"`
	QualityScore float64         `json:"quality_score"`
}

type legacySample struct {
	Descriptor json.RawMessage `json:"descriptor"`
	Image      string          `json:"image"`
}

// FaceRecognitionEntry is one row of the face database.
type FaceRecognitionEntry struct {
	EmployeeID int64
	Name       string
	Email      string
	Descriptor json.RawMessage
	Image      string
}

// FaceDescriptor is one employee's descriptor with its training quality.
type FaceDescriptor struct {
	EmployeeID int64
	Name       string
	Descriptor json.RawMessage
	Quality    float64
}

type FaceStatus struct {
	EmployeeID   int64
	FacesTrained int
	HasFaceData  bool
}

// DecodeFaceSamples accepts the three upload shapes clients send:
// face_data as {descriptor, images}, face_data as [{descriptor, image}], or a
// bare face_images list.
func DecodeFaceSamples(faceData json.RawMessage, faceImages []string) (FaceSamples, error) {
	trimmed := bytes.TrimSpace(faceData)

	switch {
	case len(trimmed) > 0 && trimmed[0] == '{':
		var doc struct {
			Descriptor json.RawMessage `json:"descriptor"`
			Images     []string        `json:"images"`
		}
		if err := json.Unmarshal(trimmed, &doc); err != nil {
			return FaceSamples{}, Validation("Invalid face data")
		}
		return FaceSamples{
			Descriptor: doc.Descriptor,
			Images:     doc.Images,
			Count:      max(len(doc.Images), 1),
		}, nil

	case len(trimmed) > 0 && trimmed[0] == '[':
		var samples []legacySample
		if err := json.Unmarshal(trimmed, &samples); err != nil {
			return FaceSamples{}, Validation("Invalid face data")
		}
		if len(samples) == 0 {
			return FaceSamples{}, Validation("Employee ID and face data are required")
		}

		out := FaceSamples{Count: len(samples)}
		for _, s := range samples {
			if out.Descriptor == nil && len(s.Descriptor) > 0 && string(s.Descriptor) != "null" {
				out.Descriptor = s.Descriptor
			}
			if s.Image != "" {
				out.Images = append(out.Images, s.Image)
			}
		}
		return out, nil

	case len(faceImages) > 0:
		return FaceSamples{Images: faceImages, Count: len(faceImages)}, nil
	}

	return FaceSamples{}, Validation("Employee ID and face data are required")
}

// FaceQuality scores a set of sample images between 0 and 1. PNG scores
// highest, then JPEG; more samples earn a bonus of up to 0.2.
func FaceQuality(images []string) float64 {
	if len(images) == 0 {
		return 0.5
	}

	var total float64
	for _, img := range images {
		switch {
		case strings.Contains(img, "data:image/jpeg"):
			total += 0.8
		case strings.Contains(img, "data:image/png"):
			total += 0.9
		default:
			total += 0.6
		}
	}

	avg := total / float64(len(images))
	bonus := math.Min(0.2, float64(len(images))*0.05)
	return math.Min(1.0, avg+bonus)
}

type FaceService struct {
	Store store.Store
	Now   func() time.Time
}

func (s *FaceService) now() time.Time {
	if s.Now == nil {
		return time.Now()
	}
	return s.Now()
}

// TrainFace replaces the employee's face data and returns the quality score.
func (s *FaceService) TrainFace(ctx context.Context, adminID, employeeID int64, samples FaceSamples) (float64, error) {
	if employeeID <= 0 {
		return 0, Validation("Employee ID and face data are required")
	}
	if err := s.ensureOwned(ctx, employeeID, adminID); err != nil {
		return 0, err
	}

	descriptor := samples.Descriptor
	if len(descriptor) == 0 || string(descriptor) == "null" {
		descriptor = json.RawMessage("[]")
	}
	images := samples.Images
	if images == nil {
		images = []string{}
	}

	now := s.now()
	doc := faceDocument{
		Descriptor:   descriptor,
		Images:       images,
		Timestamp:    now.UTC().Format(time.RFC3339Nano),
		QualityScore: FaceQuality(images),
	}
	raw, err := json.Marshal(doc)
	if err != nil {
		return 0, fmt.Errorf("failed to encode face data: %w", err)
	}

	err = s.Store.FaceTraining().UpsertFaceTraining(ctx, domain.FaceTraining{
		EmployeeID:   employeeID,
		FaceData:     string(raw),
		QualityScore: doc.QualityScore,
		UpdatedAt:    now,
	})
	if err != nil {
		return 0, fmt.Errorf("failed to save face data: %w", err)
	}

	slogx.FromContext(ctx).Info("face training saved",
		"employee_id", employeeID,
		"samples", samples.Count,
		"quality_score", doc.QualityScore,
	)
	return doc.QualityScore, nil
}

// FaceDatabase lists the tenant's trained faces, newest first.
func (s *FaceService) FaceDatabase(ctx context.Context, adminID int64) ([]FaceRecognitionEntry, error) {
	log := slogx.FromContext(ctx)

	records, err := s.Store.FaceTraining().ListFaceRecords(ctx, adminID)
	if err != nil {
		return nil, fmt.Errorf("failed to list face data: %w", err)
	}

	out := make([]FaceRecognitionEntry, 0, len(records))
	for _, r := range records {
		doc, err := decodeFaceDocument(r.FaceData)
		if err != nil {
			log.Warn("skipping unreadable face data", "employee_id", r.EmployeeID, "err", err)
			continue
		}

		entry := FaceRecognitionEntry{
			EmployeeID: r.EmployeeID,
			Name:       r.Name,
			Email:      r.Email,
			Descriptor: doc.Descriptor,
		}
		if len(doc.Images) > 0 {
			entry.Image = doc.Images[0]
		}
		out = append(out, entry)
	}
	return out, nil
}

// FaceDescriptors lists descriptors and quality for the tenant's trained
// employees.
func (s *FaceService) FaceDescriptors(ctx context.Context, adminID int64) ([]FaceDescriptor, error) {
	log := slogx.FromContext(ctx)

	records, err := s.Store.FaceTraining().ListFaceRecords(ctx, adminID)
	if err != nil {
		return nil, fmt.Errorf("failed to list face data: %w", err)
	}

	out := make([]FaceDescriptor, 0, len(records))
	for _, r := range records {
		doc, err := decodeFaceDocument(r.FaceData)
		if err != nil {
			log.Warn("skipping unreadable face data", "employee_id", r.EmployeeID, "err", err)
			continue
		}

		quality := r.QualityScore
		if quality == 0 {
			quality = 0.8
		}
		out = append(out, FaceDescriptor{
			EmployeeID: r.EmployeeID,
			Name:       r.Name,
			Descriptor: doc.Descriptor,
			Quality:    quality,
		})
	}
	return out, nil
}

func (s *FaceService) FaceStatus(ctx context.Context, adminID, employeeID int64) (FaceStatus, error) {
	if err := s.ensureOwned(ctx, employeeID, adminID); err != nil {
		return FaceStatus{}, err
	}

	status := FaceStatus{EmployeeID: employeeID}

	ft, err := s.Store.FaceTraining().GetFaceTraining(ctx, employeeID)
	if errors.Is(err, store.ErrNotFound) {
		return status, nil
	}
	if err != nil {
		return FaceStatus{}, fmt.Errorf("failed to load face data: %w", err)
	}

	status.HasFaceData = true
	status.FacesTrained = 1
	if doc, err := decodeFaceDocument(ft.FaceData); err == nil && len(doc.Images) > 0 {
		status.FacesTrained = len(doc.Images)
	}
	return status, nil
}

func (s *FaceService) DeleteFaceData(ctx context.Context, adminID, employeeID int64) error {
	if err := s.ensureOwned(ctx, employeeID, adminID); err != nil {
		return err
	}
	if err := s.Store.FaceTraining().DeleteFaceTraining(ctx, employeeID); err != nil {
		return fmt.Errorf("failed to delete face data: %w", err)
	}
	return nil
}

func (s *FaceService) ensureOwned(ctx context.Context, employeeID, adminID int64) error {
	_, err := s.Store.Employees().GetOwnedEmployee(ctx, employeeID, adminID)
	if errors.Is(err, store.ErrNotFound) {
		return ErrEmployeeNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to load employee: %w", err)
	}
	return nil
}

func decodeFaceDocument(raw string) (faceDocument, error) {
	var doc faceDocument
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		return faceDocument{}, err
	}
	if len(doc.Descriptor) == 0 || string(doc.Descriptor) == "null" {
		doc.Descriptor = json.RawMessage("[]")
	}
	return doc, nil
}
