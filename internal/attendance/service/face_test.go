package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestFaceQuality(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		images []string
		want   float64
	}{
		{"no images", nil, 0.5},
		{"single png", []string{"data:image/png;base64,AA"}, 0.95},
		{"single jpeg", []string{"data:image/jpeg;base64,AA"}, 0.85},
		{"unknown format", []string{"blob"}, 0.65},
		{"mixed pair", []string{"data:image/png;base64,AA", "data:image/jpeg;base64,AA"}, 0.95},
		{"bonus capped", []string{"blob", "blob", "blob", "blob", "blob", "blob"}, 0.8},
		{"score capped", []string{
			"data:image/png;base64,1", "data:image/png;base64,2", "data:image/png;base64,3",
			"data:image/png;base64,4", "data:image/png;base64,5",
		}, 1.0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.InDelta(t, tc.want, FaceQuality(tc.images), 1e-9)
		})
	}
}

func TestDecodeFaceSamples(t *testing.T) {
	t.Parallel()

	t.Run("object form", func(t *testing.T) {
		s, err := DecodeFaceSamples(json.RawMessage(`{"descriptor":[0.1,0.2],"images":["a","b"]}`), nil)
		require.NoError(t, err)
		require.JSONEq(t, `[0.1,0.2]`, string(s.Descriptor))
		require.Equal(t, []string{"a", "b"}, s.Images)
		require.Equal(t, 2, s.Count)
	})

	t.Run("legacy sample list", func(t *testing.T) {
		s, err := DecodeFaceSamples(json.RawMessage(`[{"descriptor":null,"image":"a"},{"descriptor":[1,2],"image":"b"}]`), nil)
		require.NoError(t, err)
		require.JSONEq(t, `[1,2]`, string(s.Descriptor))
		require.Equal(t, []string{"a", "b"}, s.Images)
		require.Equal(t, 2, s.Count)
	})

	t.Run("legacy image list", func(t *testing.T) {
		s, err := DecodeFaceSamples(nil, []string{"a", "b", "c"})
		require.NoError(t, err)
		require.Nil(t, s.Descriptor)
		require.Equal(t, 3, s.Count)
	})

	t.Run("rejects empty input", func(t *testing.T) {
		for _, raw := range []string{"", "null", "[]", `"text"`} {
			_, err := DecodeFaceSamples(json.RawMessage(raw), nil)
			require.Equal(t, KindValidation, KindOf(err), "input %q", raw)
		}
	})

	t.Run("rejects malformed object", func(t *testing.T) {
		_, err := DecodeFaceSamples(json.RawMessage(`{"images":"nope"}`), nil)
		require.Equal(t, KindValidation, KindOf(err))
	})
}

func TestFaceTraining(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	st := newTestStore(t)
	alice := seedAdmin(t, st, "alice")
	carol := seedAdmin(t, st, "carol")
	bobID := seedEmployee(t, st, alice, "Bob", "bob@x.com", time.Time{})

	svc := &FaceService{Store: st}

	status, err := svc.FaceStatus(ctx, alice, bobID)
	require.NoError(t, err)
	require.Equal(t, FaceStatus{EmployeeID: bobID}, status)

	_, err = svc.TrainFace(ctx, carol, bobID, FaceSamples{Count: 1})
	require.ErrorIs(t, err, ErrEmployeeNotFound)

	score, err := svc.TrainFace(ctx, alice, bobID, FaceSamples{
		Descriptor: json.RawMessage(`[0.5,0.25]`),
		Images:     []string{"data:image/jpeg;base64,AA"},
		Count:      1,
	})
	require.NoError(t, err)
	require.InDelta(t, 0.85, score, 1e-9)

	t.Run("retraining replaces the previous sample", func(t *testing.T) {
		score, err := svc.TrainFace(ctx, alice, bobID, FaceSamples{
			Descriptor: json.RawMessage(`[0.75]`),
			Images:     []string{"data:image/png;base64,AA", "data:image/png;base64,BB"},
			Count:      2,
		})
		require.NoError(t, err)
		require.InDelta(t, 1.0, score, 1e-9)

		status, err := svc.FaceStatus(ctx, alice, bobID)
		require.NoError(t, err)
		require.Equal(t, FaceStatus{EmployeeID: bobID, FacesTrained: 2, HasFaceData: true}, status)

		db, err := svc.FaceDatabase(ctx, alice)
		require.NoError(t, err)
		require.Len(t, db, 1)
		require.Equal(t, "Bob", db[0].Name)
		require.Equal(t, "bob@x.com", db[0].Email)
		require.JSONEq(t, `[0.75]`, string(db[0].Descriptor))
		require.Equal(t, "data:image/png;base64,AA", db[0].Image)

		descriptors, err := svc.FaceDescriptors(ctx, alice)
		require.NoError(t, err)
		require.Len(t, descriptors, 1)
		require.InDelta(t, 1.0, descriptors[0].Quality, 1e-9)
	})

	t.Run("other tenants see nothing", func(t *testing.T) {
		db, err := svc.FaceDatabase(ctx, carol)
		require.NoError(t, err)
		require.Empty(t, db)
	})

	t.Run("delete", func(t *testing.T) {
		require.ErrorIs(t, svc.DeleteFaceData(ctx, carol, bobID), ErrEmployeeNotFound)
		require.NoError(t, svc.DeleteFaceData(ctx, alice, bobID))

		status, err := svc.FaceStatus(ctx, alice, bobID)
		require.NoError(t, err)
		require.False(t, status.HasFaceData)
	})
}
