package service

import (
	"encoding/base64"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuildQRPayload(t *testing.T) {
	t.Parallel()

	payload, err := BuildQRPayload(12, `Ann "The Boss"`)
	require.NoError(t, err)
	require.Equal(t, `{"id":12,"name":"Ann \"The Boss\""}`, payload)
}

func TestQRRender(t *testing.T) {
	t.Parallel()

	for _, svc := range []*QRService{nil, {}, {Size: 64}} {
		url, err := svc.Render(`{"id":1,"name":"Bob"}`)
		require.NoError(t, err)

		raw, ok := strings.CutPrefix(url, "data:image/png;base64,")
		require.True(t, ok)

		png, err := base64.StdEncoding.DecodeString(raw)
		require.NoError(t, err)
		require.Equal(t, "\x89PNG", string(png[:4]))
	}
}
