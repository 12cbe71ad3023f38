package qrcode

import (
	"testing"

	"github.com/skip2/go-qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const shareURL = "https://www.google.com/maps/search/?api=1&query=10.8,78.6"

func TestParseRecoveryLevel(t *testing.T) {
	tests := []struct {
		in   string
		want qrcode.RecoveryLevel
	}{
		{"L", qrcode.Low},
		{"low", qrcode.Low},
		{"M", qrcode.Medium},
		{"medium", qrcode.Medium},
		{"Q", qrcode.High},
		{"H", qrcode.Highest},
		{"invalid", qrcode.Medium},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, parseRecoveryLevel(tt.in))
		})
	}
}

func TestQRCodeService_GenerateStoreShareQR(t *testing.T) {
	service := NewQRCodeService(256, "M")

	qrBytes, err := service.GenerateStoreShareQR(shareURL)
	require.NoError(t, err)
	require.Greater(t, len(qrBytes), 4)

	// PNG magic number
	assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, qrBytes[:4])
}

func TestQRCodeService_GenerateStoreShareQR_DifferentSizes(t *testing.T) {
	for _, size := range []int{128, 256, 512} {
		service := NewQRCodeService(size, "M")

		qrBytes, err := service.GenerateStoreShareQR(shareURL)
		require.NoError(t, err)
		assert.NotEmpty(t, qrBytes)
	}
}

func TestQRCodeService_GenerateStoreShareQR_InvalidURL(t *testing.T) {
	service := NewQRCodeService(256, "M")

	for _, in := range []string{"", "not a url", "/relative/path"} {
		_, err := service.GenerateStoreShareQR(in)
		assert.Error(t, err, in)
	}
}
