package qrcode

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/skip2/go-qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecoveryLevel(t *testing.T) {
	tests := []struct {
		level string
		want  qrcode.RecoveryLevel
	}{
		{"L", qrcode.Low},
		{"M", qrcode.Medium},
		{"Q", qrcode.High},
		{"H", qrcode.Highest},
		{"", qrcode.High},
		{"invalid", qrcode.High},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			assert.Equal(t, tt.want, recoveryLevel(tt.level))
		})
	}
}

func TestQRCodeGenerator_GeneratePNG(t *testing.T) {
	tests := []struct {
		name string
		size int
		want int
	}{
		{"Small QR", 128, 128},
		{"Large QR", 512, 512},
		{"Default size", 0, defaultSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			generator := NewQRCodeGenerator(tt.size, "M")

			pngBytes, err := generator.GeneratePNG("https://tags.example.com/pet/3f1c7a52")
			require.NoError(t, err)

			img, err := png.Decode(bytes.NewReader(pngBytes))
			require.NoError(t, err)
			assert.Equal(t, tt.want, img.Bounds().Dx())
			assert.Equal(t, tt.want, img.Bounds().Dy())
		})
	}
}

func TestQRCodeGenerator_EmptyContent(t *testing.T) {
	generator := NewQRCodeGenerator(256, "Q")

	_, err := generator.GeneratePNG("")

	assert.Error(t, err)
}
