// Package qrcode renders pet page links as QR codes.
package qrcode

import (
	"petnfc/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
)

const defaultSize = 256

type qrcodeGenerator struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// NewQRCodeGenerator creates a QR code generator. Level is one of L, M, Q, H.
func NewQRCodeGenerator(size int, errorCorrectionLevel string) service.TagCodeGenerator {
	if size <= 0 {
		size = defaultSize
	}

	return &qrcodeGenerator{
		size:                 size,
		errorCorrectionLevel: recoveryLevel(errorCorrectionLevel),
	}
}

// Printed tags get scratched, so unknown levels fall back to Q rather than the library default.
func recoveryLevel(level string) qrcode.RecoveryLevel {
	switch level {
	case "L":
		return qrcode.Low
	case "M":
		return qrcode.Medium
	case "Q":
		return qrcode.High
	case "H":
		return qrcode.Highest
	default:
		return qrcode.High
	}
}

// GeneratePNG encodes content as a square PNG of the configured size
func (g *qrcodeGenerator) GeneratePNG(content string) ([]byte, error) {
	if content == "" {
		return nil, errors.New("qr code content is empty")
	}

	qrCode, err := qrcode.New(content, g.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(g.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}
