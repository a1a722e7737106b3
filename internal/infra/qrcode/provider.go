package qrcode

import (
	"petnfc/config"
	"petnfc/internal/domain/service"
)

// NewTagCodeGenerator builds the tag QR generator from the tag config
func NewTagCodeGenerator(cfg *config.Config) service.TagCodeGenerator {
	return NewQRCodeGenerator(cfg.Tag.QRSize, cfg.Tag.QRErrorCorrection)
}
