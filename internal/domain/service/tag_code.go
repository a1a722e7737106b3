package service

// TagCodeGenerator renders the printable code placed next to the NFC chip,
// for phones that cannot read the tag.
type TagCodeGenerator interface {
	// GeneratePNG encodes content as a PNG image.
	GeneratePNG(content string) ([]byte, error)
}
