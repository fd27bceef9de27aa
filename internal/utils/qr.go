package utils

import (
	"errors"
	"fmt"

	"github.com/skip2/go-qrcode"
)

// DefaultQRSize is the edge length in pixels of rendered OOBI QR codes.
const DefaultQRSize = 256

// ErrEmptyQRContent is returned when asked to render an empty string.
var ErrEmptyQRContent = errors.New("nothing to encode")

// QRCodePNG renders content (an OOBI URL) as a PNG QR code with medium error
// correction. A non-positive size uses [DefaultQRSize].
func QRCodePNG(content string, size int) ([]byte, error) {
	if content == "" {
		return nil, ErrEmptyQRContent
	}
	if size <= 0 {
		size = DefaultQRSize
	}

	png, err := qrcode.Encode(content, qrcode.Medium, size)
	if err != nil {
		return nil, fmt.Errorf("encode qr code: %w", err)
	}
	return png, nil
}
