package spriteanim

import (
	"fmt"
	"image/color"
	"strings"
)

// PixelFormat is an enumeration of pixel formats
type PixelFormat int

const (
	// RGB32 is 32-bit RGB format (0xAARRGGBB, little-endian in memory)
	RGB32 PixelFormat = iota
	// RGB16 is 16-bit RGB format (5-6-5, little-endian in memory)
	RGB16
)

// GetPixelSize returns the number of bytes per pixel.
func GetPixelSize(pixFormat PixelFormat) int {
	switch pixFormat {
	case RGB16:
		return 2
	default:
		return 4
	}
}

// GetPixelDepth returns the number of significant color bits per pixel.
func GetPixelDepth(pixFormat PixelFormat) int {
	switch pixFormat {
	case RGB16:
		return 16
	default:
		return 24
	}
}

// ParsePixelFormat parses "rgb32" or "rgb16".
func ParsePixelFormat(name string) (PixelFormat, error) {
	switch strings.ToLower(name) {
	case "rgb32":
		return RGB32, nil
	case "rgb16":
		return RGB16, nil
	default:
		return 0, fmt.Errorf("Unsupported pixel format '%s'", name)
	}
}

func (pixFormat PixelFormat) String() string {
	switch pixFormat {
	case RGB32:
		return "rgb32"
	case RGB16:
		return "rgb16"
	default:
		return fmt.Sprintf("PixelFormat(%d)", int(pixFormat))
	}
}

// EncodePixel encodes c into dst, which must hold at least
// GetPixelSize(pixFormat) bytes.
func EncodePixel(dst []byte, c color.Color, pixFormat PixelFormat) {
	r, g, b, a := c.RGBA()
	switch pixFormat {
	case RGB16:
		v := uint16(r>>11)<<11 | uint16(g>>10)<<5 | uint16(b>>11)
		dst[0] = byte(v)
		dst[1] = byte(v >> 8)
	default:
		dst[0] = byte(b >> 8)
		dst[1] = byte(g >> 8)
		dst[2] = byte(r >> 8)
		dst[3] = byte(a >> 8)
	}
}
