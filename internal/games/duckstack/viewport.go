package duckstack

import (
	"github.com/vovakirdan/duck-stack/internal/config"
	"github.com/vovakirdan/duck-stack/internal/core"
)

// Viewport maps device pixels to the design space all gameplay math uses.
type Viewport struct {
	Width         float64 // device pixels
	DesignWidth   float64 // clamped to [min_width, max_width]
	Height        float64 // design height
	GroundY       float64 // y of the ground line
	Scale         float64 // device pixels per design pixel
	CameraOffsetX float64 // device pixels left of the design area
}

// NewViewport computes the design geometry for a device viewport width.
func NewViewport(cfg config.ViewportConfig, width float64) Viewport {
	if width <= 0 {
		width = cfg.MinWidth
	}
	design := core.ClampF(width, cfg.MinWidth, cfg.MaxWidth)
	scale := width / design
	return Viewport{
		Width:         width,
		DesignWidth:   design,
		Height:        cfg.Height,
		GroundY:       cfg.Height - cfg.GroundMargin,
		Scale:         scale,
		CameraOffsetX: (width - design*scale) / 2,
	}
}

// ClampX keeps a duck of width w fully inside the design width.
func (v Viewport) ClampX(x, w float64) float64 {
	half := w / 2
	if v.DesignWidth <= w {
		return v.DesignWidth / 2
	}
	return core.ClampF(x, half, v.DesignWidth-half)
}

// ToDesignX converts a device x coordinate to design space.
func (v Viewport) ToDesignX(deviceX float64) float64 {
	return (deviceX - v.CameraOffsetX) / v.Scale
}
