package giodrag

import (
	"image"

	"gioui.org/layout"
	"gioui.org/op/paint"
	"golang.org/x/image/draw"
)

// ScaleDragImage returns src scaled down to fit within maxDim on its
// longest side, preserving aspect ratio. Images already small enough are
// returned unchanged.
func ScaleDragImage(src image.Image, maxDim int) image.Image {
	bounds := src.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w <= maxDim && h <= maxDim {
		return src
	}

	var newW, newH int
	if w > h {
		newW = maxDim
		newH = h * maxDim / w
	} else {
		newH = maxDim
		newW = w * maxDim / h
	}
	if newW < 1 {
		newW = 1
	}
	if newH < 1 {
		newH = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, newW, newH))
	draw.BiLinear.Scale(dst, dst.Bounds(), src, bounds, draw.Over, nil)
	return dst
}

// ImageShadow wraps an image as a drag shadow widget, scaled to fit
// maxDim. The result suits both Area.SetShadow and the fallback shadow
// of Area.LayoutWithShadow.
func ImageShadow(img image.Image, maxDim int) layout.Widget {
	scaled := ScaleDragImage(img, maxDim)
	imgOp := paint.NewImageOp(scaled)
	size := scaled.Bounds().Size()
	return func(gtx layout.Context) layout.Dimensions {
		imgOp.Add(gtx.Ops)
		paint.PaintOp{}.Add(gtx.Ops)
		return layout.Dimensions{Size: size}
	}
}
