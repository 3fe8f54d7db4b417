package stardrift

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func centeredField(scale float32) *Field {
	return &Field{Instances: []Instance{{
		Position: [2]float32{0, 0},
		Scale:    scale,
	}}}
}

func TestRenderPreviewDrawsStar(t *testing.T) {
	vertices, indices := StarMesh()
	img := RenderPreview(centeredField(0.5), vertices, indices, 0, 64, 64)

	require.Equal(t, 64, img.Bounds().Dx())
	require.Equal(t, 64, img.Bounds().Dy())

	yellow := 0
	for y := 0; y < 64; y++ {
		for x := 0; x < 64; x++ {
			c := img.RGBAAt(x, y)
			if c.R > 200 && c.G > 200 && c.B < 50 {
				yellow++
			}
		}
	}
	assert.Greater(t, yellow, 0, "a centered star must cover some pixels")
	assert.Less(t, yellow, 64*64/2, "a star of radius 0.5 cannot cover half the frame")

	assert.Equal(t, color.RGBA{A: 255}, img.RGBAAt(1, 1), "corners stay background black")
	assert.Equal(t, color.RGBA{A: 255}, img.RGBAAt(62, 62))
}

func TestRenderPreviewZeroScale(t *testing.T) {
	vertices, indices := StarMesh()
	img := RenderPreview(centeredField(0), vertices, indices, 0, 32, 32)

	// Degenerate triangles are dropped, not an error.
	for y := 0; y < 32; y++ {
		for x := 0; x < 32; x++ {
			assert.Equal(t, color.RGBA{A: 255}, img.RGBAAt(x, y))
		}
	}
}

func TestRenderPreviewDeterministic(t *testing.T) {
	field := NewField(20, 11)
	vertices, indices := StarMesh()

	a := RenderPreview(field, vertices, indices, 1.5, 48, 48)
	b := RenderPreview(field, vertices, indices, 1.5, 48, 48)
	assert.Equal(t, a.Pix, b.Pix)
}
