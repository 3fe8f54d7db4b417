package stardrift

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math"
	"os"

	xdraw "golang.org/x/image/draw"
)

// RenderPreview rasterizes one frame of the field on the CPU, using the
// same per-vertex evaluation the shader performs. Triangles are filled
// at 2x supersampling and downsampled, so the output approximates the
// GPU frame without needing a device. Useful for headless inspection
// and as an end-to-end check of the evaluator.
func RenderPreview(field *Field, vertices []Vertex, indices []uint16, t float32, width, height int) *image.RGBA {
	const superSample = 2
	sw, sh := width*superSample, height*superSample

	img := image.NewRGBA(image.Rect(0, 0, sw, sh))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.RGBA{A: 255}), image.Point{}, draw.Src)

	c := FragColor()
	fill := color.RGBA{
		R: uint8(c[0] * 255),
		G: uint8(c[1] * 255),
		B: uint8(c[2] * 255),
		A: uint8(c[3] * 255),
	}

	for _, inst := range field.Instances {
		for i := 0; i+2 < len(indices); i += 3 {
			a := toPixel(EvalVertex(inst, vertices[indices[i]], t), sw, sh)
			b := toPixel(EvalVertex(inst, vertices[indices[i+1]], t), sw, sh)
			d := toPixel(EvalVertex(inst, vertices[indices[i+2]], t), sw, sh)
			fillTriangle(img, a, b, d, fill)
		}
	}

	out := image.NewRGBA(image.Rect(0, 0, width, height))
	xdraw.CatmullRom.Scale(out, out.Bounds(), img, img.Bounds(), xdraw.Src, nil)
	return out
}

func WritePreviewPNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, img)
}

type pixel struct {
	x, y float64
}

// toPixel maps a clip-space position to pixel coordinates; NDC y points
// up, image y points down.
func toPixel(clip [4]float32, width, height int) pixel {
	return pixel{
		x: (float64(clip[0]) + 1) / 2 * float64(width),
		y: (1 - (float64(clip[1])+1)/2) * float64(height),
	}
}

func edge(a, b, p pixel) float64 {
	return (b.x-a.x)*(p.y-a.y) - (b.y-a.y)*(p.x-a.x)
}

func fillTriangle(img *image.RGBA, a, b, c pixel, fill color.RGBA) {
	area := edge(a, b, c)
	if area == 0 {
		return
	}
	if area < 0 {
		b, c = c, b
	}

	bounds := img.Bounds()
	minX := max(int(math.Floor(min(a.x, b.x, c.x))), bounds.Min.X)
	maxX := min(int(math.Ceil(max(a.x, b.x, c.x))), bounds.Max.X-1)
	minY := max(int(math.Floor(min(a.y, b.y, c.y))), bounds.Min.Y)
	maxY := min(int(math.Ceil(max(a.y, b.y, c.y))), bounds.Max.Y-1)

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			p := pixel{x: float64(x) + 0.5, y: float64(y) + 0.5}
			if edge(a, b, p) >= 0 && edge(b, c, p) >= 0 && edge(c, a, p) >= 0 {
				img.SetRGBA(x, y, fill)
			}
		}
	}
}
