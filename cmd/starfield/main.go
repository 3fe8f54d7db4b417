package main

import (
	"flag"
	"log"

	"github.com/stardrift/stardrift"
)

var (
	count    = flag.Int("n", 500, "number of star instances")
	seed     = flag.Int64("seed", 0, "instance table seed")
	width    = flag.Int("width", 800, "window width")
	height   = flag.Int("height", 600, "window height")
	debug    = flag.Bool("debug", false, "log per-frame render times")
	preview  = flag.String("preview", "", "render one frame to this PNG instead of opening a window")
	clockSec = flag.Float64("t", 0, "clock value for -preview, in seconds")
)

func main() {
	flag.Parse()

	if *preview != "" {
		field := stardrift.NewField(*count, *seed)
		vertices, indices := stardrift.StarMesh()
		img := stardrift.RenderPreview(field, vertices, indices, float32(*clockSec), *width, *height)
		if err := stardrift.WritePreviewPNG(*preview, img); err != nil {
			log.Fatalf("writing %s: %v", *preview, err)
		}
		return
	}

	stardrift.NewAppBuilder().
		UseModule(
			stardrift.LoggingModule{Prefix: "starfield", Debug: *debug},
			stardrift.ClockModule{},
			stardrift.FieldModule{Count: *count, Seed: *seed},
			stardrift.RenderModule{
				WindowWidth:  *width,
				WindowHeight: *height,
				WindowTitle:  "Starfield",
			},
		).
		Build().
		Run()
}
