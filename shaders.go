package stardrift

import (
	_ "embed"
)

//go:embed starfield.wgsl
var starfieldWGSL string
