package stardrift

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// CPU mirror of the vertex and fragment stages in starfield.wgsl, kept
// in lockstep with the shader: float32 throughout, same operation
// order. Everything here is a pure function of (instance, vertex, time).

// Frac returns x - floor(x), in [0, 1) for any finite x.
func Frac(x float32) float32 {
	return x - math32.Floor(x)
}

// WrapNDC maps x onto the [-1, 1) torus: a coordinate leaving one edge
// of the NDC square reappears at the opposite edge, and a coordinate
// already inside comes back unchanged. Exact odd integers land on -1,
// never on +1: the wrap is closed on the low end, open on the high end.
func WrapNDC(x float32) float32 {
	return Frac((x+1)/2)*2 - 1
}

// RotationAt returns the instance angle at time t, in radians. The
// angle is fed to sin/cos unreduced; periodicity handles large
// t*AngularVelocity products at some precision cost.
func (inst Instance) RotationAt(t float32) float32 {
	return inst.InitialRotation + t*inst.AngularVelocity
}

// CenterAt returns the wrapped NDC center of the instance at time t.
func (inst Instance) CenterAt(t float32) mgl32.Vec2 {
	return mgl32.Vec2{
		WrapNDC(inst.Position[0] + inst.Velocity[0]*t),
		WrapNDC(inst.Position[1] + inst.Velocity[1]*t),
	}
}

// EvalVertex produces the clip-space position of one base vertex of one
// instance at time t. Only the center wraps; the scaled and rotated
// vertex offset is added afterwards and may extend past the NDC square.
func EvalVertex(inst Instance, base Vertex, t float32) mgl32.Vec4 {
	rotation := inst.RotationAt(t)
	center := inst.CenterAt(t)

	sin, cos := math32.Sincos(rotation)
	rot := mgl32.Mat2{cos, sin, -sin, cos}

	scaled := mgl32.Vec2{base.Position[0], base.Position[1]}.Mul(inst.Scale)
	rotated := rot.Mul2x1(scaled)

	return mgl32.Vec4{rotated[0] + center[0], rotated[1] + center[1], 0, 1}
}

// FragColor is the constant fragment output: opaque yellow.
func FragColor() mgl32.Vec4 {
	return mgl32.Vec4{1, 1, 0, 1}
}
