package stardrift

import (
	"math"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStarMesh(t *testing.T) {
	vertices, indices := StarMesh()

	require.Len(t, vertices, 6)
	require.Len(t, indices, 15)

	assert.Equal(t, [2]float32{0, 0}, vertices[0].Position, "first vertex is the center")

	// First rim point sits at angle -pi/2 on the unit circle.
	assert.InDelta(t, 0, vertices[1].Position[0], 1e-6)
	assert.InDelta(t, -1, vertices[1].Position[1], 1e-6)

	for i, v := range vertices[1:] {
		r := math.Hypot(float64(v.Position[0]), float64(v.Position[1]))
		assert.InDelta(t, 1, r, 1e-6, "rim vertex %d must sit on the unit circle", i+1)
	}

	for i := 0; i < len(indices); i += 3 {
		assert.Equal(t, uint16(0), indices[i], "every triangle fans out from the center")
		assert.Equal(t, (indices[i+1]+1)%5+1, indices[i+2], "rim points connect two steps apart")
	}
}

func TestInstanceStride(t *testing.T) {
	// The per-instance record stream is seven tightly packed floats.
	assert.Equal(t, uintptr(28), unsafe.Sizeof(Instance{}))
	assert.Equal(t, uintptr(8), unsafe.Sizeof(Vertex{}))
}

func TestNewFieldDeterministic(t *testing.T) {
	a := NewField(100, 42)
	b := NewField(100, 42)
	c := NewField(100, 7)

	require.Len(t, a.Instances, 100)
	assert.Equal(t, a.Instances, b.Instances, "same seed, same table")
	assert.NotEqual(t, a.Instances, c.Instances, "different seed, different table")
}

func TestNewFieldRanges(t *testing.T) {
	field := NewField(500, 1)
	for _, inst := range field.Instances {
		assert.GreaterOrEqual(t, inst.Position[0], float32(-0.9))
		assert.Less(t, inst.Position[0], float32(0.9))
		assert.GreaterOrEqual(t, inst.Scale, float32(0.02))
		assert.Less(t, inst.Scale, float32(0.05))
		assert.GreaterOrEqual(t, inst.InitialRotation, float32(0))
		assert.Less(t, inst.InitialRotation, float32(2*math.Pi))
		assert.GreaterOrEqual(t, inst.AngularVelocity, float32(0.5))
		assert.Less(t, inst.AngularVelocity, float32(2.0))
	}
}

func TestFieldModule(t *testing.T) {
	app := NewApp()
	app.UseModules(FieldModule{Count: 10, Seed: 3})

	field := resourceOf[Field](app)
	require.NotNil(t, field)
	assert.Len(t, field.Instances, 10)
}

func TestFieldModuleDefaultCount(t *testing.T) {
	app := NewApp()
	app.UseModules(FieldModule{})

	field := resourceOf[Field](app)
	require.NotNil(t, field)
	assert.Len(t, field.Instances, 500)
}
