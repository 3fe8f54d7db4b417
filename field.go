package stardrift

import (
	"math"
	"math/rand"
)

// Vertex is one corner of the shared base mesh, in model space.
type Vertex struct {
	Position [2]float32 `stardrift:"layout" format:"float2" location:"0"`
}

// Instance holds the immutable motion parameters of one star. Field
// order matches the per-instance vertex buffer record: shader locations
// 2 through 6, 28-byte stride.
type Instance struct {
	Position        [2]float32 `stardrift:"layout" format:"float2" location:"2"`
	Scale           float32    `stardrift:"layout" format:"float" location:"3"`
	InitialRotation float32    `stardrift:"layout" format:"float" location:"4"`
	Velocity        [2]float32 `stardrift:"layout" format:"float2" location:"5"`
	AngularVelocity float32    `stardrift:"layout" format:"float" location:"6"`
}

const starPoints = 5

// StarMesh returns the shared base shape: a center vertex plus five
// points on the unit circle starting at -pi/2. Each triangle connects
// the center to a rim point and the rim point two steps ahead, so the
// outline self-intersects into a pentagram.
func StarMesh() ([]Vertex, []uint16) {
	vertices := make([]Vertex, 0, starPoints+1)
	vertices = append(vertices, Vertex{})

	for i := 0; i < starPoints; i++ {
		angle := float64(i)*2.0*math.Pi/starPoints - math.Pi/2
		vertices = append(vertices, Vertex{Position: [2]float32{
			float32(math.Cos(angle)),
			float32(math.Sin(angle)),
		}})
	}

	indices := make([]uint16, 0, starPoints*3)
	for i := 0; i < starPoints; i++ {
		indices = append(indices, 0, uint16(1+i), uint16(1+(i+2)%starPoints))
	}
	return vertices, indices
}

// Field is the fixed table of instances. The table is filled once at
// setup and never mutated; its cardinality is constant for the session.
// Nothing is validated: a zero scale or zero velocity renders a
// degenerate star, not an error.
type Field struct {
	Instances []Instance
}

// NewField fills a field of count instances from seed. The same seed
// always produces the same table.
func NewField(count int, seed int64) *Field {
	rng := rand.New(rand.NewSource(seed))

	instances := make([]Instance, count)
	for i := range instances {
		instances[i] = Instance{
			Position: [2]float32{
				randRange(rng, -0.9, 0.9),
				randRange(rng, -0.9, 0.9),
			},
			Scale:           randRange(rng, 0.02, 0.05),
			InitialRotation: randRange(rng, 0, 2*math.Pi),
			Velocity: [2]float32{
				randRange(rng, -0.3, 0.3),
				randRange(rng, -0.3, 0.3),
			},
			AngularVelocity: randRange(rng, 0.5, 2.0),
		}
	}
	return &Field{Instances: instances}
}

func randRange(rng *rand.Rand, lo, hi float32) float32 {
	return lo + (hi-lo)*rng.Float32()
}

// FieldModule provides the Field resource.
type FieldModule struct {
	Count int
	Seed  int64
}

func (mod FieldModule) Install(app *App, cmd *Commands) {
	count := mod.Count
	if count <= 0 {
		count = 500
	}
	cmd.AddResources(NewField(count, mod.Seed))
}
