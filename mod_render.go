package stardrift

import (
	"time"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/google/uuid"
)

// Globals matches the uniform block in starfield.wgsl. The padding
// rounds the block up to 16 bytes and carries no meaning.
type Globals struct {
	Time float32
	_pad [3]float32
}

// RenderModule draws the star field with wgpu into a GLFW window.
// It expects a Field resource, so FieldModule must be installed first.
type RenderModule struct {
	WindowWidth  int
	WindowHeight int
	WindowTitle  string
}

type renderState struct {
	window *WindowState
	gpu    *GpuState

	pipeline       *wgpu.RenderPipeline
	vertexBuffer   *wgpu.Buffer
	indexBuffer    *wgpu.Buffer
	instanceBuffer *wgpu.Buffer
	uniformBuffer  *wgpu.Buffer
	bindGroup      *wgpu.BindGroup

	indexCount    uint32
	instanceCount uint32

	stats FrameStats
}

func (mod RenderModule) Install(app *App, cmd *Commands) {
	field := resourceOf[Field](app)
	if field == nil {
		panic("RenderModule needs a Field resource; install FieldModule first")
	}

	window := createWindowState(mod.WindowWidth, mod.WindowHeight, mod.WindowTitle)
	gpu := createGpuState(window)

	pipeline := createRenderPipeline("starfield", starfieldWGSL, []wgpu.VertexBufferLayout{
		createVertexBufferLayout(Vertex{}, wgpu.VertexStepModeVertex),
		createVertexBufferLayout(Instance{}, wgpu.VertexStepModeInstance),
	}, gpu)

	vertices, indices := StarMesh()

	state := &renderState{
		window:         window,
		gpu:            gpu,
		pipeline:       pipeline,
		vertexBuffer:   createVertexBuffer(vertices, gpu.device),
		indexBuffer:    createIndexBuffer(indices, gpu.device),
		instanceBuffer: createInstanceBuffer(field.Instances, gpu.device),
		uniformBuffer:  createUniformBuffer(structBytes(&Globals{}), gpu.device),
		indexCount:     uint32(len(indices)),
		instanceCount:  uint32(len(field.Instances)),
	}

	bindGroupLayout := pipeline.GetBindGroupLayout(0)
	defer bindGroupLayout.Release()
	bindGroup, err := gpu.device.CreateBindGroup(&wgpu.BindGroupDescriptor{
		Layout: bindGroupLayout,
		Entries: []wgpu.BindGroupEntry{
			{Binding: 0, Buffer: state.uniformBuffer, Size: wgpu.WholeSize},
		},
	})
	if err != nil {
		panic(err)
	}
	state.bindGroup = bindGroup

	window.windowGlfw.SetSizeCallback(func(w *glfw.Window, width int, height int) {
		window.WindowWidth = width
		window.WindowHeight = height
		gpu.resize(width, height)
	})

	app.UseSystem(System(windowEventsSystem).InStage(Prelude))
	app.UseSystem(System(starRenderSystem).InStage(Render))

	cmd.AddResources(state)

	app.Logger().Infof("render session %s: %d instances, %dx%d",
		uuid.NewString(), state.instanceCount, window.WindowWidth, window.WindowHeight)
}

func windowEventsSystem(state *renderState, cmd *Commands) {
	glfw.PollEvents()
	if state.window.windowGlfw.ShouldClose() {
		cmd.Exit()
	}
}

// starRenderSystem submits one frame. The clock is read exactly once,
// into the uniform buffer, before the draw: every vertex of the frame
// sees the same time value.
func starRenderSystem(state *renderState, clock *Clock, cmd *Commands) {
	frameStart := time.Now()

	globals := Globals{Time: clock.Elapsed}
	if err := state.gpu.queue.WriteBuffer(state.uniformBuffer, 0, structBytes(&globals)); err != nil {
		panic(err)
	}

	nextTexture, err := state.gpu.surface.GetCurrentTexture()
	if err != nil {
		panic(err)
	}
	view, err := nextTexture.CreateView(nil)
	if err != nil {
		panic(err)
	}
	defer view.Release()

	encoder, err := state.gpu.device.CreateCommandEncoder(nil)
	if err != nil {
		panic(err)
	}
	defer encoder.Release()

	renderPass := encoder.BeginRenderPass(&wgpu.RenderPassDescriptor{
		ColorAttachments: []wgpu.RenderPassColorAttachment{
			{
				View:       view,
				LoadOp:     wgpu.LoadOpClear,
				StoreOp:    wgpu.StoreOpStore,
				ClearValue: wgpu.Color{R: 0, G: 0, B: 0, A: 1},
			},
		},
	})
	defer renderPass.Release()

	renderPass.SetPipeline(state.pipeline)
	renderPass.SetBindGroup(0, state.bindGroup, nil)
	renderPass.SetVertexBuffer(0, state.vertexBuffer, 0, wgpu.WholeSize)
	renderPass.SetVertexBuffer(1, state.instanceBuffer, 0, wgpu.WholeSize)
	renderPass.SetIndexBuffer(state.indexBuffer, wgpu.IndexFormatUint16, 0, wgpu.WholeSize)
	renderPass.DrawIndexed(state.indexCount, state.instanceCount, 0, 0, 0)

	if err := renderPass.End(); err != nil {
		panic(err)
	}

	cmdBuffer, err := encoder.Finish(nil)
	if err != nil {
		panic(err)
	}
	defer cmdBuffer.Release()

	state.gpu.queue.Submit(cmdBuffer)
	state.gpu.surface.Present()

	logger := cmd.Logger()
	frameTime := time.Since(frameStart)
	state.stats.Record(frameTime)
	logger.Debugf("Render time: %d", frameTime.Microseconds())
	if state.stats.Frames%60 == 0 {
		logger.Infof("%s", state.stats.Summary())
	}
}
