package stardrift

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type MockResource1 struct {
	name string
}
type MockResource2 struct {
	name string
}

func TestApp_addResources(t *testing.T) {
	app := NewApp()
	app.addResources(&MockResource1{name: "a"}, &MockResource2{name: "b"})

	require.NotNil(t, resourceOf[MockResource1](app))
	assert.Equal(t, "a", resourceOf[MockResource1](app).name)
	assert.Nil(t, resourceOf[Clock](app))
}

func TestApp_addResources_DuplicatePanics(t *testing.T) {
	app := NewApp()
	app.addResources(&MockResource1{})
	require.Panics(t, func() {
		app.addResources(&MockResource1{})
	})
}

func TestApp_callSystem_ResolvesResources(t *testing.T) {
	app := NewApp()
	app.addResources(&MockResource1{name: "injected"})

	var got string
	app.callSystem(func(r *MockResource1) {
		got = r.name
	})
	assert.Equal(t, "injected", got)
}

func TestApp_callSystem_ResolvesCommands(t *testing.T) {
	app := NewApp()

	var cmdApp *App
	app.callSystem(func(cmd *Commands) {
		cmdApp = cmd.app
	})
	assert.Same(t, app, cmdApp)
}

func TestApp_callSystem_UnresolvedPanics(t *testing.T) {
	app := NewApp()
	require.Panics(t, func() {
		app.callSystem(func(r *MockResource2) {})
	})
}

type exitModule struct{}

func (m exitModule) Install(app *App, cmd *Commands) {
	app.UseSystem(System(func(cmd *Commands) {
		cmd.Exit()
	}).InStage(Finale))
}

func TestApp_RunExitsWhenAsked(t *testing.T) {
	app := NewApp()
	app.UseModules(exitModule{})
	app.Run() // must return after the first frame
	assert.False(t, app.running)
}

type callOrder struct {
	names []string
}

func TestStageExecutionOrder(t *testing.T) {
	app := NewApp()
	order := &callOrder{}
	app.addResources(order)

	app.UseSystem(System(func(o *callOrder) { o.names = append(o.names, "render") }).InStage(Render))
	app.UseSystem(System(func(o *callOrder) { o.names = append(o.names, "prelude") }).InStage(Prelude))
	app.UseSystem(System(func(o *callOrder) { o.names = append(o.names, "update") }).InStage(Update))

	app.callSystems()
	assert.Equal(t, []string{"prelude", "update", "render"}, order.names)
}

func TestUseStageInsertsRelative(t *testing.T) {
	app := NewApp()
	order := &callOrder{}
	app.addResources(order)

	capture := Stage{Name: "Capture"}
	app.UseStage(capture, BeforeStage(Render))

	app.UseSystem(System(func(o *callOrder) { o.names = append(o.names, "capture") }).InStage(capture))
	app.UseSystem(System(func(o *callOrder) { o.names = append(o.names, "render") }).InStage(Render))

	app.callSystems()
	assert.Equal(t, []string{"capture", "render"}, order.names)
}

func TestUseStageUnknownTargetPanics(t *testing.T) {
	app := NewApp()
	require.Panics(t, func() {
		app.UseStage(Stage{Name: "X"}, AfterStage(Stage{Name: "NoSuchStage"}))
	})
}

func TestUseSystemUnknownStagePanics(t *testing.T) {
	app := NewApp()
	require.Panics(t, func() {
		app.UseSystem(System(func() {}).InStage(Stage{Name: "NoSuchStage"}))
	})
}

func TestApp_LoggerFallsBackToNop(t *testing.T) {
	app := NewApp()
	require.NotNil(t, app.Logger())

	app.UseModules(LoggingModule{Prefix: "test"})
	if _, ok := app.Logger().(*DefaultLogger); !ok {
		t.Errorf("expected the installed DefaultLogger, got %T", app.Logger())
	}
}
