package stardrift

type Commands struct {
	app *App
}

func (cmd *Commands) AddResources(resources ...any) *Commands {
	cmd.app.addResources(resources...)
	return cmd
}

// Exit stops the app loop after the current frame finishes.
func (cmd *Commands) Exit() *Commands {
	cmd.app.Exit()
	return cmd
}

func (cmd *Commands) Logger() Logger {
	return cmd.app.Logger()
}
