package stardrift

import (
	"time"
)

// Clock is the global animation clock: seconds elapsed since Start.
// It is the only input that varies between frames. The Prelude system
// refreshes Elapsed exactly once per frame, so every later system in
// the same frame observes the same snapshot.
type Clock struct {
	Start   time.Time
	Elapsed float32
}

// Seek rebases the clock so that Elapsed reads t from now on. Motion is
// a pure function of elapsed time, so seeking is exact: there is no
// accumulated state to rewind.
func (c *Clock) Seek(t float32) {
	c.Start = time.Now().Add(-time.Duration(float64(t) * float64(time.Second)))
	c.Elapsed = t
}

type ClockModule struct {
}

func (mod ClockModule) Install(app *App, cmd *Commands) {
	cmd.AddResources(&Clock{
		Start: time.Now(),
	})
	app.UseSystem(System(clockSystem).InStage(Prelude))
}

func clockSystem(clock *Clock) {
	clock.Elapsed = float32(time.Since(clock.Start).Seconds())
}
