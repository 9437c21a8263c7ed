package pages

import "github.com/salescope/reportkit/model"

// Drawer is the drawing surface Replay forwards commands to. It matches
// the draw half of the canvas contract so any canvas backend satisfies it.
type Drawer interface {
	DrawText(x, y float64, text string, font model.FontSpec)
	DrawLine(x1, y1, x2, y2, width float64)
	DrawRect(x, y, w, h float64, fill bool)
}

// Replay forwards every command of every page, in draw order, to d.
// Encoders that consume draw primitives directly can use this instead of
// walking the page list themselves.
func Replay(r *Result, d Drawer) {
	for _, page := range r.Pages {
		for _, cmd := range page.AllCommands() {
			replayCommand(cmd, d)
		}
	}
}

// ReplayPage forwards a single page's commands to d.
func ReplayPage(p *Page, d Drawer) {
	for _, cmd := range p.AllCommands() {
		replayCommand(cmd, d)
	}
}

func replayCommand(cmd Command, d Drawer) {
	switch cmd.Kind {
	case CommandText:
		d.DrawText(cmd.X, cmd.Y, cmd.Text, cmd.Font)
	case CommandLine:
		d.DrawLine(cmd.X, cmd.Y, cmd.X2, cmd.Y2, cmd.LineWidth)
	case CommandRect:
		d.DrawRect(cmd.X, cmd.Y, cmd.W, cmd.H, cmd.Fill)
	}
}

// Recorder is a Drawer that collects the commands it receives. It is used
// in tests and by encoders that want a flat command stream.
type Recorder struct {
	Commands []Command
}

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{Commands: make([]Command, 0)}
}

func (r *Recorder) DrawText(x, y float64, text string, font model.FontSpec) {
	r.Commands = append(r.Commands, Text(x, y, text, font))
}

func (r *Recorder) DrawLine(x1, y1, x2, y2, width float64) {
	r.Commands = append(r.Commands, Line(x1, y1, x2, y2, width))
}

func (r *Recorder) DrawRect(x, y, w, h float64, fill bool) {
	r.Commands = append(r.Commands, Rect(x, y, w, h, fill))
}
