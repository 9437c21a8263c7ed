package reportkit

import (
	"github.com/salescope/reportkit/canvas"
	"github.com/salescope/reportkit/layout"
	"github.com/salescope/reportkit/model"
	"github.com/salescope/reportkit/pages"
)

// renderOptions holds the configuration accumulated by a render chain.
type renderOptions struct {
	geometry model.PageGeometry
	measurer canvas.Measurer
	engine   layout.Config
}

// defaultOptions returns the options a fresh chain starts from: US
// Letter geometry, the deterministic fixed-advance measurer, and the
// default engine configuration.
func defaultOptions() renderOptions {
	return renderOptions{
		geometry: model.LetterGeometry(),
		measurer: canvas.NewFixed(),
		engine:   layout.DefaultConfig(),
	}
}

// Renderer provides a fluent interface for configuring and running a
// layout pass. Each configuration method returns a new Renderer
// instance, making chains safe to fork and reuse.
type Renderer struct {
	doc     *model.Document
	options renderOptions
}

// clone creates a copy so that configuration methods never mutate the
// receiver.
func (r *Renderer) clone() *Renderer {
	return &Renderer{doc: r.doc, options: r.options}
}

// Geometry sets the page geometry. Default: model.LetterGeometry.
func (r *Renderer) Geometry(geom model.PageGeometry) *Renderer {
	next := r.clone()
	next.options.geometry = geom
	return next
}

// Measurer sets the text measurement backend. Default: canvas.NewFixed.
func (r *Renderer) Measurer(m canvas.Measurer) *Renderer {
	next := r.clone()
	next.options.measurer = m
	return next
}

// EngineConfig replaces the layout engine configuration.
func (r *Renderer) EngineConfig(config layout.Config) *Renderer {
	next := r.clone()
	next.options.engine = config
	return next
}

// HeaderLabel sets the brand label drawn in every page's header band.
func (r *Renderer) HeaderLabel(label string) *Renderer {
	next := r.clone()
	next.options.engine.HeaderLabel = label
	return next
}

// Render runs the layout pass and returns the rendered pages, any
// non-fatal warnings, and an error if layout failed.
func (r *Renderer) Render() (*pages.Result, []Warning, error) {
	engine := layout.NewWithConfig(r.options.engine)
	result, err := engine.Render(r.doc, r.options.geometry, r.options.measurer)
	if err != nil {
		return nil, nil, err
	}
	return result, result.Warnings, nil
}
