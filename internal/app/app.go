package app

import "graphics-prototyper/internal/graphics"

// Prototyper is the default application: it keeps the viewport matched to the
// framebuffer and clears to transparent black every frame.
type Prototyper struct {
	gl graphics.Context
}

var _ graphics.Application = (*Prototyper)(nil)

// New returns an application with no context; Initialize supplies it.
func New() *Prototyper {
	return &Prototyper{}
}

func (p *Prototyper) Initialize(ctx graphics.Context, width, height int) bool {
	if ctx == nil {
		return false
	}
	p.gl = ctx
	p.OnResize(width, height)
	return true
}

func (p *Prototyper) Update(dt float32) bool {
	return true
}

func (p *Prototyper) Render() {
	p.gl.ClearColor(0, 0, 0, 0)
	p.gl.Clear(graphics.ColorBufferBit | graphics.DepthBufferBit)
}

// OnResize maps rendering to the whole framebuffer. Resize events that arrive before
// Initialize are dropped.
func (p *Prototyper) OnResize(width, height int) {
	if p.gl == nil {
		return
	}
	p.gl.Viewport(0, 0, int32(width), int32(height))
}
