package main

import (
	"image/color"

	"gioui.org/app"
	"gioui.org/io/key"
	"gioui.org/io/system"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/paint"
	"gioui.org/widget/material"
	"github.com/esimov/snapfloat"
)

type (
	C = layout.Context
	D = layout.Dimensions
)

var (
	defaultBkgColor  = color.NRGBA{R: 0xf5, G: 0xf5, B: 0xf5, A: 0xff}
	defaultTextColor = color.NRGBA{R: 0x60, G: 0x60, B: 0x60, A: 0xff}
)

// gui hosts the floating button in a Gio window.
type gui struct {
	float  *snapfloat.Float
	button *snapfloat.Button
	theme  *material.Theme
}

// run the Gio main loop until a DestroyEvent or an ESC key event is captured.
func (g *gui) run(w *app.Window) error {
	var ops op.Ops

	g.theme = material.NewTheme()
	g.theme.Palette.Fg = defaultTextColor

	defer g.float.Close()
	for {
		switch e := w.Event().(type) {
		case app.FrameEvent:
			gtx := app.NewContext(&ops, e)
			for {
				ev, ok := gtx.Event(key.Filter{Name: key.NameEscape})
				if !ok {
					break
				}
				if ke, ok := ev.(key.Event); ok && ke.State == key.Press {
					w.Perform(system.ActionClose)
				}
			}
			g.draw(gtx)
			e.Frame(gtx.Ops)
		case app.DestroyEvent:
			return e.Err
		}
	}
}

// draw paints the background, the usage hint and the floating button.
func (g *gui) draw(gtx C) {
	paint.Fill(gtx.Ops, defaultBkgColor)

	layout.Center.Layout(gtx, func(gtx C) D {
		return material.Body1(g.theme, "Drag the button around, it snaps to the nearest edge.").Layout(gtx)
	})

	g.float.Layout(gtx, func(gtx C) D {
		docked := false
		if c := g.float.Controller(); c != nil {
			docked = c.Docked()
		}
		return g.button.Layout(gtx, g.float.Pressed(), docked)
	})
}
