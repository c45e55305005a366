/*
Package snapfloat implements a draggable floating element which snaps to the nearest
edge of its container when released and optionally docks half outside of it after a
period of inactivity.

The core Controller does not depend on any UI toolkit: it talks to a Container and an
Element for the geometry, to a Scheduler for the delayed operations and to an
EventSource for the pointer input. Float wires a Controller into a Gio layout.

The package comes with a demo application. To check the supported flags type:

	$ snapfloat --help

In case you wish to drive the controller from your own event loop, here is a simple example:

	package main

	import (
		"fmt"
		"time"

		"gioui.org/f32"
		"github.com/esimov/snapfloat"
	)

	func main() {
		clock := snapfloat.NewFrameClock(time.Now())
		events := snapfloat.NewDispatcher(false)
		target := snapfloat.NewBox(f32.Pt(50, 50))

		c, err := snapfloat.New(snapfloat.Options{
			Container: snapfloat.NewBox(f32.Pt(400, 400)),
			Target:    target,
			Padding:   10,
			Scheduler: clock,
			Events:    events,
		})
		if err != nil {
			fmt.Printf("Error creating the controller: %s", err.Error())
			return
		}
		defer c.Close()

		events.Dispatch(snapfloat.PointerEvent{Kind: snapfloat.Press})
		events.Dispatch(snapfloat.PointerEvent{Kind: snapfloat.Move, Movement: f32.Pt(300, 120)})
		events.Dispatch(snapfloat.PointerEvent{Kind: snapfloat.Release})
		clock.Advance(time.Now())

		fmt.Println(c.Edge(), target.Offset())
	}
*/
package snapfloat
