// Package resize implements a draggable-edge resize controller for a single
// rectangular element.
//
// The package has two cooperating parts. The edge proximity detector maps a
// pointer position relative to the element's bounding box to a Direction
// (which edges the pointer is close to) and a Cursor hint. The Controller is
// a state machine over pointer press, move and release that, once a drag
// session starts, computes new element geometry for every move and writes it
// through the element's style sink.
//
// # Directions
//
// Direction is a flag set over Up, Left, Right and Down:
//
//	d := resize.Up.Union(resize.Left)
//	d.Has(resize.Left)  // true
//	d.Cursor()          // resize.CursorNorthWest
//
// # Controller
//
// A Controller is attached to an element and a pointer source:
//
//	c := resize.NewController(el, resize.Options{
//	    MinSize: &resize.SizeOptions{Width: resize.Ptr(10)},
//	}, resize.WithCursorSink(screen))
//	c.Setup(dispatcher)
//	defer c.Teardown()
//
// While idle every pointer move re-runs the detector and updates the cursor.
// A press arms a drag session with the last detected direction, or with the
// direction of a Handle when the press lands on one. Moves then resize the
// element until the pointer is released.
//
// # Thread Safety
//
// Controller is not safe for concurrent use. All calls, including the
// pointer listeners it registers, must come from the single goroutine that
// owns the event loop. Arbiter is safe for concurrent use.
package resize
