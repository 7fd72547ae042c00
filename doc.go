// Package webedit is a direct-manipulation engine for rectangular elements
// of a visual tree.
//
// An Editor listens to mouse, touch and keyboard events from an EventSource
// and lets the user drag editable nodes around, resize them by an edge or a
// corner, and nudge the selection with the arrow keys. Every geometry write
// is batched onto the next display frame of a Loop, and each completed drag
// or nudge emits a CSS-like geometry report:
//
//	#box {
//	  left: 10px;
//	  top: 4px;
//	  width: 30px;
//	  height: 8px;
//	}
//
// The host owns the tree. It implements Node for its elements, feeds input
// to a Dispatcher, and drives a Loop, for example the frame-paced EventLoop.
package webedit
