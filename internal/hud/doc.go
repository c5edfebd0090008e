// Package hud ties the text widgets to a renderer and drives them once
// per frame.
//
// A HUD owns a message log and a chat input line. Each frame the caller
// runs Erase, then whatever draws the scene, then Draw, then Ticker:
//
//	h.Erase()
//	drawScene()
//	h.Draw()
//	h.Ticker()
//
// Keys go through Responder first; it reports whether the HUD consumed
// them.
//
// The subpackages hold the pieces: core (geometry and state flags),
// video (frame planes), font, blend, line, render, widget and dirty.
package hud
