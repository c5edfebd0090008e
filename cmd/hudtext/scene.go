package main

import (
	"github.com/dshills/hudtext/internal/hud/core"
	"github.com/dshills/hudtext/internal/hud/video"
)

// Logical height of the view area above the status bar.
const viewAreaHeight = 168

// viewport returns the game view for a screen size setting. Sizes from
// core.FullScreenSize up fill the screen; smaller sizes shrink the view
// in 32 pixel steps and center it above the status bar.
func viewport(size, scale int) core.Rect {
	if size >= core.FullScreenSize {
		return core.Rect{Width: core.OriginalWidth * scale, Height: core.OriginalHeight * scale}
	}
	blocks := max(size, 0) + 3
	w := blocks * 32
	h := (blocks * viewAreaHeight / 10) &^ 7
	return core.Rect{
		X:      (core.OriginalWidth - w) / 2 * scale,
		Y:      (viewAreaHeight - h) / 2 * scale,
		Width:  w * scale,
		Height: h * scale,
	}
}

// Scene colors, as ramp bases in blend.DefaultPalette.
const (
	borderDark  = 16*6 + 4
	borderLight = 16*6 + 8
	floorBase   = 16*3 + 2
	skyBase     = 16*9 + 2
	automapBack = 0
	automapWall = 16*4 + 12
)

// fillBorder paints the border pattern into the background plane and
// copies it to the screen.
func fillBorder(f *video.Frame) {
	geom := f.Geometry()
	bg := f.Plane(core.ViewLimitedPlane)
	tile := 8 * geom.Scale
	for y := 0; y < geom.Height; y++ {
		for x := 0; x < geom.Width; x++ {
			c := byte(borderDark)
			if (x/tile+y/tile)%2 == 0 {
				c = borderLight
			}
			bg[y*geom.Width+x] = c
		}
	}
	copy(f.Plane(core.FullPlane), bg)
}

// drawView paints a scrolling floor and sky into the viewport.
func drawView(f *video.Frame, tic int) core.Rect {
	geom := f.Geometry()
	vp := geom.Viewport
	full := f.Plane(core.FullPlane)
	half := max(vp.Height/2, 1)
	horizon := vp.Y + half
	for y := vp.Y; y < vp.Bottom(); y++ {
		row := full[y*geom.Width:][:geom.Width]
		dist := y - horizon
		if dist < 0 {
			dist = -dist
		}
		shade := byte(min(dist*8/half, 7))

		c := byte(skyBase) + shade
		if y >= horizon {
			stripe := (vp.Height*8/max(dist, 1) + tic) / 4
			c = byte(floorBase) + 7 - shade + byte(stripe%2)
		}
		for x := vp.X; x < vp.Right(); x++ {
			row[x] = c
		}
	}
	return vp
}

// drawAutomap paints a box with a sweeping diagonal over the whole
// screen.
func drawAutomap(f *video.Frame, tic int) core.Rect {
	geom := f.Geometry()
	bounds := geom.Bounds()
	f.Fill(core.FullPlane, bounds, automapBack)

	cx, cy := geom.Width/2, geom.Height/2
	r := geom.Height / 3
	sweep := tic * geom.Scale % (2 * r)
	for i := -r; i <= r; i++ {
		f.SetPixel(core.FullPlane, cx+i, cy-r, automapWall)
		f.SetPixel(core.FullPlane, cx+i, cy+r, automapWall)
		f.SetPixel(core.FullPlane, cx-r, cy+i, automapWall)
		f.SetPixel(core.FullPlane, cx+r, cy+i, automapWall)

		d := i + sweep
		if d > r {
			d -= 2 * r
		}
		f.SetPixel(core.FullPlane, cx+d, cy+d/2, automapWall)
	}
	return bounds
}
