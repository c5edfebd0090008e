// Package font provides the glyph assets the HUD draws text with: the
// built-in small character set, the interfaces high-resolution font
// patches satisfy, and underscore decoration patterns.
package font

// Source pixel markers used by built-in glyphs and decoration patterns.
const (
	// Skip leaves the destination pixel untouched.
	Skip byte = ' '

	// Outline writes a hard-zero pixel, which composites as a shaded
	// outline around the glyph.
	Outline byte = 0xFF
)

// SentinelLump is the asset whose presence signals that a high-resolution
// font is loaded and should be drawn as patches.
const SentinelLump = "STCFN034"

// Patch is a drawable glyph asset.
type Patch interface {
	// Width returns the patch width in source pixels.
	Width() int

	// Height returns the patch height in source pixels.
	Height() int

	// At returns the color at (x, y) and false when the pixel is
	// transparent.
	At(x, y int) (byte, bool)
}

// Set is a glyph set indexed by character code minus the line's start
// character.
type Set interface {
	// Height returns the nominal height of the set's glyphs.
	Height() int

	// Glyph returns the patch at index i, or nil if the set has none.
	Glyph(i int) Patch
}

// Catalog reports which named assets are loaded.
type Catalog interface {
	Has(name string) bool
}

// LumpSet is a Catalog backed by a set of names.
type LumpSet map[string]bool

// Has returns true if the named lump is present.
func (s LumpSet) Has(name string) bool {
	return s[name]
}

// HighResolution returns true if the catalog carries the sentinel lump.
func HighResolution(c Catalog) bool {
	return c != nil && c.Has(SentinelLump)
}
