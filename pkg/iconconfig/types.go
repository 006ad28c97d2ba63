package iconconfig

import (
	"sort"
	"sync/atomic"
)

// Density identifies a target display pixel-density bucket for which a
// distinct bitmap resource may be supplied.
type Density string

// The five standard density buckets, smallest to largest.
const (
	DensityMDPI    Density = "mdpi"
	DensityHDPI    Density = "hdpi"
	DensityXHDPI   Density = "xhdpi"
	DensityXXHDPI  Density = "xxhdpi"
	DensityXXXHDPI Density = "xxxhdpi"
)

// Densities lists all recognized density tags in ascending order.
var Densities = []Density{
	DensityMDPI,
	DensityHDPI,
	DensityXHDPI,
	DensityXXHDPI,
	DensityXXXHDPI,
}

// IsDensity reports whether tag names a recognized density bucket
func IsDensity(tag string) bool {
	for _, d := range Densities {
		if string(d) == tag {
			return true
		}
	}
	return false
}

// Form records which document shape produced a Definition. The shape is
// decided once at parse time and never re-inspected.
type Form int

const (
	// FormShort is a bare string entry: the string is the image path
	FormShort Form = iota
	// FormLong is a mapping entry with path and optional metadata
	FormLong
)

// Definition is one icon entry in the configuration.
type Definition struct {
	// Identifier keys the icon and suffixes its generated component name
	Identifier string
	// ImagePath locates the primary source bitmap, relative to the project root
	ImagePath string
	// SizeOverrides maps density tags to alternate bitmaps used instead of
	// ImagePath for that density
	SizeOverrides map[Density]string
	// Label and Description are display-only metadata
	Label       string
	Description string
	// Form is the document shape this entry was parsed from
	Form Form
}

// ImagePathFor returns the bitmap path to use for the given density,
// falling back to the primary ImagePath when no override exists.
func (d Definition) ImagePathFor(density Density) string {
	if p, ok := d.SizeOverrides[density]; ok && p != "" {
		return p
	}
	return d.ImagePath
}

// Configuration is a validated, immutable icon configuration: a mapping
// of identifiers to definitions plus an optional default identifier.
// It is safe for concurrent readers; replacement means constructing a
// new value and swapping it in (see Holder).
type Configuration struct {
	icons       map[string]Definition
	defaultIcon string
}

// DefaultIcon returns the configured default identifier, or the empty
// string when the document did not set one.
func (c *Configuration) DefaultIcon() string {
	return c.defaultIcon
}

// Identifiers returns all icon identifiers, sorted
func (c *Configuration) Identifiers() []string {
	ids := make([]string, 0, len(c.icons))
	for id := range c.icons {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Lookup returns the definition for an identifier
func (c *Configuration) Lookup(identifier string) (Definition, bool) {
	def, ok := c.icons[identifier]
	return def, ok
}

// Contains reports whether an identifier is configured
func (c *Configuration) Contains(identifier string) bool {
	_, ok := c.icons[identifier]
	return ok
}

// Len returns the number of configured icons
func (c *Configuration) Len() int {
	return len(c.icons)
}

// Holder holds the process-wide configuration reference. Construction
// and replacement are atomic; readers never observe a partially built
// configuration.
type Holder struct {
	ptr atomic.Pointer[Configuration]
}

// Store replaces the held configuration
func (h *Holder) Store(cfg *Configuration) {
	h.ptr.Store(cfg)
}

// Load returns the held configuration, or nil when none was stored
func (h *Holder) Load() *Configuration {
	return h.ptr.Load()
}
