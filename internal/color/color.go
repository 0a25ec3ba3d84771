// Package color provides the named ANSI foreground colors used by the loaders.
package color

// ANSI escape codes for terminal output (bright foreground variants)
const (
	Reset  = "\033[0m"
	Red    = "\033[91m"
	Green  = "\033[92m"
	Yellow = "\033[93m"
	Blue   = "\033[94m"
	Purple = "\033[95m"
	Cyan   = "\033[96m"
	White  = "\033[97m"
)

// Default is the color used when a name is not recognized.
const Default = "white"

// palette lists the supported colors in display order.
var palette = []struct {
	name string
	code string
}{
	{"red", Red},
	{"green", Green},
	{"yellow", Yellow},
	{"blue", Blue},
	{"purple", Purple},
	{"cyan", Cyan},
	{"white", White},
}

// Names returns the supported color names in display order.
func Names() []string {
	names := make([]string, len(palette))
	for i, c := range palette {
		names[i] = c.name
	}
	return names
}

// Code returns the escape sequence for name and whether name is known.
func Code(name string) (string, bool) {
	for _, c := range palette {
		if c.name == name {
			return c.code, true
		}
	}
	return "", false
}

// Resolve maps name to a supported color name, substituting fallback for
// unknown names. A fallback that is itself unknown resolves to Default.
func Resolve(name, fallback string) string {
	if _, ok := Code(name); ok {
		return name
	}
	if _, ok := Code(fallback); ok {
		return fallback
	}
	return Default
}

// Lookup returns the escape sequence for name, or for fallback when name is
// unknown.
func Lookup(name, fallback string) string {
	code, _ := Code(Resolve(name, fallback))
	return code
}
