package spinner

// DefaultStyle is used when a style name is not recognized.
const DefaultStyle = "dots"

// styleNames lists the built-in styles in display order.
var styleNames = []string{"dots", "line", "arrow", "pulse"}

// styles maps each style to its frames, played in order and then repeated.
var styles = map[string][]string{
	"dots":  {"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"},
	"line":  {"|", "/", "-", "\\"},
	"arrow": {"←", "↖", "↑", "↗", "→", "↘", "↓", "↙"},
	"pulse": {"█", "▉", "▊", "▋", "▌", "▍", "▎", "▏", "▎", "▍", "▌", "▋", "▊", "▉"},
}

// Styles returns the built-in style names.
func Styles() []string {
	return append([]string(nil), styleNames...)
}

// Frames returns the frames of style, falling back to DefaultStyle.
func Frames(style string) []string {
	return append([]string(nil), styles[resolveStyle(style)]...)
}

// resolveStyle maps unknown style names to DefaultStyle.
func resolveStyle(style string) string {
	if _, ok := styles[style]; ok {
		return style
	}
	return DefaultStyle
}
