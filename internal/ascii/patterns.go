package ascii

import "strings"

// DefaultPattern is used when a pattern name is not recognized.
const DefaultPattern = "rocket"

// patternNames lists the built-in patterns in display order.
var patternNames = []string{"rocket", "clock", "spinner", "wave", "bounce", "radar"}

// patterns holds the raw art. Each frame starts with a newline that is not
// part of the picture; blank lines inside a frame are kept.
var patterns = map[string][]string{
	"rocket": {
		`
      |
      |
     /_\
    |=+=|
     |_|
    /| |\
   //| |\\
  // | | \\
 //  |_|  \\
||   | |   ||
||   | |   ||
||   |_|   ||
||  /| |\  ||
|| //| |\\ ||
||// |_| \\||
|//  | |  \\|
//   |_|   \\
`,
		`
         |
         |
        /_\
       |=+=|
        |_|
       /| |\
      //| |\\
     // | | \\
    //  |_|  \\
   ||   | |   ||
   ||   | |   ||
   ||   |_|   ||
   ||  /| |\  ||
   || //| |\\ ||
   ||// |_| \\||
   |//  | |  \\|
   //   |_|   \\
`,
		`
            |
            |
           /_\
          |=+=|
           |_|
          /| |\
         //| |\\
        // | | \\
       //  |_|  \\
      ||   | |   ||
      ||   | |   ||
      ||   |_|   ||
      ||  /| |\  ||
      || //| |\\ ||
      ||// |_| \\||
      |//  | |  \\|
      //   |_|   \\
`,
	},
	"clock": {
		`
     .--.
    /  . \
   |   .  |
    \  . /
     '--'
`,
		`
     .--.
    /  | \
   |   .  |
    \  . /
     '--'
`,
		`
     .--.
    /  . \
   |   |  |
    \  . /
     '--'
`,
		`
     .--.
    /  . \
   |   .  |
    \  | /
     '--'
`,
	},
	"spinner": {
		`
     *
    ***
   *****
  *******
 *********
  *******
   *****
    ***
     *
`,
		`
     +
    +++
   +++++
  +++++++
 +++++++++
  +++++++
   +++++
    +++
     +
`,
		`
     o
    ooo
   ooooo
  ooooooo
 ooooooooo
  ooooooo
   ooooo
    ooo
     o
`,
	},
	"wave": {
		`
  _____     _____
 /     \   /     \
/       \_/       \
`,
		`
      _____     _____
     /     \   /     \
____/       \_/       \
`,
		`
           _____     _____
          /     \   /     \
_________/       \_/       \
`,
	},
	"bounce": {
		`
   ( ●    )


_________________
`,
		`
      ( ●    )


_________________
`,
		`

         ( ●    )

_________________
`,
		`


    ( ●    )
_________________
`,
	},
	"radar": {
		`
    ╭───────╮
    │ ╲     │
    │   ╲   │
    │     ╲ │
    ╰───────╯
`,
		`
    ╭───────╮
    │     ╱ │
    │   ╱   │
    │ ╱     │
    ╰───────╯
`,
		`
    ╭───────╮
    │ ╱     │
    │   ╱   │
    │     ╱ │
    ╰───────╯
`,
		`
    ╭───────╮
    │     ╲ │
    │   ╲   │
    │ ╲     │
    ╰───────╯
`,
	},
}

// Patterns returns the built-in pattern names.
func Patterns() []string {
	return append([]string(nil), patternNames...)
}

// resolvePattern maps unknown pattern names to DefaultPattern.
func resolvePattern(name string) string {
	if _, ok := patterns[name]; ok {
		return name
	}
	return DefaultPattern
}

// splitFrame drops the leading newline and trailing whitespace of a raw
// frame and returns its lines with trailing spaces removed.
func splitFrame(raw string) []string {
	raw = strings.TrimPrefix(raw, "\n")
	raw = strings.TrimRight(raw, " \t\n")

	lines := strings.Split(raw, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	return lines
}
