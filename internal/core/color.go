package core

// Color is the foreground color of a screen cell.
type Color uint8

// Screen colors. Blocks use the bright variants; board chrome and the
// reachability marks use the plain ones.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray

	// NumColors is the number of defined colors.
	NumColors = int(ColorGray) + 1
)

// ansi holds the 256-color code and weight of each Color.
var ansi = [NumColors]struct {
	code string
	bold bool
}{
	ColorRed:           {"1", false},
	ColorGreen:         {"2", false},
	ColorYellow:        {"3", false},
	ColorBlue:          {"4", false},
	ColorMagenta:       {"5", false},
	ColorCyan:          {"6", false},
	ColorWhite:         {"7", false},
	ColorBrightRed:     {"9", true},
	ColorBrightGreen:   {"10", true},
	ColorBrightYellow:  {"11", true},
	ColorBrightBlue:    {"12", true},
	ColorBrightMagenta: {"13", true},
	ColorBrightCyan:    {"14", true},
	ColorBrightWhite:   {"15", true},
	ColorOrange:        {"208", true},
	ColorGray:          {"240", false},
}

// ANSI returns the 256-color code of c, or "" for the terminal default
// and unknown values.
func (c Color) ANSI() string {
	if int(c) >= NumColors {
		return ""
	}
	return ansi[c].code
}

// Bold reports whether c is drawn bold.
func (c Color) Bold() bool {
	return int(c) < NumColors && ansi[c].bold
}
