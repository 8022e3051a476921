package color

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

type Color string

const (
	Red     Color = "red"
	Yellow  Color = "yellow"
	Green   Color = "green"
	Blue    Color = "blue"
	Special Color = "special"
)

// Colors are the four playable colors in deck order. Special is not one of them.
var Colors = []Color{Red, Yellow, Green, Blue}

var painters = map[Color]func(string, ...interface{}) string{
	Red:     color.New(color.FgHiRed).SprintfFunc(),
	Yellow:  color.New(color.FgHiYellow).SprintfFunc(),
	Green:   color.New(color.FgHiGreen).SprintfFunc(),
	Blue:    color.New(color.FgHiCyan).SprintfFunc(),
	Special: color.New(color.FgHiMagenta).SprintfFunc(),
}

var Stdout io.Writer = color.Output

func (c Color) Paint(text string) string {
	return c.Paintf("%s", text)
}

func (c Color) Paintf(format string, args ...interface{}) string {
	painter, ok := painters[c]
	if !ok {
		return fmt.Sprintf(format, args...)
	}
	if c == Special {
		return painter(format, args...)
	}
	return painter(format, args...) + fmt.Sprintf("(%s)", c)
}

func (c Color) String() string {
	return string(c)
}
