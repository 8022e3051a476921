package ui

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/uno/card/color"
)

var (
	// Delay is the pause after every printed line so computer turns can be
	// followed.
	Delay = consts.DefaultPrintDelay

	Stdout io.Writer = color.Stdout
	Stdin  io.Reader = os.Stdin
)

func Printfln(format string, args ...interface{}) {
	Println(fmt.Sprintf(format, args...))
}

func Println(args ...interface{}) {
	fmt.Fprintln(Stdout, args...)
	time.Sleep(Delay)
}

// Print writes an already formatted message.
func Print(message string) {
	fmt.Fprint(Stdout, message)
	time.Sleep(Delay)
}
