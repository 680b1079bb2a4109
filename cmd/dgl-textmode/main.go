// Command dgl-textmode switches a console left in graphics mode back to text mode.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/BeatGlow/dgl/framebuffer"
)

func main() {
	consoleFlag := flag.String("console", framebuffer.DefaultConfig.Console, "Console device")
	flag.Parse()

	if err := framebuffer.RestoreTextMode(*consoleFlag); err != nil {
		fmt.Fprintln(os.Stderr, "fatal: "+err.Error())
		fmt.Fprintln(os.Stderr, "superuser privileges required?")
		os.Exit(1)
	}
	fmt.Println("Successfully set console text mode.")
}
