// Command dragdemo is a small Gio application demonstrating the dragdrop
// library: it lists a directory's entries and lets the user drag them
// into a collection pane, recording every finished gesture in the
// journal.
package main

import (
	"flag"
	"log"
	"os"

	"gioui.org/app"
)

func main() {
	debugFlag := flag.Bool("debug", false, "Enable verbose debug logging")
	startPath := flag.String("path", "", "Directory to list (defaults to the home directory)")
	flag.Parse()

	go func() {
		d := newDemo(*debugFlag)
		if err := d.run(*startPath); err != nil {
			log.Fatal(err)
		}
		os.Exit(0)
	}()
	app.Main()
}
