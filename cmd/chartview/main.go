package main

import (
	"flag"
	"fmt"
	"os"

	"simplechart/lib/gui"
)

func main() {
	level := flag.String("log-level", "Info", "log level")
	flag.Parse()

	if err := gui.RunApp(flag.Arg(0), *level); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
