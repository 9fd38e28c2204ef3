package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"simplechart/lib/config"
	"simplechart/lib/render"
	"simplechart/lib/surface"
	"simplechart/lib/util"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "Usage: chartgen <command> [arguments]")
	fmt.Fprintln(w, "\nCommands:")
	fmt.Fprintln(w, "  render [flags] [charts.yaml]   - Render chart definitions to image files")
	fmt.Fprintln(w, "  inspect [charts.yaml]          - Print the computed chart geometry")
	fmt.Fprintln(w, "  version                        - Print version information")
	fmt.Fprintln(w, "\nWithout a definition file the landing page charts are used.")
}

func run(args []string, stdout, stderr io.Writer) int {
	if len(args) < 1 {
		usage(stderr)
		return 1
	}

	renderCmd := flag.NewFlagSet("render", flag.ContinueOnError)
	renderCmd.SetOutput(stderr)
	outDir := renderCmd.String("o", ".", "output directory")
	formatName := renderCmd.String("format", "png", "output format: png or svg")
	backendName := renderCmd.String("backend", "gg", "drawing backend: gg or gochart")
	renderLevel := renderCmd.String("log-level", "Info", "log level")

	inspectCmd := flag.NewFlagSet("inspect", flag.ContinueOnError)
	inspectCmd.SetOutput(stderr)
	inspectLevel := inspectCmd.String("log-level", "Warning", "log level")

	switch args[0] {
	case "render":
		if err := renderCmd.Parse(args[1:]); err != nil {
			return 1
		}
		if err := util.SetupLogging(stderr, *renderLevel); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
		defs, err := loadDefinitions(renderCmd.Arg(0))
		if err != nil {
			fmt.Fprintf(stderr, "Error loading chart definitions: %v\n", err)
			return 1
		}
		if err := renderCharts(stdout, defs, *outDir, *backendName, *formatName); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}

	case "inspect":
		if err := inspectCmd.Parse(args[1:]); err != nil {
			return 1
		}
		if err := util.SetupLogging(stderr, *inspectLevel); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
		defs, err := loadDefinitions(inspectCmd.Arg(0))
		if err != nil {
			fmt.Fprintf(stderr, "Error loading chart definitions: %v\n", err)
			return 1
		}
		for _, def := range defs.Charts {
			if err := render.Describe(stdout, def); err != nil {
				fmt.Fprintf(stderr, "Error: %v\n", err)
				return 1
			}
		}

	case "version":
		fmt.Fprintln(stdout, util.BuildInfo())

	default:
		fmt.Fprintf(stderr, "Unknown command: %s\n", args[0])
		usage(stderr)
		return 1
	}
	return 0
}

func loadDefinitions(path string) (*config.File, error) {
	if path == "" {
		return config.Builtin(), nil
	}
	return config.Load(path)
}

func renderCharts(stdout io.Writer, defs *config.File, dir, backendName, formatName string) error {
	backend, err := render.ParseBackend(backendName)
	if err != nil {
		return err
	}
	format, err := surface.ParseFormat(formatName)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	for _, def := range defs.Charts {
		path, err := render.WriteFile(dir, def, backend, format)
		if err != nil {
			return err
		}
		fmt.Fprintf(stdout, "%s\n", path)
	}
	return nil
}
