package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/mattn/go-isatty"

	"github.com/livefir/htmljsx/cmd/htmljsx/commands"
)

// Version information (can be overridden at build time with -ldflags)
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	if len(os.Args) < 2 {
		var err error
		if isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd()) {
			err = commands.Interactive(nil)
		} else {
			// Piped input: htmljsx < page.html
			err = commands.Convert(nil)
		}
		exitOnError(err)
		return
	}

	command := os.Args[1]
	args := os.Args[2:]

	var err error

	switch command {
	case "convert":
		err = commands.Convert(args)
	case "watch":
		err = commands.Watch(args)
	case "serve":
		err = commands.Serve(args)
	case "interactive", "ui":
		err = commands.Interactive(args)
	case "config":
		err = commands.Config(args)
	case "version", "--version", "-v":
		printVersion()
		return
	case "help", "--help", "-h":
		printUsage()
		return
	default:
		fmt.Printf("Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}

	exitOnError(err)
}

func exitOnError(err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printVersion() {
	fmt.Printf("htmljsx version %s\n", version)

	info, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}

	var vcsRevision, vcsModified string
	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			vcsRevision = setting.Value
		case "vcs.modified":
			vcsModified = setting.Value
		}
	}

	if commit != "unknown" {
		fmt.Printf("commit: %s\n", commit)
	} else if vcsRevision != "" {
		if len(vcsRevision) > 12 {
			vcsRevision = vcsRevision[:12]
		}
		fmt.Printf("commit: %s\n", vcsRevision)
	}
	if date != "unknown" {
		fmt.Printf("built: %s\n", date)
	}
	if vcsModified == "true" {
		fmt.Printf("modified: true (uncommitted changes)\n")
	}

	fmt.Printf("go: %s\n", info.GoVersion)
}

func printUsage() {
	fmt.Println("htmljsx - convert HTML fragments to JSX")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  htmljsx convert [--minify] [--max-depth <n>] [file|-]   Print JSX for a file or stdin")
	fmt.Println("  htmljsx watch [--minify] [dir]                          Regenerate .jsx files as .html files change")
	fmt.Println("  htmljsx serve [--addr :8080]                            Run the browser playground")
	fmt.Println("  htmljsx interactive                                     Open the terminal editor")
	fmt.Println("  htmljsx config get|set|list|path                        Manage configuration")
	fmt.Println("  htmljsx version                                         Show version information")
	fmt.Println()
	fmt.Println("With no arguments htmljsx opens the terminal editor, or converts stdin when it is piped.")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  htmljsx convert page.html")
	fmt.Println(`  echo '<div class="a">hi</div>' | htmljsx`)
	fmt.Println("  htmljsx config set output_ext .tsx")
	fmt.Println("  htmljsx watch ./templates")
}
