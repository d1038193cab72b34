package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/pavel-webdev/file-organizer/app"
	"github.com/pavel-webdev/file-organizer/version"
)

func main() {
	var (
		target      string
		recursive   bool
		dryRun      bool
		configPath  string
		showVersion bool
	)

	flag.StringVar(&target, "t", "", "Target directory (default: <source>_organized)")
	flag.StringVar(&target, "target", "", "Target directory (default: <source>_organized)")
	flag.BoolVar(&recursive, "r", false, "Process subdirectories recursively")
	flag.BoolVar(&recursive, "recursive", false, "Process subdirectories recursively")
	flag.BoolVar(&dryRun, "d", false, "Analyze only, do not copy anything")
	flag.BoolVar(&dryRun, "dry-run", false, "Analyze only, do not copy anything")
	flag.StringVar(&configPath, "config", "", "Path to YAML configuration file")
	flag.BoolVar(&showVersion, "version", false, "Print version and exit")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] <source directory>\n\nOptions:\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if showVersion {
		fmt.Printf("file-organizer %s (%s, built %s)\n", version.Version, version.Commit, version.BuildDate)
		return
	}

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(1)
	}
	source := flag.Arg(0)

	if info, err := os.Stat(source); err != nil || !info.IsDir() {
		fmt.Fprintf(os.Stderr, "Error: directory %q does not exist\n", source)
		os.Exit(1)
	}

	cfg, err := app.LoadConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	report, err := app.Run(app.Options{
		SourceDir: source,
		TargetDir: target,
		Recursive: recursive,
		DryRun:    dryRun,
	}, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	app.PrintReport(os.Stdout, report)
}
