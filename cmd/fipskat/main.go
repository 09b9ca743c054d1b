package main

import (
	"fmt"
	"os"

	pkgversion "github.com/certivault/fipskat/pkg/version"
)

// Build-time variables (set via -ldflags)
var (
	version   = ""        // Set via -ldflags "-X main.version=x.y.z"
	buildTime = "unknown" // Set via -ldflags "-X main.buildTime=..."
	gitCommit = "unknown" // Set via -ldflags "-X main.gitCommit=..."
)

func getVersion() string {
	if version != "" {
		return version
	}
	return pkgversion.String()
}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "run":
		runCommand()
	case "list":
		listCommand()
	case "version":
		fmt.Printf("fipskat version %s\n", getVersion())
		if buildTime != "unknown" {
			fmt.Printf("Built: %s\n", buildTime)
		}
		if gitCommit != "unknown" {
			fmt.Printf("Commit: %s\n", gitCommit)
		}
	case "help", "--help", "-h":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`fipskat - FIPS 140 Known Answer Test Gate

USAGE:
    fipskat <command> [options]

COMMANDS:
    run       Run the self-test suite against the software provider
    list      List the algorithms in the self-test registry
    version   Print version information
    help      Show this help message

Run 'fipskat <command> --help' for more information on a command.

EXAMPLES:
    # Run the full self-test suite
    fipskat run

    # Break one algorithm to verify the gate trips
    fipskat run --break "gcm(aes)"

    # Verbose run with JSON logs
    fipskat run --log-level debug --log-format json

    # List the registry in execution order
    fipskat list`)
}
