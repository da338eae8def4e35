/*
File    : interop/main.go
Author  : Interop Authors

Package main is the entry point for the Interop-to-Go transpiler.
It provides two modes of operation:
 1. File Mode: transpile an Interop source file and print the Go text
 2. REPL Mode (default): interactively transpile one line at a time

The transpiler uses a lexer-parser-emitter pipeline: the parser pulls
tokens from the lexer, and the emitter lowers the resulting AST into Go
source text.
*/
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"

	"github.com/interoplang/interop/file"
	"github.com/interoplang/interop/repl"
)

// VERSION represents the current version of the transpiler
var VERSION = "v0.1.0"

// LICENSE specifies the software license
var LICENSE = "MIT"

// PROMPT is the command prompt displayed in REPL mode
var PROMPT = "interop >>> "

// BANNER is the logo displayed when starting the REPL
var BANNER = `
  _       _
 (_)_ __ | |_ ___ _ __ ___  _ __
 | | '_ \| __/ _ \ '__/ _ \| '_ \
 | | | | | ||  __/ | | (_) | |_) |
 |_|_| |_|\__\___|_|  \___/| .__/
                           |_|
`

// LINE is a separator line used for visual formatting in the REPL
var LINE = "----------------------------------------------------------------"

var cyanColor = color.New(color.FgCyan)

// main determines the operating mode based on command-line arguments:
//
// Usage:
//
//	interop              - Start in REPL (interactive) mode
//	interop <filename>   - Transpile the given Interop source file
//	interop --help       - Display help information
//	interop --version    - Display version information
func main() {
	if len(os.Args) > 1 {
		arg := os.Args[1]

		if arg == "--help" || arg == "-h" {
			showHelp()
			os.Exit(0)
		}
		if arg == "--version" || arg == "-v" {
			showVersion()
			os.Exit(0)
		}

		// File mode: transpile a file to standard output
		if err := file.Run(arg, os.Stdout); err != nil {
			os.Exit(1)
		}
	} else {
		// REPL mode
		repler := repl.NewRepl(BANNER, VERSION, LINE, LICENSE, PROMPT)
		repler.Start(os.Stdout)
	}
}

// showHelp displays the help information for the transpiler.
func showHelp() {
	cyanColor.Println("interop - a transpiler from the Interop language to Go")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  interop              Start the interactive REPL")
	fmt.Println("  interop <file>       Transpile a source file to stdout")
	fmt.Println("  interop --help       Show this help")
	fmt.Println("  interop --version    Show version information")
	fmt.Println()
	fmt.Println("Configuration:")
	fmt.Printf("  %s in the working directory (or $%s) may extend\n", "interop.yaml", "INTEROP_CONFIG")
	fmt.Println("  the emitter's type map, e.g.:")
	fmt.Println("    types:")
	fmt.Println("      Bool: bool")
}

// showVersion displays the version information.
func showVersion() {
	fmt.Printf("interop %s (%s)\n", VERSION, LICENSE)
}
