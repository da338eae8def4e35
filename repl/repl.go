/*
File    : interop/repl/repl.go
Author  : Interop Authors

Package repl implements the interactive mode of the Interop transpiler.
Each line the user enters is run through the full front end and the
generated Go text is printed back. Unlike file mode, errors do not end
the session; the user corrects the line and tries again.

The REPL uses the readline library for line editing and history, and
colored output to separate generated code from diagnostics.
*/
package repl

import (
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/interoplang/interop/config"
	"github.com/interoplang/interop/file"
)

// Color definitions for REPL output:
// - blueColor: decorative lines and separators
// - yellowColor: generated Go code and version info
// - redColor: error messages
// - greenColor: banner
// - cyanColor: informational messages and instructions
var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl represents an interactive transpiler session.
type Repl struct {
	Banner  string // ASCII art banner displayed at startup
	Version string // Version string of the transpiler
	Line    string // Separator line for visual formatting
	License string // Software license information
	Prompt  string // Command prompt shown to the user
}

// NewRepl creates and initializes a new REPL instance.
func NewRepl(banner, version, line, license, prompt string) *Repl {
	return &Repl{Banner: banner, Version: version, Line: line, License: license, Prompt: prompt}
}

// PrintBannerInfo displays the welcome banner and usage instructions.
func (r *Repl) PrintBannerInfo(writer io.Writer) {
	blueColor.Fprintf(writer, "%s\n", r.Line)
	greenColor.Fprintf(writer, "%s\n", r.Banner)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	yellowColor.Fprintln(writer, "Version: "+r.Version+" | License: "+r.License)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	cyanColor.Fprintf(writer, "%s\n", "Welcome to Interop!")
	cyanColor.Fprintf(writer, "%s\n", "Type Interop code and press enter to see the generated Go")
	cyanColor.Fprintf(writer, "%s\n", "Type '.exit' to quit")
	cyanColor.Fprintf(writer, "%s\n", "Use up/down arrows to navigate command history")
	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// Start begins the REPL main loop. The loop continues until the user
// types '.exit' or sends EOF (Ctrl+D).
func (r *Repl) Start(writer io.Writer) {
	r.PrintBannerInfo(writer)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	// The type-map config is loaded once per session
	cfg, err := config.LoadDefault()
	if err != nil {
		redColor.Fprintf(writer, "[CONFIG ERROR] %v\n", err)
		cfg = nil
	}

	for {
		line, err := rl.Readline()
		if err != nil {
			// EOF or readline error (e.g. Ctrl+D)
			writer.Write([]byte("Good Bye!\n"))
			break
		}

		line = strings.Trim(line, " \n\t\r")
		if line == "" {
			continue
		}
		if line == ".exit" {
			writer.Write([]byte("Good Bye!\n"))
			break
		}

		rl.SaveHistory(line)
		r.transpileLine(writer, line, cfg)
	}
}

// transpileLine runs one input line through the front end and prints the
// generated Go code, or the diagnostic when the line does not parse.
// A bare expression is not a valid top-level declaration, so short
// experiments are easiest wrapped in a function: func f() -> 1 or 2
func (r *Repl) transpileLine(writer io.Writer, line string, cfg *config.Config) {
	code, err := file.Transpile(line, "<repl>", cfg)
	if err != nil {
		redColor.Fprintf(writer, "%s\n", file.Diagnostic(line, err))
		return
	}
	yellowColor.Fprintf(writer, "%s", code)
}
