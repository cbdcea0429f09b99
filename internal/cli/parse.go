// Package cli parses winpass command lines into one of three run modes:
// legacy batch (a single numeric argument), advanced (per-category flags)
// and interactive (no arguments).
package cli

import (
	"strings"

	"github.com/winpass/winpass/pkg/password"
)

// Mode selects how the binary runs.
type Mode int

const (
	// ModeInteractive runs the menu-driven session (no arguments given).
	ModeInteractive Mode = iota

	// ModeBatch generates one password from a single total length.
	ModeBatch

	// ModeAdvanced generates one password from per-category flags.
	ModeAdvanced

	// ModeHelp prints usage and exits.
	ModeHelp
)

// maxParseValue caps numeric argument parsing so absurd inputs cannot
// overflow downstream length arithmetic.
const maxParseValue = 100000

// Command is a fully parsed command line.
type Command struct {
	Mode Mode

	// Batch mode settings. Symbols are always included in batch mode.
	BatchLength int

	// Advanced mode settings.
	Advanced password.AdvancedConfig
}

// DefaultAdvanced returns the advanced-mode defaults: every category enabled,
// 8 letters, 4 numbers, 4 symbols.
func DefaultAdvanced() password.AdvancedConfig {
	return password.AdvancedConfig{
		Letters: password.CategoryConfig{Enabled: true, Count: 8},
		Numbers: password.CategoryConfig{Enabled: true, Count: 4},
		Symbols: password.CategoryConfig{Enabled: true, Count: 4},
	}
}

// Parse interprets args (without the program name). It never fails: unknown
// flags and out-of-range values are ignored for forward compatibility, the
// same policy as the original flag scanner.
func Parse(args []string) Command {
	for _, arg := range args {
		switch arg {
		case "--help", "-h", "-?", "/?":
			return Command{Mode: ModeHelp}
		}
	}

	if len(args) == 0 {
		return Command{Mode: ModeInteractive}
	}

	// A single argument with no flag prefix is a legacy batch length.
	if len(args) == 1 && !strings.HasPrefix(args[0], "-") {
		length := ParseUint(args[0])
		if length <= 0 {
			length = password.DefaultBatchLength
		}
		return Command{Mode: ModeBatch, BatchLength: length}
	}

	cmd := Command{Mode: ModeAdvanced, Advanced: DefaultAdvanced()}
	for _, arg := range args {
		switch {
		case arg == "--no-letters":
			cmd.Advanced.Letters.Enabled = false
		case arg == "--no-numbers":
			cmd.Advanced.Numbers.Enabled = false
		case arg == "--no-symbols":
			cmd.Advanced.Symbols.Enabled = false
		default:
			if val, ok := flagValue(arg, "--letters=", "-l="); ok {
				setCount(&cmd.Advanced.Letters, val)
			} else if val, ok := flagValue(arg, "--numbers=", "-n="); ok {
				setCount(&cmd.Advanced.Numbers, val)
			} else if val, ok := flagValue(arg, "--symbols=", "-s="); ok {
				setCount(&cmd.Advanced.Symbols, val)
			}
		}
	}
	return cmd
}

// flagValue extracts the numeric value of a --key=N style argument if arg
// matches one of the given prefixes.
func flagValue(arg string, prefixes ...string) (int, bool) {
	for _, prefix := range prefixes {
		if strings.HasPrefix(arg, prefix) {
			return ParseUint(strings.TrimPrefix(arg, prefix)), true
		}
	}
	return 0, false
}

// setCount applies a parsed length, ignoring values outside the valid
// per-category range.
func setCount(c *password.CategoryConfig, val int) {
	if val >= 0 && val < password.MaxCategoryLength {
		c.Count = val
	}
}

// ParseUint parses a leading run of decimal digits, capped at maxParseValue.
// Parsing stops at the first non-digit; a string with no leading digits
// yields 0.
func ParseUint(s string) int {
	res := 0
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			break
		}
		if res > maxParseValue/10 {
			return maxParseValue
		}
		res = res*10 + int(s[i]-'0')
		if res > maxParseValue {
			return maxParseValue
		}
	}
	return res
}

// Usage is the help text printed for ModeHelp.
const Usage = `winpass - secure password generator

Usage:
  winpass                 interactive mode
  winpass <length>        batch mode: <length> characters, symbols included
  winpass [flags]         advanced mode

Advanced flags:
  --letters=N, -l=N       number of letters (default 8)
  --numbers=N, -n=N       number of digits (default 4)
  --symbols=N, -s=N       number of symbols (default 4)
  --no-letters            disable the letters category
  --no-numbers            disable the numbers category
  --no-symbols            disable the symbols category
  --help, -h              show this help

The generated password is printed and copied to the clipboard; the clipboard
is cleared 30 seconds later.
`
