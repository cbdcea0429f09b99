// Package interactive implements the menu-driven session: a small
// read-eval-print loop that holds the per-category configuration between
// commands and generates passwords on demand.
package interactive

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	shellwords "github.com/mattn/go-shellwords"

	"github.com/winpass/winpass/internal/cli"
	"github.com/winpass/winpass/pkg/password"
	"github.com/winpass/winpass/pkg/secureclip"
)

const sessionHelp = `Available commands:
  show                       display the current configuration
  generate                   generate a password with the current configuration
  toggle <letters|numbers|symbols>   enable/disable a category
  set <letters|numbers|symbols> <n>  set a category length (0-1023)
  help                       show this help
  exit                       leave interactive mode
`

// Session is an interactive configuration-and-generate loop. The category
// settings live only for the lifetime of the session; every generation call
// receives them as an explicit config.
type Session struct {
	cfg    password.AdvancedConfig
	out    io.Writer
	parser *shellwords.Parser

	// Injection points for tests.
	generate func(password.AdvancedConfig) (*password.Password, error)
	clip     func(string) error
}

// NewSession creates a session with the standard defaults: all categories
// enabled, 8 letters, 4 numbers, 4 symbols.
func NewSession() *Session {
	return &Session{
		cfg:      cli.DefaultAdvanced(),
		out:      os.Stdout,
		parser:   shellwords.NewParser(),
		generate: password.GenerateAdvanced,
		clip:     secureclip.Clip,
	}
}

// total returns the total length the current configuration would produce.
func (s *Session) total() int {
	n := 0
	if s.cfg.Letters.Enabled {
		n += s.cfg.Letters.Count
	}
	if s.cfg.Numbers.Enabled {
		n += s.cfg.Numbers.Count
	}
	if s.cfg.Symbols.Enabled {
		n += s.cfg.Symbols.Count
	}
	return n
}

func onOff(c password.CategoryConfig) string {
	if c.Enabled {
		return "ON"
	}
	return "OFF"
}

// settings renders the current configuration the way the menu displays it.
func (s *Session) settings() string {
	return fmt.Sprintf("[Settings] Total: %d chars\n  Letters: %s (%d) | Numbers: %s (%d) | Symbols: %s (%d)",
		s.total(),
		onOff(s.cfg.Letters), s.cfg.Letters.Count,
		onOff(s.cfg.Numbers), s.cfg.Numbers.Count,
		onOff(s.cfg.Symbols), s.cfg.Symbols.Count)
}

// category resolves a command argument to the matching config entry.
func (s *Session) category(name string) (*password.CategoryConfig, error) {
	switch strings.ToLower(name) {
	case "letters":
		return &s.cfg.Letters, nil
	case "numbers":
		return &s.cfg.Numbers, nil
	case "symbols":
		return &s.cfg.Symbols, nil
	default:
		return nil, fmt.Errorf("unknown category %q (want letters, numbers or symbols)", name)
	}
}

// errExit signals a clean loop exit.
var errExit = fmt.Errorf("exit")

// eval executes one input line and returns the text to display.
func (s *Session) eval(line string) (string, error) {
	args, err := s.parser.Parse(line)
	if err != nil {
		return "", err
	}
	if len(args) == 0 {
		return "", nil
	}

	switch strings.ToLower(args[0]) {
	case "show":
		return s.settings(), nil

	case "generate", "gen":
		return s.runGenerate()

	case "toggle":
		if len(args) != 2 {
			return "", fmt.Errorf("usage: toggle <letters|numbers|symbols>")
		}
		cat, err := s.category(args[1])
		if err != nil {
			return "", err
		}
		cat.Enabled = !cat.Enabled
		return s.settings(), nil

	case "set":
		if len(args) != 3 {
			return "", fmt.Errorf("usage: set <letters|numbers|symbols> <n>")
		}
		cat, err := s.category(args[1])
		if err != nil {
			return "", err
		}
		n := cli.ParseUint(args[2])
		if n >= password.MaxCategoryLength {
			return "", fmt.Errorf("length %d out of range [0, %d)", n, password.MaxCategoryLength)
		}
		cat.Count = n
		return s.settings(), nil

	case "help":
		return sessionHelp, nil

	case "exit", "quit", "q":
		return "Goodbye.", errExit

	default:
		return "", fmt.Errorf("command %q not recognized, type help for a list of commands", args[0])
	}
}

// runGenerate generates a password with the session configuration, prints it
// and copies it to the clipboard. Clipboard failure is not fatal: the result
// is still shown.
func (s *Session) runGenerate() (string, error) {
	pw, err := s.generate(s.cfg)
	if err != nil {
		return "", err
	}

	result := fmt.Sprintf(">> RESULT (%d chars: L=%d N=%d S=%d): %s",
		pw.Len(), pw.Letters, pw.Numbers, pw.Symbols, pw.String())

	if err := s.clip(pw.String()); err != nil {
		result += "\n[WARN] Clipboard copy failed: " + err.Error()
	} else {
		result += "\n[INFO] Copied to clipboard."
	}
	pw.Destroy()

	return result, nil
}

// Run starts the interactive loop and blocks until the user exits.
func (s *Session) Run() error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt: "winpass > ",
		AutoComplete: readline.NewPrefixCompleter(
			readline.PcItem("show"),
			readline.PcItem("generate"),
			readline.PcItem("toggle",
				readline.PcItem("letters"), readline.PcItem("numbers"), readline.PcItem("symbols")),
			readline.PcItem("set",
				readline.PcItem("letters"), readline.PcItem("numbers"), readline.PcItem("symbols")),
			readline.PcItem("help"),
			readline.PcItem("exit"),
		),
	})
	if err != nil {
		return err
	}
	defer rl.Close()

	fmt.Fprintln(s.out, "=== winpass interactive mode ===")
	fmt.Fprintln(s.out, s.settings())
	fmt.Fprintln(s.out, "Type help for commands.")

	for {
		line, err := rl.Readline()
		if err != nil {
			// Interrupt or EOF ends the session.
			return nil
		}
		if line == "" {
			continue
		}

		res, err := s.eval(line)
		if err == errExit {
			fmt.Fprintln(s.out, res)
			return nil
		}
		if err != nil {
			fmt.Fprintln(s.out, err.Error())
			continue
		}
		if res != "" {
			fmt.Fprintln(s.out, res)
		}
	}
}
