// Command winpass generates cryptographically secure passwords. It runs in
// one of three modes: legacy batch (a single numeric argument), advanced
// (per-category flags) or interactive (no arguments).
package main

import (
	"fmt"
	"os"

	"github.com/winpass/winpass/internal/cli"
	"github.com/winpass/winpass/internal/interactive"
	"github.com/winpass/winpass/pkg/logger"
	"github.com/winpass/winpass/pkg/password"
	"github.com/winpass/winpass/pkg/secureclip"
)

func main() {
	log := logger.New(logger.DefaultConfig())
	cmd := cli.Parse(os.Args[1:])

	switch cmd.Mode {
	case cli.ModeHelp:
		fmt.Print(cli.Usage)

	case cli.ModeBatch:
		fmt.Println("winpass (batch mode)")
		pw, err := password.GenerateBatch(cmd.BatchLength, true)
		if err != nil {
			log.Error().Err(err).Int("length", cmd.BatchLength).Msg("generation failed")
			fmt.Fprintf(os.Stderr, "[ERROR] %v\n", err)
			os.Exit(1)
		}
		fmt.Printf(">> RESULT (%d chars): %s\n", pw.Len(), pw.String())
		clip(pw.String(), log)
		pw.Destroy()

	case cli.ModeAdvanced:
		fmt.Println("winpass (advanced mode)")
		pw, err := password.GenerateAdvanced(cmd.Advanced)
		if err != nil {
			log.Error().Err(err).Msg("generation failed")
			fmt.Fprintf(os.Stderr, "[ERROR] %v\n", err)
			os.Exit(1)
		}
		fmt.Printf(">> RESULT (%d chars: L=%d N=%d S=%d): %s\n",
			pw.Len(), pw.Letters, pw.Numbers, pw.Symbols, pw.String())
		clip(pw.String(), log)
		pw.Destroy()

	case cli.ModeInteractive:
		if err := interactive.NewSession().Run(); err != nil {
			log.Error().Err(err).Msg("interactive session failed")
			os.Exit(1)
		}
	}
}

// clip copies the password to the clipboard. Failure is reported but not
// fatal: the password has already been printed.
func clip(text string, log *logger.Logger) {
	if err := secureclip.Clip(text); err != nil {
		log.Warn().Err(err).Msg("clipboard copy failed")
		return
	}
	fmt.Println("[INFO] Copied to clipboard.")
}
