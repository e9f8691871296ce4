package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/avolabs/avoterm/internal/terminal"
)

var askNoDelay bool

var askCmd = &cobra.Command{
	Use:   "ask [command...]",
	Short: "Send one command to the AI terminal",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runAsk,
}

func init() {
	askCmd.Flags().BoolVar(&askNoDelay, "no-delay", false, "Print the reply without the typing effect")
}

func runAsk(cmd *cobra.Command, args []string) error {
	d := delays()
	if askNoDelay {
		d = terminal.Delays{}
	}

	session := terminal.NewSession(theme, d)
	input := strings.Join(args, " ")
	steps, err := session.Submit(input)
	if err != nil {
		if errors.Is(err, terminal.ErrEmptyInput) {
			return fmt.Errorf("nothing to send")
		}
		return err
	}
	defer session.Done()

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, terminal.Line{Origin: terminal.OriginUser, Content: input})

	return terminal.Play(cmd.Context(), steps, func(s terminal.Step) {
		session.Apply(s)
		if s.Clear {
			fmt.Fprintln(out, "(terminal cleared)")
			return
		}
		fmt.Fprintln(out, s.Line)
	})
}
