package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/chroma/v2/quick"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/avolabs/avoterm/internal/tui"
)

var (
	verifyJSON        bool
	verifyInteractive bool
)

var verifyCmd = &cobra.Command{
	Use:   "verify [address]",
	Short: "Verify the DEX payment status of a Solana token",
	Long: `Queries the DEX orders API once for the given token address and reports
"Paid" when an approved order with a payment timestamp exists, "Not Paid"
otherwise. Nothing is cached; every call asks the API again.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runVerify,
}

func init() {
	verifyCmd.Flags().BoolVar(&verifyJSON, "json", false, "Print the result as JSON")
	verifyCmd.Flags().BoolVarP(&verifyInteractive, "interactive", "i", false, "Open the verification panel instead of checking once")
}

func runVerify(cmd *cobra.Command, args []string) error {
	if verifyInteractive {
		return tui.RunVerify(theme, newChecker())
	}

	address := ""
	if len(args) > 0 {
		address = args[0]
	}

	res := newChecker().Check(cmd.Context(), address)
	out := cmd.OutOrStdout()

	if verifyJSON {
		data, err := json.MarshalIndent(res, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode result: %w", err)
		}
		if err := writeJSON(out, string(data)); err != nil {
			return err
		}
	} else if res.OK() {
		fmt.Fprintf(out, "Status: %s\n", res.Status)
	}

	if !res.OK() {
		return errors.New(res.Message)
	}
	return nil
}

// writeJSON highlights the document when out is a terminal.
func writeJSON(out io.Writer, doc string) error {
	if f, ok := out.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		if err := quick.Highlight(out, doc+"\n", "json", "terminal256", "monokai"); err == nil {
			return nil
		}
	}
	_, err := fmt.Fprintln(out, doc)
	return err
}
