package tui

import (
	"fmt"
	"strings"
)

// dashboardHelp is rendered through glamour in the help overlay.
const dashboardHelp = `
# %s Dashboard

## Tabs
| Key | Action |
|-----|--------|
| Tab / Shift+Tab | Next / previous tab |
| ? | Show this help (when the input is empty) |
| Esc | Close help, or quit |
| Ctrl+C | Quit |

## Overview
The terminal accepts these commands: %s.
Anything else is routed to the agent, which is currently rate limited.
While a reply is being typed the input is locked.

PgUp / PgDn scroll the transcript.

## DEX Payments
Type a Solana token address and press **Enter**.
The orders API is queried once per press and answers with:

- **Paid**: an approved order with a payment timestamp exists
- **Not Paid**: no such order
- an error message when the address is empty, the API rejects the
  request or the API cannot be reached

The button stays locked until the current check returns.
`

func renderHelpMarkdown(name string, keywords []string) string {
	quoted := make([]string, len(keywords))
	for i, k := range keywords {
		quoted[i] = "`" + k + "`"
	}
	return fmt.Sprintf(dashboardHelp, name, strings.Join(quoted, ", "))
}
