package cli

import "strings"

// joinArgs treats all positional arguments as one query.
func joinArgs(args []string) string {
	return strings.TrimSpace(strings.Join(args, " "))
}
