package cli

import "github.com/spf13/pflag"

// addSessionFlag registers the shared --session flag on a command's flag set.
func addSessionFlag(fs *pflag.FlagSet, target *string) {
	fs.StringVarP(target, "session", "s", "", "Session ID")
}
