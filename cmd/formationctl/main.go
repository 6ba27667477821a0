package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "0.1.0"

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "formationctl",
		Short: "Company formation document tool",
		Long: `formationctl renders state formation documents and manages the filing database.

Example:
  formationctl generate --company "Acme Inc" --state DE --type corporation --incorporator "Jane Doe"
  formationctl migrate up
  formationctl jurisdictions`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(generateCmd())
	root.AddCommand(migrateCmd())
	root.AddCommand(jurisdictionsCmd())

	return root
}
