package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/teranos/staticproof/cmd/staticproof/commands"
	"github.com/teranos/staticproof/logger"
)

var rootCmd = &cobra.Command{
	Use:   "staticproof",
	Short: "staticproof - build-time verification of structural invariants",
	Long: `staticproof verifies declarative assertions written with the
github.com/teranos/staticproof/assert package: structural size equivalence
between types and subset/superset relationships between capabilities
(interfaces).

Assertions are proved against fully type-checked source. A refuted
assertion fails the run with a diagnostic at the asserting call site; a
verified one contributes nothing to the built binary.

Available commands:
  check   - Verify all assertions in the given packages
  version - Show staticproof version information

Examples:
  staticproof check                    # Verify ./...
  staticproof check ./frame/...        # Verify specific packages
  staticproof check --goarch=arm64     # Size obligations for a target arch
  staticproof check --watch            # Re-verify on source changes`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		verbosity, _ := cmd.Flags().GetCount("verbose")
		if err := logger.Initialize(verbosity, false); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().CountP("verbose", "v", "Increase output verbosity (repeat for more detail: -v, -vv, -vvv)")

	rootCmd.AddCommand(commands.CheckCmd)
	rootCmd.AddCommand(commands.VersionCmd)
}

func main() {
	defer logger.Sync()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
