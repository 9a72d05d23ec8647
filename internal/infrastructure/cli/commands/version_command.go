package commands

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/spf13/cobra"

	"github.com/doeshing/panicvalidate/assets"
	"github.com/doeshing/panicvalidate/internal/infrastructure/rules"
	"github.com/doeshing/panicvalidate/internal/version"
)

// NewVersionCommand creates the version command
func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show panicvalidate version and embedded rule count",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), versionLine())
			return nil
		},
	}
}

// versionLine renders e.g. "panicvalidate 0.3.0 (commit abc123, go1.25.3, 11 default rules)".
func versionLine() string {
	details := make([]string, 0, 4)
	if version.Commit != "" {
		details = append(details, "commit "+version.Commit)
	}
	if version.BuildDate != "" {
		details = append(details, "built "+version.BuildDate)
	}
	details = append(details, runtime.Version())
	if defaults, err := rules.Parse(assets.DefaultRulesYAML); err == nil {
		details = append(details, fmt.Sprintf("%d default rules", len(defaults)))
	}
	return fmt.Sprintf("panicvalidate %s (%s)", version.Version, strings.Join(details, ", "))
}
