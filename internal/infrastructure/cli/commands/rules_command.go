package commands

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/doeshing/panicvalidate/internal/app"
	"github.com/doeshing/panicvalidate/internal/domain"
)

// NewRulesCommand creates the rules command
func NewRulesCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: "List the active checks in evaluation order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if container == nil || container.ValidateService == nil {
				return errors.New(ErrValidateServiceUnavailable)
			}
			rules, err := container.ValidateService.Rules(cmd.Context())
			if err != nil {
				return err
			}
			displayRules(cmd.OutOrStdout(), rules)
			return nil
		},
	}
}

func displayRules(out io.Writer, rules []domain.Rule) {
	for i, rule := range rules {
		fmt.Fprintf(out, "%2d. [%s] %s\n", i+1, rule.Source, rule.Name)
	}
}
