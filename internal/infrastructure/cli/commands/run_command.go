package commands

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/doeshing/panicvalidate/internal/app"
	"github.com/doeshing/panicvalidate/internal/domain"
)

// NewRunCommand creates the run command, also the root command's default action.
func NewRunCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Validate the panic button changes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return RunValidation(cmd, container)
		},
	}
}

// RunValidation evaluates every rule and prints the report. It returns
// domain.ErrValidationFailed when any check failed; source and rule errors are
// returned before anything is printed.
func RunValidation(cmd *cobra.Command, container *app.Container) error {
	if container == nil || container.ValidateService == nil {
		return errors.New(ErrValidateServiceUnavailable)
	}

	report, err := container.ValidateService.Run(cmd.Context())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if container.Verbose {
		displayCheckList(out, report)
	}
	return displayReport(out, report)
}

// displayCheckList prints every check with its status, in declaration order.
func displayCheckList(out io.Writer, report domain.Report) {
	for _, check := range report.Checks {
		status := "pass"
		if !check.Passed {
			status = "fail"
		}
		writeStatusLine(out, status, check.Name, "")
	}
}

// displayReport prints the summary, or the failures when any check failed.
func displayReport(out io.Writer, report domain.Report) error {
	failed := report.Failed()
	if len(failed) == 0 {
		fmt.Fprintf(out, MsgValidationPassed, len(report.Checks))
		return nil
	}

	fmt.Fprintln(out, MsgValidationFailed)
	for _, check := range failed {
		fmt.Fprintf(out, FailedCheckFormat, check.Name)
	}
	return domain.ErrValidationFailed
}
