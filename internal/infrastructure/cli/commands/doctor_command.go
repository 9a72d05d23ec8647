package commands

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/doeshing/panicvalidate/internal/app"
	"github.com/doeshing/panicvalidate/internal/domain"
)

// NewDoctorCommand creates the doctor command
func NewDoctorCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Diagnose settings, rules and input file locations",
		Long: "doctor resolves the same settings a validation run would use and reports whether\n" +
			"the settings file, the rule set and each input file can be found. No rule is evaluated.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if container == nil || container.DoctorService == nil {
				return errors.New(ErrDoctorServiceUnavailable)
			}
			report, err := container.DoctorService.Run(cmd.Context())
			displayDiagnostics(cmd.OutOrStdout(), report)
			if err != nil {
				return fmt.Errorf("doctor: %w", err)
			}
			return nil
		},
	}
}

// displayDiagnostics lists every diagnostic then a tally, e.g. "4 ok, 1 warn, 0 error".
func displayDiagnostics(out io.Writer, report domain.HealthReport) {
	tally := map[domain.HealthStatus]int{}
	for _, check := range report.Checks {
		writeStatusLine(out, string(check.Status), check.Name, check.Details)
		tally[check.Status]++
	}
	fmt.Fprintf(out, MsgDoctorSummary, tally[domain.HealthOK], tally[domain.HealthWarn], tally[domain.HealthError])
}
