package app

import (
	"io"

	"github.com/doeshing/panicvalidate/internal/application/doctor"
	"github.com/doeshing/panicvalidate/internal/application/validate"
	"github.com/doeshing/panicvalidate/internal/infrastructure/config"
	"github.com/doeshing/panicvalidate/internal/infrastructure/rules"
	"github.com/doeshing/panicvalidate/internal/infrastructure/source"
	"github.com/doeshing/panicvalidate/internal/pkg/logger"
)

// Container wires up application services with infrastructure adapters.
type Container struct {
	ValidateService *validate.Service
	DoctorService   *doctor.Service
	Logger          *logger.ZapLogger
	Verbose         bool
}

// BuildContainer constructs the dependency graph. Logs go to logOut when verbose.
func BuildContainer(settings *config.Loader, verbose bool, logOut io.Writer) *Container {
	log := logger.New(verbose, logOut)

	validateService := &validate.Service{
		SettingsProvider: settings,
		RuleProvider:     rules.NewSet(log),
		SourceLoader:     source.NewFileLoader(log),
		Evaluator:        rules.NewEngine(log),
		Logger:           log,
	}

	doctorService := &doctor.Service{
		SettingsProvider: settings,
		SettingsLocator:  settings,
		RuleProvider:     validateService.RuleProvider,
	}

	return &Container{
		ValidateService: validateService,
		DoctorService:   doctorService,
		Logger:          log,
		Verbose:         verbose,
	}
}

// Sync flushes the logger. Safe on a container that was never built.
func (c *Container) Sync() {
	if c == nil || c.Logger == nil {
		return
	}
	// Syncing a terminal stderr returns EINVAL on some platforms.
	_ = c.Logger.Sync()
}
