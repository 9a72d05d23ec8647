package domain

import "fmt"

// SourceKind names one of the monitored input files.
type SourceKind string

const (
	SourceClient SourceKind = "client"
	SourceServer SourceKind = "server"
	SourceConfig SourceKind = "config"
)

// SourceKinds lists the kinds in load order.
var SourceKinds = []SourceKind{SourceClient, SourceServer, SourceConfig}

// ParseSourceKind converts a rule file value into a SourceKind.
func ParseSourceKind(value string) (SourceKind, error) {
	switch kind := SourceKind(value); kind {
	case SourceClient, SourceServer, SourceConfig:
		return kind, nil
	default:
		return "", fmt.Errorf("%w: unknown source %q", ErrInvalidRule, value)
	}
}

// Sources holds the full text of every input file for a single run.
type Sources struct {
	Client string
	Server string
	Config string
}

// Text returns the contents for kind.
func (s Sources) Text(kind SourceKind) string {
	switch kind {
	case SourceClient:
		return s.Client
	case SourceServer:
		return s.Server
	case SourceConfig:
		return s.Config
	default:
		return ""
	}
}
