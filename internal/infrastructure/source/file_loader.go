package source

import (
	"context"
	"os"
	"strings"

	"github.com/doeshing/panicvalidate/internal/domain"
	"github.com/doeshing/panicvalidate/internal/ports"
)

// newlines folds CRLF and lone CR line endings to LF; rule patterns are
// written against "\n".
var newlines = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// FileLoader reads the client, server and config files from disk.
type FileLoader struct {
	logger ports.Logger
}

// NewFileLoader builds a loader. logger may be nil.
func NewFileLoader(logger ports.Logger) *FileLoader {
	return &FileLoader{logger: logger}
}

// Load implements ports.SourceLoader. All files are read before returning;
// the first failure aborts the load. Line endings are normalized to "\n".
func (l *FileLoader) Load(ctx context.Context, settings domain.Settings) (domain.Sources, error) {
	texts := make(map[domain.SourceKind]string, len(domain.SourceKinds))
	for _, kind := range domain.SourceKinds {
		if err := ctx.Err(); err != nil {
			return domain.Sources{}, err
		}
		path := settings.Path(kind)
		data, err := os.ReadFile(path)
		if err != nil {
			return domain.Sources{}, &domain.SourceError{Kind: kind, Path: path, Err: err}
		}
		texts[kind] = newlines.Replace(string(data))
		if l.logger != nil {
			l.logger.Debug("source loaded", map[string]interface{}{
				"kind":  kind,
				"path":  path,
				"bytes": len(data),
			})
		}
	}

	return domain.Sources{
		Client: texts[domain.SourceClient],
		Server: texts[domain.SourceServer],
		Config: texts[domain.SourceConfig],
	}, nil
}

var _ ports.SourceLoader = (*FileLoader)(nil)
