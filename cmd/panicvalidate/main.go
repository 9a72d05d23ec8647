package main

import (
	"context"
	"os"
	"strings"

	"github.com/doeshing/panicvalidate/internal/domain"
	"github.com/doeshing/panicvalidate/internal/infrastructure/cli"
)

func main() {
	opts := cli.Options{Verbose: isVerbose()}
	os.Exit(cli.Execute(context.Background(), opts, os.Args[1:], os.Stdout, os.Stderr))
}

func isVerbose() bool {
	value := os.Getenv(domain.DebugEnvVar)
	return value == "1" || strings.EqualFold(value, "true")
}
