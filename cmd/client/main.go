package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/go-login-server/internal/logger"
	"github.com/MKhiriev/go-login-server/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	log := logger.NewLoggerTo(os.Stderr, "login-client")
	if err := logger.SetLevel("warn"); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}

	cli := newCLI(os.Stdout, log)
	cli.buildInfo = models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	if err := cli.run(context.Background(), os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
