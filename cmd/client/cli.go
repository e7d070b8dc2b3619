package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/MKhiriev/go-login-server/internal/adapter"
	"github.com/MKhiriev/go-login-server/internal/logger"
	"github.com/MKhiriev/go-login-server/models"
)

const usage = `usage: login-client [flags] <command> [arguments]

commands:
  version                               print client and server versions
  register <username> <password> <email>
  login <username> <password>           print a session token
  logout                                revoke the session token
  profile <id>
  update <id> <email>
  delete <id>

flags:`

var errUsage = errors.New("invalid usage")

// clientConfig is read from the environment first and overridden by flags.
type clientConfig struct {
	Address        string        `env:"LOGIN_SERVER_ADDRESS" envDefault:"localhost:8080"`
	Token          string        `env:"LOGIN_TOKEN"`
	RequestTimeout time.Duration `env:"LOGIN_REQUEST_TIMEOUT" envDefault:"15s"`
}

type cli struct {
	out       io.Writer
	buildInfo models.AppBuildInfo

	logger *logger.Logger
}

func newCLI(out io.Writer, logger *logger.Logger) *cli {
	return &cli{
		out:       out,
		buildInfo: models.NewAppBuildInfo("", "", ""),
		logger:    logger,
	}
}

func (c *cli) run(ctx context.Context, args []string) error {
	var cfg clientConfig
	if err := env.Parse(&cfg); err != nil {
		return fmt.Errorf("error parsing env: %w", err)
	}

	fs := flag.NewFlagSet("login-client", flag.ContinueOnError)
	fs.SetOutput(c.out)
	fs.StringVar(&cfg.Address, "a", cfg.Address, "Server address host:port or URL")
	fs.StringVar(&cfg.Token, "token", cfg.Token, "Session token for authenticated commands")
	fs.DurationVar(&cfg.RequestTimeout, "timeout", cfg.RequestTimeout, "Request timeout")
	fs.Usage = func() {
		fmt.Fprintln(c.out, usage)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %w", errUsage, err)
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return errUsage
	}

	commands := map[string]func(context.Context, adapter.Client, []string) error{
		"version":  c.version,
		"register": c.register,
		"login":    c.login,
		"logout":   c.logout,
		"profile":  c.profile,
		"update":   c.update,
		"delete":   c.delete,
	}
	command, ok := commands[fs.Arg(0)]
	if !ok {
		return fmt.Errorf("%w: unknown command %q", errUsage, fs.Arg(0))
	}

	client, err := adapter.NewHTTPClient(adapter.HTTPClientConfig{BaseURL: cfg.Address, RequestTimeout: cfg.RequestTimeout}, c.logger)
	if err != nil {
		return err
	}
	client.SetToken(cfg.Token)

	return command(ctx, client, fs.Args()[1:])
}

func (c *cli) version(ctx context.Context, client adapter.Client, args []string) error {
	if err := expectArgs("version", args, 0); err != nil {
		return err
	}

	fmt.Fprintf(c.out, "Client version: %s\n", c.buildInfo)

	serverVersion, err := client.Version(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.out, "Server version: %s\n", serverVersion)
	return nil
}

func (c *cli) register(ctx context.Context, client adapter.Client, args []string) error {
	if err := expectArgs("register", args, 3); err != nil {
		return err
	}

	user, err := client.Register(ctx, args[0], args[1], args[2])
	if err != nil {
		return err
	}
	return c.print(user)
}

func (c *cli) login(ctx context.Context, client adapter.Client, args []string) error {
	if err := expectArgs("login", args, 2); err != nil {
		return err
	}

	token, err := client.Login(ctx, args[0], args[1])
	if err != nil {
		return err
	}
	return c.print(token)
}

func (c *cli) logout(ctx context.Context, client adapter.Client, args []string) error {
	if err := expectArgs("logout", args, 0); err != nil {
		return err
	}
	return client.Logout(ctx)
}

func (c *cli) profile(ctx context.Context, client adapter.Client, args []string) error {
	if err := expectArgs("profile", args, 1); err != nil {
		return err
	}
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	user, err := client.GetProfile(ctx, id)
	if err != nil {
		return err
	}
	return c.print(user)
}

func (c *cli) update(ctx context.Context, client adapter.Client, args []string) error {
	if err := expectArgs("update", args, 2); err != nil {
		return err
	}
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	user, err := client.UpdateProfile(ctx, id, args[1])
	if err != nil {
		return err
	}
	return c.print(user)
}

func (c *cli) delete(ctx context.Context, client adapter.Client, args []string) error {
	if err := expectArgs("delete", args, 1); err != nil {
		return err
	}
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	deleted, err := client.DeleteAccount(ctx, id)
	if err != nil {
		return err
	}
	return c.print(map[string]bool{"deleted": deleted})
}

func (c *cli) print(v any) error {
	encoder := json.NewEncoder(c.out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

func expectArgs(command string, args []string, n int) error {
	if len(args) != n {
		return fmt.Errorf("%w: %s takes %d argument(s), got %d", errUsage, command, n, len(args))
	}
	return nil
}

func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: invalid user id %q", errUsage, raw)
	}
	return id, nil
}
