package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/aaravmahajanofficial/tienda/internal/api/middleware"
	"github.com/aaravmahajanofficial/tienda/internal/config"
	appErrors "github.com/aaravmahajanofficial/tienda/internal/errors"
	"github.com/aaravmahajanofficial/tienda/internal/models"
	service "github.com/aaravmahajanofficial/tienda/internal/services"
	"github.com/aaravmahajanofficial/tienda/internal/validation"
	"github.com/aaravmahajanofficial/tienda/pkg/articulos"
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/spf13/cobra"
)

// cli carries what every subcommand needs once the root flags are parsed.
type cli struct {
	in  io.Reader
	out io.Writer
	err io.Writer

	upstream config.Upstream
	verbose  bool
	catalog  service.CatalogService
}

func newRootCmd(in io.Reader, out, errOut io.Writer) *cobra.Command {

	c := &cli{in: in, out: out, err: errOut}

	// UPSTREAM_BASE_URL and UPSTREAM_TIMEOUT seed the flag defaults.
	if err := cleanenv.ReadEnv(&c.upstream); err != nil {
		fmt.Fprintf(errOut, "ignoring upstream environment: %v\n", err)
	}

	root := &cobra.Command{
		Use:           "tienda-admin",
		Short:         "Manage the articulos catalog",
		Long:          "List, create, update and delete articulos through the articulos REST API.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			c.catalog = service.NewCatalogService(
				articulos.NewClient(c.upstream.BaseURL, c.upstream.Timeout),
				validation.New(),
				false,
			)
		},
	}

	root.PersistentFlags().StringVar(&c.upstream.BaseURL, "base-url", c.upstream.BaseURL, "articulos collection endpoint")
	root.PersistentFlags().DurationVar(&c.upstream.Timeout, "timeout", orDefault(c.upstream.Timeout, 10*time.Second), "request timeout")
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "log requests to stderr")

	root.SetIn(in)
	root.SetOut(out)
	root.SetErr(errOut)

	root.AddCommand(c.listCmd(), c.getCmd(), c.saveCmd(), c.deleteCmd())

	return root
}

func orDefault(d, fallback time.Duration) time.Duration {
	if d <= 0 {
		return fallback
	}
	return d
}

func (c *cli) context(cmd *cobra.Command) context.Context {

	level := slog.LevelError
	if c.verbose {
		level = slog.LevelDebug
	}

	logger := slog.New(slog.NewTextHandler(c.err, &slog.HandlerOptions{Level: level}))

	return middleware.WithLogger(cmd.Context(), logger)
}

func (c *cli) notice(n *models.Notice) {
	if n != nil {
		fmt.Fprintf(c.out, "[%s] %s\n", n.Level, n.Message)
	}
}

// report prints the user facing message of an AppError and hands the error
// back so cobra exits non-zero.
func (c *cli) report(err error) error {

	if appErr, ok := appErrors.IsAppError(err); ok {
		fmt.Fprintf(c.err, "[%s] %s\n", appErr.Level(), appErr.Message)
		return err
	}

	fmt.Fprintf(c.err, "[%s] %s\n", appErrors.LevelDanger, err.Error())
	return err
}
