package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/aws/aws-lambda-go/lambda"
	echoadapter "github.com/awslabs/aws-lambda-go-api-proxy/echo"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"github.com/bzimmer/ftracker"
)

func config(c *cli.Context) (*ftracker.Config, error) {
	var fp io.ReadCloser
	var err error
	switch c.IsSet("config") {
	case true:
		log.Info().Str("file", c.String("config")).Msg("config")
		fp, err = os.Open(c.String("config"))
	case false:
		log.Info().Str("file", "etc/packages.json").Msg("config")
		fp, err = ftracker.Content.Open("etc/packages.json")
	}
	if err != nil {
		return nil, err
	}
	defer fp.Close()
	return ftracker.ReadConfig(fp)
}

func report(c *cli.Context) error {
	cfg, err := config(c)
	if err != nil {
		return err
	}
	tracker := ftracker.NewTracker(c.Int("concurrency"))
	res, err := tracker.Track(c.Context, cfg.Packages)
	if err != nil {
		return err
	}
	for _, s := range res {
		if _, err := fmt.Fprintln(c.App.Writer, s.String()); err != nil {
			return err
		}
	}
	return nil
}

func serve(c *cli.Context) error {
	engine := ftracker.NewEngine(ftracker.NewTracker(c.Int("concurrency")))
	address := c.String("address")
	log.Info().Str("address", address).Msg("serving")
	return http.ListenAndServe(address, engine)
}

func function(c *cli.Context) error {
	engine := ftracker.NewEngine(ftracker.NewTracker(c.Int("concurrency")))
	log.Info().Msg("running function")
	lambda.Start(ftracker.LambdaHandler(echoadapter.New(engine)))
	return nil
}

func newApp() *cli.App {
	return &cli.App{
		Name:     "ftracker",
		HelpName: "ftracker",
		Usage:    "Workout distance, speed and calories",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Usage:   "file with workout packages",
				EnvVars: []string{"FTRACKER_CONFIG"},
			},
			&cli.IntFlag{
				Name:  "concurrency",
				Value: 4,
				Usage: "number of packages summarized concurrently",
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Value: false,
				Usage: "enable debug logging",
			},
		},
		ExitErrHandler: func(c *cli.Context, err error) {
			if err == nil {
				return
			}
			log.Error().Err(err).Msg(c.App.Name)
		},
		Before: func(c *cli.Context) error {
			level := zerolog.InfoLevel
			if c.Bool("verbose") {
				level = zerolog.DebugLevel
			}
			zerolog.SetGlobalLevel(level)
			zerolog.DurationFieldUnit = time.Millisecond
			zerolog.DurationFieldInteger = false
			log.Logger = log.Output(
				zerolog.ConsoleWriter{
					Out:        c.App.ErrWriter,
					NoColor:    false,
					TimeFormat: time.RFC3339,
				},
			)
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:   "report",
				Usage:  "print a summary line for each package",
				Action: report,
			},
			{
				Name:  "serve",
				Usage: "serve the calculator over http",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "address",
						Value:   "0.0.0.0:9001",
						Usage:   "listen address",
						EnvVars: []string{"FTRACKER_ADDRESS"},
					},
				},
				Action: serve,
			},
			{
				Name:   "function",
				Usage:  "run as an aws lambda function",
				Action: function,
			},
		},
		Action: report,
	}
}

func main() {
	app := newApp()
	if err := app.RunContext(context.Background(), os.Args); err != nil {
		os.Exit(1)
	}
	os.Exit(0)
}
