package main

import (
	"io"
	"log"
	"os"

	"github.com/alecthomas/kong"
	konghcl "github.com/alecthomas/kong-hcl/v2"
	"github.com/dahankzter/cdrs/conf"
	"github.com/dahankzter/cdrs/errors"
	"github.com/dahankzter/cdrs/inspect"
	plog "github.com/dahankzter/cdrs/log"
	"github.com/dahankzter/cdrs/metrics/prometheus"
	"github.com/dahankzter/cdrs/rows"
	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
)

type arguments struct {
	Config  kong.ConfigFlag `help:"Path to config file" type:"existingfile"`
	Body    string          `help:"Path to a rows result body in commented JSON" type:"existingfile" required:""`
	Format  string          `help:"Output format" enum:"table,repr,json" default:"table"`
	Metrics bool            `help:"Log decode metrics once the rows are written"`
	Log     plog.Config     `help:"Configuration for the logger" embed:"" prefix:"log-"`
	Decode  conf.Config     `help:"Row decoding configuration" embed:"" prefix:""`
}

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func run(args []string, out io.Writer) error {
	cfg := arguments{}
	parser, err := kong.New(&cfg,
		kong.Name("cdrsdump"),
		kong.Description("Decode the rows of a result body and print them."),
		kong.Configuration(konghcl.Loader))
	if err != nil {
		return errors.WithStack(err)
	}
	_, err = parser.Parse(args)
	if err != nil {
		return errors.WithStack(err)
	}
	closer, err := cfg.Log.Configure()
	if err != nil {
		return err
	}
	defer func() {
		if err := closer.Close(); err != nil {
			logrus.Warnf("failed to close log file: %v", err)
		}
	}()
	if err := cfg.Decode.Validate(); err != nil {
		return err
	}

	registry := prom.NewRegistry()
	factory := prometheus.NewFactory(cfg.Decode.MetricsNamespace, registry)
	body, err := inspect.LoadBodyFile(cfg.Body, &cfg.Decode, factory)
	if err != nil {
		return err
	}
	rs := rows.FromBody(body)
	if err := inspect.Render(out, rs, inspect.Format(cfg.Format)); err != nil {
		return err
	}
	if cfg.Metrics {
		return logMetrics(registry)
	}
	return nil
}

func logMetrics(registry *prom.Registry) error {
	families, err := registry.Gather()
	if err != nil {
		return errors.WithStack(err)
	}
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			fields := logrus.Fields{"metric": mf.GetName(), "value": m.GetCounter().GetValue()}
			for _, lp := range m.GetLabel() {
				fields[lp.GetName()] = lp.GetValue()
			}
			logrus.WithFields(fields).Info("decode metric")
		}
	}
	return nil
}
