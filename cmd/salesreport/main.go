package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/integrator/salessource"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/integrator/salessource/salesclient"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/reporting"
	"github.com/vfg2006/sales-dashboard-api/pkg/utils"
)

type options struct {
	from     string
	to       string
	mode     string
	asJSON   bool
	logLevel string
}

func parseFlags(args []string) (options, error) {
	var opts options

	fs := pflag.NewFlagSet("salesreport", pflag.ContinueOnError)
	fs.StringVar(&opts.from, "from", "", "data inicial (yyyy-MM-dd)")
	fs.StringVar(&opts.to, "to", "", "data final (yyyy-MM-dd)")
	fs.StringVar(&opts.mode, "mode", "", "origem das vendas: static ou query (padrão: SALES_SOURCE_MODE)")
	fs.BoolVar(&opts.asJSON, "json", false, "imprime o dashboard completo em JSON")
	fs.StringVar(&opts.logLevel, "log-level", "warn", "nível de log")

	if err := fs.Parse(args); err != nil {
		return options{}, err
	}

	return opts, nil
}

func main() {
	logrus.SetOutput(os.Stderr)
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})

	opts, err := parseFlags(os.Args[1:])
	if err != nil {
		os.Exit(2)
	}

	if level, err := logrus.ParseLevel(opts.logLevel); err == nil {
		logrus.SetLevel(level)
	}

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	if opts.mode != "" {
		cfg.SalesSource.Mode = opts.mode
		if err := cfg.Validate(); err != nil {
			logrus.Fatal(err)
		}
	}

	source, err := salessource.New(cfg, salesclient.NewClient(cfg.SalesSource))
	if err != nil {
		logrus.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, reporting.NewService(source), opts, os.Stdout); err != nil {
		logrus.Fatal(err)
	}
}

// run monta um dashboard pela sessão e o imprime em out
func run(ctx context.Context, reporter reporting.SalesReporter, opts options, out io.Writer) error {
	dateRange, err := domain.ParseDateRange(opts.from, opts.to)
	if err != nil {
		return err
	}

	session := reporting.NewSession(reporter)
	session.SetFrom(dateRange.From)
	session.SetTo(dateRange.To)

	dashboard, _, err := session.Refresh(ctx)
	if err != nil {
		return err
	}

	if opts.asJSON {
		_, err = fmt.Fprintln(out, utils.PrettyJson(dashboard))
		return err
	}

	return printDashboard(out, dashboard)
}

// printDashboard imprime uma linha por ponto, ou a mensagem de erro no lugar dos gráficos
func printDashboard(out io.Writer, dashboard *domain.SalesDashboard) error {
	if dashboard.Error != nil {
		_, err := fmt.Fprintln(out, dashboard.Error.Message)
		return err
	}

	series := dashboard.Series
	if series.Len() == 0 {
		_, err := fmt.Fprintln(out, "Nenhuma venda no período.")
		return err
	}

	for i := range series.Labels {
		if _, err := fmt.Fprintf(out, "%s %d %.2f\n", series.Labels[i], series.Quantities[i], series.Revenues[i]); err != nil {
			return err
		}
	}

	return nil
}
