package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/opensea-sales-report/infrastructure/database/postgres"
	"github.com/vfg2006/opensea-sales-report/infrastructure/integrator/opensea"
	"github.com/vfg2006/opensea-sales-report/infrastructure/integrator/opensea/openseaclient"
	"github.com/vfg2006/opensea-sales-report/infrastructure/output/csvfile"
	"github.com/vfg2006/opensea-sales-report/infrastructure/repository"
	"github.com/vfg2006/opensea-sales-report/internal/api"
	"github.com/vfg2006/opensea-sales-report/internal/config"
	"github.com/vfg2006/opensea-sales-report/internal/domain"
	"github.com/vfg2006/opensea-sales-report/internal/scheduler"
	"github.com/vfg2006/opensea-sales-report/internal/usecases/aggregating"
	"github.com/vfg2006/opensea-sales-report/internal/usecases/collecting"
	"github.com/vfg2006/opensea-sales-report/internal/usecases/reporting"
	"github.com/vfg2006/opensea-sales-report/pkg/log"
	"github.com/vfg2006/opensea-sales-report/pkg/utils"
)

// sleep é a espera usada pelo backoff da coleta
var sleep collecting.SleepFunc = collecting.Sleep

func main() {
	os.Exit(run(os.Args[1:]))
}

// run devolve o código de saída; os defers rodam antes do os.Exit
func run(args []string) int {
	configureLogger()

	cfg, err := config.NewConfig(args)
	if err != nil {
		logrus.WithError(err).Error("Erro ao carregar configuração")
		return 1
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)

	if err := cfg.Validate(); err != nil {
		logrus.Error(err)
		fmt.Fprintln(os.Stderr, config.NewFlagSet().FlagUsages())
		return 1
	}

	if cfg.Output.Filename != "" {
		if err := csvfile.ValidateFilename(cfg.Output.Filename); err != nil {
			logrus.Error(err)
			return 1
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ctx, correlationID := log.WithCorrelationID(ctx)

	startTime := time.Now()
	query := domain.NewCollectionQuery(cfg.Collection.Slug, cfg.Collection.Contract, cfg.Collection.DaysBack, startTime)

	runID, err := utils.GenerateID()
	if err != nil {
		logrus.WithError(err).Error("Erro ao gerar ID da execução")
		return 1
	}

	if cfg.Collection.DaysBack != nil {
		logrus.Infof("Requesting data from Opensea for %q from the last %d days", query.Identifier(), *cfg.Collection.DaysBack)
	} else {
		logrus.Infof("Requesting data from Opensea for %q for all time.", query.Identifier())
	}
	logrus.WithFields(logrus.Fields{
		"run_id":         runID,
		"correlation_id": correlationID,
	}).Info("This can take several minutes...")

	state := domain.NewRunState(runID, query.Identifier(), startTime)

	paginator := opensea.New(openseaclient.NewClient(cfg.OpenSea), query)
	collector := collecting.NewService(paginator, aggregating.New(state), state, collecting.WithSleepFunc(sleep))

	reporter := scheduler.NewProgressReporter(cfg.Progress, state, os.Stdout)
	if err := reporter.Start(); err != nil {
		logrus.WithError(err).Warn("Relatório de progresso indisponível")
	}
	defer reporter.Stop()

	if cfg.Server.Enabled {
		server := api.New(cfg, state)
		if err := server.Start(); err != nil {
			logrus.WithError(err).Warn("Servidor de status indisponível")
		} else {
			defer shutdownServer(server)
		}
	}

	result, err := collector.Run(ctx)
	reporter.Stop()
	if err != nil {
		logrus.WithError(err).Error("An unexpected error occurred requesting Opensea data.")
		return 1
	}

	rows, text := reporting.Build(result.Days)

	path, err := csvfile.NewWriter(cfg.Output).Write(text, csvfile.FileNameParams{
		Filename:       cfg.Output.Filename,
		CollectionName: result.CollectionName,
		Identifier:     query.Identifier(),
		StartedAt:      startTime,
	})
	if err != nil {
		logrus.WithError(err).Error("Erro ao gravar o relatório")
		return 1
	}

	if cfg.Database.Enabled {
		saveReport(ctx, cfg.Database, &domain.SalesReport{
			RunID:                 runID,
			Collection:            query.Identifier(),
			CollectionName:        result.CollectionName,
			TransactionsProcessed: result.Snapshot.TransactionsProcessed,
			RequestsIssued:        result.Snapshot.RequestsIssued,
			StartedAt:             startTime,
			FinishedAt:            time.Now(),
			Rows:                  rows,
		})
	}

	duration := time.Since(startTime)
	logrus.Infof("Completed in %dm %ds. %d data rows written to %s",
		int(duration.Minutes()), int(duration.Seconds())%60, len(rows), path)

	return 0
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	logrus.SetOutput(os.Stderr)
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// saveReport grava o relatório no PostgreSQL; falhas aqui não invalidam o CSV
func saveReport(ctx context.Context, dbConfig config.Database, report *domain.SalesReport) {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Error("Erro ao conectar ao PostgreSQL")
		return
	}
	defer conn.Close()

	if err := postgres.EnsureSchema(ctx, conn); err != nil {
		logrus.WithError(err).Error("Erro ao criar tabelas do relatório")
		return
	}

	if err := repository.NewSalesReportRepository(conn).Save(ctx, report); err != nil {
		logrus.WithError(err).Error("Erro ao salvar relatório no PostgreSQL")
		return
	}

	logrus.WithField("run_id", report.RunID).Info("Relatório salvo no PostgreSQL")
}

func shutdownServer(server *api.Server) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil && !errors.Is(err, context.DeadlineExceeded) {
		logrus.WithError(err).Warn("Erro ao desligar servidor de status")
	}
}
