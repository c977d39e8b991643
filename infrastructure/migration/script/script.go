package main

import (
	"context"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/opensea-sales-report/infrastructure/database/postgres"
	"github.com/vfg2006/opensea-sales-report/internal/config"
)

// Cria as tabelas do relatório antes da primeira execução com DATABASE_ENABLED.
// O salesreport também cria as tabelas, este script existe para ambientes
// onde o usuário da aplicação não tem permissão de DDL.
func main() {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	logrus.Info("Iniciando script de migração...")
	startTime := time.Now()

	cfg, err := config.NewConfig(os.Args[1:])
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao carregar configuração")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao banco de dados")
	}
	defer conn.Close()

	if err := postgres.EnsureSchema(ctx, conn); err != nil {
		logrus.WithError(err).Error("Erro ao criar tabelas")
		return
	}

	logrus.Infof("Migração concluída em %v", time.Since(startTime))
}
