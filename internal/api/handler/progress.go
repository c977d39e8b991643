package handler

import (
	"net/http"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/opensea-sales-report/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ProgressProvider é satisfeito por *domain.RunState
type ProgressProvider interface {
	Snapshot(now time.Time) domain.RunSnapshot
}

// GetProgress retorna os contadores da execução em andamento
func GetProgress(provider ProgressProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(provider.Snapshot(time.Now())); err != nil {
			logrus.WithError(err).Warn("Erro ao serializar progresso")
		}
	}
}
