// Package scheduler contém os jobs periódicos que rodam junto da coleta
package scheduler

import (
	"fmt"
	"io"
	"math"
	"strings"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/opensea-sales-report/internal/config"
	"github.com/vfg2006/opensea-sales-report/internal/domain"
)

var spinnerFrames = []rune("▏▎▍▋▊▉")

// padding apaga o resto de uma linha anterior mais longa
var padding = strings.Repeat(" ", 40)

// ProgressReporter escreve periodicamente uma linha de progresso.
// Apenas lê os contadores do RunState.
type ProgressReporter struct {
	scheduler *gocron.Scheduler
	config    config.Progress
	state     *domain.RunState
	out       io.Writer
	now       func() time.Time
	ticks     int
	stopOnce  sync.Once
	mu        sync.Mutex
}

func NewProgressReporter(cfg config.Progress, state *domain.RunState, out io.Writer) *ProgressReporter {
	return &ProgressReporter{
		scheduler: gocron.NewScheduler(time.Local),
		config:    cfg,
		state:     state,
		out:       out,
		now:       time.Now,
	}
}

func (r *ProgressReporter) Start() error {
	if !r.config.Enabled {
		logrus.Debug("Relatório de progresso desabilitado por configuração")
		return nil
	}

	_, err := r.scheduler.Every(r.config.Interval).Do(r.Report)
	if err != nil {
		return fmt.Errorf("erro ao agendar relatório de progresso: %w", err)
	}

	r.scheduler.SingletonModeAll()
	r.scheduler.StartAsync()

	return nil
}

// Stop encerra o agendador; pode ser chamado mais de uma vez
func (r *ProgressReporter) Stop() {
	r.stopOnce.Do(func() {
		if r.scheduler.IsRunning() {
			r.scheduler.Stop()
		}
	})
}

// Report escreve uma linha com o estado atual
func (r *ProgressReporter) Report() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.ticks++
	line := FormatProgress(r.state.Snapshot(r.now()), r.ticks)

	if _, err := io.WriteString(r.out, line); err != nil {
		logrus.WithError(err).Debug("Erro ao escrever linha de progresso")
	}
}

// FormatProgress monta a linha: "<spinner> MM:SS - N tx processed (~X/min) in M requests (~Y/min)"
func FormatProgress(snapshot domain.RunSnapshot, tick int) string {
	frame := spinnerFrames[tick%len(spinnerFrames)]

	totalSeconds := int(snapshot.Elapsed.Seconds())
	minutes := (totalSeconds % 3600) / 60
	seconds := totalSeconds % 60

	fullMinutes := snapshot.Elapsed.Minutes()

	return fmt.Sprintf(
		"%c %02d:%02d - %d tx processed (~%d/min) in %d requests (~%d/min)%s\r",
		frame,
		minutes,
		seconds,
		snapshot.TransactionsProcessed,
		perMinute(snapshot.TransactionsProcessed, fullMinutes),
		snapshot.RequestsIssued,
		perMinute(snapshot.RequestsIssued, fullMinutes),
		padding,
	)
}

func perMinute(count int64, minutes float64) int64 {
	if minutes <= 0 {
		return 0
	}
	return int64(math.Round(float64(count) / minutes))
}
