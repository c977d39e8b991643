package scheduler

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/opensea-sales-report/internal/config"
	"github.com/vfg2006/opensea-sales-report/internal/domain"
)

func TestFormatProgress(t *testing.T) {
	tests := []struct {
		name     string
		snapshot domain.RunSnapshot
		tick     int
		want     string
	}{
		{
			name: "Dois minutos - taxa por minuto arredondada",
			snapshot: domain.RunSnapshot{
				Elapsed:               2*time.Minute + 5*time.Second,
				TransactionsProcessed: 1000,
				RequestsIssued:        21,
			},
			tick: 1,
			want: "▎ 02:05 - 1000 tx processed (~480/min) in 21 requests (~10/min)",
		},
		{
			name: "Início da execução - sem divisão por zero",
			snapshot: domain.RunSnapshot{
				Elapsed:               0,
				TransactionsProcessed: 0,
				RequestsIssued:        1,
			},
			tick: 0,
			want: "▏ 00:00 - 0 tx processed (~0/min) in 1 requests (~0/min)",
		},
		{
			name: "Spinner volta ao primeiro quadro",
			snapshot: domain.RunSnapshot{
				Elapsed:               30 * time.Second,
				TransactionsProcessed: 50,
				RequestsIssued:        2,
			},
			tick: 6,
			want: "▏ 00:30 - 50 tx processed (~100/min) in 2 requests (~4/min)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			line := FormatProgress(tt.snapshot, tt.tick)

			assert.True(t, strings.HasPrefix(line, tt.want), line)
			assert.True(t, strings.HasSuffix(line, "\r"))
			assert.Equal(t, tt.want+padding+"\r", line)
		})
	}
}

func TestProgressReporter_Report(t *testing.T) {
	start := time.Date(2022, 1, 2, 10, 0, 0, 0, time.UTC)
	state := domain.NewRunState("run-1", "cool-cats", start)
	state.AddTransactions(20)
	state.RequestIssued()

	var out bytes.Buffer
	reporter := NewProgressReporter(config.Progress{Enabled: true, Interval: time.Second}, state, &out)
	reporter.now = func() time.Time { return start.Add(time.Minute) }

	reporter.Report()
	reporter.Report()

	lines := strings.Split(strings.TrimSuffix(out.String(), "\r"), "\r")
	assert.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "▎ 01:00 - 20 tx processed (~20/min) in 1 requests (~1/min)"))
	assert.True(t, strings.HasPrefix(lines[1], "▍ 01:00"))
}

func TestProgressReporter_Disabled(t *testing.T) {
	state := domain.NewRunState("run-1", "cool-cats", time.Now())

	var out bytes.Buffer
	reporter := NewProgressReporter(config.Progress{Enabled: false, Interval: time.Millisecond}, state, &out)

	assert.NoError(t, reporter.Start())
	time.Sleep(20 * time.Millisecond)
	reporter.Stop()
	reporter.Stop()

	assert.Empty(t, out.String())
}
