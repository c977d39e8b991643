package collecting

import (
	"context"
	"fmt"
	"time"

	"github.com/vfg2006/opensea-sales-report/infrastructure/integrator/opensea"
	openseadomain "github.com/vfg2006/opensea-sales-report/infrastructure/integrator/opensea/domain"
	"github.com/vfg2006/opensea-sales-report/internal/domain"
	"github.com/vfg2006/opensea-sales-report/internal/usecases/aggregating"
	"github.com/vfg2006/opensea-sales-report/pkg/log"
)

// MaxConsecutiveFailures é o número de falhas seguidas que aborta a execução
const MaxConsecutiveFailures = 5

// Result é o que sobra de uma coleta completa
type Result struct {
	Days           []*domain.DailySales
	CollectionName string
	HasName        bool
	Snapshot       domain.RunSnapshot
}

type Service struct {
	paginator   opensea.Paginator
	aggregator  *aggregating.Aggregator
	state       *domain.RunState
	backoff     BackoffPolicy
	sleep       SleepFunc
	now         func() time.Time
	maxFailures int

	// namePageSeen indica que a primeira página com eventos já foi processada
	namePageSeen bool
}

type Option func(*Service)

func WithBackoffPolicy(policy BackoffPolicy) Option {
	return func(s *Service) {
		s.backoff = policy
	}
}

func WithSleepFunc(sleep SleepFunc) Option {
	return func(s *Service) {
		s.sleep = sleep
	}
}

func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

func NewService(
	paginator opensea.Paginator,
	aggregator *aggregating.Aggregator,
	state *domain.RunState,
	opts ...Option,
) *Service {
	s := &Service{
		paginator:   paginator,
		aggregator:  aggregator,
		state:       state,
		backoff:     DefaultBackoffPolicy(),
		sleep:       Sleep,
		now:         time.Now,
		maxFailures: MaxConsecutiveFailures,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Run busca todas as páginas em sequência até o cursor acabar.
// Throttles e falhas transitórias repetem a mesma requisição; a quinta falha
// consecutiva encerra a coleta com *FailureError.
func (s *Service) Run(ctx context.Context) (*Result, error) {
	logger := log.ForContext(ctx).WithField("run_id", s.state.ID)

	cursor := ""
	for {
		s.state.RequestIssued()
		page := s.paginator.FetchNextPage(ctx, cursor)

		switch page.Status {
		case openseadomain.PageThrottled:
			wait := s.backoff.ThrottleWait(page.RetryAfterSeconds)
			logger.WithFields(log.Fields{
				"retry_after": page.RetryAfterSeconds,
				"wait_ms":     wait.Milliseconds(),
			}).Infof("Opensea API rate limited. Retrying in %d seconds.", page.RetryAfterSeconds)

			if err := s.sleep(ctx, wait); err != nil {
				return nil, fmt.Errorf("coleta interrompida: %w", err)
			}

		case openseadomain.PageSuccess:
			for _, skipErr := range s.aggregator.Ingest(page.Events) {
				logger.WithError(skipErr).Warn("Evento de venda ignorado")
			}

			s.state.ResetFailures()
			s.state.PageFetched()
			s.captureCollectionName(logger, page.Events)

			cursor = page.NextCursor
			if cursor == "" {
				return s.result(), nil
			}

		default:
			if abortErr := s.handleFailure(ctx, logger, page.Err); abortErr != nil {
				return nil, abortErr
			}
		}
	}
}

// captureCollectionName lê o nome apenas do primeiro evento da primeira página
// com eventos; se ele vier vazio a execução segue sem nome
func (s *Service) captureCollectionName(logger log.Logger, events []openseadomain.AssetEvent) {
	if s.namePageSeen || len(events) == 0 {
		return
	}
	s.namePageSeen = true

	if s.state.SetCollectionName(events[0].CollectionName()) {
		name, _ := s.state.CollectionName()
		logger.WithField("collection_name", name).Debug("Nome da coleção capturado")
	}
}

// handleFailure registra a falha e espera; retorna erro quando a coleta deve parar
func (s *Service) handleFailure(ctx context.Context, logger log.Logger, cause error) error {
	if cause == nil {
		cause = fmt.Errorf("falha desconhecida ao buscar página")
	}

	failures := s.state.RegisterFailure()
	if failures >= s.maxFailures {
		return &FailureError{Attempts: failures, Cause: cause}
	}

	wait := s.backoff.FailureWait(failures)
	logger.WithError(cause).WithFields(log.Fields{
		"attempt": failures,
		"wait_ms": wait.Milliseconds(),
	}).Warnf("Error fetching Opensea data x%d. Retrying in %d seconds.", failures, int(wait.Seconds()))

	if err := s.sleep(ctx, wait); err != nil {
		return fmt.Errorf("coleta interrompida: %w", err)
	}

	return nil
}

func (s *Service) result() *Result {
	name, ok := s.state.CollectionName()
	return &Result{
		Days:           s.aggregator.Days(),
		CollectionName: name,
		HasName:        ok,
		Snapshot:       s.state.Snapshot(s.now()),
	}
}
