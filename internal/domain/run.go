package domain

import (
	"sync/atomic"
	"time"
)

// RunState guarda os contadores de uma execução.
//
// Apenas o loop de coleta escreve nos contadores; o relatório de progresso e o
// servidor de status somente leem, por isso todos os campos são atômicos.
type RunState struct {
	ID         string
	Collection string
	StartTime  time.Time

	transactionsProcessed atomic.Int64
	requestsIssued        atomic.Int64
	pagesFetched          atomic.Int64
	consecutiveFailures   atomic.Int64
	recordsSkipped        atomic.Int64
	collectionName        atomic.Pointer[string]
}

// RunSnapshot é uma cópia imutável do estado em um instante
type RunSnapshot struct {
	RunID                 string        `json:"run_id"`
	Collection            string        `json:"collection"`
	Elapsed               time.Duration `json:"-"`
	ElapsedMs             int64         `json:"elapsed_ms"`
	TransactionsProcessed int64         `json:"transactions_processed"`
	RequestsIssued        int64         `json:"requests_issued"`
	PagesFetched          int64         `json:"pages_fetched"`
	ConsecutiveFailures   int64         `json:"consecutive_failures"`
	RecordsSkipped        int64         `json:"records_skipped"`
	CollectionName        string        `json:"collection_name,omitempty"`
}

func NewRunState(id, collection string, startTime time.Time) *RunState {
	return &RunState{
		ID:         id,
		Collection: collection,
		StartTime:  startTime,
	}
}

func (s *RunState) AddTransactions(n int) {
	s.transactionsProcessed.Add(int64(n))
}

func (s *RunState) TransactionsProcessed() int64 {
	return s.transactionsProcessed.Load()
}

// SkipRecords conta eventos descartados por não poderem ser convertidos
func (s *RunState) SkipRecords(n int) {
	s.recordsSkipped.Add(int64(n))
}

func (s *RunState) RecordsSkipped() int64 {
	return s.recordsSkipped.Load()
}

func (s *RunState) RequestIssued() {
	s.requestsIssued.Add(1)
}

func (s *RunState) RequestsIssued() int64 {
	return s.requestsIssued.Load()
}

func (s *RunState) PageFetched() {
	s.pagesFetched.Add(1)
}

func (s *RunState) PagesFetched() int64 {
	return s.pagesFetched.Load()
}

// RegisterFailure incrementa e retorna o número de falhas consecutivas
func (s *RunState) RegisterFailure() int {
	return int(s.consecutiveFailures.Add(1))
}

func (s *RunState) ResetFailures() {
	s.consecutiveFailures.Store(0)
}

func (s *RunState) ConsecutiveFailures() int {
	return int(s.consecutiveFailures.Load())
}

// SetCollectionName grava o nome apenas na primeira chamada com valor não vazio
func (s *RunState) SetCollectionName(name string) bool {
	if name == "" {
		return false
	}
	return s.collectionName.CompareAndSwap(nil, &name)
}

// CollectionName retorna o nome de exibição capturado e se ele existe
func (s *RunState) CollectionName() (string, bool) {
	name := s.collectionName.Load()
	if name == nil {
		return "", false
	}
	return *name, true
}

func (s *RunState) Snapshot(now time.Time) RunSnapshot {
	elapsed := now.Sub(s.StartTime)
	name, _ := s.CollectionName()

	return RunSnapshot{
		RunID:                 s.ID,
		Collection:            s.Collection,
		Elapsed:               elapsed,
		ElapsedMs:             elapsed.Milliseconds(),
		TransactionsProcessed: s.TransactionsProcessed(),
		RequestsIssued:        s.RequestsIssued(),
		PagesFetched:          s.PagesFetched(),
		ConsecutiveFailures:   int64(s.ConsecutiveFailures()),
		RecordsSkipped:        s.RecordsSkipped(),
		CollectionName:        name,
	}
}
