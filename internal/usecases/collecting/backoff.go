package collecting

import (
	"context"
	"time"

	openseadomain "github.com/vfg2006/opensea-sales-report/infrastructure/integrator/opensea/domain"
)

// BackoffPolicy define as esperas antes de repetir a mesma requisição
type BackoffPolicy struct {
	// ThrottleUnit é multiplicado pelos segundos sugeridos pela API.
	// 1010ms por segundo passa um pouco da janela anunciada.
	ThrottleUnit time.Duration
	// FailureUnit é multiplicado pelo número de falhas consecutivas
	FailureUnit time.Duration
}

func DefaultBackoffPolicy() BackoffPolicy {
	return BackoffPolicy{
		ThrottleUnit: 1010 * time.Millisecond,
		FailureUnit:  time.Second,
	}
}

func (p BackoffPolicy) ThrottleWait(retryAfterSeconds int) time.Duration {
	if retryAfterSeconds <= 0 {
		retryAfterSeconds = openseadomain.DefaultRetryAfterSeconds
	}
	return time.Duration(retryAfterSeconds) * p.ThrottleUnit
}

func (p BackoffPolicy) FailureWait(consecutiveFailures int) time.Duration {
	return time.Duration(consecutiveFailures) * p.FailureUnit
}

// SleepFunc suspende a execução; retorna erro se o contexto for cancelado antes
type SleepFunc func(ctx context.Context, d time.Duration) error

func Sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
