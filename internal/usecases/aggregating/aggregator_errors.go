package aggregating

import "errors"

var (
	ErrMissingPaymentToken = errors.New("evento sem payment_token")
	ErrMissingTimestamp    = errors.New("evento sem event_timestamp")
	ErrInvalidAmount       = errors.New("valor numérico inválido")
)
