package config

import "errors"

// Erros de uso: a execução termina antes de qualquer requisição
var (
	ErrMissingCollection   = errors.New("this script requires either a `--slug` or `--contract` parameter to be passed")
	ErrAmbiguousCollection = errors.New("only one of `--slug` or `--contract` may be passed")
	ErrInvalidDaysBack     = errors.New("`--days-back` must not be negative")
	ErrInvalidArguments    = errors.New("invalid arguments")
)
