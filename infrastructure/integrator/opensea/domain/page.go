package openseadomain

// PageStatus indica como a requisição de uma página terminou
type PageStatus int

const (
	PageSuccess PageStatus = iota
	PageThrottled
	PageTransientFailure
)

func (s PageStatus) String() string {
	switch s {
	case PageSuccess:
		return "success"
	case PageThrottled:
		return "throttled"
	case PageTransientFailure:
		return "transient_failure"
	default:
		return "unknown"
	}
}

// PageResult é o resultado de uma chamada ao paginador.
// Events e NextCursor só têm valor em PageSuccess, RetryAfterSeconds em
// PageThrottled e Err em PageTransientFailure.
type PageResult struct {
	Status            PageStatus
	Events            []AssetEvent
	NextCursor        string
	RetryAfterSeconds int
	Err               error
}

func Success(events []AssetEvent, nextCursor string) PageResult {
	return PageResult{Status: PageSuccess, Events: events, NextCursor: nextCursor}
}

func Throttled(retryAfterSeconds int) PageResult {
	return PageResult{Status: PageThrottled, RetryAfterSeconds: retryAfterSeconds}
}

func TransientFailure(err error) PageResult {
	return PageResult{Status: PageTransientFailure, Err: err}
}
