package openseadomain

import (
	"regexp"
	"strconv"
)

// DefaultRetryAfterSeconds é usado quando a OpenSea não informa quando tentar de novo
const DefaultRetryAfterSeconds = 10

var throttledRegex = regexp.MustCompile(`Request was throttled\.( Expected available in ([0-9]*) second)?`)

// ParseThrottle verifica se o detail de uma resposta indica rate limit.
// Retorna os segundos de espera sugeridos (ou o padrão) e se houve throttle.
func ParseThrottle(detail string) (int, bool) {
	match := throttledRegex.FindStringSubmatch(detail)
	if match == nil {
		return 0, false
	}

	seconds, err := strconv.Atoi(match[2])
	if err != nil || seconds <= 0 {
		return DefaultRetryAfterSeconds, true
	}

	return seconds, true
}
