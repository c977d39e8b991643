package utils

import "strings"

// DateFromTimestamp retorna a parte de data (antes do "T") de um timestamp ISO-8601,
// sem conversão de fuso horário
func DateFromTimestamp(timestamp string) string {
	date, _, _ := strings.Cut(timestamp, "T")
	return date
}
