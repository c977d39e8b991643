package csvfile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/vfg2006/opensea-sales-report/internal/config"
)

const (
	extension  = ".csv"
	dateLayout = "1-2-2006"
	timeLayout = "03-04PM"
)

// FileNameParams reúne o que é necessário para nomear o arquivo
type FileNameParams struct {
	// Filename informado pelo usuário, tem prioridade
	Filename string
	// CollectionName capturado do primeiro evento, pode ser vazio
	CollectionName string
	// Identifier é o slug ou contrato, usado quando não há nome de coleção
	Identifier string
	StartedAt  time.Time
}

// ErrInvalidFilename indica um nome de arquivo que sairia do diretório de saída
var ErrInvalidFilename = errors.New("output filename must not contain path separators")

// separators são trocados por hífen no nome derivado da coleção
var separators = strings.NewReplacer("/", "-", "\\", "-", " ", "-")

type Writer struct {
	dir string
}

func NewWriter(cfg config.Output) *Writer {
	return &Writer{dir: cfg.Dir}
}

// Write grava o relatório no diretório de saída e retorna o caminho do arquivo
func (w *Writer) Write(content string, params FileNameParams) (string, error) {
	name, err := FileName(params)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return "", fmt.Errorf("erro ao criar diretório de saída: %w", err)
	}

	path := filepath.Join(w.dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("erro ao gravar relatório: %w", err)
	}

	return path, nil
}

// FileName usa o nome informado ou deriva "<coleção>_<data>_<hora>.csv".
// O sufixo .csv é sempre garantido. Um nome informado com separador de
// diretório é recusado; no nome derivado os separadores viram hífen.
func FileName(params FileNameParams) (string, error) {
	filename := params.Filename

	if filename != "" {
		if err := ValidateFilename(filename); err != nil {
			return "", err
		}
	} else {
		base := params.CollectionName
		if base == "" {
			base = params.Identifier
		}

		local := params.StartedAt.Local()
		filename = fmt.Sprintf("%s_%s_%s%s",
			separators.Replace(strings.ToLower(base)),
			local.Format(dateLayout),
			local.Format(timeLayout),
			extension,
		)
	}

	if !strings.HasSuffix(filename, extension) {
		filename += extension
	}

	return filename, nil
}

// ValidateFilename recusa nomes que apontariam para fora do diretório de saída
func ValidateFilename(filename string) error {
	if strings.ContainsAny(filename, "/\\") || filename == "." || filename == ".." {
		return fmt.Errorf("%w: %q", ErrInvalidFilename, filename)
	}
	return nil
}
