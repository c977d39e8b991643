package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type Config struct {
	App        App        `mapstructure:",squash"`
	Server     Server     `mapstructure:",squash"`
	Database   Database   `mapstructure:",squash"`
	OpenSea    OpenSea    `mapstructure:",squash"`
	Collection Collection `mapstructure:",squash"`
	Output     Output     `mapstructure:",squash"`
	Progress   Progress   `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

// Server configura o servidor de status opcional
type Server struct {
	Enabled        bool     `mapstructure:"status_server_enabled"`
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"status_allowed_origins"`
}

type Database struct {
	Enabled  bool   `mapstructure:"database_enabled"`
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type OpenSea struct {
	URL     string        `mapstructure:"opensea_url"`
	APIKey  string        `mapstructure:"opensea_api_key"`
	Timeout time.Duration `mapstructure:"opensea_timeout"`
}

// Collection são os parâmetros da execução informados pelo usuário
type Collection struct {
	Slug     string `mapstructure:"slug"`
	Contract string `mapstructure:"contract"`
	// DaysBack é nil quando o período não foi informado (todo o histórico)
	DaysBack *int `mapstructure:"-"`
}

type Output struct {
	Dir      string `mapstructure:"output_dir"`
	Filename string `mapstructure:"output_filename"`
}

type Progress struct {
	Enabled  bool          `mapstructure:"progress_enabled"`
	Interval time.Duration `mapstructure:"progress_interval"`
}

func SetDefaults(v *viper.Viper) {
	v.SetDefault("LOG_LEVEL", "info")

	v.SetDefault("STATUS_SERVER_ENABLED", false)
	v.SetDefault("HOST", "localhost")
	v.SetDefault("PORT", "8000")
	v.SetDefault("STATUS_ALLOWED_ORIGINS", "http://localhost:3000")

	v.SetDefault("DATABASE_ENABLED", false)
	v.SetDefault("DATABASE_DRIVER", "postgres")
	v.SetDefault("DATABASE_URL", "localhost:5432/sales_report?sslmode=disable")
	v.SetDefault("DATABASE_USER", "postgres")
	v.SetDefault("DATABASE_PASSWORD", "root")

	v.SetDefault("OPENSEA_URL", "https://api.opensea.io/api/v1")
	v.SetDefault("OPENSEA_API_KEY", "")
	v.SetDefault("OPENSEA_TIMEOUT", "30s")

	v.SetDefault("SLUG", "")
	v.SetDefault("CONTRACT", "")

	v.SetDefault("OUTPUT_DIR", "output")
	v.SetDefault("OUTPUT_FILENAME", "")

	v.SetDefault("PROGRESS_ENABLED", true)
	v.SetDefault("PROGRESS_INTERVAL", "500ms") // meio segundo, igual ao spinner do terminal
}

// NewFlagSet declara as flags de linha de comando aceitas
func NewFlagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet("salesreport", pflag.ContinueOnError)
	fs.String("slug", "", "slug da coleção na OpenSea")
	fs.String("contract", "", "endereço do contrato da coleção")
	fs.String("output-filename", "", "nome do arquivo CSV gerado")
	fs.Int("days-back", 0, "quantidade de dias de histórico (padrão: todo o histórico)")
	return fs
}

// NewConfig lê .env, variáveis de ambiente e flags (nesta ordem de precedência crescente)
func NewConfig(args []string) (*Config, error) {
	loadEnvFile() // ONLY LOCAL

	v := viper.New()
	SetDefaults(v)

	fs := NewFlagSet()
	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidArguments, err)
	}

	flagKeys := map[string]string{
		"slug":            "slug",
		"contract":        "contract",
		"output-filename": "output_filename",
		"days-back":       "days_back",
	}
	for flagName, key := range flagKeys {
		if err := v.BindPFlag(key, fs.Lookup(flagName)); err != nil {
			return nil, err
		}
	}

	v.SetConfigType("env")
	v.SetConfigFile(".env")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		logrus.Debug("Usando variáveis de ambiente (viper não conseguiu ler .env): ", err)
	} else {
		logrus.Debug("Arquivo .env lido pelo Viper com sucesso")
	}

	config := &Config{}
	err := v.Unmarshal(config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	// days_back só vale quando foi informado, zero é um valor legítimo
	if v.IsSet("days_back") {
		daysBack := v.GetInt("days_back")
		config.Collection.DaysBack = &daysBack
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// Validate garante que a execução tem uma coleção para consultar
func (c *Config) Validate() error {
	if c.Collection.Slug == "" && c.Collection.Contract == "" {
		return ErrMissingCollection
	}

	if c.Collection.Slug != "" && c.Collection.Contract != "" {
		return ErrAmbiguousCollection
	}

	if c.Collection.DaysBack != nil && *c.Collection.DaysBack < 0 {
		return ErrInvalidDaysBack
	}

	return nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Debug("Arquivo .env carregado de: ", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado, usando apenas o ambiente")
}
