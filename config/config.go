package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"thermal-report/internal/domain/entity"
)

// DefaultFileName — имя файла конфигурации рядом с исполняемым файлом.
const DefaultFileName = "thermal.conf"

// Значения по умолчанию.
const (
	DefaultLogoSize     = 120
	DefaultInputPattern = "*_T.JPG"
	DefaultZonePercent  = 10.0
	DefaultExiftool     = "exiftool"
	DefaultLogLevel     = "info"
)

var (
	// ErrConfigNotFound возвращается, если файла конфигурации нет.
	ErrConfigNotFound = errors.New("config file not found")

	// ErrInvalidConfig возвращается для отсутствующего или неверного значения.
	ErrInvalidConfig = errors.New("invalid config")
)

// Config — настройки запуска. Загружается один раз и дальше не меняется.
type Config struct {
	Path string // файл, из которого прочитана конфигурация
	Dir  string // каталог файла, база для относительных путей

	DirpLibsPath string
	LogoPath     string // пусто, если логотип не задан
	LogoSize     int

	InputDir     string
	OutputDir    string
	InputPattern string
	UnitName     string

	ZoneMargins entity.ZoneMargins

	ExiftoolPath string
	ResultsDB    string // пусто — журнал в памяти

	TelegramToken  string
	TelegramChatID int64

	LogLevel string
}

// TelegramEnabled сообщает, что публикация в Telegram настроена.
func (c *Config) TelegramEnabled() bool {
	return c.TelegramToken != ""
}

// DefaultPath возвращает thermal.conf рядом с исполняемым файлом.
func DefaultPath() string {
	exe, err := os.Executable()
	if err != nil {
		return DefaultFileName
	}
	return filepath.Join(filepath.Dir(exe), DefaultFileName)
}

// Load читает файл KEY=VALUE. Переменные окружения с тем же ключом
// перекрывают значения из файла.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultPath()
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve config path: %w", err)
	}

	if _, err := os.Stat(abs); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, abs)
		}
		return nil, fmt.Errorf("stat config: %w", err)
	}

	values, err := godotenv.Read(abs)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", abs, err)
	}

	return parse(abs, values)
}

func parse(path string, values map[string]string) (*Config, error) {
	r := reader{values: values, dir: filepath.Dir(path)}

	cfg := &Config{
		Path:         path,
		Dir:          r.dir,
		DirpLibsPath: r.path("DIRP_LIBS_PATH"),
		LogoPath:     r.path("LOGO_NAME"),
		LogoSize:     r.integer("LOGO_SIZE", DefaultLogoSize),
		InputDir:     r.path("INPUT_DIR"),
		OutputDir:    r.path("OUTPUT_DIR"),
		InputPattern: r.str("INPUT_PATTERN", DefaultInputPattern),
		UnitName:     r.str("UNIT_NAME", ""),
		ZoneMargins: entity.ZoneMargins{
			Lower: r.percent("ZONE_LOWER_PERCENT"),
			Upper: r.percent("ZONE_UPPER_PERCENT"),
		},
		ExiftoolPath:  r.tool("EXIFTOOL_PATH", DefaultExiftool),
		ResultsDB:     r.path("RESULTS_DB"),
		TelegramToken: r.str("TELEGRAM_TOKEN", ""),
		LogLevel:      r.str("LOG_LEVEL", DefaultLogLevel),
	}
	if cfg.TelegramToken != "" {
		cfg.TelegramChatID = r.integer64("TELEGRAM_CHAT_ID")
	}

	if r.err != nil {
		return nil, r.err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	required := []struct{ key, value string }{
		{"DIRP_LIBS_PATH", c.DirpLibsPath},
		{"INPUT_DIR", c.InputDir},
		{"OUTPUT_DIR", c.OutputDir},
	}
	for _, r := range required {
		if r.value == "" {
			return fmt.Errorf("%w: %s is required", ErrInvalidConfig, r.key)
		}
	}
	if c.LogoSize <= 0 {
		return fmt.Errorf("%w: LOGO_SIZE must be positive, got %d", ErrInvalidConfig, c.LogoSize)
	}
	if c.TelegramToken != "" && c.TelegramChatID == 0 {
		return fmt.Errorf("%w: TELEGRAM_CHAT_ID is required when TELEGRAM_TOKEN is set", ErrInvalidConfig)
	}
	return nil
}

// reader достаёт значения с приоритетом окружения и копит первую ошибку.
type reader struct {
	values map[string]string
	dir    string
	err    error
}

func (r *reader) lookup(key string) (string, bool) {
	if v, ok := os.LookupEnv(key); ok {
		return strings.TrimSpace(v), true
	}
	v, ok := r.values[key]
	return strings.TrimSpace(v), ok
}

func (r *reader) fail(key, value string, cause error) {
	if r.err == nil {
		r.err = fmt.Errorf("%w: %s=%q: %v", ErrInvalidConfig, key, value, cause)
	}
}

func (r *reader) str(key, def string) string {
	if v, ok := r.lookup(key); ok && v != "" {
		return v
	}
	return def
}

func (r *reader) path(key string) string {
	v, _ := r.lookup(key)
	if v == "" || filepath.IsAbs(v) {
		return v
	}
	return filepath.Join(r.dir, v)
}

// tool оставляет голое имя для поиска в PATH и разрешает пути с каталогом.
func (r *reader) tool(key, def string) string {
	v := r.str(key, def)
	if !strings.ContainsRune(v, filepath.Separator) || filepath.IsAbs(v) {
		return v
	}
	return filepath.Join(r.dir, v)
}

func (r *reader) integer(key string, def int) int {
	v, ok := r.lookup(key)
	if !ok || v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		r.fail(key, v, err)
		return def
	}
	return n
}

func (r *reader) integer64(key string) int64 {
	v, _ := r.lookup(key)
	if v == "" {
		return 0
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		r.fail(key, v, err)
		return 0
	}
	return n
}

// percent читает проценты и возвращает долю (10 -> 0.1).
func (r *reader) percent(key string) float64 {
	v, ok := r.lookup(key)
	if !ok || v == "" {
		return DefaultZonePercent / 100
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		r.fail(key, v, err)
		return 0
	}
	if f < 0 {
		r.fail(key, v, errors.New("must not be negative"))
		return 0
	}
	return f / 100
}
