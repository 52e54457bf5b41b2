// Package config loads degrees.yaml, .env and environment overrides.
package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"go.trai.ch/degrees/internal/core/domain"
	"go.trai.ch/degrees/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultFile is read when no config path is given.
	DefaultFile = "degrees.yaml"
	// DefaultEnvFile is loaded into the environment before overrides are applied.
	DefaultEnvFile = ".env"
)

// Environment variables that override file values.
const (
	EnvSecretKey   = "DEGREES_SECRET_KEY"
	EnvRelays      = "DEGREES_RELAYS"
	EnvMaxDepth    = "DEGREES_MAX_DEPTH"
	EnvMetricsAddr = "DEGREES_METRICS_ADDR"
	EnvLedgerDir   = "DEGREES_LEDGER_DIR"
)

// Loader implements ports.ConfigLoader.
type Loader struct {
	Logger   ports.Logger
	EnvFile  string
	validate *validator.Validate
}

// NewLoader creates a Loader reading DefaultEnvFile.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{
		Logger:   logger,
		EnvFile:  DefaultEnvFile,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Load reads the config file at path, or DefaultFile when path is empty.
// A missing DefaultFile yields the defaults; a missing explicit path is an error.
func (l *Loader) Load(path string) (domain.Config, error) {
	if err := l.loadEnvFile(); err != nil {
		return domain.Config{}, err
	}

	explicit := path != ""
	if !explicit {
		path = DefaultFile
	}

	file := fromDomain(domain.DefaultConfig())

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist) && explicit:
		return domain.Config{}, zerr.With(domain.ErrConfigNotFound, "path", path)
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return domain.Config{}, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
	default:
		if err := yaml.Unmarshal(data, &file); err != nil {
			return domain.Config{}, zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", path)
		}
	}

	if err := applyEnv(&file); err != nil {
		return domain.Config{}, err
	}

	if err := l.validate.Struct(&file); err != nil {
		return domain.Config{}, errors.Join(domain.ErrConfigInvalid, describe(err))
	}

	return file.toDomain(strings.TrimSpace(os.Getenv(EnvSecretKey))), nil
}

func (l *Loader) loadEnvFile() error {
	if l.EnvFile == "" {
		return nil
	}
	if _, err := os.Stat(l.EnvFile); errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err := godotenv.Load(l.EnvFile); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrEnvLoadFailed.Error()), "path", l.EnvFile)
	}
	return nil
}

func applyEnv(f *File) error {
	if v := os.Getenv(EnvRelays); v != "" {
		var urls []string
		for _, u := range strings.Split(v, ",") {
			if u = strings.TrimSpace(u); u != "" {
				urls = append(urls, u)
			}
		}
		f.Relays.URLs = urls
	}
	if v := os.Getenv(EnvMaxDepth); v != "" {
		depth, err := strconv.Atoi(v)
		if err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrConfigInvalid.Error()), "env", EnvMaxDepth)
		}
		f.Search.MaxDepth = depth
	}
	if v := os.Getenv(EnvMetricsAddr); v != "" {
		f.Metrics.Addr = v
	}
	if v := os.Getenv(EnvLedgerDir); v != "" {
		f.Listen.LedgerDir = v
	}
	return nil
}

// describe turns validator errors into one line per offending field.
func describe(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	lines := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		line := fe.Namespace() + " failed " + fe.Tag()
		if fe.Param() != "" {
			line += "=" + fe.Param()
		}
		lines = append(lines, line)
	}
	return errors.New(strings.Join(lines, "\n"))
}
