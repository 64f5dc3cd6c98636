// Package config assembles golock's tool options from flags, environment and golock.yaml.
package config

import (
	"errors"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.trai.ch/golock/internal/core/domain"
	"go.trai.ch/zerr"
)

// EnvPrefix is prepended to option names to form environment variables, e.g. GOLOCK_WORKERS.
const EnvPrefix = "GOLOCK"

// Option keys and the flags bound to them.
const (
	KeyRoot    = "root"
	KeyLogJSON = "log_json"
	KeyWorkers = "workers"
	KeyNoState = "no_state"

	FlagRoot    = "root"
	FlagLogJSON = "log-json"
	FlagWorkers = "workers"
	FlagNoState = "no-state"
)

// Loader reads options with precedence flag > env > golock.yaml > default.
type Loader struct{}

// NewLoader creates a new Loader.
func NewLoader() *Loader {
	return &Loader{}
}

// RegisterFlags adds the option flags to flags.
func RegisterFlags(flags *pflag.FlagSet) {
	flags.String(FlagRoot, "", "project root (default is the working directory)")
	flags.Bool(FlagLogJSON, false, "write logs as JSON")
	flags.Int(FlagWorkers, domain.DefaultWorkers(), "number of files classified in parallel")
	flags.Bool(FlagNoState, false, "do not record lock state under .golock")
}

// Load resolves options. golock.yaml is looked up in dir; a missing file is not an error.
func (l *Loader) Load(flags *pflag.FlagSet, dir string) (domain.Options, error) {
	v := viper.New()
	v.SetDefault(KeyRoot, "")
	v.SetDefault(KeyLogJSON, false)
	v.SetDefault(KeyWorkers, domain.DefaultWorkers())
	v.SetDefault(KeyNoState, false)

	v.SetConfigFile(filepath.Join(dir, domain.ConfigFileName))
	if err := v.ReadInConfig(); err != nil && !isNotFound(err) {
		return domain.Options{}, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "dir", dir)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for key, flag := range map[string]string{
			KeyRoot:    FlagRoot,
			KeyLogJSON: FlagLogJSON,
			KeyWorkers: FlagWorkers,
			KeyNoState: FlagNoState,
		} {
			if f := flags.Lookup(flag); f != nil {
				_ = v.BindPFlag(key, f)
			}
		}
	}

	var opts domain.Options
	if err := v.Unmarshal(&opts); err != nil {
		return domain.Options{}, zerr.Wrap(err, domain.ErrInvalidOptions.Error())
	}

	if opts.Workers < 1 {
		return domain.Options{}, zerr.With(domain.ErrInvalidOptions, "workers", opts.Workers)
	}
	return opts, nil
}

func isNotFound(err error) bool {
	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) {
		return true
	}
	return errors.Is(err, fs.ErrNotExist)
}
