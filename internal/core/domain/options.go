package domain

import "runtime"

// Options holds the tool options assembled from flags, environment and golock.yaml.
type Options struct {
	Root    string `mapstructure:"root"`
	LogJSON bool   `mapstructure:"log_json"`
	Workers int    `mapstructure:"workers"`
	NoState bool   `mapstructure:"no_state"`
}

// DefaultWorkers is the classification parallelism used when none is configured.
func DefaultWorkers() int {
	return runtime.NumCPU()
}
