package config

import "time"

type BackendConfig interface {
	GetLoginTimeout() time.Duration
	GetHealthTimeout() time.Duration
	GetProfileTimeout() time.Duration
	GetOrdersTimeout() time.Duration
}

type Backend struct{}

var _ BackendConfig = Backend{}

func (Backend) GetLoginTimeout() time.Duration {
	return 10 * time.Second
}

func (Backend) GetHealthTimeout() time.Duration {
	return 3 * time.Second
}

func (Backend) GetProfileTimeout() time.Duration {
	return 5 * time.Second
}

func (Backend) GetOrdersTimeout() time.Duration {
	return 5 * time.Second
}
