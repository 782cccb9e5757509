package config

import "time"

type ShellConfig interface {
	GetOrderBadgeRefresh() time.Duration
}

type Shell struct{}

var _ ShellConfig = Shell{}

// GetOrderBadgeRefresh is the polling interval of the order-count badge in the sidebar.
func (Shell) GetOrderBadgeRefresh() time.Duration {
	return time.Duration(GetEnvInt("ORDER_BADGE_REFRESH_SECONDS", 30)) * time.Second
}
