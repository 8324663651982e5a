package middleware

import (
	"multi-agent-code-assistant/config"
	"multi-agent-code-assistant/pkg/log"
)

type Middleware struct {
	l      log.Logger
	config *config.Config
}

func New(l log.Logger, cfg *config.Config) Middleware {
	return Middleware{
		l:      l,
		config: cfg,
	}
}
