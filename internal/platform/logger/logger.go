package logger

import "go.uber.org/zap"

// New returns a JSON production logger, or a console development logger when
// env is "dev".
func New(env string) (*zap.Logger, error) {
	if env == "dev" {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.DisableStacktrace = true
	return cfg.Build()
}
