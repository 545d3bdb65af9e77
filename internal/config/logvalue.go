package config

import "log/slog"

// LogValue implements slog.LogValuer.
func (c Config) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("env", c.Env),
		slog.String("resolved_env", string(c.Environment())),
		slog.String("tier", c.Tier().String()),
		slog.Any("allowed_origins", c.AllowedOrigins),
		slog.Any("origin_patterns", c.OriginPatterns),
		slog.String("legacy_origin", c.LegacyOrigin()),
		slog.Bool("monitoring_enabled", c.MonitoringEnabled),
		slog.String("port", c.Port),
		slog.String("log_level", c.LogLevel),
		slog.Bool("enable_hsts", c.EnableHSTS),
	)
}
