package config

import "github.com/rs/zerolog"

const redacted = "***"

// MarshalZerologObject logs the configuration with the database password
// redacted.
func (c *StructuredConfig) MarshalZerologObject(e *zerolog.Event) {
	e.Object("app", c.App).
		Object("storage", c.Storage.DB).
		Object("server", c.Server).
		Object("cors", c.CORS).
		Str("json_file_path", c.JSONFilePath)
}

func (a App) MarshalZerologObject(e *zerolog.Event) {
	e.Bool("debug", bool(a.Debug))
}

// MarshalZerologObject never writes the password value, only whether one
// is set.
func (d DB) MarshalZerologObject(e *zerolog.Event) {
	password := ""
	if d.Password != "" {
		password = redacted
	}
	e.Str("host", d.Host).
		Str("port", d.Port).
		Str("user", d.User).
		Str("password", password).
		Str("name", d.Name)
}

func (s Server) MarshalZerologObject(e *zerolog.Event) {
	e.Str("http_address", s.HTTPAddress).
		Dur("request_timeout", s.RequestTimeout).
		Dur("shutdown_timeout", s.ShutdownTimeout)
}

func (c CORS) MarshalZerologObject(e *zerolog.Event) {
	e.Str("allowed_origin", c.AllowedOrigin)
}
