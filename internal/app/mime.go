package app

import (
	"log/slog"
	"mime"
)

// Stylesheets are served as text/css even where the host has no mime table.
func init() {
	if mime.TypeByExtension(".css") != "" {
		return
	}
	if err := mime.AddExtensionType(".css", "text/css; charset=utf-8"); err != nil {
		slog.Default().Warn("register mime type", slog.String("ext", ".css"), slog.Any("error", err))
	}
}
