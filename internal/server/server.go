// Package server exposes the parser over HTTP.
package server

import (
	"bytes"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/ngrash/go-rfc3339/internal/ingest"
	"github.com/ngrash/go-rfc3339/rfc3339"
)

// Config configures the server.
type Config struct {
	// Logging enables request logging.
	Logging bool
}

// New returns an app with the parse and scan routes registered.
func New(cfg Config) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName: "rfc3339",
	})

	if cfg.Logging {
		app.Use(logger.New())
	}

	app.Get("/parse", ParseHandler())
	app.Post("/scan", ScanHandler())

	return app
}

type errorResponse struct {
	Error    string `json:"error"`
	Category string `json:"category,omitempty"`
	Column   int    `json:"column,omitempty"`
}

type parseResponse struct {
	Input  string        `json:"input"`
	Record ingest.Record `json:"record"`
}

// ParseHandler parses the ts query parameter.
func ParseHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		ts := strings.Clone(c.Query("ts"))
		if ts == "" {
			return c.Status(fiber.StatusBadRequest).JSON(errorResponse{Error: "missing ts query parameter"})
		}

		dt, err := rfc3339.Parse(ts)
		if err != nil {
			resp := errorResponse{Error: err.Error(), Category: ingest.Category(err)}
			var perr *rfc3339.ParseError
			if errors.As(err, &perr) {
				resp.Column = perr.Column
			}
			return c.Status(fiber.StatusBadRequest).JSON(resp)
		}

		return c.JSON(parseResponse{Input: ts, Record: ingest.Describe(dt)})
	}
}

type scanResponse struct {
	Stats  ingest.Stats `json:"stats"`
	Report string       `json:"report"`
}

// ScanHandler scans the request body line by line.
func ScanHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var report bytes.Buffer
		stats, err := ingest.Scan(bytes.NewReader(c.Body()), &report)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(errorResponse{Error: err.Error()})
		}
		return c.JSON(scanResponse{Stats: stats, Report: report.String()})
	}
}
