package tiktok

import (
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("scrapers/tiktok")
