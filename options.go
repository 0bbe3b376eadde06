package minireport

import (
	"time"

	"github.com/mnaoum/minireport/format"
)

// GenerateOptions holds configuration for report generation.
type GenerateOptions struct {
	// Destination file
	output string

	// Renderer; Unknown means derive it from the output extension
	format format.Format

	// Package stamping (DOCX only)
	modTime     time.Time
	application string
}

// defaultOptions returns the options that reproduce the stock report.
func defaultOptions() GenerateOptions {
	return GenerateOptions{
		output:      DefaultOutput,
		format:      format.Unknown,
		modTime:     time.Time{}, // zero means the fixed zip epoch
		application: "minireport",
	}
}

// clone creates a copy of GenerateOptions.
func (o GenerateOptions) clone() GenerateOptions {
	return GenerateOptions{
		output:      o.output,
		format:      o.format,
		modTime:     o.modTime,
		application: o.application,
	}
}
