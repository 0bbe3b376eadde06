// Package minireport generates the Mini-Project 5.3 anomaly detection
// report as a Word document.
//
// Basic usage:
//
//	path, err := minireport.New().Generate(ctx)
//	if err != nil {
//	    // handle error
//	}
//	fmt.Println("✅ Created:", path)
//
// With options:
//
//	path, err := minireport.New().
//	    Output("out/report.html").
//	    Logger(logger).
//	    Generate(ctx)
//
// The docx, htmldoc and model packages can be used directly to render
// other documents.
package minireport

import (
	"go.uber.org/zap"
)

// New returns a Generator that writes the stock report to DefaultOutput.
//
// Example:
//
//	path, err := minireport.New().Generate(ctx)
func New() *Generator {
	return &Generator{
		options: defaultOptions(),
		logger:  zap.NewNop(),
	}
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	path := minireport.Must(minireport.New().Generate(ctx))
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
