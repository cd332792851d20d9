//go:build !integration

package logger

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestInit(t *testing.T) {
	tests := []struct {
		name   string
		level  string
		pretty bool
		want   zerolog.Level
	}{
		{
			name:  "debug level",
			level: "debug",
			want:  zerolog.DebugLevel,
		},
		{
			name:  "info level",
			level: "info",
			want:  zerolog.InfoLevel,
		},
		{
			name:  "warn level",
			level: "warn",
			want:  zerolog.WarnLevel,
		},
		{
			name:  "error level",
			level: "error",
			want:  zerolog.ErrorLevel,
		},
		{
			name:  "invalid level defaults to info",
			level: "invalid",
			want:  zerolog.InfoLevel,
		},
		{
			name:   "pretty output",
			level:  "info",
			pretty: true,
			want:   zerolog.InfoLevel,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Init(tt.level, tt.pretty)
			assert.Equal(t, tt.want, zerolog.GlobalLevel())
			assert.NotNil(t, Logger())
		})
	}
}

func TestWithFields(t *testing.T) {
	Init("info", false)

	tests := []struct {
		name   string
		fields map[string]interface{}
	}{
		{
			name:   "empty fields",
			fields: map[string]interface{}{},
		},
		{
			name: "single field",
			fields: map[string]interface{}{
				"template_id": "hawaii-beach-vacation",
			},
		},
		{
			name: "multiple fields",
			fields: map[string]interface{}{
				"trip_id":  "abc",
				"items":    13,
				"imported": true,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := WithFields(tt.fields)
			assert.NotNil(t, logger)
		})
	}
}
