package logger_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/microempresas-api/pkg/logger"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, logger.ParseLevel("debug"))
	assert.Equal(t, zerolog.ErrorLevel, logger.ParseLevel("error"))
	assert.Equal(t, zerolog.InfoLevel, logger.ParseLevel("desconocido"))
}

func TestLogger_ComponentAgregaCampos(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Config{Env: "production", Level: "info", Service: "microempresas-api", Out: &buf})

	log.Component("http").Info().Msg("hola")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "microempresas-api", line["service"])
	assert.Equal(t, "http", line["component"])
	assert.Equal(t, "hola", line["message"])
}

func TestLogger_NivelFiltraDebug(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Config{Env: "production", Level: "warn", Out: &buf})

	log.Info().Msg("no debe salir")
	assert.Empty(t, buf.String())
}
