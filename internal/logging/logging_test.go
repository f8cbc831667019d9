package logging_test

import (
	"bytes"
	"encoding/json"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goliatone/go-numfmt/internal/logging"
)

func TestNewJSON(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := logging.New(
		logging.WithFormat(logging.FormatJSON),
		logging.WithOutput(&buf),
		logging.WithField("service", "numfmt"),
	)

	logger.WithField("locale", "EU").Info("formatted")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "formatted", entry["msg"])
	assert.Equal(t, "numfmt", entry["service"])
	assert.Equal(t, "EU", entry["locale"])
	assert.Equal(t, "info", entry["level"])
}

func TestNewLevelFilters(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := logging.New(logging.WithOutput(&buf), logging.WithLevel(log.WarnLevel))

	logger.Info("hidden")
	assert.Empty(t, buf.String())

	logger.Warn("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestParseFormat(t *testing.T) {
	t.Parallel()

	f, err := logging.ParseFormat("JSON")
	require.NoError(t, err)
	assert.Equal(t, logging.FormatJSON, f)

	f, err = logging.ParseFormat("")
	require.NoError(t, err)
	assert.Equal(t, logging.FormatText, f)

	_, err = logging.ParseFormat("xml")
	assert.Error(t, err)
}
