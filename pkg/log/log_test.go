package log

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/axiom-labs-org/core/pkg/types"
)

func TestSetupRejectsUnknownLevel(t *testing.T) {
	err := Setup(Options{Level: "loud"})
	assert.Error(t, err)
}

func TestSetupJSONOutput(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Setup(Options{Level: "debug", JSON: true, Writer: &buf}))

	pipelineLogger := Component("pipeline")
	pipelineLogger.Info().Msg("hello")

	out := buf.String()
	assert.Contains(t, out, `"component":"pipeline"`)
	assert.Contains(t, out, "hello")
}

func TestSetupLevelFilters(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Setup(Options{Level: "warn", JSON: true, Writer: &buf}))

	pipelineLogger := Component("pipeline")
	pipelineLogger.Info().Msg("quiet")
	pipelineLogger.Warn().Msg("loud")

	out := buf.String()
	assert.NotContains(t, out, "quiet")
	assert.Contains(t, out, "loud")
}

func TestForBlockTags(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Setup(Options{Level: "debug", JSON: true, Writer: &buf}))

	blockLogger := ForBlock(Component("chain"), types.Hash{0xab}, types.Slot(4))
	blockLogger.Info().Msg("executed")

	out := buf.String()
	assert.Contains(t, out, `"slot":4`)
	assert.Contains(t, out, "ab000000")
}
