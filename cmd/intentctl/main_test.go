package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) string {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	require.NoError(t, cmd.ExecuteContext(context.Background()))
	return out.String()
}

func TestClassifyCmd(t *testing.T) {
	out := run(t, "--embedder", "lexical", "classify", "What is my deductible", "what about that")

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.GreaterOrEqual(t, len(lines), 2)
	assert.True(t, strings.HasPrefix(lines[0], "What is my deductible\tdeductible\tDeductibleAgent\t1.000"), lines[0])
	assert.Contains(t, out, "context: preventiveCare (0.333) -> deductible")
}

func TestCandidatesCmd(t *testing.T) {
	out := run(t, "--embedder", "lexical", "candidates", "-k", "2", "I need to refill my prescription")

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "pharmacy")
}

func TestMultiCmd(t *testing.T) {
	out := run(t, "--embedder", "lexical", "multi", "Check my claim CLM-12345 and also tell me my deductible")

	assert.Contains(t, out, `"Check my claim CLM-12345"`)
	assert.Contains(t, out, "order: claims, deductible")
}

func TestSlotsCmd(t *testing.T) {
	out := run(t, "slots", "--intent", "claims", "claim number 1234567890")

	assert.Contains(t, out, "claim_number=1234567890")
	assert.Contains(t, out, "missing provider_name")
}

func TestIntentsCmd(t *testing.T) {
	out := run(t, "intents")

	assert.Contains(t, out, "PharmacyAgent")
	assert.Contains(t, out, "INT-DED-0015")
}

func TestUnknownEmbedder(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--embedder", "bert", "intents"})
	assert.Error(t, cmd.Execute())
}
