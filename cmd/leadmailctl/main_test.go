package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommandTree(t *testing.T) {
	names := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}

	assert.True(t, names["migrate"])
	assert.True(t, names["warmup"])
	assert.True(t, names["smtp"])

	cmd, _, err := rootCmd.Find([]string{"warmup", "ramp"})
	require.NoError(t, err)
	assert.Equal(t, "ramp", cmd.Name())
}

func TestMigrateRequiresDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs([]string{"migrate"})
	defer rootCmd.SetArgs(nil)

	err := rootCmd.ExecuteContext(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "database url not set")
}

func TestSmtpVerifyRequiresFlags(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs([]string{"smtp", "verify", "--port", "587"})
	defer rootCmd.SetArgs(nil)

	err := rootCmd.ExecuteContext(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), `required flag(s) "from", "host" not set`)
}
