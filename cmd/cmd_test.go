package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dev-mohitbeniwal/mobility/secret"
)

func run(t *testing.T, args ...string) string {
	t.Helper()
	viper.Reset()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(args)
	require.NoError(t, rootCmd.Execute())
	return strings.TrimSpace(out.String())
}

func TestQRCommands(t *testing.T) {
	t.Setenv("CODEC_SECRET", "cli-secret")

	token := run(t, "qr", "encode", "V-0001")
	assert.NotEmpty(t, token)
	assert.Equal(t, "V-0001", run(t, "qr", "decode", token))
}

func TestHashPassword(t *testing.T) {
	t.Setenv("PASSWORD_PEPPER", "pepper")
	t.Setenv("PASSWORD_COST", "4")

	hash := run(t, "hash-password", "correct horse")
	assert.True(t, strings.HasPrefix(hash, "$2a$04$"), hash)
}

func TestHashPasswordTooLong(t *testing.T) {
	t.Setenv("PASSWORD_PEPPER", "pepper-surisurimasuri")
	t.Setenv("PASSWORD_COST", "4")
	viper.Reset()

	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs([]string{"hash-password", strings.Repeat("x", 52)})
	err := rootCmd.Execute()
	assert.ErrorIs(t, err, secret.ErrPasswordTooLong)
}
