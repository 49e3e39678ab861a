package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dev-mohitbeniwal/mobility/config"
)

func TestInitConfig(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		viper.Reset()
		config.SetDefaults()

		assert.Equal(t, "8080", config.GetString("server.port"))
		assert.Equal(t, 24*time.Hour, config.GetDuration("auth.admin.tokenTTL"))
		assert.Equal(t, 12, config.GetInt("password.cost"))
		assert.Equal(t, "keySalt", config.GetString("codec.keySalt"))
		assert.False(t, config.GetBool("sms.enabled"))
	})

	t.Run("FileAndEnvironment", func(t *testing.T) {
		viper.Reset()
		dir := t.TempDir()
		path := filepath.Join(dir, "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte(`
server:
  port: "9090"
auth:
  firebase:
    projectId: demo-project
`), 0o600))
		t.Setenv("AUTH_ADMIN_JWTSECRET", "from-env")

		require.NoError(t, config.InitConfig(path))

		assert.Equal(t, "9090", config.GetString("server.port"))
		assert.Equal(t, "demo-project", config.GetString("auth.firebase.projectId"))
		assert.Equal(t, "from-env", config.GetString("auth.admin.jwtSecret"))
		assert.Equal(t, "demo-project", config.GetConfig().Auth.Firebase.ProjectID)
	})
}
