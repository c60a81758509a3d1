package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/dexboard/internal/errors"
)

type ConfigTestSuite struct {
	suite.Suite
	dir string
}

func TestConfigSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}

func (s *ConfigTestSuite) SetupTest() {
	s.dir = s.T().TempDir()
}

func (s *ConfigTestSuite) write(body string) string {
	path := filepath.Join(s.dir, "dexboard.yaml")
	s.Require().NoError(os.WriteFile(path, []byte(body), 0o600))
	return path
}

func (s *ConfigTestSuite) TestDefaultsAreValid() {
	s.Assert().NoError(Default().Validate())
}

func (s *ConfigTestSuite) TestLoadMissingFileUsesDefaults() {
	cfg, err := Load(filepath.Join(s.dir, "absent.yaml"))
	s.Require().NoError(err)

	s.Assert().Equal(250, cfg.API.MaxID)
	s.Assert().Equal(FormatCSV, cfg.Data.Format)
}

func (s *ConfigTestSuite) TestLoadFileOverridesDefaults() {
	path := s.write(`
data:
  path: /tmp/snapshot.db
  format: sqlite
api:
  concurrency: 8
  http_timeout: 5s
log:
  format: json
`)

	cfg, err := Load(path)
	s.Require().NoError(err)

	s.Assert().Equal("/tmp/snapshot.db", cfg.Data.Path)
	s.Assert().Equal(FormatSQLite, cfg.Data.Format)
	s.Assert().Equal(8, cfg.API.Concurrency)
	s.Assert().Equal(5*time.Second, cfg.API.HTTPTimeout)
	s.Assert().Equal(250, cfg.API.MaxID, "untouched keys keep defaults")
	s.Assert().Equal(LogJSON, cfg.Log.Format)
}

func (s *ConfigTestSuite) TestLoadRejectsBadYAML() {
	path := s.write("data: [unterminated")

	_, err := Load(path)
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *ConfigTestSuite) TestLoadRejectsInvalidValues() {
	path := s.write(`
data:
  format: parquet
server:
  grpc_port: 70000
`)

	_, err := Load(path)
	s.Require().Error(err)
	s.Assert().True(errors.IsInvalidArgument(err))
	s.Assert().Contains(err.Error(), "data.format")
	s.Assert().Contains(err.Error(), "server.grpc_port")
}

func (s *ConfigTestSuite) TestEnvOverrides() {
	env := map[string]string{
		"DEXBOARD_DATA_PATH":       "/srv/dex.csv",
		"DEXBOARD_API_MAX_ID":      "151",
		"DEXBOARD_API_CONCURRENCY": "not-a-number",
		"DEXBOARD_REDIS_ADDR":      "localhost:6379",

		"DEXBOARD_API_REQUESTS_PER_SECOND": "0.5",
		"DEXBOARD_API_HTTP_TIMEOUT":        "45s",
		"DEXBOARD_CACHE_TTL":               "soon",
	}
	cfg := Default()

	cfg.loadEnv(func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	})

	s.Assert().Equal("/srv/dex.csv", cfg.Data.Path)
	s.Assert().Equal(151, cfg.API.MaxID)
	s.Assert().Equal(4, cfg.API.Concurrency, "unparseable values are ignored")
	s.Assert().Equal("localhost:6379", cfg.Cache.RedisAddr)
	s.Assert().Equal(0.5, cfg.API.RequestsPerSecond)
	s.Assert().Equal(45*time.Second, cfg.API.HTTPTimeout)
	s.Assert().Equal(Default().Cache.TTL, cfg.Cache.TTL, "unparseable durations are ignored")
}

func (s *ConfigTestSuite) TestLogLevel() {
	cfg := Default()
	cfg.Log.Level = "verbose"

	err := cfg.Validate()
	s.Require().Error(err)
	s.Assert().Contains(err.Error(), "log.level")

	cfg.Log.Level = "debug"
	s.Assert().NoError(cfg.Validate())
}
