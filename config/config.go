// Package config loads the settings of the demo command from a YAML or JSON file,
// with HEXA_ prefixed environment variables taking precedence.
package config

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

const envPrefix = "HEXA"

const (
	BackendMemory  = "memory"
	BackendGoRedis = "goredis"
	BackendRedigo  = "redigo"

	LockerRedsync   = "redsync"
	LockerRedislock = "redislock"

	DriverStd    = "std"
	DriverZap    = "zap"
	DriverLogrus = "logrus"

	CodecJSON    = "json"
	CodecMsgpack = "msgpack"
)

var ErrInvalid = errors.New("hexa: invalid config")

type Config struct {
	Codec   string        `mapstructure:"codec"`
	TTL     time.Duration `mapstructure:"ttl"`
	Storage Storage       `mapstructure:"storage"`
	Log     Log           `mapstructure:"log"`
}

type Storage struct {
	Backend  string        `mapstructure:"backend"`
	Addr     string        `mapstructure:"addr"`
	Password string        `mapstructure:"password"`
	DB       int           `mapstructure:"db"`
	Locker   string        `mapstructure:"locker"`
	LockTTL  time.Duration `mapstructure:"lock_ttl"`
}

type Log struct {
	Driver string `mapstructure:"driver"`
	Level  string `mapstructure:"level"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("codec", CodecJSON)
	v.SetDefault("ttl", 10*time.Minute)
	v.SetDefault("storage.backend", BackendMemory)
	v.SetDefault("storage.addr", "127.0.0.1:6379")
	v.SetDefault("storage.password", "")
	v.SetDefault("storage.db", 0)
	v.SetDefault("storage.locker", LockerRedsync)
	v.SetDefault("storage.lock_ttl", 8*time.Second)
	v.SetDefault("log.driver", DriverStd)
	v.SetDefault("log.level", "info")
}

// Default returns the configuration used when no file and no environment is given.
func Default() Config {
	v := viper.New()
	setDefaults(v)

	var cfg Config
	lo.Must0(v.Unmarshal(&cfg))
	return cfg
}

// Load reads path, if any, over the defaults and applies environment overrides.
// HEXA_STORAGE_BACKEND overrides storage.backend, and so on.
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)

		switch ext := filepath.Ext(path); ext {
		case ".yaml", ".yml":
			v.SetConfigType("yaml")
		case ".json":
			v.SetConfigType("json")
		}

		if err := v.ReadInConfig(); err != nil {
			return Config{}, errors.Wrapf(err, "read config %q", path)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, errors.Wrap(err, "decode config")
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports every invalid setting at once.
func (c Config) Validate() error {
	var problems []string

	check := func(field, value string, allowed ...string) {
		if !lo.Contains(allowed, value) {
			problems = append(problems, field+" must be one of "+strings.Join(allowed, ", ")+", got "+quote(value))
		}
	}

	check("codec", c.Codec, CodecJSON, CodecMsgpack)
	check("storage.backend", c.Storage.Backend, BackendMemory, BackendGoRedis, BackendRedigo)
	check("log.driver", c.Log.Driver, DriverStd, DriverZap, DriverLogrus)

	if c.Storage.Backend == BackendGoRedis {
		check("storage.locker", c.Storage.Locker, LockerRedsync, LockerRedislock)
	}
	if c.Storage.Backend == BackendRedigo {
		// Only redsync runs over a redigo pool.
		check("storage.locker", c.Storage.Locker, LockerRedsync)
	}
	if c.Storage.Backend != BackendMemory && c.Storage.Addr == "" {
		problems = append(problems, "storage.addr is required for "+c.Storage.Backend)
	}

	if c.TTL < 0 {
		problems = append(problems, "ttl must not be negative")
	}
	if c.Storage.LockTTL <= 0 {
		problems = append(problems, "storage.lock_ttl must be positive")
	}

	if len(problems) == 0 {
		return nil
	}
	return errors.Mark(errors.Newf("%s", strings.Join(lo.Uniq(problems), "; ")), ErrInvalid)
}

func quote(s string) string {
	return `"` + s + `"`
}
