package cli

import (
	"strings"
	"time"

	"github.com/dlshle/minbench/workload"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const envPrefix = "MINBENCH"

type Config struct {
	LogLevel   string          `mapstructure:"log_level"`
	LogFormat  string          `mapstructure:"log_format"`
	Iterations uint64          `mapstructure:"iterations"`
	Budget     time.Duration   `mapstructure:"budget"`
	Single     time.Duration   `mapstructure:"single"`
	Policy     string          `mapstructure:"policy"`
	Workload   workload.Config `mapstructure:"workload"`
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	defaults := workload.DefaultConfig()
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "text")
	v.SetDefault("policy", "exact")
	v.SetDefault("workload.sleep", defaults.Sleep)
	v.SetDefault("workload.sqrt_unit", defaults.SqrtUnit)
	v.SetDefault("workload.redis_addr", defaults.RedisAddr)
	return v
}

// bindFlags binds config keys to the flags of the command being executed, so
// commands sharing a flag name do not overwrite each other's binding.
func bindFlags(v *viper.Viper, flags *pflag.FlagSet, keys map[string]string) error {
	for key, flag := range keys {
		if err := v.BindPFlag(key, flags.Lookup(flag)); err != nil {
			return err
		}
	}
	return nil
}

func loadConfig(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
