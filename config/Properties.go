package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cast"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const EnvVariable = "PONG_ENV"
const DefaultEnv = "local"

type Properties struct {
	Env           string
	GameWidth     float64
	GameHeight    float64
	FrameRate     float64
	ScoreToWin    uint32
	FreezeSeconds float64
	KeyHoldMillis int
	Seed          int64 // 0 picks a time-based seed
	Sound         bool
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("GAME_WIDTH", 1280)
	v.SetDefault("GAME_HEIGHT", 720)
	v.SetDefault("FRAME_RATE", 60)
	v.SetDefault("SCORE_TO_WIN", 10)
	v.SetDefault("FREEZE_SECONDS", 1.0)
	v.SetDefault("KEY_HOLD_MILLIS", 150)
	v.SetDefault("SEED", 0)
	v.SetDefault("SOUND", true)
}

// NewFlagSet declares the command line overrides understood by ReadProperties.
func NewFlagSet(name string) *pflag.FlagSet {
	flags := pflag.NewFlagSet(name, pflag.ContinueOnError)
	flags.String("env", "", "properties file to load from ./properties (overrides "+EnvVariable+")")
	flags.Float64("fps", 0, "simulation and render rate")
	flags.Int64("seed", 0, "serve random seed, 0 for time based")
	flags.Bool("mute", false, "disable sound")
	return flags
}

// LoadEnvFile loads a .env file if one exists.
func LoadEnvFile(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// ReadProperties resolves the environment name, reads
// <dir>/properties/<env>.properties and applies flag overrides. A missing
// properties file leaves the defaults in place.
func ReadProperties(dir string, flags *pflag.FlagSet) (Properties, error) {
	env := os.Getenv(EnvVariable)
	if flags != nil && flags.Changed("env") {
		env, _ = flags.GetString("env")
	}
	if env == "" {
		env = DefaultEnv
	}

	v := viper.New()
	setDefaults(v)
	v.SetConfigName(fmt.Sprintf("%s/%s", "properties", env))
	v.SetConfigType("properties")
	v.AddConfigPath(dir)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Properties{}, fmt.Errorf("fatal error config file: %w", err)
		}
	}

	if flags != nil {
		bindFlag(v, flags, "FRAME_RATE", "fps")
		bindFlag(v, flags, "SEED", "seed")
		if flags.Changed("mute") {
			if mute, _ := flags.GetBool("mute"); mute {
				v.Set("SOUND", false)
			}
		}
	}

	props := Properties{
		Env:           env,
		GameWidth:     cast.ToFloat64(v.Get("GAME_WIDTH")),
		GameHeight:    cast.ToFloat64(v.Get("GAME_HEIGHT")),
		FrameRate:     cast.ToFloat64(v.Get("FRAME_RATE")),
		ScoreToWin:    cast.ToUint32(v.Get("SCORE_TO_WIN")),
		FreezeSeconds: cast.ToFloat64(v.Get("FREEZE_SECONDS")),
		KeyHoldMillis: cast.ToInt(v.Get("KEY_HOLD_MILLIS")),
		Seed:          cast.ToInt64(v.Get("SEED")),
		Sound:         cast.ToBool(v.Get("SOUND")),
	}
	return props, props.Validate()
}

// bindFlag only lets a flag win when it was given on the command line.
func bindFlag(v *viper.Viper, flags *pflag.FlagSet, key, name string) {
	if flags.Changed(name) {
		_ = v.BindPFlag(key, flags.Lookup(name))
	}
}

func (p Properties) Validate() error {
	switch {
	case p.GameWidth <= 0 || p.GameHeight <= 0:
		return fmt.Errorf("arena size must be positive, got %vx%v", p.GameWidth, p.GameHeight)
	case p.FrameRate <= 0:
		return fmt.Errorf("frame rate must be positive, got %v", p.FrameRate)
	case p.ScoreToWin == 0:
		return errors.New("score to win must be at least 1")
	case p.FreezeSeconds <= 0:
		return fmt.Errorf("freeze duration must be positive, got %v", p.FreezeSeconds)
	case p.KeyHoldMillis <= 0:
		return fmt.Errorf("key hold must be positive, got %d", p.KeyHoldMillis)
	}
	return nil
}
