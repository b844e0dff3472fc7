package descent

import (
	"os"
	"time"

	"github.com/sgostarter/liblinreg/linreg"
	"gopkg.in/yaml.v3"
)

const (
	DefaultLearningRate = 0.0001
	DefaultIterations   = 10
	DefaultFrameToX     = 100
)

type Config struct {
	LearningRate float64               `yaml:"learningRate" json:"learningRate"`
	Iterations   int                   `yaml:"iterations" json:"iterations"`
	Initial      linreg.LineParameters `yaml:"initial" json:"initial"`

	FrameFromX float64 `yaml:"frameFromX" json:"frameFromX"`
	FrameToX   float64 `yaml:"frameToX" json:"frameToX"`

	HistoryCacheDuration time.Duration `yaml:"historyCacheDuration" json:"historyCacheDuration"`
}

func LoadConfig(fileName string) (cfg *Config, err error) {
	d, err := os.ReadFile(fileName)
	if err != nil {
		return
	}

	cfg = &Config{}

	err = yaml.Unmarshal(d, cfg)
	if err != nil {
		cfg = nil
	}

	return
}

// fix fills zero values only, a negative learning rate is left for Run to reject.
func (cfg Config) fix() Config {
	if cfg.LearningRate == 0 {
		cfg.LearningRate = DefaultLearningRate
	}

	if cfg.Iterations <= 0 {
		cfg.Iterations = DefaultIterations
	}

	if cfg.FrameFromX == 0 && cfg.FrameToX == 0 {
		cfg.FrameToX = DefaultFrameToX
	}

	if cfg.HistoryCacheDuration <= 0 {
		cfg.HistoryCacheDuration = time.Minute * 10
	}

	return cfg
}
