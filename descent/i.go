package descent

import (
	"context"

	"github.com/sgostarter/liblinreg/linreg"
)

type StepRecord struct {
	Step int     `yaml:"step" json:"step"`
	Cost float64 `yaml:"cost" json:"cost"`
	At   int64   `yaml:"at" json:"at"`

	linreg.LineParameters `yaml:",inline"`
}

type Frame struct {
	Step int
	From linreg.DataPoint
	To   linreg.DataPoint
}

type Observer interface {
	OnStep(key string, record *StepRecord)
}

type ObserverFunc func(key string, record *StepRecord)

func (fn ObserverFunc) OnStep(key string, record *StepRecord) {
	fn(key, record)
}

type Storage interface {
	Load(ctx context.Context, key string) (records []*StepRecord, err error)
	Save(ctx context.Context, key string, records []*StepRecord) error
}

type Descent interface {
	// Run performs exactly the configured number of steps from the initial
	// line. An empty key gets a generated one.
	Run(ctx context.Context, key string, points linreg.Dataset) (runKey string, records []*StepRecord, err error)
	History(ctx context.Context, key string) (records []*StepRecord, err error)
	Frames(records []*StepRecord) []*Frame
}
