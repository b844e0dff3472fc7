package descent

import (
	"context"
	"time"

	"github.com/godruoyi/go-snowflake"
	"github.com/patrickmn/go-cache"
	"github.com/sgostarter/i/commerr"
	"github.com/sgostarter/i/l"
	"github.com/sgostarter/liblinreg/linreg"
	"github.com/spf13/cast"
)

func NewDescent(cfg *Config, storage Storage, observer Observer, logger l.Wrapper) Descent {
	if logger == nil {
		logger = l.NewNopLoggerWrapper()
	}

	logger = logger.WithFields(l.StringField(l.ClsKey, "descentImpl"))

	if cfg == nil {
		cfg = &Config{}
	}

	fixedCfg := cfg.fix()

	return &descentImpl{
		logger:          logger,
		cfg:             fixedCfg,
		storage:         storage,
		observer:        observer,
		cachedHistories: cache.New(fixedCfg.HistoryCacheDuration, fixedCfg.HistoryCacheDuration*2),
	}
}

type descentImpl struct {
	logger   l.Wrapper
	cfg      Config
	storage  Storage
	observer Observer

	cachedHistories *cache.Cache
}

func (impl *descentImpl) Run(ctx context.Context, key string, points linreg.Dataset) (runKey string, records []*StepRecord, err error) {
	runKey = key
	if runKey == "" {
		runKey = cast.ToString(snowflake.ID())
	}

	logger := impl.logger.WithFields(l.StringField("key", runKey))

	if err = linreg.ValidateLearningRate(impl.cfg.LearningRate); err != nil {
		logger.WithFields(l.ErrorField(err)).Error("invalid learning rate")

		return
	}

	current := impl.cfg.Initial

	cost, err := linreg.Cost(current, points)
	if err != nil {
		logger.WithFields(l.ErrorField(err)).Error("invalid dataset")

		return
	}

	history := make([]*StepRecord, 0, impl.cfg.Iterations+1)
	history = append(history, impl.newRecord(0, current, cost))
	impl.notify(runKey, history[0])

	for step := 1; step <= impl.cfg.Iterations; step++ {
		if err = ctx.Err(); err != nil {
			logger.WithFields(l.ErrorField(err), l.IntField("step", step)).Error("run cancelled")

			return
		}

		current, err = linreg.Step(current, points, impl.cfg.LearningRate)
		if err != nil {
			logger.WithFields(l.ErrorField(err), l.IntField("step", step)).Error("step failed")

			return
		}

		cost, err = linreg.Cost(current, points)
		if err != nil {
			logger.WithFields(l.ErrorField(err), l.IntField("step", step)).Error("cost failed")

			return
		}

		history = append(history, impl.newRecord(step, current, cost))
		impl.notify(runKey, history[step])
	}

	logger.WithFields(l.IntField("steps", impl.cfg.Iterations), l.StringField("m", cast.ToString(current.M)),
		l.StringField("b", cast.ToString(current.B)), l.StringField("cost", cast.ToString(cost))).Debug("run finished")

	if target, e := linreg.LeastSquares(points); e == nil {
		logger.WithFields(l.StringField("targetM", cast.ToString(target.M)),
			l.StringField("targetB", cast.ToString(target.B))).Debug("least squares target")
	}

	if impl.storage != nil {
		if err = impl.storage.Save(ctx, runKey, history); err != nil {
			logger.WithFields(l.ErrorField(err)).Error("save history failed")

			return
		}
	}

	impl.cachedHistories.Set(runKey, cloneRecords(history), cache.DefaultExpiration)

	records = history

	return
}

func (impl *descentImpl) History(ctx context.Context, key string) (records []*StepRecord, err error) {
	if i, ok := impl.cachedHistories.Get(key); ok {
		if cached, ok := i.([]*StepRecord); ok {
			records = cloneRecords(cached)

			return
		}
	}

	if impl.storage == nil {
		err = commerr.ErrNotFound

		return
	}

	records, err = impl.storage.Load(ctx, key)
	if err != nil {
		return
	}

	impl.cachedHistories.Set(key, cloneRecords(records), cache.DefaultExpiration)

	return
}

// cloneRecords copies every record so cached histories never share pointers with callers.
func cloneRecords(records []*StepRecord) []*StepRecord {
	cloned := make([]*StepRecord, 0, len(records))

	for _, record := range records {
		r := *record
		cloned = append(cloned, &r)
	}

	return cloned
}

func (impl *descentImpl) Frames(records []*StepRecord) []*Frame {
	frames := make([]*Frame, 0, len(records))

	for _, record := range records {
		from, to := linreg.Endpoints(record.LineParameters, impl.cfg.FrameFromX, impl.cfg.FrameToX)

		frames = append(frames, &Frame{
			Step: record.Step,
			From: from,
			To:   to,
		})
	}

	return frames
}

func (impl *descentImpl) newRecord(step int, params linreg.LineParameters, cost float64) *StepRecord {
	return &StepRecord{
		Step:           step,
		Cost:           cost,
		At:             time.Now().Unix(),
		LineParameters: params,
	}
}

func (impl *descentImpl) notify(key string, record *StepRecord) {
	if impl.observer == nil {
		return
	}

	r := *record
	impl.observer.OnStep(key, &r)
}

// Final returns the parameters of the last completed step.
func Final(records []*StepRecord) (params linreg.LineParameters, ok bool) {
	if len(records) == 0 {
		return
	}

	params = records[len(records)-1].LineParameters
	ok = true

	return
}

// Gap is the closed form fit minus the last descent parameters.
func Gap(records []*StepRecord, points linreg.Dataset) (gap linreg.LineParameters, err error) {
	final, ok := Final(records)
	if !ok {
		err = commerr.ErrNotFound

		return
	}

	target, err := linreg.LeastSquares(points)
	if err != nil {
		return
	}

	gap = linreg.LineParameters{
		M: target.M - final.M,
		B: target.B - final.B,
	}

	return
}
