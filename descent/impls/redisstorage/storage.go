package redisstorage

import (
	"context"
	"encoding/json"

	"github.com/go-redis/redis/v8"
	"github.com/sgostarter/i/commerr"
	"github.com/sgostarter/i/l"
	"github.com/sgostarter/liblinreg/descent"
)

func NewRedisStorage(preKey string, redisCli *redis.Client, logger l.Wrapper) descent.Storage {
	if logger == nil {
		logger = l.NewNopLoggerWrapper()
	}

	logger = logger.WithFields(l.StringField(l.ClsKey, "redisHistoryStorage"))

	if redisCli == nil {
		logger.Fatal("no redis client")
	}

	return &redisHistoryStorage{
		logger:   logger,
		preKey:   preKey,
		redisCli: redisCli,
	}
}

type redisHistoryStorage struct {
	logger   l.Wrapper
	preKey   string
	redisCli *redis.Client
}

func (impl *redisHistoryStorage) historyRedisKey(key string) string {
	if impl.preKey == "" {
		return "history:" + key
	}

	return impl.preKey + ":history:" + key
}

func (impl *redisHistoryStorage) Load(ctx context.Context, key string) (records []*descent.StepRecord, err error) {
	vs, err := impl.redisCli.LRange(ctx, impl.historyRedisKey(key), 0, -1).Result()
	if err != nil {
		impl.logger.WithFields(l.ErrorField(err), l.StringField("key", key)).Error("load history failed")

		return
	}

	if len(vs) == 0 {
		err = commerr.ErrNotFound

		return
	}

	records = make([]*descent.StepRecord, 0, len(vs))

	for _, v := range vs {
		var record descent.StepRecord

		err = json.Unmarshal([]byte(v), &record)
		if err != nil {
			impl.logger.WithFields(l.ErrorField(err), l.StringField("key", key)).Error("bad history item")

			records = nil

			return
		}

		records = append(records, &record)
	}

	return
}

func (impl *redisHistoryStorage) Save(ctx context.Context, key string, records []*descent.StepRecord) (err error) {
	vs := make([]interface{}, 0, len(records))

	for _, record := range records {
		d, e := json.Marshal(record)
		if e != nil {
			err = e

			return
		}

		vs = append(vs, string(d))
	}

	redisKey := impl.historyRedisKey(key)

	_, err = impl.redisCli.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, redisKey)

		if len(vs) > 0 {
			pipe.RPush(ctx, redisKey, vs...)
		}

		return nil
	})
	if err != nil {
		impl.logger.WithFields(l.ErrorField(err), l.StringField("key", key)).Error("save history failed")
	}

	return
}
