package fmstorage

import (
	"context"
	"path/filepath"
	"sync"

	"github.com/sgostarter/i/commerr"
	"github.com/sgostarter/i/stg"
	"github.com/sgostarter/libeasygo/stg/fs/rawfs"
	"github.com/sgostarter/libeasygo/stg/mwf"
	"github.com/sgostarter/liblinreg/descent"
)

func NewFMStorage(root string, storage stg.FileStorage) descent.Storage {
	return NewFMStorageEx(root, storage, "histories.json", false)
}

func NewFMStorageEx(root string, storage stg.FileStorage, fileName string, prettySerial bool) descent.Storage {
	if storage == nil {
		storage = rawfs.NewFSStorage("")
	}

	return &fmStorageImpl{
		historyStorage: mwf.NewMemWithFile[map[string][]*descent.StepRecord, mwf.Serial, mwf.Lock](
			make(map[string][]*descent.StepRecord), &mwf.JSONSerial{
				MarshalIndent: prettySerial,
			}, &sync.RWMutex{}, filepath.Join(root, fileName), storage),
	}
}

type fmStorageImpl struct {
	historyStorage *mwf.MemWithFile[map[string][]*descent.StepRecord, mwf.Serial, mwf.Lock]
}

func (impl *fmStorageImpl) Load(_ context.Context, key string) (records []*descent.StepRecord, err error) {
	impl.historyStorage.Read(func(d map[string][]*descent.StepRecord) {
		history, ok := d[key]
		if !ok {
			err = commerr.ErrNotFound

			return
		}

		records = make([]*descent.StepRecord, 0, len(history))

		for _, record := range history {
			r := *record
			records = append(records, &r)
		}
	})

	return
}

func (impl *fmStorageImpl) Save(_ context.Context, key string, records []*descent.StepRecord) error {
	return impl.historyStorage.Change(func(oldD map[string][]*descent.StepRecord) (map[string][]*descent.StepRecord, error) {
		newD := oldD
		if len(newD) == 0 {
			newD = make(map[string][]*descent.StepRecord)
		}

		history := make([]*descent.StepRecord, 0, len(records))

		for _, record := range records {
			r := *record
			history = append(history, &r)
		}

		newD[key] = history

		return newD, nil
	})
}
