package descent

import (
	"context"
	"errors"
	"os"
	"path"
	"strings"

	"github.com/sgostarter/i/commerr"
	"gopkg.in/yaml.v3"
)

// NewCommonStorage keeps each history in its own yaml file under root.
func NewCommonStorage(root string) *CommStorage {
	return &CommStorage{
		root: root,
	}
}

type CommStorage struct {
	root string
}

// fileNameByKey only accepts keys that name a file directly under root.
func (stg *CommStorage) fileNameByKey(key string) (fileName string, err error) {
	if key == "" || key == "." || key == ".." || strings.ContainsAny(key, "/\\") {
		err = commerr.ErrInvalidArgument

		return
	}

	fileName = path.Join(stg.root, key+".yaml")

	return
}

func (stg *CommStorage) Load(_ context.Context, key string) (records []*StepRecord, err error) {
	fileName, err := stg.fileNameByKey(key)
	if err != nil {
		return
	}

	d, err := os.ReadFile(fileName)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			err = commerr.ErrNotFound
		}

		return
	}

	err = yaml.Unmarshal(d, &records)

	return
}

func (stg *CommStorage) Save(_ context.Context, key string, records []*StepRecord) (err error) {
	fileName, err := stg.fileNameByKey(key)
	if err != nil {
		return
	}

	_ = os.MkdirAll(stg.root, 0700)

	d, err := yaml.Marshal(records)
	if err != nil {
		return
	}

	err = os.WriteFile(fileName, d, 0600)

	return
}
