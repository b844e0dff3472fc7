package dataset

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/sgostarter/i/commerr"
	"github.com/sgostarter/liblinreg/linreg"
	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"
)

// WorkedExample is the three point dataset used throughout the docs.
func WorkedExample() linreg.Dataset {
	return linreg.Dataset{
		{X: 30, Y: 45},
		{X: 40, Y: 60},
		{X: 100, Y: 150},
	}
}

// Parse reads one "x y" (or "x,y") sample per line. Blank lines and lines
// starting with # are skipped.
func Parse(r io.Reader) (ds linreg.Dataset, err error) {
	scanner := bufio.NewScanner(r)

	lineNo := 0

	for scanner.Scan() {
		lineNo++

		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		ps := strings.FieldsFunc(line, func(c rune) bool {
			return c == ',' || c == ' ' || c == '\t' || c == ';'
		})
		if len(ps) != 2 {
			err = fmt.Errorf("%w: line %d: want 2 fields, got %d", commerr.ErrInvalidArgument, lineNo, len(ps))

			return
		}

		var point linreg.DataPoint

		if point.X, err = cast.ToFloat64E(ps[0]); err != nil {
			err = fmt.Errorf("%w: line %d: bad x %q", commerr.ErrInvalidArgument, lineNo, ps[0])

			return
		}

		if point.Y, err = cast.ToFloat64E(ps[1]); err != nil {
			err = fmt.Errorf("%w: line %d: bad y %q", commerr.ErrInvalidArgument, lineNo, ps[1])

			return
		}

		ds = append(ds, point)
	}

	err = scanner.Err()

	return
}

// ParseYAML decodes a list of {x, y} maps.
func ParseYAML(d []byte) (ds linreg.Dataset, err error) {
	var items []map[string]interface{}

	if err = yaml.Unmarshal(d, &items); err != nil {
		return
	}

	ds = make(linreg.Dataset, 0, len(items))

	for idx, item := range items {
		var point linreg.DataPoint

		x, okX := item["x"]
		y, okY := item["y"]

		if !okX || !okY {
			err = fmt.Errorf("%w: item %d: missing x or y", commerr.ErrInvalidArgument, idx)

			return
		}

		if point.X, err = toFloat64(x); err != nil {
			err = fmt.Errorf("%w: item %d: bad x %v", commerr.ErrInvalidArgument, idx, x)

			return
		}

		if point.Y, err = toFloat64(y); err != nil {
			err = fmt.Errorf("%w: item %d: bad y %v", commerr.ErrInvalidArgument, idx, y)

			return
		}

		ds = append(ds, point)
	}

	return
}

// toFloat64 refuses booleans, which cast would turn into 0 or 1.
func toFloat64(v interface{}) (float64, error) {
	if _, ok := v.(bool); ok {
		return 0, commerr.ErrInvalidArgument
	}

	return cast.ToFloat64E(v)
}

func LoadFile(fileName string) (ds linreg.Dataset, err error) {
	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".yaml", ".yml":
		var d []byte

		d, err = os.ReadFile(fileName)
		if err != nil {
			return
		}

		return ParseYAML(d)
	}

	f, err := os.Open(fileName)
	if err != nil {
		return
	}

	defer f.Close()

	return Parse(f)
}
