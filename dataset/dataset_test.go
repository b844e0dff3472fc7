package dataset

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sgostarter/i/commerr"
	"github.com/sgostarter/liblinreg/linreg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	ds, err := Parse(strings.NewReader(`# x y
30 45

40,60
100	150
`))
	require.Nil(t, err)
	assert.Equal(t, WorkedExample(), ds)

	_, err = Parse(strings.NewReader("1 2\n3\n"))
	assert.True(t, errors.Is(err, commerr.ErrInvalidArgument))
	assert.Contains(t, err.Error(), "line 2")

	_, err = Parse(strings.NewReader("1 abc\n"))
	assert.True(t, errors.Is(err, commerr.ErrInvalidArgument))

	ds, err = Parse(strings.NewReader(""))
	assert.Nil(t, err)
	assert.Empty(t, ds)
}

func TestParseYAML(t *testing.T) {
	ds, err := ParseYAML([]byte(`
- {x: 30, y: 45}
- {x: 40, y: 60}
- {x: "100", y: 150.0}
`))
	require.Nil(t, err)
	assert.Equal(t, WorkedExample(), ds)

	_, err = ParseYAML([]byte(`- {x: 1}`))
	assert.True(t, errors.Is(err, commerr.ErrInvalidArgument))

	_, err = ParseYAML([]byte(`- {x: 1, y: [1]}`))
	assert.True(t, errors.Is(err, commerr.ErrInvalidArgument))

	_, err = ParseYAML([]byte(`- {x: true, y: 1}`))
	assert.True(t, errors.Is(err, commerr.ErrInvalidArgument))

	_, err = ParseYAML([]byte(`- {x: 1, y: false}`))
	assert.True(t, errors.Is(err, commerr.ErrInvalidArgument))
}

func TestLoadFile(t *testing.T) {
	root := t.TempDir()

	txtFile := filepath.Join(root, "points.txt")
	require.Nil(t, os.WriteFile(txtFile, []byte("30 45\n40 60\n100 150\n"), 0600))

	ds, err := LoadFile(txtFile)
	require.Nil(t, err)
	assert.Equal(t, WorkedExample(), ds)

	yamlFile := filepath.Join(root, "points.yaml")
	require.Nil(t, os.WriteFile(yamlFile, []byte("- x: 1\n  y: 2\n"), 0600))

	ds, err = LoadFile(yamlFile)
	require.Nil(t, err)
	assert.Equal(t, linreg.Dataset{{X: 1, Y: 2}}, ds)

	_, err = LoadFile(filepath.Join(root, "none.txt"))
	assert.NotNil(t, err)
}
