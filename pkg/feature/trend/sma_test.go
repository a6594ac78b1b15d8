package trend

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/c9s/featuregen/pkg/types"
)

func buildFrame(col string, values ...float64) *types.Frame {
	frame := types.NewFrame(nil)
	if err := frame.AddColumn(types.NewSeriesFrom(col, values...)); err != nil {
		panic(err)
	}
	return frame
}

/*
python:

import pandas as pd

data = pd.Series([1,2,3,4,5,6,7,8,9,10])
print(data.rolling(3).mean())
*/
func Test_SMA(t *testing.T) {
	frame := buildFrame("close", 1, 2, 3, 4, 5, 6, 7, 8, 9, 10)

	out, err := SMA(frame, "close", 3)
	assert.NoError(t, err)
	assert.Equal(t, "sma_3", out.Name)
	assert.Equal(t, 10, out.Length())

	assert.False(t, out.Valid(0))
	assert.False(t, out.Valid(1))

	v, ok := out.Value(2)
	assert.True(t, ok)
	assert.Equal(t, 2.0, v)

	v, ok = out.Value(9)
	assert.True(t, ok)
	assert.Equal(t, 9.0, v)
}

func Test_SMA_ConstantInput(t *testing.T) {
	frame := buildFrame("close", 5, 5, 5, 5, 5, 5, 5, 5)

	out, err := SMA(frame, "close", 4)
	assert.NoError(t, err)
	assert.Equal(t, 8, out.Length())

	for i := 0; i < out.Length(); i++ {
		v, ok := out.Value(i)
		if i < 3 {
			assert.False(t, ok, "position %d should be missing", i)
			continue
		}
		assert.True(t, ok)
		assert.Equal(t, 5.0, v)
	}
}

func Test_SMA_MissingValueInWindow(t *testing.T) {
	src := types.NewSeriesFrom("close", 1, 2, 3, 4, 5, 6)
	src.SetMissing(2)
	frame := types.NewFrame(nil)
	assert.NoError(t, frame.AddColumn(src))

	out, err := SMA(frame, "close", 2)
	assert.NoError(t, err)

	// windows touching the hole stay missing, the rest recover
	assert.False(t, out.Valid(2))
	assert.False(t, out.Valid(3))

	v, ok := out.Value(4)
	assert.True(t, ok)
	assert.Equal(t, 4.5, v)
}

func Test_SMA_ColumnNotFound(t *testing.T) {
	frame := buildFrame("close", 1, 2, 3)

	out, err := SMA(frame, "open", 2)
	assert.Error(t, err)
	assert.Nil(t, out)
}

func Test_SMA_DefaultWindow(t *testing.T) {
	values := make([]float64, 40)
	for i := range values {
		values[i] = float64(i)
	}
	frame := buildFrame("close", values...)

	out, err := SMA(frame, "close", 0)
	assert.NoError(t, err)
	assert.Equal(t, "sma_30", out.Name)
	assert.False(t, out.Valid(DefaultSMAWindow-2))
	assert.True(t, out.Valid(DefaultSMAWindow-1))
}
