package ui

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderChartPNG(t *testing.T) {
	data := make([]float64, 28)
	for i := range data {
		data[i] = float64(i%5) * 25
	}

	var buf bytes.Buffer
	require.NoError(t, RenderChartPNG(&buf, "Daily completion", data))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, ChartWidth, img.Bounds().Dx())
	assert.Equal(t, ChartHeight, img.Bounds().Dy())
}

func TestRenderChartPNG_SinglePoint(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderChartPNG(&buf, "", []float64{50}))
	assert.NotZero(t, buf.Len())
}

func TestRenderChartPNG_NoData(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, RenderChartPNG(&buf, "", nil))
}
