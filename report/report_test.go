package report_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/socialreach/core"
	"github.com/katalvlaran/socialreach/popularity"
	"github.com/katalvlaran/socialreach/reach"
	"github.com/katalvlaran/socialreach/report"
)

func TestRatio(t *testing.T) {
	pct, err := report.Ratio(3, 4)
	require.NoError(t, err)
	assert.InDelta(t, 75.0, pct, 1e-9)

	_, err = report.Ratio(0, 0)
	assert.True(t, errors.Is(err, report.ErrEmptyGraph))
}

func TestFormatRatio(t *testing.T) {
	assert.Equal(t, "75.00%", report.FormatRatio(75))
	assert.Equal(t, "33.33%", report.FormatRatio(100.0/3))
	assert.Equal(t, "0.00%", report.FormatRatio(0))
}

func sample() (popularity.Result, *reach.Result) {
	top := popularity.Result{ID: 0, Name: "Alice", OutDegree: 1, Found: true}
	res := &reach.Result{Start: core.NodeID(0), StartName: "Alice", MaxHops: 3, Reached: 3}
	return top, res
}

func TestWriteText(t *testing.T) {
	top, res := sample()
	s := report.NewSummary(top, res, 4)

	var buf bytes.Buffer
	require.NoError(t, report.WriteText(&buf, s))
	assert.Equal(t,
		"The most popular person is Alice\n"+
			"The proportion the most popular person can reach in 3 steps is 75.00%\n",
		buf.String())
}

func TestWriteText_OtherStart(t *testing.T) {
	top, res := sample()
	res.StartName = "Bob"
	res.Reached = 1

	var buf bytes.Buffer
	require.NoError(t, report.WriteText(&buf, report.NewSummary(top, res, 4)))
	assert.Contains(t, buf.String(), "The proportion Bob can reach in 3 steps is 25.00%")
}

func TestWriteText_EmptyAndNotFound(t *testing.T) {
	empty := report.NewSummary(popularity.Result{Name: core.UnknownName}, &reach.Result{}, 0)
	assert.False(t, empty.RatioAvailable)

	var buf bytes.Buffer
	require.NoError(t, report.WriteText(&buf, empty))
	assert.Equal(t,
		"The most popular person is Unknown\n"+
			"The proportion is unavailable: the graph has no edges\n",
		buf.String())

	top, _ := sample()
	s := report.NewSummary(top, nil, 4)
	s.StartNotFound = "Zed"
	buf.Reset()
	require.NoError(t, report.WriteText(&buf, s))
	assert.Contains(t, buf.String(), "no such person: Zed\n")
}

func TestWriteJSON(t *testing.T) {
	top, res := sample()
	var buf bytes.Buffer
	require.NoError(t, report.Write(&buf, report.FormatJSON, report.NewSummary(top, res, 4)))

	var got map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "Alice", got["popular"])
	assert.Equal(t, 75.0, got["ratio"])
	assert.Equal(t, true, got["ratio_available"])
	assert.NotContains(t, got, "start_not_found")
}

func TestWrite_UnknownFormat(t *testing.T) {
	err := report.Write(&bytes.Buffer{}, "xml", report.Summary{})
	assert.True(t, errors.Is(err, report.ErrUnknownFormat))
}
