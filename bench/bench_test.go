package bench_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/katalvlaran/algoviz/arraygen"
	"github.com/katalvlaran/algoviz/bench"
	"github.com/katalvlaran/algoviz/sorttrace"
)

// fakeClock advances one millisecond per call.
func fakeClock() func() time.Time {
	t := time.Unix(0, 0)
	return func() time.Time {
		t = t.Add(time.Millisecond)
		return t
	}
}

func smallConfig() bench.SweepConfig {
	return bench.SweepConfig{
		Algorithms: []string{"bubble", "merge"},
		Kind:       arraygen.Random,
		MinN:       16,
		MaxN:       256,
		Points:     5,
		Trials:     3,
		Seed:       7,
	}
}

func TestSizeList(t *testing.T) {
	assert.Equal(t, []int{100, 165, 271, 447, 737, 1214, 2000}, bench.SizeList(100, 2000, 7))
	assert.Equal(t, []int{16, 32, 64, 128, 256}, bench.SizeList(16, 256, 5))
	assert.Equal(t, []int{1, 2, 3}, bench.SizeList(1, 3, 10), "duplicates collapse")
	assert.Equal(t, []int{5}, bench.SizeList(5, 5, 3))
	assert.Nil(t, bench.SizeList(0, 10, 3))
	assert.Nil(t, bench.SizeList(10, 5, 3))
}

func TestMedianAndSummarize(t *testing.T) {
	assert.Equal(t, 2.0, bench.Median([]float64{3, 1, 2}))
	assert.Equal(t, 2.5, bench.Median([]float64{4, 1, 3, 2}))
	assert.Zero(t, bench.Median(nil))

	in := []float64{2, 4, 4, 4, 5, 5, 7, 9}
	s := bench.Summarize(in)
	assert.Equal(t, []float64{2, 4, 4, 4, 5, 5, 7, 9}, in, "input untouched")
	assert.Equal(t, 4.5, s.Median)
	assert.InDelta(t, 5.0, s.Mean, 1e-12)
	assert.InDelta(t, math.Sqrt(32.0/7.0), s.StdDev, 1e-12)
	// t(0.975, 7) ≈ 2.3646
	assert.InDelta(t, 2.3646*s.StdDev/math.Sqrt(8), s.CI95, 1e-3)

	one := bench.Summarize([]float64{3})
	assert.Equal(t, bench.Summary{Median: 3, Mean: 3}, one)
	assert.Zero(t, bench.Summarize(nil))
}

func TestFitPower(t *testing.T) {
	ns := []int{10, 100, 1000}
	ys := []float64{300, 30000, 3000000}
	f, err := bench.FitPower(ns, ys)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, f.Exponent, 1e-9)
	assert.InDelta(t, 3.0, f.Coefficient, 1e-6)
	assert.InDelta(t, 1.0, f.R2, 1e-9)

	_, err = bench.FitPower([]int{10, 20}, []float64{0, 5})
	assert.ErrorIs(t, err, bench.ErrNotEnoughPoints)
	_, err = bench.FitPower([]int{10, 10}, []float64{1, 5})
	assert.ErrorIs(t, err, bench.ErrNotEnoughPoints)
}

func TestCurves(t *testing.T) {
	cs := bench.Curves([]int{1, 2, 4}, 10)
	require.Len(t, cs, 3)
	byName := map[string][]float64{}
	for _, c := range cs {
		for _, p := range c.Points {
			byName[c.Name] = append(byName[c.Name], p.Y)
		}
	}
	assert.InDeltaSlice(t, []float64{10, 20, 40}, byName["n"], 1e-9)
	assert.InDeltaSlice(t, []float64{10, 20, 80}, byName["n log n"], 1e-9)
	assert.InDeltaSlice(t, []float64{10, 40, 160}, byName["n²"], 1e-9)
	assert.Nil(t, bench.Curves(nil, 1))
}

func TestSweep(t *testing.T) {
	var calls, lastTotal int
	rep, err := bench.Sweep(context.Background(), smallConfig(),
		bench.WithClock(fakeClock()),
		bench.WithProgress(func(done, total int) {
			calls++
			assert.Equal(t, calls, done)
			lastTotal = total
		}))
	require.NoError(t, err)
	assert.False(t, rep.Partial)
	assert.Equal(t, []int{16, 32, 64, 128, 256}, rep.Sizes)
	require.Len(t, rep.Rows, 5)
	assert.Equal(t, 5*2*3, calls)
	assert.Equal(t, calls, lastTotal)

	for _, row := range rep.Rows {
		require.Len(t, row.Cells, 2)
		bubble := row.Cells[0]
		assert.Equal(t, "bubble", bubble.Algorithm)
		// bubble always does n(n-1)/2 comparisons
		assert.Equal(t, float64(row.N*(row.N-1)/2), bubble.Comparisons.Median)
		assert.Zero(t, bubble.Comparisons.StdDev)
		assert.Equal(t, 1.0, bubble.RuntimeMs.Median)
	}

	require.Len(t, rep.Growth, 2)
	assert.InDelta(t, 2.0, rep.Growth[0].Comparisons.Exponent, 0.1)
	assert.InDelta(t, 1.2, rep.Growth[1].Comparisons.Exponent, 0.3)
}

func TestSweep_MatchesMeasure(t *testing.T) {
	cfg := smallConfig()
	cfg.Trials = 1
	rep, err := bench.Sweep(context.Background(), cfg)
	require.NoError(t, err)

	n := rep.Rows[0].N
	want := sorttrace.MeasureMerge(arraygen.MakeArray(n, cfg.Kind, cfg.Seed+int64(n)*17))
	assert.Equal(t, float64(want.Comparisons), rep.Rows[0].Cells[1].Comparisons.Median)
	assert.Equal(t, float64(want.Writes), rep.Rows[0].Cells[1].Writes.Median)
}

func TestSweep_Cancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	rep, err := bench.Sweep(ctx, smallConfig())
	assert.ErrorIs(t, err, context.Canceled)
	require.NotNil(t, rep)
	assert.True(t, rep.Partial)
	assert.Empty(t, rep.Rows)

	ctx, cancel = context.WithCancel(context.Background())
	defer cancel()
	rep, err = bench.Sweep(ctx, smallConfig(), bench.WithProgress(func(done, _ int) {
		// stop after the first two sizes are complete
		if done == 2*2*3 {
			cancel()
		}
	}))
	assert.True(t, errors.Is(err, context.Canceled))
	assert.True(t, rep.Partial)
	assert.Len(t, rep.Rows, 2)
}

func TestSweep_Validation(t *testing.T) {
	ctx := context.Background()

	cfg := smallConfig()
	cfg.Algorithms = nil
	_, err := bench.Sweep(ctx, cfg)
	assert.ErrorIs(t, err, bench.ErrNoAlgorithms)

	cfg = smallConfig()
	cfg.MaxN = 2
	_, err = bench.Sweep(ctx, cfg)
	assert.ErrorIs(t, err, bench.ErrBadRange)

	cfg = smallConfig()
	cfg.Trials = 0
	_, err = bench.Sweep(ctx, cfg)
	assert.ErrorIs(t, err, bench.ErrBadTrials)

	cfg = smallConfig()
	cfg.Algorithms = []string{"bogo"}
	_, err = bench.Sweep(ctx, cfg)
	assert.ErrorIs(t, err, sorttrace.ErrUnknownAlgorithm)

	assert.Panics(t, func() { bench.WithProgress(nil) })
	assert.Panics(t, func() { bench.WithClock(nil) })
}

func sweepReport(t *testing.T) *bench.Report {
	t.Helper()
	rep, err := bench.Sweep(context.Background(), smallConfig(), bench.WithClock(fakeClock()))
	require.NoError(t, err)

	return rep
}

func TestRender_CSV(t *testing.T) {
	r, err := bench.NewRenderer("csv", bench.Comparisons)
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, r.Write(&buf, sweepReport(t)))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 6)
	assert.Equal(t, "n,Bubble Sort (comparisons),Merge Sort (comparisons)", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "16,120,"), lines[1])
}

func TestRender_JSONAndYAML(t *testing.T) {
	rep := sweepReport(t)

	var buf bytes.Buffer
	require.NoError(t, bench.JSONRenderer{}.Write(&buf, rep))
	var back bench.Report
	require.NoError(t, json.Unmarshal(buf.Bytes(), &back))
	assert.Equal(t, rep.Sizes, back.Sizes)
	assert.Equal(t, rep.Config, back.Config)
	assert.Equal(t, rep.Rows, back.Rows)

	buf.Reset()
	y, err := bench.NewRenderer("yaml", bench.Runtime)
	require.NoError(t, err)
	require.NoError(t, y.Write(&buf, rep))
	out := buf.String()
	assert.Contains(t, out, "sizes: [16, 32, 64, 128, 256]")
	assert.Contains(t, out, "algorithms: [bubble, merge]")
	assert.Contains(t, out, "kind: random")
}

func TestRender_Table(t *testing.T) {
	rep := sweepReport(t)
	var buf bytes.Buffer
	require.NoError(t, bench.TableRenderer{Metric: bench.Comparisons}.Write(&buf, rep))
	out := buf.String()
	assert.Contains(t, out, "comparisons / random / 3 trials")
	assert.Contains(t, out, "Bubble Sort")
	assert.Contains(t, out, "32,640")
	assert.Contains(t, out, "n^")

	// every boxed line has the same width
	var width int
	for _, line := range strings.Split(out, "\n") {
		if !strings.HasPrefix(line, "+") && !strings.HasPrefix(line, "|") {
			continue
		}
		if width == 0 {
			width = len([]rune(line))
		}
		assert.Equal(t, width, len([]rune(line)), line)
	}

	buf.Reset()
	require.NoError(t, bench.TableRenderer{Metric: bench.Runtime}.Write(&buf, rep))
	assert.Contains(t, buf.String(), "1.000 ms")
	assert.NotContains(t, buf.String(), "n^")

	_, err := bench.NewRenderer("xml", bench.Runtime)
	assert.ErrorIs(t, err, bench.ErrUnknownFormat)
}

func TestRender_XLSX(t *testing.T) {
	r, err := bench.NewRenderer("xlsx", bench.Comparisons)
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, r.Write(&buf, sweepReport(t)))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()
	assert.Equal(t, []string{bench.SheetMedians, bench.SheetGrowth}, f.GetSheetList())

	rows, err := f.GetRows(bench.SheetMedians)
	require.NoError(t, err)
	require.Len(t, rows, 6)
	assert.Equal(t, []string{"n", "Bubble Sort (comparisons)", "Merge Sort (comparisons)"}, rows[0])
	assert.Equal(t, "16", rows[1][0])
	assert.Equal(t, "120", rows[1][1])

	growth, err := f.GetRows(bench.SheetGrowth)
	require.NoError(t, err)
	require.Len(t, growth, 3)
	assert.Equal(t, "Bubble Sort", growth[1][0])
	assert.Equal(t, "Merge Sort", growth[2][0])
}

func TestParseMetric(t *testing.T) {
	for _, m := range []bench.Metric{bench.Runtime, bench.Comparisons, bench.Writes} {
		got, err := bench.ParseMetric(m.String())
		require.NoError(t, err)
		assert.Equal(t, m, got)
	}
	_, err := bench.ParseMetric("latency")
	assert.ErrorIs(t, err, bench.ErrUnknownMetric)
}
