package ingest

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fixture = "../../testdata/activities.csv"

func TestLoadKeepsOnlyRunningInOrder(t *testing.T) {
	runs, err := Load(fixture)
	require.NoError(t, err)

	var dates []string
	for _, r := range runs {
		dates = append(dates, r.Date.Format(time.DateOnly))
	}

	want := []string{
		"2024-01-20",
		"2024-01-15",
		"2024-01-12",
		"2024-01-08",
		"2024-01-05",
		"2024-01-01",
		"2023-12-30",
		"2023-12-28",
	}

	if diff := cmp.Diff(want, dates); diff != "" {
		t.Errorf("running activities mismatch (-want +got):\n%s", diff)
	}
}

func TestRunCountMatchesRunningRows(t *testing.T) {
	b, err := os.ReadFile(fixture)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(b)), "\n")[1:]

	var expected int

	for _, line := range lines {
		if strings.HasPrefix(line, ActivityRunning+",") {
			expected++
		}
	}

	runs, err := Load(fixture)
	require.NoError(t, err)
	assert.Len(t, runs, expected)
}

func TestParsedFields(t *testing.T) {
	runs, err := Load(fixture)
	require.NoError(t, err)

	first := runs[0]

	assert.Equal(t, time.Date(2024, 1, 20, 7, 0, 0, 0, time.UTC), first.Date)
	assert.InDelta(t, 10.5, first.Distance, 1e-9)
	assert.Equal(t, time.Hour+25*time.Minute, first.Time)
	assert.Equal(t, 150, first.AvgHR)
	assert.Equal(t, "8:06", first.AvgPace.String())
	assert.Equal(
		t,
		[]string{"2024-01-20 07:00:00", "10.50", "01:25:00", "150", "8:06"},
		first.Record(),
	)
}

func header() string {
	return strings.Join(Schema, ",") + "\n"
}

func row(activity string, cols map[int]string) string {
	fields := make([]string, len(Schema))
	for i := range fields {
		fields[i] = "--"
	}

	fields[colActivityType] = activity

	for i, v := range cols {
		fields[i] = v
	}

	return strings.Join(fields, ",") + "\n"
}

func TestReadMalformedRunningRow(t *testing.T) {
	cases := []struct {
		name string
		cols map[int]string
	}{
		{
			name: "missing heart rate",
			cols: map[int]string{colDate: "2024-01-01 08:00:00", colDistance: "5.00", colTime: "00:40:00", colAvgHR: "--", colAvgPace: "8:00"},
		},
		{
			name: "bad date",
			cols: map[int]string{colDate: "01/01/2024", colDistance: "5.00", colTime: "00:40:00", colAvgHR: "140", colAvgPace: "8:00"},
		},
		{
			name: "bad pace",
			cols: map[int]string{colDate: "2024-01-01 08:00:00", colDistance: "5.00", colTime: "00:40:00", colAvgHR: "140", colAvgPace: "8.0"},
		},
		{
			name: "bad distance",
			cols: map[int]string{colDate: "2024-01-01 08:00:00", colDistance: "five", colTime: "00:40:00", colAvgHR: "140", colAvgPace: "8:00"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			input := header() + row(ActivityRunning, tc.cols)

			_, err := Read(strings.NewReader(input))
			require.ErrorIs(t, err, ErrMalformedRow)
			assert.Contains(t, err.Error(), "line 2")
		})
	}
}

func TestReadIgnoresMalformedNonRunningRows(t *testing.T) {
	input := header() + "Cycling,not-a-date\n" + row(ActivityRunning, map[int]string{
		colDate:     "2024-01-01 08:00:00",
		colDistance: "5.00",
		colTime:     "00:37:30",
		colAvgHR:    "139",
		colAvgPace:  "7:30",
	})

	runs, err := Read(strings.NewReader(input))
	require.NoError(t, err)
	assert.Len(t, runs, 1)
}

func TestReadShortRunningRow(t *testing.T) {
	_, err := Read(strings.NewReader(header() + "Running,2024-01-01 08:00:00,false\n"))
	assert.ErrorIs(t, err, ErrMalformedRow)
}

func TestReadEmpty(t *testing.T) {
	_, err := Read(strings.NewReader(""))
	assert.ErrorIs(t, err, ErrMissingHeader)
}

func TestReadHeaderOnly(t *testing.T) {
	runs, err := Read(strings.NewReader(header()))
	require.NoError(t, err)
	assert.Empty(t, runs)
}

func TestSince(t *testing.T) {
	runs, err := Load(fixture)
	require.NoError(t, err)

	assert.Equal(t, runs, Since(runs, time.Time{}))

	recent := Since(runs, time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC))

	assert.Equal(t, runs[:4], recent)
	assert.Empty(t, Since(runs, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)))
}

func TestImport(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "Activities.csv")
	dst := filepath.Join(dir, "work", "activities.csv")

	require.NoError(t, os.MkdirAll(filepath.Dir(dst), 0o755))
	require.NoError(t, os.WriteFile(src, []byte(header()), 0o600))
	require.NoError(t, os.WriteFile(dst, []byte("stale"), 0o600))

	require.NoError(t, Import(src, dst))

	_, err := os.Stat(src)
	assert.ErrorIs(t, err, os.ErrNotExist)

	b, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, header(), string(b))
}

func TestImportMissingSource(t *testing.T) {
	dir := t.TempDir()

	err := Import(filepath.Join(dir, "Activities.csv"), filepath.Join(dir, "activities.csv"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
