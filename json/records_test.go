package json_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fwojciec/serieslog"
	sljson "github.com/fwojciec/serieslog/json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var exportedAt = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func TestMarshalRecords(t *testing.T) {
	t.Parallel()

	records := []serieslog.Record{
		serieslog.NewRecord("2024-01-01 10:00:00", "2024-01-01 11:00:00", "7"),
		{"2024-01-02 10:00:00"},
		serieslog.NewRecord("2024-01-03 10:00:00", "", ""),
	}

	data, err := sljson.MarshalRecords("/tmp/log.csv", exportedAt, records)
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"version": 1,
		"source": "/tmp/log.csv",
		"exported_at": "2024-06-01T12:00:00Z",
		"sessions": [
			{"start_time": "2024-01-01 10:00:00", "stop_time": "2024-01-01 11:00:00", "series_count": 7, "open": false},
			{"start_time": "2024-01-02 10:00:00", "stop_time": "", "series_count": null, "open": false, "raw": ["2024-01-02 10:00:00"]},
			{"start_time": "2024-01-03 10:00:00", "stop_time": "", "series_count": null, "open": true}
		]
	}`, string(data))
}

func TestMarshalRecords_EmptyIsArray(t *testing.T) {
	t.Parallel()

	data, err := sljson.MarshalRecords("log.csv", exportedAt, nil)
	require.NoError(t, err)

	var env map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &env))
	assert.JSONEq(t, `[]`, string(env["sessions"]))
}

func TestSave(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "out", "export.json")
	records := []serieslog.Record{serieslog.NewRecord("2024-01-01 10:00:00", "2024-01-01 11:00:00", "1")}

	require.NoError(t, sljson.Save(path, "log.csv", exportedAt, records))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"series_count": 1`)
	_, err = os.Stat(path + ".tmp")
	assert.ErrorIs(t, err, os.ErrNotExist)
}
