package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	for _, key := range []string{"APP_ENV", "DATA_PATH", "TIMELINE_QUARTER_START", "TIMELINE_WEEKS", "REQUEST_TIMEOUT"} {
		t.Setenv(key, "")
	}

	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	base := []string{"--env-file", filepath.Join(t.TempDir(), "missing.env"), "--env", "prod"}
	cmd.SetArgs(append(args, base...))
	err := cmd.Execute()
	return out.String(), err
}

func TestStatsCommand_Table(t *testing.T) {
	out, err := runCommand(t, "stats")

	require.NoError(t, err)
	assert.Contains(t, out, "Total objectives")
	assert.Contains(t, out, "68%")
	assert.Contains(t, out, "Marketing")
}

func TestStatsCommand_JSON(t *testing.T) {
	out, err := runCommand(t, "stats", "--format", "json")
	require.NoError(t, err)

	var result map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, float64(3), result["total"])
}

func TestTimelineCommand_YAMLWithWeeks(t *testing.T) {
	out, err := runCommand(t, "timeline", "--format", "yaml", "--weeks", "4", "--quarter-start", "2025-01-01")
	require.NoError(t, err)

	var result map[string]interface{}
	require.NoError(t, yaml.Unmarshal([]byte(out), &result))
	assert.Equal(t, "Q1 2025", result["quarter"])
	assert.Equal(t, "2025-01-01", result["quarter_start"])
	assert.Len(t, result["weeks"], 4)
	assert.NotContains(t, out, "quarterstart")
	assert.NotContains(t, out, "point:")

	objectives := result["objectives"].([]interface{})
	first := objectives[0].(map[string]interface{})
	assert.Equal(t, "1", first["objective_id"])

	// позиция вехи лежит на одном уровне с её полями
	milestone := first["milestones"].([]interface{})[0].(map[string]interface{})
	assert.Equal(t, "1-1-m1", milestone["milestone_id"])
	assert.Equal(t, 0, milestone["week_index"])
	assert.Equal(t, "success", milestone["color"])
}

func TestStatsCommand_YAML(t *testing.T) {
	out, err := runCommand(t, "stats", "--format", "yaml")
	require.NoError(t, err)

	var result map[string]interface{}
	require.NoError(t, yaml.Unmarshal([]byte(out), &result))
	assert.Equal(t, 68, result["average_progress"])
	assert.Equal(t, 1, result["at_risk"])
	assert.NotContains(t, out, "averageprogress")

	team := result["teams"].([]interface{})[0].(map[string]interface{})
	assert.Equal(t, "Engineering", team["name"])
	assert.Contains(t, team, "team_id")
}

func TestTimelineCommand_WeeksOverYear(t *testing.T) {
	_, err := runCommand(t, "timeline", "--weeks", "53")

	assert.ErrorContains(t, err, "--weeks")
}

func TestTimelineCommand_BadQuarterStart(t *testing.T) {
	_, err := runCommand(t, "timeline", "--quarter-start", "spring")

	assert.Error(t, err)
}

func TestReportCommand_WritesFile(t *testing.T) {
	dir := t.TempDir()

	out, err := runCommand(t, "report", "--kind", "gantt", "--out-dir", dir)
	require.NoError(t, err)

	path := strings.TrimSpace(out[strings.LastIndex(strings.TrimSpace(out), "\n")+1:])
	assert.True(t, strings.HasPrefix(filepath.Base(path), "OKR-Gantt-Timeline-"))
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(content, []byte("%PDF")))

	leftovers, err := filepath.Glob(filepath.Join(dir, ".okr-report-*"))
	require.NoError(t, err)
	assert.Empty(t, leftovers)
}

func TestReportCommand_UnknownKind(t *testing.T) {
	out := filepath.Join(t.TempDir(), "r.pdf")

	_, err := runCommand(t, "report", "--kind", "weekly", "--out", out)

	assert.Error(t, err)
	assert.NoFileExists(t, out)
}
