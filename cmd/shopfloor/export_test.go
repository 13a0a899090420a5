package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func writeConfig(t *testing.T) string {
	t.Helper()
	seedPath, err := filepath.Abs("../../config/seed.yaml")
	require.NoError(t, err)

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := fmt.Sprintf(`env: prod
error_log: %s
dataset:
  driver: seed
  seed_path: %s
`, filepath.Join(dir, "errors.log"), seedPath)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// Тест: export пишет xlsx с отфильтрованными нарядами
func TestExportCommand(t *testing.T) {
	cfgPath := writeConfig(t)
	out := filepath.Join(t.TempDir(), "reports", "report.xlsx")

	var stdout bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetArgs([]string{"--config", cfgPath, "export", "-o", out, "--filter", "status=in-progress"})
	require.NoError(t, cmd.Execute())

	assert.Contains(t, stdout.String(), out)

	f, err := excelize.OpenFile(out)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Наряды")
	require.NoError(t, err)
	require.Greater(t, len(rows), 1)
	for _, row := range rows[1:] {
		assert.Equal(t, "in-progress", row[4])
	}
}

func TestExportCommand_BadFilter(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{"--config", writeConfig(t), "export", "--filter", "from=yesterday"})
	assert.Error(t, cmd.Execute())
}
