package wizard

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/modelbench/umlcmp/internal/projectconfig"
)

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	path := filepath.Join(dir, projectconfig.ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}
