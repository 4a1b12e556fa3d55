//go:build unix

package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_RegeneratesStaleArtifact(t *testing.T) {
	t.Parallel()

	workDir := t.TempDir()
	source := filepath.Join(workDir, "src")
	artifact := filepath.Join(workDir, "artifact")
	ran := filepath.Join(workDir, "ran")

	// The artifact exists but predates the source, so the stage is stale.
	old := time.Now().Add(-time.Hour)
	require.NoError(t, os.WriteFile(artifact, []byte("out"), 0644))
	require.NoError(t, os.Chtimes(artifact, old, old))
	require.NoError(t, os.WriteFile(source, []byte("in"), 0644))

	plan := fmt.Sprintf(`
stage "gen" {
  source   = %q
  artifact = %q
  command  = ["sh", "-c", "touch %s"]
}
`, source, artifact, ran)

	app, out := newTestApp(t, false, plan)
	require.NoError(t, app.Run(context.Background()))

	_, err := os.Stat(ran)
	assert.NoError(t, err, "the stage command should have executed")
	assert.Contains(t, out.String(), "finished in")
}
