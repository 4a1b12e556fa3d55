package hostenv

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExe(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "stagekit.exe", Exe("stagekit", "x86_64-pc-windows-msvc"))
	assert.Equal(t, "stagekit", Exe("stagekit", "x86_64-unknown-linux-gnu"))
}

func TestIsDylib(t *testing.T) {
	t.Parallel()

	assert.True(t, IsDylib("libfoo.so"))
	assert.True(t, IsDylib("libfoo.dylib"))
	assert.True(t, IsDylib("foo.dll"))
	assert.False(t, IsDylib("foo.a"))
	assert.False(t, IsDylib("foo"))
}

func TestIsDebugInfo(t *testing.T) {
	t.Parallel()

	assert.True(t, IsDebugInfo("foo.pdb"))
	assert.False(t, IsDebugInfo("foo.dll"))
}

func TestLibdir(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "bin", Libdir("aarch64-pc-windows-msvc"))
	assert.Equal(t, "lib", Libdir("aarch64-apple-darwin"))
}

func TestCurrentCI(t *testing.T) {
	t.Run("azure pipelines", func(t *testing.T) {
		t.Setenv("TF_BUILD", "True")
		t.Setenv("GITHUB_ACTIONS", "")
		assert.Equal(t, CiAzurePipelines, CurrentCI())
	})

	t.Run("github actions", func(t *testing.T) {
		t.Setenv("TF_BUILD", "")
		t.Setenv("GITHUB_ACTIONS", "true")
		assert.Equal(t, CiGitHubActions, CurrentCI())
	})

	t.Run("none", func(t *testing.T) {
		t.Setenv("TF_BUILD", "")
		t.Setenv("GITHUB_ACTIONS", "")
		assert.Equal(t, CiNone, CurrentCI())
	})
}
