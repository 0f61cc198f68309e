package version

import (
	"encoding/json"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jpamies/worldcup-squad-selector/internal/cmd/application"
	"github.com/jpamies/worldcup-squad-selector/internal/cmd/cmdtest"
)

func TestVersionText(t *testing.T) {
	app := &application.Mock{
		VersionFunc: func() string { return "1.2.3" },
	}
	out, err := cmdtest.Run(NewCommand(app))
	require.NoError(t, err)
	assert.Contains(t, out, "squadselector version 1.2.3\n")
	assert.Contains(t, out, "commit: unknown\n")
	assert.Contains(t, out, "built by: test\n")
}

func TestVersionJSON(t *testing.T) {
	app := &application.Mock{
		OutputFormatFunc: func() string { return "json" },
		CommitFunc:       func() string { return "abc123" },
	}
	out, err := cmdtest.Run(NewCommand(app))
	require.NoError(t, err)

	var info Info
	require.NoError(t, json.Unmarshal([]byte(out), &info))
	assert.Equal(t, "dev", info.Version)
	assert.Equal(t, "abc123", info.Commit)
	assert.Equal(t, runtime.Version(), info.GoVersion)
	assert.Equal(t, runtime.GOOS+"/"+runtime.GOARCH, info.Platform)
}
