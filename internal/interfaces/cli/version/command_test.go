package version

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	buildversion "github.com/stealthycommerce/stealthy/internal/shared/version"
)

func TestVersionCommand(t *testing.T) {
	orig := buildversion.Version
	buildversion.Version = "1.4.0"
	t.Cleanup(func() { buildversion.Version = orig })

	cmd := NewCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "stealthy v1.4.0")
}
