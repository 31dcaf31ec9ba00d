package termio

import (
	"os"
	"testing"

	"github.com/consensys/go-algebra/pkg/util/assert"
)

func Test_Escapes(t *testing.T) {
	assert.Equal(t, "\033[32m", NewAnsiEscape().FgColour(TERM_GREEN).Build())
	assert.Equal(t, "\033[1;31m", BoldAnsiEscape().FgColour(TERM_RED).Build())
	assert.Equal(t, "\033[0m", ResetAnsiEscape().Build())
}

func Test_IsTerminal_File(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "report")
	assert.True(t, err == nil)
	//
	defer f.Close()
	//
	assert.False(t, IsTerminal(f))
}
