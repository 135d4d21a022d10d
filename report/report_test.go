package report

import (
	"bytes"
	"encoding/json"
	"go/token"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/staticproof/checker"
)

func sampleResult() checker.Result {
	return checker.Result{
		Packages:   2,
		Assertions: 5,
		Violations: []checker.Violation{
			{
				Pos:       token.Position{Filename: "frame.go", Line: 12, Column: 9},
				Assertion: "SizeEq",
				Kind:      checker.KindSizeMismatch,
				Severity:  checker.SeverityError,
				Operand:   "byte",
				Message:   "SizeEq: byte is 1 bytes, want 4 (size of uint32)",
			},
			{
				Pos:       token.Position{Filename: "legacy.go", Line: 3, Column: 9},
				Assertion: "EqSize",
				Kind:      checker.KindDeprecated,
				Severity:  checker.SeverityNotice,
				Message:   "EqSize is deprecated; use SizeEq instead",
			},
		},
	}
}

func TestRenderPlain(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf, FormatPlain)
	require.NoError(t, r.Render(sampleResult()))

	out := buf.String()
	assert.Contains(t, out, "frame.go:12:9: error: SizeEq: byte is 1 bytes, want 4")
	assert.Contains(t, out, "legacy.go:3:9: notice: EqSize is deprecated")
	assert.Contains(t, out, "1 of 5 assertions refuted across 2 packages (1 notices)")
}

func TestRenderPlainAllVerified(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf, FormatPlain)
	require.NoError(t, r.Render(checker.Result{Packages: 3, Assertions: 7}))

	assert.Equal(t, "7 assertions verified across 3 packages\n", buf.String())
}

func TestRenderJSON(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf, FormatJSON)
	require.NoError(t, r.Render(sampleResult()))

	var decoded checker.Result
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, 5, decoded.Assertions)
	require.Len(t, decoded.Violations, 2)
	assert.Equal(t, checker.KindSizeMismatch, decoded.Violations[0].Kind)
	assert.Equal(t, "byte", decoded.Violations[0].Operand)
	assert.True(t, decoded.Failed())
}

func TestRenderTerminalCarriesFullMessage(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf, FormatTerminal)
	require.NoError(t, r.Render(sampleResult()))

	// Color codes aside, positions and messages must survive verbatim.
	out := buf.String()
	assert.Contains(t, out, "frame.go:12:9")
	assert.Contains(t, out, "SizeEq: byte is 1 bytes, want 4 (size of uint32)")
	assert.Contains(t, out, "refuted")
}
