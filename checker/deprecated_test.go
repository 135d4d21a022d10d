package checker_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/staticproof/checker"
)

func TestDeprecatedAliasSameVerdictPlusNotice(t *testing.T) {
	res := check(t, `
package fixture

import "github.com/teranos/staticproof/assert"

var _ = assert.EqSize[uint32, byte]
`)

	require.Len(t, res.Violations, 2)

	notice := res.Violations[0]
	assert.Equal(t, checker.KindDeprecated, notice.Kind)
	assert.Equal(t, checker.SeverityNotice, notice.Severity)
	assert.Contains(t, notice.Message, "use SizeEq instead")

	refutation := res.Violations[1]
	assert.Equal(t, checker.KindSizeMismatch, refutation.Kind)
	assert.Equal(t, "byte", refutation.Operand)

	assert.True(t, res.Failed())
}

func TestDeprecatedAliasNoticeDoesNotFailTrueProperty(t *testing.T) {
	res := check(t, `
package fixture

import "github.com/teranos/staticproof/assert"

var _ = assert.EqSize[[4]byte, uint32]
`)

	require.Len(t, res.Violations, 1)
	assert.Equal(t, checker.KindDeprecated, res.Violations[0].Kind)
	assert.False(t, res.Failed(), "a notice alone must not fail the run")
}

func TestDeprecationNoticesSuppressed(t *testing.T) {
	res := checkWith(t, `
package fixture

import "github.com/teranos/staticproof/assert"

var _ = assert.EqSize[[4]byte, uint32]

func f(a *uint64, b *float64) { assert.EqSizePtr(a, b) }
`, checker.Options{DeprecationNotices: false})

	assert.Empty(t, res.Violations)
	assert.Equal(t, 2, res.Assertions)
}
