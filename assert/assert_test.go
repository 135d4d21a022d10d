package assert_test

import (
	"sync"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sp "github.com/teranos/staticproof/assert"
)

// The package-level forms below are the canonical use: instantiated
// function values bound to blank identifiers, checked by staticproof and
// never called. They double as a compile check that every marker admits
// arbitrary type arguments without interface or comparability demands.
var (
	_ = sp.SizeEq[[4]byte, struct{ Lo, Hi uint16 }]
	_ = sp.SizeEq3[[4]byte, struct{ Lo, Hi uint16 }, uint32]
	_ = sp.SizeEq4[[8]byte, [2]uint32, uint64, float64]
	_ = sp.EqSize[[4]byte, uint32]
)

// guarded is the non-duplicable analogue: copying it would copy the mutex,
// which go vet's copylocks check forbids. Only the pointer form may name it.
type guarded struct {
	mu sync.Mutex
	n  int
}

func TestSizeMarkersAreNoOps(t *testing.T) {
	x := uint8(10)
	y := struct{ b byte }{42}

	sp.SizeEqVal(x, y)
	sp.SizeEqVal3(x, y, uint8(0))
	sp.EqSizeVal(x, y)

	// Operands are untouched after the assertion.
	assert.Equal(t, uint8(10), x)
	assert.Equal(t, byte(42), y.b)
}

func TestPtrFormLeavesOperandUsable(t *testing.T) {
	g := &guarded{}
	raw := &struct {
		mu sync.Mutex
		n  int
	}{}

	sp.SizeEqPtr(g, raw)
	sp.EqSizePtr(g, raw)

	// The value is still live and lockable; nothing was moved or aliased.
	g.mu.Lock()
	g.n = 7
	g.mu.Unlock()
	assert.Equal(t, 7, g.n)
}

func TestDocumentedExamplesHoldOnThisPlatform(t *testing.T) {
	// Cross-check the sizes the package documentation claims are equal.
	require.Equal(t, unsafe.Sizeof([4]byte{}), unsafe.Sizeof(struct{ Lo, Hi uint16 }{}))
	require.Equal(t, unsafe.Sizeof([4]byte{}), unsafe.Sizeof(uint32(0)))
	require.NotEqual(t, unsafe.Sizeof(uint32(0)), unsafe.Sizeof(byte(0)))
}
