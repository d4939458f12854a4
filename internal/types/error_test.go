package types

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRejectionUnwrap(t *testing.T) {
	err := fmt.Errorf("place order: %w", Reject(KindTooFar, "That store is too far from you!"))

	r, ok := AsRejection(err)
	assert.True(t, ok)
	assert.Equal(t, KindTooFar, r.Kind)
	assert.Equal(t, "That store is too far from you!", r.Error())
	assert.True(t, IsKind(err, KindTooFar))
	assert.False(t, IsKind(err, KindNotFound))

	_, ok = AsRejection(fmt.Errorf("connection reset"))
	assert.False(t, ok)
}
