package chat

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalizePairIsOrderIndependent(t *testing.T) {
	a1, a2 := NormalizePair("alice", "bob")
	b1, b2 := NormalizePair("bob", "alice")

	require.Equal(t, a1, b1)
	require.Equal(t, a2, b2)
	require.Equal(t, "alice", a1)
	require.Equal(t, "bob", a2)
}

func TestNormalizePairSamePrincipal(t *testing.T) {
	u1, u2 := NormalizePair("alice", "alice")
	require.Equal(t, "alice", u1)
	require.Equal(t, "alice", u2)
}
