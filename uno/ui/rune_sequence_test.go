package ui

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRuneSequence(t *testing.T) {
	sequence := runeSequence{}
	require.Equal(t, 'A', sequence.next())
	require.Equal(t, 'B', sequence.next())
	require.Equal(t, 'C', sequence.next())
}
