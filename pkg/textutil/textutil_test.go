package textutil

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFold(t *testing.T) {
	table := []struct {
		input    string
		expected string
	}{
		{input: "Albert Einstein", expected: "albert einstein"},
		{input: "  J.K.   Rowling\t", expected: "j.k. rowling"},
		{input: "", expected: ""},
	}

	for _, row := range table {
		require.Equal(t, row.expected, Fold(row.input))
	}
}

func TestContainsFold(t *testing.T) {
	require.True(t, ContainsFold("Albert Einstein", "einstein"))
	require.True(t, ContainsFold("Albert Einstein", " ALBERT  "))
	require.True(t, ContainsFold("Albert Einstein", ""))
	require.False(t, ContainsFold("Albert Einstein", "rowling"))
}

func TestEqualFold(t *testing.T) {
	require.True(t, EqualFold("Love", "love"))
	require.True(t, EqualFold(" life ", "LIFE"))
	require.False(t, EqualFold("love", "lovely"))
}

func TestTitle(t *testing.T) {
	require.Equal(t, "Albert Einstein", Title("albert einstein"))
	require.Equal(t, "Émile Zola", Title("émile  zola"))
	require.Equal(t, "", Title("   "))
}
