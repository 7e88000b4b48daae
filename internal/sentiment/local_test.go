package sentiment

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewLocalClassifier(t *testing.T) {
	c, err := NewLocalClassifier("")
	require.NoError(t, err)
	require.Equal(t, "lexical", c.Name())

	c, err = NewLocalClassifier(LOCAL_VADER)
	require.NoError(t, err)
	require.Equal(t, "vader", c.Name())

	_, err = NewLocalClassifier("bert")
	require.ErrorContains(t, err, "bert")
}
