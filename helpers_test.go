package gosieray

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func assertTupleEqual(t *testing.T, want, got Tuple) {
	t.Helper()
	assert.Truef(t, want.Equal(got), "got %v, want %v", got, want)
}

func assertColorEqual(t *testing.T, want, got Color) {
	t.Helper()
	assert.Truef(t, want.Equal(got), "got %+v, want %+v", got, want)
}
