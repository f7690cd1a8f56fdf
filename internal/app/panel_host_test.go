package app

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingBackend struct {
	shutdowns int
}

func (b *countingBackend) Shutdown() {
	b.shutdowns++
}

func startWith(b *countingBackend, setupErr error) (err error) {
	defer shutdownOnError(&err, b)
	if setupErr != nil {
		return setupErr
	}
	return nil
}

func TestShutdownOnErrorReleasesFailedSetup(t *testing.T) {
	b := &countingBackend{}

	err := startWith(b, errors.New("framebuffer incomplete"))
	require.Error(t, err)
	assert.Equal(t, 1, b.shutdowns)
}

func TestShutdownOnErrorKeepsRunningBackend(t *testing.T) {
	b := &countingBackend{}

	require.NoError(t, startWith(b, nil))
	assert.Zero(t, b.shutdowns)
}
