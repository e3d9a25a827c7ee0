package sound

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type brokenWriter struct{}

func (brokenWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestBeepRingsBell(t *testing.T) {
	var buf bytes.Buffer
	NewBeeper(&buf).Beep()

	assert.Equal(t, "\a", buf.String())
}

func TestBeepSwallowsFailures(t *testing.T) {
	assert.NotPanics(t, func() {
		NewBeeper(brokenWriter{}).Beep()
		NewBeeper(nil).Beep()
		var b *Beeper
		b.Beep()
	})
}
