package notify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitAddrParsesHostAndPort(t *testing.T) {
	host, port, err := splitAddr("localhost:9000")
	require.NoError(t, err)
	assert.Equal(t, "localhost", host)
	assert.Equal(t, 9000, port)
}

func TestSplitAddrRejectsMissingPort(t *testing.T) {
	_, _, err := splitAddr("localhost")
	assert.Error(t, err)
}

func TestSplitAddrRejectsNonNumericPort(t *testing.T) {
	_, _, err := splitAddr("localhost:notaport")
	assert.Error(t, err)
}

func TestNotifyWithEmptyAddrIsNoop(t *testing.T) {
	n := OSCNotifier{}
	assert.NotPanics(t, func() {
		n.Notify("save", "SYNTHS/SYNT001.XML")
	})
}
