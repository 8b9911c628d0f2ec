package server

import (
	"testing"

	"github.com/iov-one/ledger/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	abci "github.com/tendermint/tendermint/abci/types"
	"github.com/tendermint/tendermint/libs/log"
)

func TestParseFlags(t *testing.T) {
	addr, debug, err := parseFlags(nil)
	require.NoError(t, err)
	assert.Equal(t, defaultBind, addr)
	assert.False(t, debug)

	addr, debug, err = parseFlags([]string{"-bind", "unix:///tmp/msig.sock", "-debug"})
	require.NoError(t, err)
	assert.Equal(t, "unix:///tmp/msig.sock", addr)
	assert.True(t, debug)

	_, _, err = parseFlags([]string{"-unknown"})
	assert.True(t, errors.ErrInput.Is(err))
}

func TestStartCmdErrors(t *testing.T) {
	logger := log.NewNopLogger()

	var called bool
	gen := func(home string, logger log.Logger, debug bool) (abci.Application, error) {
		called = true
		assert.True(t, debug)
		return nil, errors.Wrap(errors.ErrDatabase, "cannot open")
	}

	err := StartCmd(gen, logger, "", []string{"-unknown"})
	assert.True(t, errors.ErrInput.Is(err))
	assert.False(t, called)

	err = StartCmd(gen, logger, "", []string{"-debug"})
	assert.True(t, errors.ErrDatabase.Is(err))
	assert.True(t, called)

	// the listener address is validated before serving
	ok := func(string, log.Logger, bool) (abci.Application, error) {
		return abci.NewBaseApplication(), nil
	}
	err = StartCmd(ok, logger, "", []string{"-bind", "nonsense"})
	assert.Error(t, err)
}
