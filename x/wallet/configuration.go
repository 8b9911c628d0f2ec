package wallet

import (
	"github.com/iov-one/ledger"
	"github.com/iov-one/ledger/errors"
	"github.com/iov-one/ledger/gconf"
)

var _ gconf.Defaulter = (*Configuration)(nil)

const (
	confPkg = "wallet"

	// DefaultMaxNameLen is used when no configuration was saved.
	DefaultMaxNameLen = 64
)

// Validate makes sure the configuration can be saved.
func (c *Configuration) Validate() error {
	if c.MaxNameLen <= 0 || c.MaxNameLen > MaxNameLenLimit {
		return errors.Wrapf(errors.ErrModel, "max name length must be in [1, %d]", MaxNameLenLimit)
	}
	for i, id := range c.Issuers {
		if err := id.Validate(); err != nil {
			return errors.Wrapf(err, "issuer %d", i)
		}
	}
	return nil
}

// CanIssue returns true if given identity is allowed to issue funds.
func (c *Configuration) CanIssue(id ledger.Identity) bool {
	if len(c.Issuers) == 0 {
		return true
	}
	for _, issuer := range c.Issuers {
		if issuer.Equals(id) {
			return true
		}
	}
	return false
}

// DefaultConfiguration allows everyone to issue.
func DefaultConfiguration() Configuration {
	var c Configuration
	c.SetDefaults()
	return c
}

// SetDefaults is used when no configuration was saved.
func (c *Configuration) SetDefaults() {
	*c = Configuration{MaxNameLen: DefaultMaxNameLen}
}

// loadConf returns the saved configuration, or the default one if
// nothing was saved.
func loadConf(db gconf.ReadStore) (Configuration, error) {
	var conf Configuration
	if err := gconf.LoadOrDefault(db, confPkg, &conf); err != nil {
		return conf, errors.Wrap(err, "load configuration")
	}
	return conf, nil
}
