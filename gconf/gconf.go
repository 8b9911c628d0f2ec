package gconf

import (
	"github.com/iov-one/ledger"
	"github.com/iov-one/ledger/errors"
)

// confSection is the genesis section holding the configuration of every
// package, keyed by package name.
const confSection = "conf"

// ReadStore is a subset of ledger.ReadOnlyKVStore.
type ReadStore interface {
	Get([]byte) ([]byte, error)
}

// Store is a subset of ledger.KVStore.
type Store interface {
	ReadStore
	Set([]byte, []byte) error
}

// ValidMarshaler can check and serialize itself.
type ValidMarshaler interface {
	Marshal() ([]byte, error)
	Validate() error
}

// Unmarshaler can load its state from the binary representation.
type Unmarshaler interface {
	Unmarshal([]byte) error
}

// Configuration is the state a package keeps under its configuration key.
type Configuration interface {
	ValidMarshaler
	Unmarshaler
}

// Defaulter is implemented by configurations that can be used without
// ever being saved.
type Defaulter interface {
	Configuration
	SetDefaults()
}

func configKey(pkg string) []byte {
	return []byte("_c:" + pkg)
}

// Save validates the configuration and writes it under the key of pkg.
// An invalid configuration is never written.
func Save(db Store, pkg string, src ValidMarshaler) error {
	key := configKey(pkg)
	if err := src.Validate(); err != nil {
		return errors.Wrapf(err, "validation: key %q", key)
	}
	raw, err := src.Marshal()
	if err != nil {
		return errors.Wrapf(err, "marshal: key %q", key)
	}
	return db.Set(key, raw)
}

// Load reads the configuration of pkg into dst. ErrNotFound is returned
// if nothing was saved, ErrModel if the stored state does not validate.
func Load(db ReadStore, pkg string, dst Configuration) error {
	key := configKey(pkg)
	raw, err := db.Get(key)
	if err != nil {
		return errors.Wrap(errors.ErrDatabase, err.Error())
	}
	if raw == nil {
		return errors.Wrapf(errors.ErrNotFound, "key %q", key)
	}
	if err := dst.Unmarshal(raw); err != nil {
		return errors.Wrapf(errors.ErrModel, "unmarshal: key %q: %s", key, err)
	}
	if err := dst.Validate(); err != nil {
		return errors.Wrapf(err, "stored configuration: key %q", key)
	}
	return nil
}

// LoadOrDefault works like Load, but sets the defaults of dst when the
// package configuration was never saved.
func LoadOrDefault(db ReadStore, pkg string, dst Defaulter) error {
	switch err := Load(db, pkg, dst); {
	case err == nil:
		return nil
	case errors.ErrNotFound.Is(err):
		dst.SetDefaults()
		return nil
	default:
		return err
	}
}

// InitConfig reads genesis conf[pkg] into conf and saves it. ErrNotFound
// is returned when genesis carries no configuration for the package.
func InitConfig(db Store, opts ledger.Options, pkg string, conf Configuration) error {
	var confOptions ledger.Options
	if err := opts.ReadOptions(confSection, &confOptions); err != nil {
		return errors.Wrap(errors.ErrInput, err.Error())
	}
	if confOptions[pkg] == nil {
		return errors.Wrapf(errors.ErrNotFound, "no configuration in genesis for %q package", pkg)
	}
	if err := confOptions.ReadOptions(pkg, conf); err != nil {
		return errors.Wrapf(errors.ErrInput, "read configuration for %s: %s", pkg, err)
	}
	if err := Save(db, pkg, conf); err != nil {
		return errors.Wrapf(err, "save configuration for %s", pkg)
	}
	return nil
}
