/*
Package gconf implements a configuration store intended to be used as a global,
in-database configuration.

Each extension keeps a single configuration object under the "_c:<pkg>" key.
It is loaded from the genesis file once, and read by handlers whenever a
transaction needs it.
*/
package gconf
