/*
Package utils provides decorators that every transaction passes through:
panic recovery, logging, savepoints and result tagging.
*/
package utils
