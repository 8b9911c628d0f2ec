/*
Package orm provides an easy to use db wrapper

Break state space into prefixed sections called Buckets.
* Each bucket contains only one type of object.
* Objects are stored under the bucket prefix followed by their key.
* Sequences generate ever growing, lexicographically ordered ids.
*/
package orm
