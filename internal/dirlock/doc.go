// Package dirlock serializes real organize runs per target directory.
//
// Locks are advisory flock(2) locks on files under the state directory, keyed
// by a hash of the absolute target path, so two processes organizing the same
// directory cannot interleave their moves. Different directories never
// contend.
package dirlock
