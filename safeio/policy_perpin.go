//go:build !safeio_global_lock

package safeio

// Per-pin locking is the compiled-in default.
const defaultGlobalLock = false
