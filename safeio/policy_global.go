//go:build safeio_global_lock

package safeio

// One lock for all GPIO pins: smallest footprint, maximum contention.
const defaultGlobalLock = true
