package utils

import "hash/fnv"

// StableHash returns a 32-bit FNV-1a hash of s. The value is stable across
// processes and releases, so it can drive anything users see persistently
// (rarity tiers, icon colors).
func StableHash(s string) uint32 {
	h := fnv.New32a()
	_, _ = h.Write([]byte(s))
	return h.Sum32()
}

// StableHashBytes is StableHash over raw bytes
func StableHashBytes(b []byte) uint32 {
	h := fnv.New32a()
	_, _ = h.Write(b)
	return h.Sum32()
}

// Bucket maps a hash into [0, n). n <= 0 yields 0.
func Bucket(h uint32, n int) int {
	if n <= 0 {
		return 0
	}
	return int(h % uint32(n))
}

// Mix derives an independent-looking value from h for the given salt,
// so one hash can pick several visual attributes without them correlating.
func Mix(h uint32, salt uint32) uint32 {
	x := h ^ (salt * 0x9E3779B1)
	x ^= x >> 16
	x *= 0x85EBCA6B
	x ^= x >> 13
	x *= 0xC2B2AE35
	x ^= x >> 16
	return x
}
