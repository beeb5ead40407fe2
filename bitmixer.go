package glud

import "hash/fnv"

// MurmurHash3 32-bit finalization mix
func mix32(v int) int {
	k := uint32(v)
	k = (k ^ (k >> 16)) * 0x85ebca6b
	k = (k ^ (k >> 13)) * 0xc2b2ae35
	return int(k ^ (k >> 16))
}

// mixName hashes a state name into a well distributed int.
func mixName(name string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(name))
	return mix32(int(h.Sum32()))
}
