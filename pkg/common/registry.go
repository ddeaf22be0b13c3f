package common

import (
	"fmt"
	"sort"
)

// hashers is filled from init functions and read-only afterwards.
var hashers = map[Algorithm]Hasher{}

// AddHasher registers h under h.Algo, replacing any previous entry.
func AddHasher(h Hasher) {
	if !h.Algo.Valid() {
		panic(fmt.Sprintf("common: hasher %q has no catalogue entry", h.Name))
	}
	if h.Name == "" {
		h.Name = h.Algo.String()
	}
	hashers[h.Algo] = h
}

// GetDefaultHashAlgorithm returns the algorithm used when none is requested.
func GetDefaultHashAlgorithm() Algorithm {
	return SHA256
}

// GetHasher looks a hasher up by flag name or alias.
func GetHasher(name string) (Hasher, error) {
	algo, ok := ParseAlgorithm(name)
	if !ok {
		return Hasher{}, fmt.Errorf("unsupported algorithm: %s", name)
	}
	return GetHasherByAlgo(algo)
}

// GetHasherByAlgo returns the registered hasher for algo.
func GetHasherByAlgo(algo Algorithm) (Hasher, error) {
	h, ok := hashers[algo]
	if !ok {
		return Hasher{}, fmt.Errorf("algorithm not registered: %s", algo)
	}
	return h, nil
}

// GetAllHashers returns every registered hasher in catalogue order.
func GetAllHashers() []Hasher {
	all := make([]Hasher, 0, len(hashers))
	for _, h := range hashers {
		all = append(all, h)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Algo < all[j].Algo })
	return all
}

// GetAllHasherNames returns the canonical names of all registered hashers in catalogue order.
func GetAllHasherNames() []string {
	all := GetAllHashers()
	names := make([]string, 0, len(all))
	for _, h := range all {
		names = append(names, h.Name)
	}
	return names
}
