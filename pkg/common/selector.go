package common

// NoAlgorithmSelected is printed when nothing was requested and the default is suppressed.
const NoAlgorithmSelected = "no algorithm selected"

// Selection is the outcome of resolving the requested algorithm flags.
type Selection struct {
	Hasher Hasher
	// Defaulted is set when no flag was active and the fallback was used.
	Defaulted bool
	// None is set when no flag was active and the fallback was suppressed.
	None bool
	// Ignored lists the active algorithms that lost to Hasher.
	Ignored []Algorithm
}

// Text returns the fixed output for an empty selection.
func (s Selection) Text() string {
	if s.None {
		return NoAlgorithmSelected
	}
	return ""
}

// Select resolves exactly one algorithm from the active flags.
// The earliest active algorithm in catalogue order wins; later ones are
// returned in Ignored. With nothing active, fallback is used unless
// useDefault is false.
func Select(active func(Algorithm) bool, fallback Algorithm, useDefault bool) (Selection, error) {
	var sel Selection
	found := false
	for _, algo := range Algorithms() {
		if !active(algo) {
			continue
		}
		if found {
			sel.Ignored = append(sel.Ignored, algo)
			continue
		}
		h, err := GetHasherByAlgo(algo)
		if err != nil {
			return Selection{}, err
		}
		sel.Hasher = h
		found = true
	}
	if found {
		return sel, nil
	}

	if !useDefault {
		return Selection{None: true}, nil
	}
	h, err := GetHasherByAlgo(fallback)
	if err != nil {
		return Selection{}, err
	}
	return Selection{Hasher: h, Defaulted: true}, nil
}
