package crypto

import "io"

// SetRandReaderForTesting sets the random reader used for key, nonce and
// padding generation. This is intended for testing only. Returns a function to
// restore the original reader.
func SetRandReaderForTesting(r io.Reader) func() {
	original := randReader
	randReader = r
	return func() { randReader = original }
}
