package parser

import "fmt"

// Decode reverses the two-byte XOR obfuscation applied to world-variant
// ngLog files. The input is taken as consecutive non-overlapping byte
// pairs (b0, b1), each producing one output byte b0^b1, so the output is
// exactly half the input length. An odd-length input cannot be paired
// and fails with ErrMalformedInput before any decoding happens.
//
// The transform is fixed: it matches the scheme written by the known
// games, with no generalization to other obfuscation variants.
func Decode(data []byte) ([]byte, error) {
	if len(data)%2 != 0 {
		return nil, fmt.Errorf("%w: non-even log length %d", ErrMalformedInput, len(data))
	}
	decoded := make([]byte, len(data)/2)
	for i := range decoded {
		decoded[i] = data[2*i] ^ data[2*i+1]
	}
	return decoded, nil
}
