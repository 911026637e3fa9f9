package crypt

// Reseal opens an envelope with the old algorithm and password and seals the
// plaintext again with the new ones. Use it to change a master password or to
// move envelopes to a different algorithm.
func (c *Codec) Reseal(oldAlg, oldPassword, envelope, newAlg, newPassword string) (string, error) {
	if !Contains(newAlg) {
		return "", c.fail(newError(OpEncrypt, ErrInvalidAlgorithm, newAlg, nil))
	}

	plaintext, err := c.Decrypt(oldAlg, oldPassword, envelope)
	if err != nil {
		return "", err
	}

	return c.Encrypt(newAlg, newPassword, plaintext)
}

// NeedsReseal reports whether envelope was written with a registered
// algorithm other than alg.
//
// Note: Returns false when the header is not recognized. Use DetectAlgorithm
// to tell malformed envelopes apart.
func NeedsReseal(envelope string, alg Algorithm) bool {
	found, err := DetectAlgorithm(envelope)
	if err != nil {
		return false
	}
	return found != alg
}
