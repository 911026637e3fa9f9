// Package crypt seals text into armored, line-wrapped AEAD envelopes and
// opens them again.
//
// An envelope is plain ASCII that survives copy/paste and email:
//
//	----------------------- crypt-aes-256-gcm prefix -----------------------
//	kVv0m7q3xR... (base64, wrapped at 72 columns)
//	----------------------- crypt-aes-256-gcm suffix -----------------------
//
// The header and footer depend only on the algorithm identifier, so an
// envelope names the algorithm that opens it.
//
// # Algorithms
//
// The registry is fixed and ordered:
//
//   - crypt-aes-256-gcm: AES-256-GCM
//   - crypt-aes-256-gcm-siv: AES-256-GCM-SIV (RFC 8452)
//   - crypt-chacha20-poly1305: ChaCha20-Poly1305 (RFC 8439)
//
// Use Count, At, Contains and Algorithms to inspect it.
//
// # Basic Usage
//
//	envelope, err := crypt.Encrypt("crypt-aes-256-gcm", "secret", "hello")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	plaintext, err := crypt.Decrypt("crypt-aes-256-gcm", "secret", envelope)
//
// # Key Material
//
// The 32-byte key is the password (first 31 bytes at most) followed by a fill
// byte, and the 12-byte nonce is the first 12 bytes of the key. This matches
// envelopes written by earlier implementations exactly. It is NOT a password
// hash and the nonce repeats for every envelope under the same password;
// prefer crypt-aes-256-gcm-siv, which stays safe under nonce reuse, and treat
// the scheme as obfuscation-grade for weak passwords.
//
// # Errors
//
// Every failure is an *Error whose Kind is one of the Err* sentinels:
//
//	_, err := crypt.Decrypt(alg, "wrong", envelope)
//	if errors.Is(err, crypt.ErrAuthenticationFailed) {
//	    // wrong password or tampered body
//	}
//
// Package host converts these into the "error:..." marker strings used at
// string-only boundaries such as WebAssembly.
//
// # Compression
//
// WithCompression zstd-compresses large plaintexts before sealing. Decrypt
// always recognizes compressed payloads, but other implementations do not,
// so leave it off for envelopes that must interoperate.
package crypt
