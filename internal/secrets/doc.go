// Package secrets turns resolved key/value pairs into the byte material that
// the generated source embeds.
//
// # Cipher Modes
//
//   - xor: a random salt (32 bytes by default) is XORed over each value's
//     UTF-8 bytes, repeating as needed. This is obfuscation, not encryption.
//   - aes-gcm: one random 256-bit key per generation; every value is sealed
//     with AES-256-GCM under its own random 96-bit nonce.
//   - chacha20: the same key and nonce discipline with ChaCha20-Poly1305.
//
// AEAD entries use the combined layout nonce(12) || ciphertext || tag(16),
// so the nonce travels with each value.
//
// # Security Considerations
//
// The key always ships in the same artifact as the ciphertext. Anyone with
// the compiled binary can recover the values; the AEAD modes only add
// tamper detection and make casual inspection harder.
//
// Reusing a nonce under one key breaks GCM and Poly1305 completely. Encode
// draws each nonce independently from the random source and never derives
// one from a counter or from another nonce.
package secrets
