// Package cryptox holds the cryptographic primitives of the vault:
//
//   - KDF: PBKDF2-HMAC-SHA256 turning a passkey and a per-entry salt into a
//     32-byte data-encryption key.
//   - Cipher: authenticated encryption (AES-256-GCM or XChaCha20-Poly1305)
//     with the nonce prepended to the sealed output.
//   - PasswordHasher: the login verifier, either a plain SHA-256 digest or a
//     salted Argon2id record.
//
// The login verifier and the entry KDF are deliberately different
// primitives: the verifier never yields a key able to open stored entries.
package cryptox
