package common

// DefaultMaxAttempts is the number of consecutive failed password or
// passkey checks an account may accumulate before it is locked out.
const DefaultMaxAttempts = 3
