// Package password hashes and verifies account secrets.
//
// New hashes are Argon2id in the PHC string form
// $argon2id$v=19$m=<KiB>,t=<iterations>,p=<parallelism>$<salt>$<key>.
// Bcrypt hashes ($2a$, $2b$, $2y$) imported from other systems are accepted
// for verification only. A hash starting with "!" is unusable and never
// verifies. Stored hashes are untrusted input to Verify.
package password
