/*
Package state implements Axiom's object-based state model.

All on-chain state is represented as isolated, versioned objects held by an
in-memory store. The package provides:

  - StateObject: the smallest unit of mutable state, owned by one address,
    with a strictly monotonic version counter
  - Store: a version-aware map from object ID to object with atomic,
    conflict-checked write-set application
  - nonce and balance object derivation in reserved namespaces
  - the canonical state-root commitment over the whole store

# Versioning discipline

Objects are created at version 0. Every mutation produces a NEW object with
version = prior + 1 and the same id and owner; callers never mutate an object
in place. Store.Apply validates reads (optimistic concurrency) and write
version monotonicity in full before touching the map, so a failed apply
leaves the store byte-identical to its prior state.

# Nonce as version

The nonce "value" of an account is the version counter of its nonce object;
the data payload stays empty. There is deliberately no parallel nonce counter
anywhere else.

# Determinism

The store is an unordered map. Anything that hashes its contents must sort
first; ComputeStateRoot sorts by object ID, so rebuilding the same logical
object set in any insertion order yields the same root.
*/
package state
