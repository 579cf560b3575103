/*
Package protocol stitches the per-transaction pipeline together.

One transaction flows through four stages:

	ExternalTransaction
	        │
	        ▼
	┌──────────────┐   nonce check, forced nonce write
	│   prepare    │──────────────────────────────────┐
	└──────┬───────┘                                  │
	       ▼                                          │
	┌──────────────┐   read/intent merge, ownership,  │
	│    plan      │   forced fee write               │
	└──────┬───────┘                                  │
	       ▼                                          │
	┌──────────────┐   pluggable engine, read-only    │
	│   execute    │   view, proposed writes          │
	└──────┬───────┘                                  │
	       ▼                                          ▼
	┌──────────────┐   forced writes + engine writes
	│   commit     │   re-checked reads, atomic apply
	└──────────────┘

Any stage failure aborts the transaction with zero state change; block
execution records the failure as a receipt and moves on. Engine writes may
never shadow protocol-forced writes (the nonce bump and the fee charge), so
a misbehaving engine cannot corrupt either.
*/
package protocol
