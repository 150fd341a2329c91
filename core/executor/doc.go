// Package executor applies reconciliation plans against the object store.
//
// Every transfer and delete runs sequentially, one object at a time, in plan order.
//
// # Confirmation policy
//
// Overwrites of existing keys (update entries) are gated by a Policy:
//
//   - interactive: one yes/no question per entry, re-asked on any other answer
//   - force-yes: every overwrite runs without a question
//   - force-no: every overwrite is skipped and logged without a question
//
// New uploads and downloads are never gated. Deleting a batch always needs the
// operator to type the literal "YES"; --yes does not bypass it.
//
// # Failure policy
//
//	put/get failure            -> ErrTransferFailed, run halts immediately
//	delete failure (per key)   -> logged, batch continues, ErrDeleteFailed at the end
//	declined delete batch      -> Result.Cancelled, nothing deleted, no error
//
// Questions are read through a Prompter so tests can drive them from a string.
package executor
