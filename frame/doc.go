// The frame subpackage defines the transient per-frame state that a
// scanning pass fills with row data and styling, and a draw submission
// pass consumes exactly once.
//
// A [State] goes through four phases:
//   - Empty: freshly created or reset by a [Pool].
//   - Populated: rows, an underline descriptor and/or a background
//     texture have been set.
//   - Submitted: a renderer has started consuming it. The state is
//     read-only from here on.
//   - Retired: consumed. Any further use is a bug and panics.
package frame
