// Package naming turns parsed header metadata plus folder context into
// deterministic output file names.
//
// The policy is pure (no filesystem access) so it can be unit-tested
// without I/O:
//   - SanitizeFolder(folder) → folder with a trailing separator enforced
//   - BuildName(style, folder, info) → (base name, output header line)
//   - OutputPath(dir, base) → dir/base.fasta
//
// Tracker detects in-run output name collisions; detection is advisory and
// never changes the computed name.
package naming
