// Package pipeline orchestrates batch runs: target discovery across
// sibling subdirectories, sequential per-file splitting, and summary
// reporting. Discovery returns data only; the splitter is the sole
// component that writes files.
package pipeline
