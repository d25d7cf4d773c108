// Package pipeline runs a whole outline through the generator: it checks
// preconditions, reads the outline, resolves section folders on disk, emits
// one notes page per lecture, and reports a summary.
//
// Functions:
//   - Run(ctx, cfg, fs, log) → RunStats
//     Batch runner: require outline → read → walk → emit → summary.
//   - Plan(ctx, cfg, fs) → []outline.Request
//     Same walk without touching the filesystem.
//   - Analyze(ctx, cfg, fs, w) → []SectionRow
//     Per-section lecture counts with flags for suspicious sections.
//
// All filesystem access goes through afero so tests run on an in-memory fs.
package pipeline
