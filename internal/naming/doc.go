// Package naming turns free-form outline titles into filesystem-safe names
// and owns the section folder naming convention.
//
// Functions:
//   - Sanitize(raw) → string
//     Strips non-printable ASCII, reserved filename characters and quote
//     marks; collapses whitespace; trims trailing dots and spaces.
//   - SectionFolderName(number, title) → "NN - Title"
//   - MatchesSection(dirName, number) reports whether an existing folder
//     belongs to a section, ignoring its title suffix.
package naming
