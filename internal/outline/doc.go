// Package outline parses a plain-text course outline into note generation
// requests.
//
// Each raw line is classified by an ordered rule table ([Rules], first match
// wins) into noise, a section header, a lecture entry, a role-play entry or an
// unrecognized line. A [Walker] then folds the classified lines through an
// explicit [State]: section headers open a new section context (resolving its
// folder on disk), lecture entries inside a section produce one [Request]
// each, numbered densely from 1 within the section.
package outline
