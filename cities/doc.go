// Package cities holds the read-only city records the route generator works
// on, plus thin loaders for the JSON and CSV tables they usually come from.
//
// A record carries a display name (possibly with a bracketed footnote such as
// "Boston[c]"), a textual coordinate string and a dense 1-based popularity
// rank. Records are never mutated after loading.
package cities
