// Package vocab implements the vocabulary store: an ordered, de-duplicated
// collection of entries with add/update/remove, a two-level sort and
// line-oriented import/export of the comma-separated .lang format.
//
// The store is owned by one presentation layer at a time and is not safe for
// concurrent use.
package vocab
