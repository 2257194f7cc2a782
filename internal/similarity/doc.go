// Package similarity builds the TF-IDF vector space and the all-pairs cosine
// similarity matrix for a movie catalog, and ranks nearest neighbours.
//
// An Index is built once per process with Build and is read-only afterwards,
// so it can be shared between goroutines without locking.
package similarity
