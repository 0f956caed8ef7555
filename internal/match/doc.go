// Package match ranks configuration keys by edit distance so that unknown
// keys can be answered with a "did you mean" hint.
//
// Key functions:
//   - Levenshtein: edit distance between two identifiers
//   - Similarity: normalized score in [0, 1]
//   - Suggest: best alternative for a misspelled key
package match
