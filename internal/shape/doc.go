// Package shape models the declared types of record fields and classifies
// them into the categories that drive accessor generation.
//
// Parse turns type text such as `Option<&'a str>` or
// `std::collections::HashMap<K, V>` into a Type tree; ParseGenerics does
// the same for a record's generic parameter list. Classify reduces a Type
// to a Shape: a closed Class plus the pieces of the type the generator
// needs (the optional's inner type, the collection's type arguments).
package shape
