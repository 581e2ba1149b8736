// Package merge implements a recursive, concatenating merge over nested
// configuration values.
//
// Values are classified into three kinds:
//   - sequence: any slice or array (byte slices excluded)
//   - mapping: any map with string keys
//   - scalar: everything else, including nil
//
// When two values meet at the same key the existing value is promoted to a
// container (a scalar x becomes [x]) and the incoming value is merged into it:
//
//	sequence + sequence -> concatenation, duplicates kept
//	mapping  + mapping  -> key-by-key, recursively; integer keys of the
//	                       incoming mapping are appended at the next free index
//	mapping  + sequence -> items appended under the next free numeric key
//	sequence + mapping  -> sequence re-keyed "0".."n-1", then mapping + mapping
//	container + scalar  -> scalar appended
//
// The rules never look at key names, so keys introduced by new providers are
// merged without code changes.
package merge
