// Package encode writes events as text.
//
// [Writer] produces compact output and [PrettyWriter] indented output.
// Both are stream.Handlers, so they can be fed by the reader directly,
// by an ir.Value replaying itself, or by hand:
//
//	w := encode.NewWriter(os.Stdout)
//	w.StartArray()
//	w.Int32(1)
//	w.Double(2)
//	w.EndArray()
//	// [1,2.0]
//
// Strings and keys are quoted with the reader's escapes reversed; other
// control characters become \u00XX and everything else, including
// non-ASCII UTF-8, is written as is. Doubles are written in the shortest
// form that reads back to the same value, with a ".0" suffix when that
// form would otherwise read back as an integer, and as NaN, Infinity or
// -Infinity when not finite.
//
// Setting TJ_DEBUG_WRITE in the environment logs the events a writer
// receives.
package encode
