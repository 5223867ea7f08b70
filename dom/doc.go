// Package dom builds ir.Value trees from events.
//
// A [Document] is a stream.Handler whose root is the first value it
// receives. Open arrays and objects are tracked with an explicit stack of
// frames, so arbitrarily deep input never recurses:
//
//	d, err := dom.ParseString(`{"a": [1, 2]}`)
//	if err != nil {
//		return err
//	}
//	d.Get("a").Index(0).SetInt32(7)
//	s, err := encode.EncodeString(d.Value)
//
// Since a Document is also an ir.Value it can replay itself into any
// handler with WriteTo, which is how parse, modify and serialize pipelines
// are written.
//
// Setting TJ_DEBUG_BUILD in the environment logs every event a Document
// receives.
package dom
