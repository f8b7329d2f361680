// Package decoder turns a binary CGM byte stream into a [model.Document].
//
// Decoding runs two nested dispatch loops over a [core.Reader]. The
// metafile loop consumes descriptor elements until the input is exhausted;
// each BEGIN PICTURE hands control to the picture loop, which consumes
// picture descriptor, control, attribute and primitive elements until the
// matching END PICTURE.
//
// Usage:
//
//	doc, err := decoder.Decode(data)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, pic := range doc.Pictures {
//	    fmt.Println(pic.Name, len(pic.Polylines))
//	}
//
// Precision declarations made at metafile level are frozen once a picture
// begins and are passed into the picture loop by value.
//
// Elements the decoder does not interpret are skipped by their declared
// length, which keeps the cursor aligned with the next command. Every
// other anomaly is fatal and is reported as a [*core.DecodeError]; no
// partial document is returned. The only soft path is a direct colour with
// an unexpected length, which is logged and replaced with black.
package decoder
