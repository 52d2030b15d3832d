// Package text loads fonts and turns them into sized faces for icon labels.
//
// The pipeline is split the same way as most font stacks:
//
//   - FontSource: parsed TTF/OTF data, shared by every size
//   - Face: a FontSource (or the built-in bitmap font) at one pixel size
//   - Lookup: finds installed fonts by family name
//   - Set: the regular/bold pair a design draws with, with bitmap fallback
//
// # Example usage
//
//	lookup := text.NewLookup("")
//	set := text.NewSet(lookup.Source("Arial", false), lookup.Source("Arial", true))
//
//	face := set.Face(512/5, false)
//	b := face.Bounds("Solar")
//	face.Draw(img, (512-b.Dx())/2-b.Min.X, 40, "Solar", color.White)
//
// When no scalable font can be found, Set hands out the fixed-size bitmap
// face returned by Bitmap, which always succeeds.
package text
