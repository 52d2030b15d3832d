// Package design holds the icon designs and the registry that names them.
//
// A design draws one square icon per call to Render. The built-in designs
// are:
//
//   - sv: blue field, yellow sun disc and a centered "SV" monogram
//   - logo: gradient, solar panel with grid, sun with rays and the wordmark
//   - simple: gradient with the centered wordmark (default)
//   - white: white field with a bold black and blue wordmark
//   - svg: a vector mark rasterized at every size
//
// Designs register themselves in init, so importing the package is enough
// to make them available through Lookup.
package design
