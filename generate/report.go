package generate

import "fmt"

// File is one written or verified output file.
type File struct {
	Name  string // base name, e.g. icon-72x72.png
	Path  string
	Size  int   // width and height in pixels
	Bytes int64 // file size on disk
}

// Report lists the files produced or checked by one run.
type Report struct {
	Design string
	Files  []File
}

func (r *Report) add(f File) {
	r.Files = append(r.Files, f)
}

// Bytes returns the total size of all files.
func (r *Report) Bytes() int64 {
	var n int64
	for _, f := range r.Files {
		n += f.Bytes
	}
	return n
}

// String summarizes the report in one line.
func (r *Report) String() string {
	return fmt.Sprintf("%s: %d files, %d bytes", r.Design, len(r.Files), r.Bytes())
}
