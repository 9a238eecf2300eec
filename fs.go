package main

import "io/fs"

// FS groups the filesystem interfaces that embed.FS and the result of
// os.DirFS() have in common. Asset loading goes through an FS value, so the
// same code serves a release build (images embedded in the executable) and a
// development run (images read from the working directory, editable while the
// toy runs).
type FS interface {
	fs.FS
	fs.ReadFileFS
	fs.ReadDirFS
}
