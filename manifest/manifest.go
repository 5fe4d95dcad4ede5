package manifest

import (
	"bytes"
	"encoding/json"
)

// FileSuffix is appended to the animal name to form the manifest file name.
const FileSuffix = "_sprites.json"

// FileName returns the manifest file name for animal.
func FileName(animal string) string {
	return animal + FileSuffix
}

// Frame is one probed frame file.
type Frame struct {
	Name   string
	Result FrameResult
}

// Animal is one animal folder and its frames in sorted order.
type Animal struct {
	Name   string
	Frames []Frame
}

// Unreadable counts frames whose probe failed.
func (a Animal) Unreadable() int {
	n := 0
	for _, f := range a.Frames {
		if !f.Result.OK() {
			n++
		}
	}
	return n
}

// FrameDescriptor is the JSON form of a frame. W and H are both null when
// the frame could not be read.
type FrameDescriptor struct {
	File string `json:"file"`
	W    *int   `json:"w"`
	H    *int   `json:"h"`
}

// Document is the JSON form of an animal manifest.
type Document struct {
	Animal string            `json:"animal"`
	Frames []FrameDescriptor `json:"frames"`
}

// Document converts the animal into its serialized shape.
func (a Animal) Document() Document {
	doc := Document{
		Animal: a.Name,
		Frames: make([]FrameDescriptor, 0, len(a.Frames)),
	}
	for _, f := range a.Frames {
		fd := FrameDescriptor{File: f.Name}
		if f.Result.OK() {
			w, h := f.Result.Width, f.Result.Height
			fd.W, fd.H = &w, &h
		}
		doc.Frames = append(doc.Frames, fd)
	}
	return doc
}

// Marshal renders the manifest as two-space indented JSON with non-ASCII
// and HTML characters left unescaped.
func (a Animal) Marshal() ([]byte, error) {
	return encodeJSON(a.Document())
}

func encodeJSON(v interface{}) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
