package manifest

// IndexEntry is one animal in the character index.
type IndexEntry struct {
	Frames int `json:"frames"`
}

// Index maps animal names to their frame counts. It is the shape the game
// front-end loads to know which characters exist and how many frames to
// request for each. encoding/json writes map keys sorted.
type Index map[string]IndexEntry

func (idx Index) Marshal() ([]byte, error) {
	return encodeJSON(idx)
}
