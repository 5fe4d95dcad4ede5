// Package manifest turns a tree of per-animal sprite folders into JSON
// manifests.
//
// Every direct subdirectory of the root is an animal. Its .png, .jpg and
// .jpeg files (extension matched case-insensitively) are the frames, sorted
// by lower-cased file name. Each frame is probed for its pixel size and the
// result is written to <output>/<animal>_sprites.json:
//
//	{
//	  "animal": "cat",
//	  "frames": [
//	    {"file": "a.png", "w": 10, "h": 20},
//	    {"file": "b.png", "w": null, "h": null}
//	  ]
//	}
//
// A frame that cannot be opened or decoded keeps its slot with null
// dimensions. Problems with the root or output directory stop the run; a
// manifest that cannot be written is reported and the remaining animals are
// still processed.
package manifest
