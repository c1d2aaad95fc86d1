package crates

// Crate is the subset of the crates.io crate object the generator consumes.
//
// Example response from GET /api/v1/crates/{name}:
//
//	{
//	  "crate": {
//	    "name": "rustedbytes-sample",
//	    "newest_version": "0.3.1",
//	    ...
//	  },
//	  "versions": [...]
//	}
type Crate struct {
	Name          string `json:"name"`
	NewestVersion string `json:"newest_version"`
}

// crateResponse is the envelope crates.io wraps crate details in
type crateResponse struct {
	Crate Crate `json:"crate"`
}
