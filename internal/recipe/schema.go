package recipe

import "github.com/hashicorp/hcl/v2"

// fileRoot is the top-level structure of a recipe file.
type fileRoot struct {
	Strategies []*strategyBlock `hcl:"strategy,block"`
}

// strategyBlock is a `strategy` block. Its body is decoded lazily since the
// accepted attributes depend on the strategy type.
type strategyBlock struct {
	Type string   `hcl:"type,label"`
	Name string   `hcl:"name,label"`
	Body hcl.Body `hcl:",remain"`
}
