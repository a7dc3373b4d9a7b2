package hcl

import "github.com/hashicorp/hcl/v2"

// slopeFile is the top-level structure of a slope file for decoding.
type slopeFile struct {
	Slopes []*slopeBlock `hcl:"slope,block"`
}

// slopeBlock is a single `slope "<name>" { ... }` block. The attributes are
// kept raw so defaults and conversion happen in the cty realm. Right is an
// attribute pointer because gohcl stands in a null expression for a missing
// hcl.Expression field, which would hide a missing key behind `null`.
type slopeBlock struct {
	Name  string         `hcl:"name,label"`
	Right *hcl.Attribute `hcl:"right"`
	Down  hcl.Expression `hcl:"down,optional"`
}
