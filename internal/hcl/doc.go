// Package hcl provides the HCL implementation of config.Loader. A slope file
// holds one `slope` block per run:
//
//	slope "steep" {
//	  right = 1
//	  down  = 2
//	}
//
// `down` is optional and defaults to 1. Attribute values are evaluated as
// HCL expressions and converted to whole numbers through go-cty.
package hcl
