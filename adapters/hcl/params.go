// Package hcl reads building parameter files written in HCL.
//
//	building {
//	  width        = 20
//	  length       = 30
//	  floor_height = 3
//	  floors       = 3
//	  material     = "Prefab Concrete"
//	}
//
// Attributes left out keep their default value.
package hcl

import (
	"fmt"
	"os"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"shadowcost/core/types"
	"shadowcost/internal/errors"
)

var fileSchema = &hcl.BodySchema{
	Blocks: []hcl.BlockHeaderSchema{
		{Type: "building"},
	},
}

// ParseFile reads parameters from a file on disk
func ParseFile(path string) (types.BuildingParameters, error) {
	return ParseFileOver(path, types.DefaultParameters())
}

// ParseFileOver reads parameters from a file on disk. Attributes the file
// leaves out keep their value in base.
func ParseFileOver(path string, base types.BuildingParameters) (types.BuildingParameters, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return base, errors.Parsing("failed to read parameter file", err).
			WithContext("file", path)
	}
	return decode(src, path, base)
}

// Parse decodes parameters from HCL source. filename is used in messages only.
func Parse(src []byte, filename string) (types.BuildingParameters, error) {
	return decode(src, filename, types.DefaultParameters())
}

func decode(src []byte, filename string, params types.BuildingParameters) (types.BuildingParameters, error) {

	file, diags := hclparse.NewParser().ParseHCL(src, filename)
	if diags.HasErrors() {
		return params, diagError(filename, diags)
	}

	content, diags := file.Body.Content(fileSchema)
	if diags.HasErrors() {
		return params, diagError(filename, diags)
	}

	switch len(content.Blocks) {
	case 0:
		return params, errors.Parsing("missing building block", nil).WithContext("file", filename)
	case 1:
	default:
		return params, errors.Parsing("only one building block is allowed", nil).
			WithContext("file", filename).
			WithContext("line", content.Blocks[1].DefRange.Start.Line)
	}

	if diags := gohcl.DecodeBody(content.Blocks[0].Body, nil, &params); diags.HasErrors() {
		return params, diagError(filename, diags)
	}
	return params, nil
}

func diagError(filename string, diags hcl.Diagnostics) error {
	var msgs []string
	line := 0
	for _, diag := range diags {
		if diag.Severity != hcl.DiagError {
			continue
		}
		if diag.Subject != nil {
			if line == 0 {
				line = diag.Subject.Start.Line
			}
			msgs = append(msgs, fmt.Sprintf("line %d: %s: %s", diag.Subject.Start.Line, diag.Summary, diag.Detail))
		} else {
			msgs = append(msgs, diag.Summary+": "+diag.Detail)
		}
	}
	return errors.Parsing("invalid parameter file", diags).
		WithContext("file", filename).
		WithContext("line", line).
		WithContext("details", strings.Join(msgs, "; "))
}
