package hcl

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
)

// evalContext exposes home and cwd variables and an env(name) function to
// config expressions, e.g. root = "${home}/packs".
func (l *Loader) evalContext() (*hcl.EvalContext, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		home = ""
	}
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve working directory: %w", err)
	}

	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"home": cty.StringVal(home),
			"cwd":  cty.StringVal(cwd),
		},
		Functions: map[string]function.Function{
			"env": l.envFunc(),
		},
	}, nil
}

func (l *Loader) envFunc() function.Function {
	return function.New(&function.Spec{
		Params: []function.Parameter{{Name: "name", Type: cty.String}},
		Type:   function.StaticReturnType(cty.String),
		Impl: func(args []cty.Value, _ cty.Type) (cty.Value, error) {
			return cty.StringVal(l.getenv(args[0].AsString())), nil
		},
	})
}
