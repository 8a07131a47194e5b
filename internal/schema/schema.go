// Package schema declares the gohcl decoding targets for the tool's config
// file. Attributes are decoded as raw cty values so that the loader can tell
// an omitted attribute (cty.NilVal) from one set to a zero value.
package schema

import "github.com/zclconf/go-cty/cty"

// File is the top-level structure of a config file. Every block is optional.
type File struct {
	Scan    *Scan    `hcl:"scan,block"`
	Report  *Report  `hcl:"report,block"`
	Publish *Publish `hcl:"publish,block"`
	Log     *Log     `hcl:"log,block"`
}

// Scan controls level discovery and the worker pool.
type Scan struct {
	Root      cty.Value `hcl:"root,optional"`
	Extension cty.Value `hcl:"extension,optional"`
	Workers   cty.Value `hcl:"workers,optional"`
	Strict    cty.Value `hcl:"strict,optional"`
}

// Report controls rendering.
type Report struct {
	Format cty.Value `hcl:"format,optional"`
	Output cty.Value `hcl:"output,optional"`
}

// Publish configures the optional socket.io report sink.
type Publish struct {
	URL                cty.Value `hcl:"url,optional"`
	Event              cty.Value `hcl:"event,optional"`
	Namespace          cty.Value `hcl:"namespace,optional"`
	Timeout            cty.Value `hcl:"timeout,optional"`
	InsecureSkipVerify cty.Value `hcl:"insecure_skip_verify,optional"`
}

// Log controls the logger.
type Log struct {
	Level  cty.Value `hcl:"level,optional"`
	Format cty.Value `hcl:"format,optional"`
}
