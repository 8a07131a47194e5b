package hcl

import (
	"errors"
	"fmt"
	"time"

	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"

	"github.com/specialistvlad/nxlvstats/internal/config"
	"github.com/specialistvlad/nxlvstats/internal/schema"
)

// translate copies every attribute present in f onto s.
func translate(f *schema.File, s *config.Settings) error {
	var errs []error
	set := func(name string, v cty.Value, ty cty.Type, dst any) {
		if err := assign(v, ty, dst); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", name, err))
		}
	}

	if b := f.Scan; b != nil {
		set("scan.root", b.Root, cty.String, &s.Root)
		set("scan.extension", b.Extension, cty.String, &s.Extension)
		set("scan.workers", b.Workers, cty.Number, &s.Workers)
		set("scan.strict", b.Strict, cty.Bool, &s.Strict)
	}
	if b := f.Report; b != nil {
		set("report.format", b.Format, cty.String, &s.Format)
		set("report.output", b.Output, cty.String, &s.Output)
	}
	if b := f.Publish; b != nil {
		set("publish.url", b.URL, cty.String, &s.PublishURL)
		set("publish.event", b.Event, cty.String, &s.PublishEvent)
		set("publish.namespace", b.Namespace, cty.String, &s.PublishNamespace)
		set("publish.insecure_skip_verify", b.InsecureSkipVerify, cty.Bool, &s.PublishInsecureSkipVerify)

		var timeout string
		set("publish.timeout", b.Timeout, cty.String, &timeout)
		if timeout != "" {
			d, err := time.ParseDuration(timeout)
			if err != nil {
				errs = append(errs, fmt.Errorf("publish.timeout: %w", err))
			} else {
				s.PublishTimeout = d
			}
		}
	}
	if b := f.Log; b != nil {
		set("log.level", b.Level, cty.String, &s.LogLevel)
		set("log.format", b.Format, cty.String, &s.LogFormat)
	}

	return errors.Join(errs...)
}

// assign converts v to ty and stores it in dst. Omitted and null attributes
// leave dst untouched.
func assign(v cty.Value, ty cty.Type, dst any) error {
	if v.IsNull() {
		return nil
	}
	converted, err := convert.Convert(v, ty)
	if err != nil {
		return err
	}
	if !converted.IsWhollyKnown() {
		return fmt.Errorf("value is not known")
	}
	return gocty.FromCtyValue(converted, dst)
}
