package main

import (
	"encoding/json"
	"io"

	"github.com/fwojciec/codewiki"
	"gopkg.in/yaml.v3"
)

// encode writes v to w as indented JSON or as YAML.
func encode(w io.Writer, format string, v any) error {
	switch format {
	case "", "json":
		enc := json.NewEncoder(w)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	}
	return codewiki.Errorf(codewiki.EINVALID, "unknown output format %q", format)
}
