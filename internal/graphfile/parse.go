package graphfile

import (
	"math"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/juju/errors"
	"github.com/mcuadros/go-defaults"
	"github.com/spf13/cast"
	"github.com/zclconf/go-cty/cty"
	"gopkg.in/yaml.v3"
)

// Options tunes how YAML and JSON documents are read.
type Options struct {
	/**
	 * default: weight, edge attribute holding the weight.
	 */
	WeightKey string `default:"weight"`
	/**
	 * default: duration, node attribute holding the duration.
	 */
	DurationKey string `default:"duration"`
}

// Option mutates Options. Empty keys are ignored.
type Option func(*Options)

func WithWeightKey(key string) Option {
	return func(o *Options) {
		if key != "" {
			o.WeightKey = key
		}
	}
}

func WithDurationKey(key string) Option {
	return func(o *Options) {
		if key != "" {
			o.DurationKey = key
		}
	}
}

// Load reads and parses the document at path.
func Load(path string, opts ...Option) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Annotatef(err, "read %s", path)
	}

	return Parse(path, data, opts...)
}

// Parse decodes data; the extension of name picks the format
// (.yaml, .yml and .json go to the YAML decoder, .hcl to the HCL one).
func Parse(name string, data []byte, opts ...Option) (*Document, error) {
	o := &Options{}
	defaults.SetDefaults(o)
	for _, opt := range opts {
		opt(o)
	}

	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml", ".json":
		return parseYAML(name, data, o)
	case ".hcl":
		return parseHCL(name, data)
	default:
		return nil, errors.NotSupportedf("document format of %q", name)
	}
}

type rawDocument struct {
	Vars  map[string]interface{}   `yaml:"vars"`
	Nodes []interface{}            `yaml:"nodes"`
	Edges []map[string]interface{} `yaml:"edges"`
}

func parseYAML(name string, data []byte, o *Options) (*Document, error) {
	var raw rawDocument
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, errors.NotValidf("%s: %v", name, err)
	}

	doc := &Document{Name: name, Vars: make(map[string]cty.Value, len(raw.Vars))}
	for k, v := range raw.Vars {
		val, err := ctyValue(v)
		if err != nil {
			return nil, errors.Annotatef(err, "%s: var %s", name, k)
		}
		doc.Vars[k] = val
	}

	for i, item := range raw.Nodes {
		var n Node
		switch v := item.(type) {
		case map[string]interface{}:
			id, err := cast.ToStringE(v["id"])
			if err != nil {
				return nil, errors.NotValidf("%s: id of node #%d", name, i+1)
			}
			n.ID = id
			if n.Duration, err = expression(name, v[o.DurationKey]); err != nil {
				return nil, errors.Annotatef(err, "%s: %s of node %s", name, o.DurationKey, id)
			}
		default:
			id, err := cast.ToStringE(v)
			if err != nil {
				return nil, errors.NotValidf("%s: node #%d", name, i+1)
			}
			n.ID = id
		}
		doc.Nodes = append(doc.Nodes, n)
	}

	for i, m := range raw.Edges {
		from, err := cast.ToStringE(m["from"])
		if err != nil {
			return nil, errors.NotValidf("%s: from of edge #%d", name, i+1)
		}
		to, err := cast.ToStringE(m["to"])
		if err != nil {
			return nil, errors.NotValidf("%s: to of edge #%d", name, i+1)
		}
		w, err := expression(name, m[o.WeightKey])
		if err != nil {
			return nil, errors.Annotatef(err, "%s: %s of edge %s -> %s", name, o.WeightKey, from, to)
		}
		doc.Edges = append(doc.Edges, Edge{From: from, To: to, Weight: w})
	}

	return doc, nil
}

// expression turns a scalar attribute into an HCL expression. Numbers are
// static; strings are parsed as HCL expression syntax.
func expression(name string, v interface{}) (hcl.Expression, error) {
	switch val := v.(type) {
	case nil:
		return nil, nil
	case bool:
		return nil, errors.NotValidf("boolean %v", val)
	case string:
		expr, diags := hclsyntax.ParseExpression([]byte(val), name, hcl.InitialPos)
		if diags.HasErrors() {
			return nil, errors.NotValidf("expression %q: %v", val, diags)
		}
		return expr, nil
	default:
		f, err := cast.ToFloat64E(val)
		if err != nil || !finite(f) {
			return nil, errors.NotValidf("value %v", val)
		}
		return hcl.StaticExpr(cty.NumberFloatVal(f), hcl.Range{Filename: name}), nil
	}
}

func ctyValue(v interface{}) (cty.Value, error) {
	switch val := v.(type) {
	case string:
		return cty.StringVal(val), nil
	case bool:
		return cty.BoolVal(val), nil
	default:
		f, err := cast.ToFloat64E(val)
		if err != nil || !finite(f) {
			return cty.NilVal, errors.NotValidf("value %v", val)
		}
		return cty.NumberFloatVal(f), nil
	}
}

// finite rejects the YAML .nan and .inf literals; cty cannot hold NaN.
func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

type hclDocument struct {
	Vars  *hclVars  `hcl:"vars,block"`
	Nodes []hclNode `hcl:"node,block"`
	Edges []hclEdge `hcl:"edge,block"`
}

type hclVars struct {
	Body hcl.Body `hcl:",remain"`
}

type hclNode struct {
	ID       string         `hcl:"id,label"`
	Duration hcl.Expression `hcl:"duration,optional"`
}

type hclEdge struct {
	From   string         `hcl:"from,label"`
	To     string         `hcl:"to,label"`
	Weight hcl.Expression `hcl:"weight,optional"`
}

// parseHCL decodes
//
//	vars { base = 2 }
//	node "a" { duration = 3 }
//	edge "a" "b" { weight = base * 2 }
//
// Absent optional attributes decode to null expressions and read as unset.
func parseHCL(name string, data []byte) (*Document, error) {
	file, diags := hclparse.NewParser().ParseHCL(data, name)
	if diags.HasErrors() {
		return nil, errors.NotValidf("%s: %v", name, diags)
	}
	var raw hclDocument
	if diags = gohcl.DecodeBody(file.Body, nil, &raw); diags.HasErrors() {
		return nil, errors.NotValidf("%s: %v", name, diags)
	}

	doc := &Document{Name: name, Vars: make(map[string]cty.Value)}
	if raw.Vars != nil {
		attrs, diags := raw.Vars.Body.JustAttributes()
		if diags.HasErrors() {
			return nil, errors.NotValidf("%s: vars: %v", name, diags)
		}
		names := make([]string, 0, len(attrs))
		for k := range attrs {
			names = append(names, k)
		}
		sort.Strings(names)
		for _, k := range names {
			val, diags := attrs[k].Expr.Value(nil)
			if diags.HasErrors() {
				return nil, errors.NotValidf("%s: var %s: %v", name, k, diags)
			}
			doc.Vars[k] = val
		}
	}
	for _, n := range raw.Nodes {
		doc.Nodes = append(doc.Nodes, Node{ID: n.ID, Duration: n.Duration})
	}
	for _, e := range raw.Edges {
		doc.Edges = append(doc.Edges, Edge{From: e.From, To: e.To, Weight: e.Weight})
	}

	return doc, nil
}
