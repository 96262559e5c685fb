// Package endpoint describes FMP REST endpoints declaratively. Each Endpoint
// is a row in a table: where it lives, which parameters it takes, what its
// response looks like and how it is normalized. A single request builder
// turns a row plus caller parameters into a URL path and query string.
package endpoint

import (
	"fmt"
	"net/url"
	"sort"
	"strings"
)

// Version selects the API base URL.
type Version string

const (
	V3 Version = "v3"
	V4 Version = "v4"
)

// Shape describes the JSON returned by an endpoint.
type Shape int

const (
	// ShapeTable is a list of records.
	ShapeTable Shape = iota
	// ShapeRecord is a list whose first element is the only meaningful record.
	ShapeRecord
	// ShapeRaw is returned to callers untouched.
	ShapeRaw
)

func (s Shape) String() string {
	switch s {
	case ShapeTable:
		return "table"
	case ShapeRecord:
		return "record"
	default:
		return "raw"
	}
}

// QueryParams is the generic parameter map passed to the request builder.
// Keys use the upstream spelling (e.g. "symbol", "from", "reportingCik").
type QueryParams map[string]string

// Commonly used parameter keys.
const (
	ParamSymbol   = "symbol"
	ParamFrom     = "from"
	ParamTo       = "to"
	ParamPage     = "page"
	ParamLimit    = "limit"
	ParamPeriod   = "period"
	ParamYear     = "year"
	ParamQuarter  = "quarter"
	ParamCIK      = "cik"
	ParamName     = "name"
	ParamQuery    = "query"
	ParamExchange = "exchange"
	ParamDate     = "date"
	ParamInterval = "interval"
	ParamType     = "type"
)

// Endpoint is one row of the catalog.
type Endpoint struct {
	Name        string
	Family      string
	Description string
	Version     Version
	Path        string   // e.g. "profile/{symbol}"
	Required    []string // query parameters that must be set
	Optional    []string
	AnyOf       []string // at least one of these must be set
	Defaults    map[string]string
	Shape       Shape
	DataPath    string // gjson path to the records inside an envelope

	// Normalizer defaults.
	Index     string
	Ignore    []string
	Transpose bool
	TTM       bool
}

// PathParams returns the placeholder names in Path, in order.
func (e *Endpoint) PathParams() []string {
	var names []string
	rest := e.Path
	for {
		i := strings.IndexByte(rest, '{')
		if i < 0 {
			return names
		}
		j := strings.IndexByte(rest[i:], '}')
		if j < 0 {
			return names
		}
		names = append(names, rest[i+1:i+j])
		rest = rest[i+j+1:]
	}
}

// Params returns every parameter the endpoint accepts, sorted.
func (e *Endpoint) Params() []string {
	seen := make(map[string]bool)
	var out []string
	add := func(keys ...string) {
		for _, k := range keys {
			if !seen[k] {
				seen[k] = true
				out = append(out, k)
			}
		}
	}
	add(e.PathParams()...)
	add(e.Required...)
	add(e.AnyOf...)
	add(e.Optional...)
	for k := range e.Defaults {
		add(k)
	}
	sort.Strings(out)
	return out
}

// Build resolves the endpoint against params. It returns the path relative
// to the version's base URL and the encoded query (without the API key).
func (e *Endpoint) Build(params QueryParams) (string, url.Values, error) {
	accepted := make(map[string]bool)
	for _, k := range e.Params() {
		accepted[k] = true
	}
	for k := range params {
		if !accepted[k] {
			return "", nil, &ErrUnknownParam{Endpoint: e.Name, Param: k}
		}
	}

	path := e.Path
	pathParams := make(map[string]bool)
	for _, name := range e.PathParams() {
		v := params[name]
		if v == "" {
			v = e.Defaults[name]
		}
		if v == "" {
			return "", nil, &ErrMissingParam{Endpoint: e.Name, Param: name}
		}
		path = strings.Replace(path, "{"+name+"}", url.PathEscape(v), 1)
		pathParams[name] = true
	}

	if err := ValidateParams(e.Name, params, e.Required); err != nil {
		return "", nil, err
	}
	if len(e.AnyOf) > 0 && !anySet(params, e.AnyOf) {
		return "", nil, &ErrMissingParam{Endpoint: e.Name, Param: strings.Join(e.AnyOf, "|")}
	}

	query := url.Values{}
	for k, v := range e.Defaults {
		if !pathParams[k] {
			query.Set(k, v)
		}
	}
	for k, v := range params {
		if pathParams[k] || v == "" {
			continue
		}
		query.Set(k, v)
	}
	return path, query, nil
}

func anySet(params QueryParams, keys []string) bool {
	for _, k := range keys {
		if params[k] != "" {
			return true
		}
	}
	return false
}

// ErrEndpointNotFound is returned when a requested endpoint is not registered.
type ErrEndpointNotFound struct {
	Name string
}

func (e *ErrEndpointNotFound) Error() string {
	return fmt.Sprintf("endpoint %q not found", e.Name)
}

// ErrMissingParam is returned when a required parameter is missing.
type ErrMissingParam struct {
	Endpoint string
	Param    string
}

func (e *ErrMissingParam) Error() string {
	return fmt.Sprintf("%s: missing required parameter %q", e.Endpoint, e.Param)
}

// ErrUnknownParam is returned when a parameter is not accepted by an endpoint.
type ErrUnknownParam struct {
	Endpoint string
	Param    string
}

func (e *ErrUnknownParam) Error() string {
	return fmt.Sprintf("%s: unknown parameter %q", e.Endpoint, e.Param)
}

// ValidateParams checks that all required parameters are present in params.
func ValidateParams(name string, params QueryParams, required []string) error {
	for _, key := range required {
		if v, ok := params[key]; !ok || v == "" {
			return &ErrMissingParam{Endpoint: name, Param: key}
		}
	}
	return nil
}
