package resources

import (
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"
)

const (
	// DefaultPerPage is the page size most collections use when none is given.
	DefaultPerPage = 25
	// MaxPerPage is the largest page size the API accepts.
	MaxPerPage = 100
)

// Comparison operators accepted in where clauses.
const (
	OpGreaterThan        = "gt"
	OpLessThan           = "lt"
	OpGreaterThanOrEqual = "gte"
	OpLessThanOrEqual    = "lte"
)

// Comparison is a where value rendered as where[field][op]=value.
// Use a []Comparison to bound a field on both sides.
type Comparison struct {
	Op    string
	Value any
}

// ListOptions shape a collection request. The zero value lists with the resource's
// default page size and the client's pagination setting.
type ListOptions struct {
	PerPage *int
	Offset  *int
	// Where maps a field to a scalar, a Comparison or a []Comparison.
	Where   map[string]any
	Filter  []string
	Order   string
	Include []string
	// Params holds additional top level parameters such as group_type_id.
	Params map[string]string
	// AutoPaginate overrides the client setting for this call.
	AutoPaginate *bool
}

// GetOptions shape a single resource request.
type GetOptions struct {
	Include []string
}

// queryParam is one encoded key/value pair; order is preserved.
type queryParam struct {
	key   string
	value string
}

type query []queryParam

func (q *query) add(key, value string) {
	*q = append(*q, queryParam{key: key, value: value})
}

// Encode renders the parameters in insertion order. Brackets in keys are kept literal.
func (q query) Encode() string {
	if len(q) == 0 {
		return ""
	}
	parts := make([]string, 0, len(q))
	for _, p := range q {
		parts = append(parts, escapeKey(p.key)+"="+url.QueryEscape(p.value))
	}
	return strings.Join(parts, "&")
}

func escapeKey(key string) string {
	escaped := url.QueryEscape(key)
	escaped = strings.ReplaceAll(escaped, "%5B", "[")
	return strings.ReplaceAll(escaped, "%5D", "]")
}

// buildListQuery validates opts and encodes them in a fixed order: per_page, offset,
// where (sorted by field), order, include, filter, then extra params sorted by key.
// defaultPerPage of zero sends per_page only when set explicitly.
func buildListQuery(opts *ListOptions, defaultPerPage int, validIncludes []string) (string, error) {
	if opts == nil {
		opts = &ListOptions{}
	}
	var q query

	perPage := defaultPerPage
	if opts.PerPage != nil {
		perPage = *opts.PerPage
	}
	if opts.PerPage != nil || defaultPerPage > 0 {
		if perPage < 1 || perPage > MaxPerPage {
			return "", &ValidationError{Field: "per_page", Reason: fmt.Sprintf("must be between 1 and %d", MaxPerPage)}
		}
		q.add("per_page", strconv.Itoa(perPage))
	}

	if opts.Offset != nil {
		if *opts.Offset < 0 {
			return "", &ValidationError{Field: "offset", Reason: "must not be negative"}
		}
		q.add("offset", strconv.Itoa(*opts.Offset))
	}

	if err := addWhere(&q, opts.Where); err != nil {
		return "", err
	}

	if opts.Order != "" {
		q.add("order", opts.Order)
	}

	if err := addInclude(&q, opts.Include, validIncludes); err != nil {
		return "", err
	}

	if len(opts.Filter) > 0 {
		q.add("filter", strings.Join(opts.Filter, ","))
	}

	for _, key := range sortedKeys(opts.Params) {
		q.add(key, opts.Params[key])
	}

	return q.Encode(), nil
}

// buildGetQuery encodes include for a single resource request.
func buildGetQuery(opts *GetOptions, validIncludes []string) (string, error) {
	if opts == nil {
		return "", nil
	}
	var q query
	if err := addInclude(&q, opts.Include, validIncludes); err != nil {
		return "", err
	}
	return q.Encode(), nil
}

func addWhere(q *query, where map[string]any) error {
	for _, field := range sortedKeys(where) {
		switch v := where[field].(type) {
		case Comparison:
			if err := addComparison(q, field, v); err != nil {
				return err
			}
		case []Comparison:
			for _, c := range v {
				if err := addComparison(q, field, c); err != nil {
					return err
				}
			}
		default:
			q.add("where["+field+"]", formatValue(v))
		}
	}
	return nil
}

func addComparison(q *query, field string, c Comparison) error {
	switch c.Op {
	case OpGreaterThan, OpLessThan, OpGreaterThanOrEqual, OpLessThanOrEqual:
	default:
		return &ValidationError{Field: "where[" + field + "]", Reason: fmt.Sprintf("has unsupported operator %q", c.Op)}
	}
	q.add("where["+field+"]["+c.Op+"]", formatValue(c.Value))
	return nil
}

func addInclude(q *query, include, validIncludes []string) error {
	if len(include) == 0 {
		return nil
	}
	if len(validIncludes) > 0 {
		for _, inc := range include {
			if !contains(validIncludes, inc) {
				return &ValidationError{
					Field:  "include",
					Reason: fmt.Sprintf("value %q is not one of %s", inc, strings.Join(validIncludes, ", ")),
				}
			}
		}
	}
	q.add("include", strings.Join(include, ","))
	return nil
}

func formatValue(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case fmt.Stringer:
		return val.String()
	case []string:
		return strings.Join(val, ",")
	case []int:
		parts := make([]string, len(val))
		for i, n := range val {
			parts[i] = strconv.Itoa(n)
		}
		return strings.Join(parts, ",")
	default:
		return fmt.Sprint(val)
	}
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func contains(list []string, value string) bool {
	for _, v := range list {
		if v == value {
			return true
		}
	}
	return false
}

// withQuery appends an encoded query string to path.
func withQuery(path, encoded string) string {
	if encoded == "" {
		return path
	}
	if strings.Contains(path, "?") {
		return path + "&" + encoded
	}
	return path + "?" + encoded
}
