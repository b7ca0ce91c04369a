// Package query translates HTTP query parameters into MongoDB query options:
// filtering, sorting, field projection, and pagination.
package query

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	apperrors "tours-api/internal/errors"

	"go.mongodb.org/mongo-driver/bson"
)

// Pagination defaults.
const (
	DefaultPage  = 1
	DefaultLimit = 100
)

// reserved parameter names that never become filter conditions.
var reserved = map[string]bool{
	"sort":   true,
	"fields": true,
	"page":   true,
	"limit":  true,
}

// comparison operators accepted in bracket syntax, e.g. price[gte]=500.
var operators = map[string]string{
	"gte": "$gte",
	"gt":  "$gt",
	"lte": "$lte",
	"lt":  "$lt",
}

// versionField is internal metadata that is always excluded from responses.
const versionField = "__v"

// Options is the translated form of a query string, ready to be applied to a
// collection. Each part is independent; Filter narrows the candidate set
// before the others apply. Fields carries the sanitized allow-list so the
// response payload can be restricted to the same fields the projection
// selected; it is nil when the client requested no field limiting.
type Options struct {
	Filter     bson.M
	Sort       bson.D
	Projection bson.M
	Fields     []string
	Skip       int64
	Limit      int64
}

// Translate converts raw query parameters into Options. Every key other than
// sort, fields, page, and limit becomes a filter condition: a bare key means
// equality, and field[op] bracket keys with op in gte/gt/lte/lt become the
// corresponding $-operator. Malformed bracket syntax or an unknown operator
// fails with ErrBadQuery.
func Translate(values url.Values) (*Options, error) {
	opts := &Options{}

	filter, err := buildFilter(values)
	if err != nil {
		return nil, err
	}
	opts.Filter = filter

	opts.Sort = buildSort(values.Get("sort"))
	opts.Projection, opts.Fields = buildProjection(values.Get("fields"))
	opts.Skip, opts.Limit = buildPagination(values.Get("page"), values.Get("limit"))

	return opts, nil
}

func buildFilter(values url.Values) (bson.M, error) {
	filter := bson.M{}

	for key, vals := range values {
		if reserved[key] || len(vals) == 0 {
			continue
		}
		raw := vals[0]

		field, op, nested, err := splitKey(key)
		if err != nil {
			return nil, err
		}

		if !nested {
			if _, exists := filter[field].(bson.M); exists {
				return nil, fmt.Errorf("%w: field %q mixes equality and operators", apperrors.ErrBadQuery, field)
			}
			filter[field] = coerce(raw)
			continue
		}

		mongoOp, ok := operators[op]
		if !ok {
			return nil, fmt.Errorf("%w: unknown operator %q in %q", apperrors.ErrBadQuery, op, key)
		}

		// Merge multiple operators on the same field, e.g.
		// duration[gte]=5&duration[lte]=9.
		cond, ok := filter[field].(bson.M)
		if !ok {
			if _, exists := filter[field]; exists {
				return nil, fmt.Errorf("%w: field %q mixes equality and operators", apperrors.ErrBadQuery, field)
			}
			cond = bson.M{}
			filter[field] = cond
		}
		cond[mongoOp] = coerce(raw)
	}

	return filter, nil
}

// splitKey parses "field" or "field[op]" keys. Anything else with brackets is
// malformed and rejected.
func splitKey(key string) (field, op string, nested bool, err error) {
	open := strings.IndexByte(key, '[')
	if open < 0 {
		if strings.ContainsRune(key, ']') {
			return "", "", false, fmt.Errorf("%w: %q", apperrors.ErrBadQuery, key)
		}
		return key, "", false, nil
	}

	if open == 0 || !strings.HasSuffix(key, "]") {
		return "", "", false, fmt.Errorf("%w: %q", apperrors.ErrBadQuery, key)
	}

	field = key[:open]
	op = key[open+1 : len(key)-1]
	if op == "" || strings.ContainsAny(field+op, "[]") {
		return "", "", false, fmt.Errorf("%w: %q", apperrors.ErrBadQuery, key)
	}

	return field, op, true, nil
}

// coerce converts a raw string value to the most specific type it parses as,
// so numeric comparisons behave numerically. Mongoose did this via schema
// casting; the driver has no schema, so the translator does it.
func coerce(raw string) interface{} {
	if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(raw, 64); err == nil {
		return f
	}
	if b, err := strconv.ParseBool(raw); err == nil {
		return b
	}
	return raw
}

// buildSort translates a comma-separated sort list. A leading '-' means
// descending. Absent sort defaults to newest first.
func buildSort(raw string) bson.D {
	if raw == "" {
		return bson.D{{Key: "createdAt", Value: -1}}
	}

	var sort bson.D
	for _, field := range strings.Split(raw, ",") {
		field = strings.TrimSpace(field)
		if field == "" || field == "-" {
			continue
		}
		dir := 1
		if strings.HasPrefix(field, "-") {
			dir = -1
			field = field[1:]
		}
		sort = append(sort, bson.E{Key: field, Value: dir})
	}

	if len(sort) == 0 {
		return bson.D{{Key: "createdAt", Value: -1}}
	}
	return sort
}

// buildProjection translates the fields allow-list into both the database
// projection and the list of fields the response may contain. The internal
// version field is always excluded; with no allow-list everything else is
// returned and fields stays nil.
func buildProjection(raw string) (bson.M, []string) {
	if raw == "" {
		return bson.M{versionField: 0}, nil
	}

	projection := bson.M{}
	var fields []string
	for _, field := range strings.Split(raw, ",") {
		field = strings.TrimSpace(field)
		if field == "" || field == versionField {
			continue
		}
		if _, seen := projection[field]; seen {
			continue
		}
		projection[field] = 1
		fields = append(fields, field)
	}

	if len(projection) == 0 {
		return bson.M{versionField: 0}, nil
	}
	return projection, fields
}

// buildPagination computes skip/limit. Non-numeric and non-positive inputs
// silently fall back to the defaults.
func buildPagination(rawPage, rawLimit string) (skip, limit int64) {
	page := int64(DefaultPage)
	if n, err := strconv.ParseInt(rawPage, 10, 64); err == nil && n > 0 {
		page = n
	}

	limit = int64(DefaultLimit)
	if n, err := strconv.ParseInt(rawLimit, 10, 64); err == nil && n > 0 {
		limit = n
	}

	return (page - 1) * limit, limit
}
