package columns

import (
	"errors"
	"fmt"
	"strings"
)

// ErrColumnNotFound is matched by every *NotFoundError.
var ErrColumnNotFound = errors.New("column not found")

// NotFoundError reports a hint that matched no column.
type NotFoundError struct {
	Target  string
	Columns []string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("could not find column containing '%s' in %v", e.Target, e.Columns)
}

// Is makes errors.Is(err, ErrColumnNotFound) succeed.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrColumnNotFound
}

// Resolve returns the first column whose lowercase name contains the
// lowercase target.
func Resolve(columns []string, target string) (string, error) {
	needle := strings.ToLower(target)
	for _, c := range columns {
		if strings.Contains(strings.ToLower(c), needle) {
			return c, nil
		}
	}
	return "", &NotFoundError{Target: target, Columns: append([]string(nil), columns...)}
}

// Resolver binds a header so several hints can be resolved against it.
type Resolver struct {
	columns []string
}

// NewResolver creates a Resolver over the given header.
func NewResolver(columns []string) *Resolver {
	return &Resolver{columns: columns}
}

// Resolve resolves a single hint.
func (r *Resolver) Resolve(target string) (string, error) {
	return Resolve(r.columns, target)
}

// ResolveAll resolves every hint in order and stops at the first failure.
// The result is parallel to targets.
func (r *Resolver) ResolveAll(targets ...string) ([]string, error) {
	out := make([]string, 0, len(targets))
	for _, target := range targets {
		c, err := r.Resolve(target)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}
