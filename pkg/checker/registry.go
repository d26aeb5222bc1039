package checker

import (
	"fmt"
	"sort"

	"github.com/philipparndt/meshcheck/pkg/mesh"
)

// Check is one registered quality check. Exactly one of Run and RunScene is
// set: Run evaluates a single mesh, RunScene evaluates the scene as a whole.
// Configuration is bound into the function when the check is registered, so
// a Check is a pure function of its input.
type Check struct {
	ID       string
	Label    string
	Category string
	Kind     Kind
	Run      func(*mesh.Mesh) Result
	RunScene func(*mesh.Scene) Result
}

// IsSceneCheck reports whether the check evaluates the whole scene at once
func (c Check) IsSceneCheck() bool {
	return c.RunScene != nil
}

// Registry holds the registered checks keyed by ID
type Registry struct {
	checks map[string]Check
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{checks: make(map[string]Check)}
}

// Register adds a check after verifying its declared result kind. The check
// function is probed with an empty mesh (or scene); a mismatch between the
// declared kind and the returned kind is a configuration fault and rejects
// the registration. Duplicate IDs are rejected as well.
func (r *Registry) Register(c Check) error {
	if c.ID == "" {
		return fmt.Errorf("check has no ID")
	}
	if _, exists := r.checks[c.ID]; exists {
		return fmt.Errorf("check %q is already registered", c.ID)
	}
	if (c.Run == nil) == (c.RunScene == nil) {
		return fmt.Errorf("check %q must set exactly one of Run and RunScene", c.ID)
	}

	probed, err := probe(c)
	if err != nil {
		return err
	}
	if probed.Kind != c.Kind {
		return fmt.Errorf("check %q declares kind %s but returns %s", c.ID, c.Kind, probed.Kind)
	}

	r.checks[c.ID] = c
	return nil
}

// probe invokes the check on empty input to learn its actual result kind.
// Every check must resolve empty input to a passing result, so a panic here
// is itself a configuration fault.
func probe(c Check) (result Result, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("check %q panicked on empty input: %v", c.ID, rec)
		}
	}()
	if c.IsSceneCheck() {
		return c.RunScene(&mesh.Scene{}), nil
	}
	return c.Run(mesh.New("probe")), nil
}

// MustRegister registers a check and panics on a configuration fault.
// Intended for building the default registry from known-good checks.
func (r *Registry) MustRegister(c Check) {
	if err := r.Register(c); err != nil {
		panic(err)
	}
}

// Get returns the check with the given ID
func (r *Registry) Get(id string) (Check, bool) {
	c, ok := r.checks[id]
	return c, ok
}

// IDs returns all registered check IDs in sorted order
func (r *Registry) IDs() []string {
	ids := make([]string, 0, len(r.checks))
	for id := range r.checks {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
