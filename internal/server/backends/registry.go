package backends

import (
	"database/sql"
	"fmt"
	"sort"

	"github.com/dmitrijs2005/exactauth/internal/security/password"
	"github.com/dmitrijs2005/exactauth/internal/server/repositories/repomanager"
)

// ExactBackend is the name of the built-in exact-match ModelBackend.
const ExactBackend = "exact"

// Deps is what a backend factory may use.
type Deps struct {
	DB          *sql.DB
	RepoManager repomanager.RepositoryManager
	Hasher      password.Hasher
}

type Factory func(Deps) (CredentialVerifier, error)

// Registry maps backend names to factories.
type Registry struct {
	factories map[string]Factory
}

// NewRegistry returns a registry with the built-in backends registered.
func NewRegistry() *Registry {
	r := &Registry{factories: map[string]Factory{}}
	r.factories[ExactBackend] = func(d Deps) (CredentialVerifier, error) {
		return NewModelBackend(d.RepoManager.Accounts(d.DB), d.Hasher), nil
	}
	return r
}

// Register adds a factory. Names must be unique.
func (r *Registry) Register(name string, f Factory) error {
	if name == "" || f == nil {
		return fmt.Errorf("backend name and factory are required")
	}
	if _, ok := r.factories[name]; ok {
		return fmt.Errorf("backend %q already registered", name)
	}
	r.factories[name] = f
	return nil
}

// Names returns the registered backend names, sorted.
func (r *Registry) Names() []string {
	out := make([]string, 0, len(r.factories))
	for n := range r.factories {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// Build instantiates the named backends, in order, as a Chain.
func (r *Registry) Build(names []string, deps Deps) (*Chain, error) {
	if len(names) == 0 {
		return nil, fmt.Errorf("no authentication backends configured")
	}

	chain := &Chain{}
	for _, name := range names {
		f, ok := r.factories[name]
		if !ok {
			return nil, fmt.Errorf("unknown authentication backend %q (registered: %v)", name, r.Names())
		}
		v, err := f(deps)
		if err != nil {
			return nil, fmt.Errorf("backend %q: %w", name, err)
		}
		chain.names = append(chain.names, name)
		chain.verifiers = append(chain.verifiers, v)
	}
	return chain, nil
}
