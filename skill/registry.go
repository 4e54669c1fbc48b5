package skill

import (
	"github.com/threekingdoms/engine/gameerr"
	"github.com/threekingdoms/engine/model"
)

// Registry maps skill id → factory and hero id → the skill ids it
// grants. Duplicate registration of either fails with CodeDuplicateKey.
type Registry struct {
	factories map[string]func(owner model.Seat) Instance
	heroes    map[string][]string
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		factories: make(map[string]func(owner model.Seat) Instance),
		heroes:    make(map[string][]string),
	}
}

// Register adds a skill factory under id.
func (r *Registry) Register(id string, factory func(owner model.Seat) Instance) error {
	if _, exists := r.factories[id]; exists {
		return gameerr.DuplicateKey(id)
	}
	r.factories[id] = factory
	return nil
}

// RegisterHero records the list of skill ids a hero grants on load.
func (r *Registry) RegisterHero(heroID string, skillIDs []string) error {
	if _, exists := r.heroes[heroID]; exists {
		return gameerr.DuplicateKey(heroID)
	}
	r.heroes[heroID] = append([]string(nil), skillIDs...)
	return nil
}

// New creates a fresh Instance of id bound to owner.
func (r *Registry) New(id string, owner model.Seat) (Instance, error) {
	factory, ok := r.factories[id]
	if !ok {
		return nil, gameerr.InvalidState("unknown skill id", gameerr.WithMeta("skill_id", id))
	}
	return factory(owner), nil
}

// SkillsForHero returns the skill ids heroID grants, or nil if heroID is
// unregistered.
func (r *Registry) SkillsForHero(heroID string) []string {
	return r.heroes[heroID]
}
