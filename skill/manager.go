package skill

import (
	"github.com/threekingdoms/engine/events"
	"github.com/threekingdoms/engine/model"
)

// Manager keeps, per seat, the live skill instances currently attached —
// both hero-loaded and equipment-granted — and their attach/detach
// lifecycle.
type Manager struct {
	bus       *events.Bus
	registry  *Registry
	instances map[model.Seat][]Instance
}

// NewManager creates a Manager backed by registry, attaching/detaching
// instances through bus.
func NewManager(bus *events.Bus, registry *Registry) *Manager {
	return &Manager{bus: bus, registry: registry, instances: make(map[model.Seat][]Instance)}
}

// LoadHero attaches every skill heroID grants to owner — called once at
// game start (or whenever a hero loads).
func (m *Manager) LoadHero(game *model.Game, owner model.Seat, heroID string) error {
	for _, id := range m.registry.SkillsForHero(heroID) {
		inst, err := m.registry.New(id, owner)
		if err != nil {
			return err
		}
		if err := m.Attach(game, inst); err != nil {
			return err
		}
	}
	return nil
}

// AttachByID constructs a fresh instance of skillID for owner via the
// registry and attaches it — the path equipment uses to grant a skill
// for as long as the granting card stays equipped.
func (m *Manager) AttachByID(game *model.Game, owner model.Seat, skillID string) error {
	inst, err := m.registry.New(skillID, owner)
	if err != nil {
		return err
	}
	return m.Attach(game, inst)
}

// Attach attaches inst (calling its Attach hook) and adds it to owner's
// skill list.
func (m *Manager) Attach(game *model.Game, inst Instance) error {
	if err := inst.Attach(m.bus, game); err != nil {
		return err
	}
	owner := inst.Owner()
	m.instances[owner] = append(m.instances[owner], inst)
	return nil
}

// Detach detaches the instance with the given skill id from owner, if
// present. Safe to call when no such instance is attached (no-op) —
// detach must be harmless when called defensively.
func (m *Manager) Detach(owner model.Seat, skillID string) error {
	list := m.instances[owner]
	for i, inst := range list {
		if inst.ID() == skillID {
			if err := inst.Detach(m.bus); err != nil {
				return err
			}
			m.instances[owner] = append(list[:i], list[i+1:]...)
			return nil
		}
	}
	return nil
}

// GetAllSkills returns every skill instance attached to owner, hero-loaded
// and equipment-granted alike.
func (m *Manager) GetAllSkills(owner model.Seat) []Instance {
	out := make([]Instance, len(m.instances[owner]))
	copy(out, m.instances[owner])
	return out
}

// GetActiveSkills returns owner's skills whose owner is alive and whose
// SelfPredicate (if implemented) currently holds.
func (m *Manager) GetActiveSkills(game *model.Game, owner model.Seat) []Instance {
	player := game.PlayerBySeat(owner)
	if player == nil || !player.Alive {
		return nil
	}
	var out []Instance
	for _, inst := range m.instances[owner] {
		if pred, ok := inst.(SelfPredicate); ok && !pred.Active(game) {
			continue
		}
		out = append(out, inst)
	}
	return out
}

// AllActiveSkills returns every alive player's active skill instances,
// across the whole game — used by rule services that must consider
// modifiers contributed by players other than the one being queried
// (e.g. a TargetFilter belonging to the candidate target, not the actor).
func (m *Manager) AllActiveSkills(game *model.Game) []Instance {
	var out []Instance
	for _, p := range game.Players {
		out = append(out, m.GetActiveSkills(game, p.Seat)...)
	}
	return out
}
