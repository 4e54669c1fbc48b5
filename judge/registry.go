package judge

import "github.com/threekingdoms/engine/model"

// RuleRegistry maps a delayed trick's card subtype to the Rule its
// judgement is drawn against (e.g. Lebusishu judges "is red?"). Content
// packs register their own delayed tricks; a subtype with no registered
// rule falls back to DefaultRule.
type RuleRegistry struct {
	rules map[model.Subtype]Rule
}

// NewRuleRegistry creates an empty RuleRegistry.
func NewRuleRegistry() *RuleRegistry {
	return &RuleRegistry{rules: make(map[model.Subtype]Rule)}
}

// Register binds subtype's judgement rule. A later call for the same
// subtype replaces the earlier one.
func (r *RuleRegistry) Register(subtype model.Subtype, rule Rule) {
	r.rules[subtype] = rule
}

// RuleFor returns the rule registered for subtype, or DefaultRule if
// none was registered.
func (r *RuleRegistry) RuleFor(subtype model.Subtype) Rule {
	if rule, ok := r.rules[subtype]; ok {
		return rule
	}
	return DefaultRule
}
