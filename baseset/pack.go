// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package baseset

import (
	"github.com/threekingdoms/engine/model"
	"github.com/threekingdoms/engine/move"
	"github.com/threekingdoms/engine/phase"
	"github.com/threekingdoms/engine/skill"
)

// ID is the pack id an engine.RegisterSkills caller names in its
// heroPackIDs list.
const ID = "baseset"

// Hero ids this pack grants, one skill (or pair) apiece so an embedder
// can seat a minimal roster exercising every capability interface in
// this demonstration pack without needing a fuller hero catalog.
const (
	HeroEmptyCity    = "hero-empty-city"
	HeroGuose        = "hero-guose"
	HeroJijiu        = "hero-jijiu"
	HeroTuxi         = "hero-tuxi"
	HeroTiandu       = "hero-tiandu"
	HeroHujia        = "hero-hujia"
	HeroJijiang      = "hero-jijiang"
	HeroJianxiong    = "hero-jianxiong"
	HeroFanjian      = "hero-fanjian"
	HeroHorsemanship = "hero-horsemanship"
	HeroRoar         = "hero-roar"
	HeroJizhi        = "hero-jizhi"
	HeroHuichun      = "hero-huichun"
)

// Pack is the baseset content pack: a demonstration hero roster plus a
// handful of equipment, registering one working skill per capability
// interface the core's skill package defines.
type Pack struct {
	mover *move.Service
}

// New creates a Pack whose move-Service-dependent skills (Tuxi,
// Tiandu, Jianxiong) are bound to mover — the
// factory-closure pattern every skill needing a *move.Service goes
// through, since skill.Instance.Attach only ever receives a *Game and
// an *events.Bus, never a mover.
func New(mover *move.Service) *Pack {
	return &Pack{mover: mover}
}

// ID implements engine.Pack.
func (p *Pack) ID() string { return ID }

// Register implements engine.Pack: registers every skill factory and
// hero grant this pack defines.
func (p *Pack) Register(registry *skill.Registry) error {
	factories := map[string]func(model.Seat) skill.Instance{
		SkillIDMountOffensive: newMountOffensive,
		SkillIDMountDefensive: newMountDefensive,
		SkillIDCrossbow:       newCrossbow,
		SkillIDFrostBlade:     newFrostBlade,
		SkillIDHorsemanship:   newHorsemanship,
		SkillIDRoar:           newRoar,
		SkillIDEmptyCity:      newEmptyCity,
		SkillIDGuose:          newGuose,
		SkillIDJijiu:          newJijiu,
		SkillIDHujia:          newHujia,
		SkillIDJijiang:        newJijiang,
		SkillIDJizhi:          newJizhi,
		SkillIDHuichun:        newHuichun,
		SkillIDFanjian:        newFanjian,
		SkillIDTuxi:           newTuxi(p.mover),
		SkillIDTiandu:         newTiandu(p.mover),
		SkillIDJianxiong:      newJianxiong(p.mover),
	}
	for id, factory := range factories {
		if err := registry.Register(id, factory); err != nil {
			return err
		}
	}

	heroes := map[string][]string{
		HeroEmptyCity:    {SkillIDEmptyCity},
		HeroGuose:        {SkillIDGuose},
		HeroJijiu:        {SkillIDJijiu},
		HeroTuxi:         {SkillIDTuxi},
		HeroTiandu:       {SkillIDTiandu},
		HeroHujia:        {SkillIDHujia},
		HeroJijiang:      {SkillIDJijiang},
		HeroJianxiong:    {SkillIDJianxiong},
		HeroFanjian:      {SkillIDFanjian},
		HeroHorsemanship: {SkillIDHorsemanship},
		HeroRoar:         {SkillIDRoar},
		HeroJizhi:        {SkillIDJizhi},
		HeroHuichun:      {SkillIDHuichun},
	}
	for heroID, skillIDs := range heroes {
		if err := registry.RegisterHero(heroID, skillIDs); err != nil {
			return err
		}
	}
	return nil
}

// RegisterActiveResolvers wires this pack's Active-skill resolvers into
// ctl. engine.Pack only ever touches a skill.Registry (so the core
// never imports resolve or phase for an embedder's content pack), so
// the one content-pack resolver baseset defines — Fanjian's — is wired
// separately, once, after engine.Engine.CreateGame has built its
// phase.Controller.
func (p *Pack) RegisterActiveResolvers(ctl *phase.Controller) {
	ctl.ActiveResolvers[SkillIDFanjian] = fanjianResolverCtor()
}
