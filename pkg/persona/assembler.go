// Package persona maps personas between the UI shape, with subscriptions grouped in per-kind lists, and the
// remote service shape with a flat source config collection. Syncer persists edited personas.
package persona

import (
	"github.com/woodmeone/Buddy/pkg/domain"
	"github.com/woodmeone/Buddy/pkg/remote"
	"github.com/woodmeone/Buddy/pkg/sourcecfg"
)

// Entry is a subscription paired with its kind, an element of the flattened persona
type Entry struct {
	Kind         domain.SourceKind
	Subscription domain.Subscription
}

// Groups are subscriptions split by kind, as the UI shows them
type Groups struct {
	BilibiliList []domain.Subscription
	RSSList      []domain.Subscription
	HotSources   []domain.Subscription
}

// Len returns the total number of grouped subscriptions
func (g Groups) Len() int {
	return len(g.BilibiliList) + len(g.RSSList) + len(g.HotSources)
}

// ToFlatList concatenates bilibili users, rss feeds and hot lists, in this order, keeping order inside lists
func ToFlatList(p domain.Persona) []Entry {
	res := make([]Entry, 0, p.SubscriptionCount())
	for _, kind := range domain.Kinds() {
		for _, s := range p.List(kind) {
			res = append(res, Entry{Kind: kind, Subscription: s})
		}
	}
	return res
}

// EncodeSubscriptions makes the full replacement set of source configs for a persona, without ids
func EncodeSubscriptions(p domain.Persona) []sourcecfg.Envelope {
	entries := ToFlatList(p)
	res := make([]sourcecfg.Envelope, 0, len(entries))
	for _, e := range entries {
		res = append(res, sourcecfg.Encode(e.Subscription, e.Kind))
	}
	return res
}

// FromFlatCollection decodes source configs and groups them by kind. Configs of unrecognized kinds are
// dropped, the per-kind lists have no place for them.
func FromFlatCollection(envs []sourcecfg.Envelope) Groups {
	res := Groups{
		BilibiliList: []domain.Subscription{},
		RSSList:      []domain.Subscription{},
		HotSources:   []domain.Subscription{},
	}
	for _, env := range envs {
		switch env.Type {
		case domain.KindBilibiliUser:
			res.BilibiliList = append(res.BilibiliList, sourcecfg.Decode(env))
		case domain.KindRSSFeed:
			res.RSSList = append(res.RSSList, sourcecfg.Decode(env))
		case domain.KindHotList:
			res.HotSources = append(res.HotSources, sourcecfg.Decode(env))
		}
	}
	return res
}

// ScalarsToBackend picks scalar fields of a persona for create and update requests
func ScalarsToBackend(p domain.Persona) remote.PersonaFields {
	interests := p.Interests
	if interests == nil {
		interests = []string{}
	}
	return remote.PersonaFields{
		Name:         p.Name,
		Description:  p.Description,
		Depth:        p.Depth,
		CustomPrompt: p.CustomPrompt,
		Interests:    interests,
	}
}

// ScalarsFromBackend is the inverse of ScalarsToBackend, subscription lists are left empty
func ScalarsFromBackend(f remote.PersonaFields) domain.Persona {
	interests := f.Interests
	if interests == nil {
		interests = []string{}
	}
	return domain.Persona{
		Name:         f.Name,
		Description:  f.Description,
		Depth:        f.Depth,
		CustomPrompt: f.CustomPrompt,
		Interests:    interests,
	}
}

// FromRecord converts a persona record of the remote service to the UI shape
func FromRecord(r remote.PersonaRecord) domain.Persona {
	p := ScalarsFromBackend(r.PersonaFields)
	p.ID = r.ID
	p.CreatedAt = r.CreatedAt.Time
	p.UpdatedAt = r.UpdatedAt.Time

	groups := FromFlatCollection(r.SourceConfigs)
	p.BilibiliList = groups.BilibiliList
	p.RSSList = groups.RSSList
	p.HotSources = groups.HotSources
	return p
}

// FromRecords converts a list of persona records, keeping order
func FromRecords(rr []remote.PersonaRecord) []domain.Persona {
	res := make([]domain.Persona, 0, len(rr))
	for _, r := range rr {
		res = append(res, FromRecord(r))
	}
	return res
}
