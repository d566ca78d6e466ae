package sourcecfg

import (
	"github.com/woodmeone/Buddy/pkg/domain"
)

// Encode converts a subscription of the given kind to an envelope ready for a replace-all write.
// The subscription id is dropped, the remote service assigns new ids to every written entry.
// Negative thresholds are clamped to 0.
func Encode(s domain.Subscription, kind domain.SourceKind) Envelope {
	env := Envelope{
		Type:           kind,
		Name:           s.Name,
		Enabled:        s.Enabled,
		ViewsThreshold: max(0, int(s.ViewsThreshold)),
	}

	switch kind {
	case domain.KindBilibiliUser:
		env.Config = BilibiliUserConfig{UID: s.UID}
	case domain.KindRSSFeed:
		env.Config = RSSFeedConfig{URL: s.URL}
	case domain.KindHotList:
		env.Config = HotListConfig{}
	default:
		env.Config = UnknownConfig{Type: kind}
	}
	return env
}

// Decode converts an envelope to a subscription. Only the payload of the envelope's own kind is copied,
// unknown kinds produce common attributes only. Never fails.
func Decode(e Envelope) domain.Subscription {
	s := domain.Subscription{
		Name:           e.Name,
		Enabled:        e.Enabled,
		ViewsThreshold: domain.Threshold(e.ViewsThreshold),
	}
	if e.ID != nil {
		s.ID = *e.ID
	}

	switch e.Type {
	case domain.KindBilibiliUser:
		if c, ok := e.Config.(BilibiliUserConfig); ok {
			s.UID = c.UID
		}
	case domain.KindRSSFeed:
		if c, ok := e.Config.(RSSFeedConfig); ok {
			s.URL = c.URL
		}
	}
	return s
}

// EncodeAll encodes subscriptions of a single kind, keeping their order
func EncodeAll(subs []domain.Subscription, kind domain.SourceKind) []Envelope {
	res := make([]Envelope, 0, len(subs))
	for _, s := range subs {
		res = append(res, Encode(s, kind))
	}
	return res
}
