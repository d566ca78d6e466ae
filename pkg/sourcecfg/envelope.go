// Package sourcecfg converts persona subscriptions to and from the remote service's flat source config
// records. A record carries a kind tag and a config_data object whose keys depend on the kind; this package
// is the only place the tag is used to pick a config shape.
package sourcecfg

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/woodmeone/Buddy/pkg/domain"
)

// Envelope is a source config as stored by the remote service
type Envelope struct {
	ID             *int64 // assigned by the remote service, never sent back
	PersonaID      *int64
	Type           domain.SourceKind
	Name           string
	Enabled        bool
	ViewsThreshold int
	Config         ConfigData
}

// ConfigData is the kind-specific part of an envelope. Implemented by BilibiliUserConfig, RSSFeedConfig,
// HotListConfig and UnknownConfig only.
type ConfigData interface {
	Kind() domain.SourceKind
	sealed()
}

// BilibiliUserConfig is config_data of a video platform user subscription
type BilibiliUserConfig struct {
	UID string `json:"uid,omitempty"`
}

// RSSFeedConfig is config_data of a feed subscription
type RSSFeedConfig struct {
	URL string `json:"url,omitempty"`
}

// HotListConfig is config_data of a trending list subscription, always empty
type HotListConfig struct{}

// UnknownConfig keeps config_data of kinds this client doesn't recognize, as is
type UnknownConfig struct {
	Type domain.SourceKind
	Raw  json.RawMessage
}

// Kind returns domain.KindBilibiliUser
func (BilibiliUserConfig) Kind() domain.SourceKind { return domain.KindBilibiliUser }

// Kind returns domain.KindRSSFeed
func (RSSFeedConfig) Kind() domain.SourceKind { return domain.KindRSSFeed }

// Kind returns domain.KindHotList
func (HotListConfig) Kind() domain.SourceKind { return domain.KindHotList }

// Kind returns the original tag
func (c UnknownConfig) Kind() domain.SourceKind { return c.Type }

func (BilibiliUserConfig) sealed() {}
func (RSSFeedConfig) sealed()      {}
func (HotListConfig) sealed()      {}
func (UnknownConfig) sealed()      {}

// MarshalJSON writes raw payload back, empty object if there is none
func (c UnknownConfig) MarshalJSON() ([]byte, error) {
	if len(bytes.TrimSpace(c.Raw)) == 0 {
		return []byte("{}"), nil
	}
	return c.Raw, nil
}

// envelopeJSON is the wire shape of Envelope
type envelopeJSON struct {
	ID             *int64            `json:"id,omitempty"`
	PersonaID      *int64            `json:"persona_id,omitempty"`
	Type           domain.SourceKind `json:"type"`
	Name           string            `json:"name"`
	Enabled        bool              `json:"enabled"`
	ViewsThreshold domain.Threshold  `json:"views_threshold"`
	ConfigData     json.RawMessage   `json:"config_data"`
}

// MarshalJSON writes the envelope in the remote service format
func (e Envelope) MarshalJSON() ([]byte, error) {
	cfg := []byte("{}")
	if e.Config != nil {
		data, err := json.Marshal(e.Config)
		if err != nil {
			return nil, fmt.Errorf("marshal config_data of %q: %w", e.Type, err)
		}
		cfg = data
	}
	return json.Marshal(envelopeJSON{
		ID:             e.ID,
		PersonaID:      e.PersonaID,
		Type:           e.Type,
		Name:           e.Name,
		Enabled:        e.Enabled,
		ViewsThreshold: domain.Threshold(e.ViewsThreshold),
		ConfigData:     cfg,
	})
}

// UnmarshalJSON reads the envelope and resolves config_data by the type tag. Missing or malformed
// config_data of a known kind results in an empty config, unknown kinds keep the raw payload.
func (e *Envelope) UnmarshalJSON(data []byte) error {
	var wire envelopeJSON
	if err := json.Unmarshal(data, &wire); err != nil {
		return fmt.Errorf("unmarshal source config: %w", err)
	}
	*e = Envelope{
		ID:             wire.ID,
		PersonaID:      wire.PersonaID,
		Type:           wire.Type,
		Name:           wire.Name,
		Enabled:        wire.Enabled,
		ViewsThreshold: int(wire.ViewsThreshold),
		Config:         parseConfig(wire.Type, wire.ConfigData),
	}
	return nil
}

// parseConfig picks config shape by kind
func parseConfig(kind domain.SourceKind, raw json.RawMessage) ConfigData {
	switch kind {
	case domain.KindBilibiliUser:
		return BilibiliUserConfig{UID: configString(raw, "uid")}
	case domain.KindRSSFeed:
		return RSSFeedConfig{URL: configString(raw, "url")}
	case domain.KindHotList:
		return HotListConfig{}
	default:
		if bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
			raw = nil
		}
		return UnknownConfig{Type: kind, Raw: append(json.RawMessage(nil), raw...)}
	}
}

// configString returns a string or number value of config_data key, empty if missing.
// Numeric uids are common, they are kept in their exact textual form.
func configString(raw json.RawMessage, key string) string {
	if len(raw) == 0 {
		return ""
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var m map[string]any
	if err := dec.Decode(&m); err != nil {
		return ""
	}
	switch v := m[key].(type) {
	case string:
		return v
	case json.Number:
		return v.String()
	case bool:
		return strconv.FormatBool(v)
	default:
		return ""
	}
}
