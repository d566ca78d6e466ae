package persona

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/woodmeone/Buddy/pkg/domain"
	"github.com/woodmeone/Buddy/pkg/remote"
	"github.com/woodmeone/Buddy/pkg/sourcecfg"
)

func TestToFlatList(t *testing.T) {
	p := domain.Persona{
		HotSources:   []domain.Subscription{{Name: "h1"}},
		RSSList:      []domain.Subscription{{Name: "r1"}, {Name: "r2"}},
		BilibiliList: []domain.Subscription{{Name: "b1"}, {Name: "b2"}},
	}
	res := ToFlatList(p)
	require.Len(t, res, 5)

	names := make([]string, 0, len(res))
	kinds := make([]domain.SourceKind, 0, len(res))
	for _, e := range res {
		names = append(names, e.Subscription.Name)
		kinds = append(kinds, e.Kind)
	}
	assert.Equal(t, []string{"b1", "b2", "r1", "r2", "h1"}, names)
	assert.Equal(t, []domain.SourceKind{domain.KindBilibiliUser, domain.KindBilibiliUser, domain.KindRSSFeed,
		domain.KindRSSFeed, domain.KindHotList}, kinds)

	assert.Empty(t, ToFlatList(domain.Persona{}))
}

func TestEncodeSubscriptions_Scenario(t *testing.T) {
	var p domain.Persona
	err := json.Unmarshal([]byte(`{
		"id": 3, "name": "tech",
		"bilibiliList": [{"id": 100, "name": "A", "uid": "123", "enabled": true}],
		"rssList": [{"id": 101, "name": "B", "url": "http://x", "enabled": false, "viewsThreshold": "10"}],
		"hotSources": []
	}`), &p)
	require.NoError(t, err)

	envs := EncodeSubscriptions(p)
	require.Len(t, envs, 2)

	data, err := json.Marshal(envs)
	require.NoError(t, err)
	assert.JSONEq(t, `[
		{"type":"bilibili_user","name":"A","enabled":true,"views_threshold":0,"config_data":{"uid":"123"}},
		{"type":"rss_feed","name":"B","enabled":false,"views_threshold":10,"config_data":{"url":"http://x"}}
	]`, string(data))
}

func TestFromFlatCollection(t *testing.T) {
	id := func(v int64) *int64 { return &v }
	envs := []sourcecfg.Envelope{
		{ID: id(1), Type: domain.KindRSSFeed, Name: "r1", Config: sourcecfg.RSSFeedConfig{URL: "http://1"}},
		{ID: id(2), Type: domain.KindHotList, Name: "h1", Enabled: true},
		{ID: id(3), Type: domain.KindBilibiliUser, Name: "b1", Config: sourcecfg.BilibiliUserConfig{UID: "9"}},
		{ID: id(4), Type: "unknown_kind_x", Name: "u1"},
		{ID: id(5), Type: domain.KindRSSFeed, Name: "r2", ViewsThreshold: 4, Config: sourcecfg.RSSFeedConfig{URL: "http://2"}},
		{ID: id(6), Type: "another_unknown", Name: "u2"},
	}

	g := FromFlatCollection(envs)
	assert.Equal(t, []domain.Subscription{{ID: 3, Name: "b1", UID: "9"}}, g.BilibiliList)
	assert.Equal(t, []domain.Subscription{{ID: 1, Name: "r1", URL: "http://1"},
		{ID: 5, Name: "r2", URL: "http://2", ViewsThreshold: 4}}, g.RSSList)
	assert.Equal(t, []domain.Subscription{{ID: 2, Name: "h1", Enabled: true}}, g.HotSources)
	assert.Equal(t, len(envs)-2, g.Len(), "unknown kinds dropped")

	for _, list := range [][]domain.Subscription{g.BilibiliList, g.RSSList, g.HotSources} {
		for _, s := range list {
			assert.NotContains(t, []string{"u1", "u2"}, s.Name)
		}
	}

	t.Run("empty collection gives empty lists", func(t *testing.T) {
		g := FromFlatCollection(nil)
		assert.NotNil(t, g.BilibiliList)
		assert.NotNil(t, g.RSSList)
		assert.NotNil(t, g.HotSources)
		assert.Equal(t, 0, g.Len())
	})
}

func TestGroupingCompleteness(t *testing.T) {
	id := func(v int64) *int64 { return &v }
	envs := []sourcecfg.Envelope{
		{ID: id(1), Type: domain.KindHotList, Name: "h1"},
		{ID: id(2), Type: domain.KindRSSFeed, Name: "r1", Config: sourcecfg.RSSFeedConfig{URL: "u"}},
		{ID: id(3), Type: domain.KindBilibiliUser, Name: "b1", Config: sourcecfg.BilibiliUserConfig{UID: "1"}},
		{ID: id(4), Type: domain.KindHotList, Name: "h2", Enabled: true},
		{ID: id(5), Type: domain.KindBilibiliUser, Name: "b2", ViewsThreshold: 50},
		{ID: id(6), Type: domain.KindRSSFeed, Name: "r1", Config: sourcecfg.RSSFeedConfig{URL: "u"}}, // duplicate
	}

	decoded := make([]domain.Subscription, 0, len(envs))
	for _, e := range envs {
		s := sourcecfg.Decode(e)
		s.ID = 0
		decoded = append(decoded, s)
	}

	g := FromFlatCollection(envs)
	p := domain.Persona{BilibiliList: g.BilibiliList, RSSList: g.RSSList, HotSources: g.HotSources}
	flat := ToFlatList(p)

	regrouped := make([]domain.Subscription, 0, len(flat))
	for _, e := range flat {
		s := e.Subscription
		s.ID = 0
		regrouped = append(regrouped, s)
	}
	assert.ElementsMatch(t, decoded, regrouped)

	// kinds are assigned by the original tags
	kindOf := map[string]domain.SourceKind{}
	for _, e := range envs {
		kindOf[e.Name] = e.Type
	}
	for _, e := range flat {
		assert.Equal(t, kindOf[e.Subscription.Name], e.Kind)
	}
}

func TestScalars(t *testing.T) {
	p := domain.Persona{ID: 5, Name: "n", Description: "d", Depth: 8, CustomPrompt: "p", Interests: []string{"a", "b"},
		RSSList: []domain.Subscription{{Name: "r"}}}

	f := ScalarsToBackend(p)
	assert.Equal(t, remote.PersonaFields{Name: "n", Description: "d", Depth: 8, CustomPrompt: "p",
		Interests: []string{"a", "b"}}, f)

	data, err := json.Marshal(f)
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"n","description":"d","depth":8,"custom_prompt":"p","interests":["a","b"]}`, string(data))

	back := ScalarsFromBackend(f)
	assert.Equal(t, "p", back.CustomPrompt)
	assert.Equal(t, domain.Persona{Name: "n", Description: "d", Depth: 8, CustomPrompt: "p",
		Interests: []string{"a", "b"}}, back)

	t.Run("nil interests sent as empty list", func(t *testing.T) {
		f := ScalarsToBackend(domain.Persona{Name: "x"})
		data, err := json.Marshal(f)
		require.NoError(t, err)
		assert.Contains(t, string(data), `"interests":[]`)
		assert.Equal(t, []string{}, ScalarsFromBackend(remote.PersonaFields{}).Interests)
	})

	t.Run("duplicate interests kept in order", func(t *testing.T) {
		f := ScalarsToBackend(domain.Persona{Interests: []string{"b", "a", "b"}})
		assert.Equal(t, []string{"b", "a", "b"}, ScalarsFromBackend(f).Interests)
	})
}

func TestFromRecord(t *testing.T) {
	var rec remote.PersonaRecord
	err := json.Unmarshal([]byte(`{"id":1,"name":"tech","description":null,"depth":7,"custom_prompt":"p",
		"interests":["go"],"created_at":"2024-05-01T10:00:00","updated_at":"2024-05-02T10:00:00Z",
		"source_configs":[
			{"id":10,"type":"bilibili_user","name":"A","enabled":true,"views_threshold":0,"config_data":{"uid":"123"}},
			{"id":11,"type":"rss_feed","name":"B","enabled":false,"views_threshold":10,"config_data":{"url":"http://x"}},
			{"id":12,"type":"hot_list","name":"C","enabled":true,"views_threshold":null,"config_data":{}},
			{"id":13,"type":"unknown_kind_x","name":"D","enabled":true,"config_data":{}}
		]}`), &rec)
	require.NoError(t, err)

	p := FromRecord(rec)
	assert.Equal(t, int64(1), p.ID)
	assert.Equal(t, "tech", p.Name)
	assert.Empty(t, p.Description)
	assert.Equal(t, 7, p.Depth)
	assert.Equal(t, "p", p.CustomPrompt)
	assert.Equal(t, []string{"go"}, p.Interests)
	assert.Equal(t, 2024, p.CreatedAt.Year())
	assert.Equal(t, []domain.Subscription{{ID: 10, Name: "A", Enabled: true, UID: "123"}}, p.BilibiliList)
	assert.Equal(t, []domain.Subscription{{ID: 11, Name: "B", ViewsThreshold: 10, URL: "http://x"}}, p.RSSList)
	assert.Equal(t, []domain.Subscription{{ID: 12, Name: "C", Enabled: true}}, p.HotSources)

	data, err := json.Marshal(p)
	require.NoError(t, err)
	var ui map[string]any
	require.NoError(t, json.Unmarshal(data, &ui))
	for _, key := range []string{"customPrompt", "bilibiliList", "rssList", "hotSources"} {
		assert.Contains(t, ui, key)
	}
	assert.NotContains(t, ui, "custom_prompt")

	list := FromRecords([]remote.PersonaRecord{rec, {ID: 2, PersonaFields: remote.PersonaFields{Name: "empty"}}})
	require.Len(t, list, 2)
	assert.Equal(t, "empty", list[1].Name)
	assert.Empty(t, list[1].BilibiliList)
}
