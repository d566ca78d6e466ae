package sourcecfg

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/woodmeone/Buddy/pkg/domain"
)

func TestEncode(t *testing.T) {
	t.Run("bilibili user", func(t *testing.T) {
		env := Encode(domain.Subscription{ID: 7, Name: "A", UID: "123", Enabled: true, URL: "http://ignored"},
			domain.KindBilibiliUser)
		assert.Nil(t, env.ID)
		assert.Equal(t, domain.KindBilibiliUser, env.Type)
		assert.Equal(t, "A", env.Name)
		assert.True(t, env.Enabled)
		assert.Equal(t, 0, env.ViewsThreshold)
		assert.Equal(t, BilibiliUserConfig{UID: "123"}, env.Config)
	})

	t.Run("rss feed", func(t *testing.T) {
		env := Encode(domain.Subscription{Name: "B", URL: "http://x", ViewsThreshold: 10, UID: "ignored"},
			domain.KindRSSFeed)
		assert.Equal(t, RSSFeedConfig{URL: "http://x"}, env.Config)
		assert.Equal(t, 10, env.ViewsThreshold)
		assert.False(t, env.Enabled)
	})

	t.Run("hot list", func(t *testing.T) {
		env := Encode(domain.Subscription{Name: "weibo", Enabled: true}, domain.KindHotList)
		assert.Equal(t, HotListConfig{}, env.Config)
	})

	t.Run("unrecognized kind gets empty config", func(t *testing.T) {
		env := Encode(domain.Subscription{Name: "x", UID: "1"}, "podcast")
		data, err := json.Marshal(env)
		require.NoError(t, err)
		assert.JSONEq(t, `{"type":"podcast","name":"x","enabled":false,"views_threshold":0,"config_data":{}}`,
			string(data))
	})

	t.Run("negative threshold clamped", func(t *testing.T) {
		env := Encode(domain.Subscription{Name: "n", ViewsThreshold: -5}, domain.KindHotList)
		assert.Equal(t, 0, env.ViewsThreshold)
	})
}

func TestEncode_ThresholdCoercion(t *testing.T) {
	tbl := []struct {
		name  string
		input string
		want  int
	}{
		{"garbage string", `{"name":"s","viewsThreshold":"abc"}`, 0},
		{"missing", `{"name":"s"}`, 0},
		{"negative", `{"name":"s","viewsThreshold":-5}`, 0},
		{"null", `{"name":"s","viewsThreshold":null}`, 0},
		{"numeric string", `{"name":"s","viewsThreshold":"42"}`, 42},
		{"number", `{"name":"s","viewsThreshold":42}`, 42},
		{"float", `{"name":"s","viewsThreshold":12.9}`, 12},
		{"bool", `{"name":"s","viewsThreshold":true}`, 0},
	}

	for _, tt := range tbl {
		t.Run(tt.name, func(t *testing.T) {
			var s domain.Subscription
			require.NoError(t, json.Unmarshal([]byte(tt.input), &s))
			env := Encode(s, domain.KindRSSFeed)
			assert.Equal(t, tt.want, env.ViewsThreshold)

			data, err := json.Marshal(env)
			require.NoError(t, err)
			var wire map[string]any
			require.NoError(t, json.Unmarshal(data, &wire))
			assert.InDelta(t, float64(tt.want), wire["views_threshold"], 0)
		})
	}
}

func TestEncode_DropsID(t *testing.T) {
	id := int64(99)
	for _, kind := range domain.Kinds() {
		env := Encode(domain.Subscription{ID: id, Name: "with id"}, kind)
		assert.Nil(t, env.ID, kind)

		data, err := json.Marshal(env)
		require.NoError(t, err)
		var wire map[string]any
		require.NoError(t, json.Unmarshal(data, &wire))
		_, found := wire["id"]
		assert.False(t, found, "encoded %s envelope must not have id", kind)
	}
}

func TestDecode(t *testing.T) {
	id := int64(12)

	t.Run("bilibili user", func(t *testing.T) {
		s := Decode(Envelope{ID: &id, Type: domain.KindBilibiliUser, Name: "A", Enabled: true, ViewsThreshold: 3,
			Config: BilibiliUserConfig{UID: "123"}})
		assert.Equal(t, domain.Subscription{ID: 12, Name: "A", Enabled: true, ViewsThreshold: 3, UID: "123"}, s)
	})

	t.Run("rss feed without url", func(t *testing.T) {
		s := Decode(Envelope{Type: domain.KindRSSFeed, Name: "B", Config: RSSFeedConfig{}})
		assert.Equal(t, domain.Subscription{Name: "B"}, s)
	})

	t.Run("config of another kind is not copied", func(t *testing.T) {
		s := Decode(Envelope{Type: domain.KindRSSFeed, Name: "B", Config: BilibiliUserConfig{UID: "1"}})
		assert.Empty(t, s.UID)
		assert.Empty(t, s.URL)
	})

	t.Run("hot list", func(t *testing.T) {
		s := Decode(Envelope{ID: &id, Type: domain.KindHotList, Name: "zhihu", Enabled: true})
		assert.Equal(t, domain.Subscription{ID: 12, Name: "zhihu", Enabled: true}, s)
	})

	t.Run("unknown kind decodes to common attributes", func(t *testing.T) {
		var env Envelope
		err := json.Unmarshal([]byte(`{"id":5,"type":"unknown_kind_x","name":"u","enabled":true,
			"views_threshold":9,"config_data":{"uid":"1","url":"http://y"}}`), &env)
		require.NoError(t, err)
		s := Decode(env)
		assert.Equal(t, domain.Subscription{ID: 5, Name: "u", Enabled: true, ViewsThreshold: 9}, s)
	})
}

func TestRoundTrip(t *testing.T) {
	tbl := []struct {
		kind domain.SourceKind
		sub  domain.Subscription
	}{
		{domain.KindBilibiliUser, domain.Subscription{ID: 1, Name: "A", Enabled: true, ViewsThreshold: 1000, UID: "546195"}},
		{domain.KindRSSFeed, domain.Subscription{ID: 2, Name: "B", Enabled: false, ViewsThreshold: 10, URL: "http://x/rss"}},
		{domain.KindHotList, domain.Subscription{ID: 3, Name: "C", Enabled: true, ViewsThreshold: 5}},
	}

	for _, tt := range tbl {
		t.Run(string(tt.kind), func(t *testing.T) {
			// through the wire format too
			data, err := json.Marshal(Encode(tt.sub, tt.kind))
			require.NoError(t, err)
			var env Envelope
			require.NoError(t, json.Unmarshal(data, &env))

			want := tt.sub
			want.ID = 0
			assert.Equal(t, want, Decode(env))
			assert.Equal(t, want, Decode(Encode(tt.sub, tt.kind)))
		})
	}
}
