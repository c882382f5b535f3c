package domain

import (
	"testing"

	"github.com/paulmach/osm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindTag_FirstSeenWins(t *testing.T) {
	node := &osm.Node{
		Tags: osm.Tags{
			{Key: "ele", Value: "1200"},
			{Key: "ele", Value: "1250"},
		},
	}

	tag := FindTag(node, "ele")
	require.NotNil(t, tag)
	assert.Equal(t, "1200", tag.Value)

	assert.Nil(t, FindTag(node, "name"))
}

func TestIsCandidate(t *testing.T) {
	tests := map[string]struct {
		tags osm.Tags
		want bool
	}{
		"named_peak": {
			tags: osm.Tags{{Key: "natural", Value: "peak"}, {Key: "name", Value: "Storefjell"}},
			want: true,
		},
		"named_hill": {
			tags: osm.Tags{{Key: "natural", Value: "hill"}, {Key: "name", Value: "Rundhaugen"}},
			want: true,
		},
		"unnamed_peak": {
			tags: osm.Tags{{Key: "natural", Value: "peak"}},
			want: false,
		},
		"other_natural": {
			tags: osm.Tags{{Key: "natural", Value: "tree"}, {Key: "name", Value: "Gamle eika"}},
			want: false,
		},
		"no_natural": {
			tags: osm.Tags{{Key: "name", Value: "Storefjell 1200"}},
			want: false,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, IsCandidate(&osm.Node{Tags: tc.tags}))
		})
	}
}
