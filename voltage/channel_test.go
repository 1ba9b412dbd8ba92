package voltage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/ephys/metadata"
)

func TestEnumerate(t *testing.T) {
	tests := []struct {
		description string
		names       []string
	}{
		{description: "no channels", names: nil},
		{description: "single channel", names: []string{"Output 0"}},
		{description: "names kept out of order", names: []string{"Z", "A", "M"}},
		{description: "repeated names", names: []string{"Output 0", "Output 0"}},
	}
	for _, tc := range tests {
		t.Run(tc.description, func(t *testing.T) {
			var parsed []*Channel
			for _, name := range tc.names {
				parsed = append(parsed, &Channel{Name: name, Fields: metadata.Flatten(outputChannel(name))})
			}
			channels := Enumerate(parsed)
			require.Equal(t, len(parsed), channels.Len())
			for i, original := range parsed {
				actual, ok := channels.Get(ChannelKey(i))
				require.True(t, ok)
				assert.Same(t, original, actual)
			}
			assert.Equal(t, len(tc.names), len(channels.Names()))
		})
	}
}

func TestChannels_Keys(t *testing.T) {
	channels := Enumerate([]*Channel{{Name: "A"}, {Name: "B"}, {Name: "C"}})
	assert.Equal(t, []string{"channel_1", "channel_2", "channel_3"}, channels.Keys())
	_, ok := channels.Get("channel_4")
	assert.False(t, ok)
}

func TestChannels_ByName(t *testing.T) {
	first, second := &Channel{Name: "Output 0"}, &Channel{Name: "Output 0"}
	channels := Enumerate([]*Channel{first, second})
	actual, ok := channels.ByName("Output 0")
	require.True(t, ok)
	assert.Same(t, second, actual)
	_, ok = channels.ByName("Output 9")
	assert.False(t, ok)
}

func TestChannels_Clone(t *testing.T) {
	channels := Enumerate([]*Channel{{Name: "Output 0"}, {Name: "Output 1"}})
	clone := channels.Clone()
	assert.Equal(t, channels.Keys(), clone.Keys())

	channel, ok := clone.Get("channel_1")
	require.True(t, ok)
	channel.Name = "Output 9"
	assert.Equal(t, []string{"Output 0", "Output 1"}, channels.Names())
	_, ok = channels.ByName("Output 9")
	assert.False(t, ok)
	assert.Nil(t, (*Channels)(nil).Clone())
}
