package voltage

import "strconv"

const channelKeyPrefix = "channel_"

// ChannelKey returns the synthetic key of the channel at 0-based position index
func ChannelKey(index int) string {
	return channelKeyPrefix + strconv.Itoa(index+1)
}

// Channels holds output channels keyed by position; parse order is channel identity
type Channels struct {
	keys   []string
	byKey  map[string]*Channel
	byName map[string]*Channel
}

// Enumerate assigns channel_1, channel_2, ... keys to channels in the given order
func Enumerate(channels []*Channel) *Channels {
	result := &Channels{
		keys:   make([]string, 0, len(channels)),
		byKey:  make(map[string]*Channel, len(channels)),
		byName: make(map[string]*Channel, len(channels)),
	}
	for i, channel := range channels {
		key := ChannelKey(i)
		result.keys = append(result.keys, key)
		result.byKey[key] = channel
		result.byName[channel.Name] = channel // last one wins for repeated names
	}
	return result
}

// Clone returns a copy whose channels can be modified without affecting c
func (c *Channels) Clone() *Channels {
	if c == nil {
		return nil
	}
	channels := make([]*Channel, 0, len(c.keys))
	for _, key := range c.keys {
		channel := *c.byKey[key]
		channels = append(channels, &channel)
	}
	return Enumerate(channels)
}

// Len returns number of channels
func (c *Channels) Len() int {
	if c == nil {
		return 0
	}
	return len(c.keys)
}

// Keys returns channel keys in parse order
func (c *Channels) Keys() []string {
	if c == nil {
		return nil
	}
	return append([]string{}, c.keys...)
}

// Get returns the channel for a synthetic key
func (c *Channels) Get(key string) (*Channel, bool) {
	if c == nil {
		return nil, false
	}
	channel, ok := c.byKey[key]
	return channel, ok
}

// ByName returns the last parsed channel with the given name
func (c *Channels) ByName(name string) (*Channel, bool) {
	if c == nil {
		return nil, false
	}
	channel, ok := c.byName[name]
	return channel, ok
}

// Names returns channel names in parse order
func (c *Channels) Names() []string {
	names := make([]string, 0, c.Len())
	for _, key := range c.Keys() {
		names = append(names, c.byKey[key].Name)
	}
	return names
}
