package tinygo_esc

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

type channelDuty struct {
	channel uint8
	duty    uint32
}

func enabledDuties(c *channelDuties) []channelDuty {
	var got []channelDuty
	c.eachEnabled(func(channel uint8, duty uint32) {
		got = append(got, channelDuty{channel, duty})
	})
	sort.Slice(got, func(i, j int) bool { return got[i].channel < got[j].channel })
	return got
}

func TestChannelDuties_SetWritesOnlyEnabled(t *testing.T) {
	c := newChannelDuties()

	assert.False(t, c.set(1, 1500), "a channel never enabled is only stored")
	assert.Equal(t, uint32(1500), c.get(1))

	assert.Equal(t, uint32(1500), c.enable(1))
	assert.True(t, c.isEnabled(1))
	assert.True(t, c.set(1, 1200))
	assert.Equal(t, uint32(1200), c.get(1))
}

func TestChannelDuties_DisableKeepsDuty(t *testing.T) {
	c := newChannelDuties()
	c.enable(2)
	c.set(2, 1800)

	c.disable(2)
	assert.False(t, c.isEnabled(2))
	assert.Equal(t, uint32(1800), c.get(2))

	assert.False(t, c.set(2, 1100), "a disabled channel is only stored")
	assert.Equal(t, uint32(1100), c.enable(2))
}

func TestChannelDuties_EachEnabled(t *testing.T) {
	c := newChannelDuties()
	c.enable(0)
	c.set(0, 1000)
	c.enable(1)
	c.set(1, 2000)
	c.set(3, 1500)
	c.enable(2)
	c.disable(2)

	assert.Equal(t, []channelDuty{{0, 1000}, {1, 2000}}, enabledDuties(c))
	assert.Empty(t, enabledDuties(newChannelDuties()))
}

func TestChannelDuties_EnableUnknownChannel(t *testing.T) {
	c := newChannelDuties()

	assert.Zero(t, c.enable(7))
	assert.Equal(t, []channelDuty{{7, 0}}, enabledDuties(c))
}
