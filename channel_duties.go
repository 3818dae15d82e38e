package tinygo_esc

type (
	// channelDuties tracks the last duty and the enable state of each channel of a PWM peripheral.
	//
	// A disabled channel keeps its duty so it can be written again when the channel is enabled.
	channelDuties struct {
		duties  map[uint8]uint32
		enabled map[uint8]bool
	}
)

// newChannelDuties creates an empty channelDuties
func newChannelDuties() *channelDuties {
	return &channelDuties{
		duties:  make(map[uint8]uint32),
		enabled: make(map[uint8]bool),
	}
}

// enable marks a channel as enabled and returns the duty to write to it
func (c *channelDuties) enable(channel uint8) uint32 {
	c.enabled[channel] = true
	return c.duties[channel]
}

// disable marks a channel as disabled, its duty is kept
func (c *channelDuties) disable(channel uint8) {
	c.enabled[channel] = false
}

// isEnabled reports whether a channel is enabled
func (c *channelDuties) isEnabled(channel uint8) bool {
	return c.enabled[channel]
}

// set stores the duty of a channel and reports whether it must be written to the hardware
func (c *channelDuties) set(channel uint8, duty uint32) bool {
	c.duties[channel] = duty
	return c.enabled[channel]
}

// get returns the last duty stored for a channel
func (c *channelDuties) get(channel uint8) uint32 {
	return c.duties[channel]
}

// eachEnabled calls fn with the stored duty of every enabled channel
func (c *channelDuties) eachEnabled(fn func(channel uint8, duty uint32)) {
	for channel, enabled := range c.enabled {
		if enabled {
			fn(channel, c.duties[channel])
		}
	}
}
