package notification

import (
	"errors"
	"fmt"
)

const (
	ChannelSheet  = "sheet"
	ChannelEmail  = "email"
	ChannelUpload = "upload"
)

var ErrChannelTimeout = errors.New("channel timed out")

// ChannelError is a non-fatal failure of one external side effect. It is
// reported in a FanoutResult or logged, never returned to an end user.
type ChannelError struct {
	Channel string
	Err     error
}

func (e *ChannelError) Error() string {
	return fmt.Sprintf("%s: %v", e.Channel, e.Err)
}

func (e *ChannelError) Unwrap() error {
	return e.Err
}

func NewChannelError(channel string, err error) *ChannelError {
	return &ChannelError{Channel: channel, Err: err}
}
