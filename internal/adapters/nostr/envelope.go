package nostr

import (
	"encoding/json"
	"fmt"

	"go.trai.ch/zerr"
)

// Relay-to-client message labels.
const (
	labelEvent  = "EVENT"
	labelEOSE   = "EOSE"
	labelOK     = "OK"
	labelNotice = "NOTICE"
	labelClosed = "CLOSED"
	labelReq    = "REQ"
	labelClose  = "CLOSE"
)

var errMalformedFrame = zerr.New("malformed relay frame")

// message is a decoded relay-to-client frame.
type message struct {
	Label   string
	SubID   string
	Event   *Event
	EventID string
	OK      bool
	Text    string
}

func encodeReq(subID string, filters []Filter) ([]byte, error) {
	frame := make([]any, 0, len(filters)+2)
	frame = append(frame, labelReq, subID)
	for _, f := range filters {
		frame = append(frame, f)
	}
	return json.Marshal(frame)
}

func encodeClose(subID string) ([]byte, error) {
	return json.Marshal([]any{labelClose, subID})
}

func encodeEvent(ev *Event) ([]byte, error) {
	return json.Marshal([]any{labelEvent, ev})
}

func decodeMessage(data []byte) (message, error) {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return message{}, zerr.Wrap(err, errMalformedFrame.Error())
	}
	if len(raw) == 0 {
		return message{}, errMalformedFrame
	}

	var msg message
	if err := json.Unmarshal(raw[0], &msg.Label); err != nil {
		return message{}, zerr.Wrap(err, errMalformedFrame.Error())
	}

	str := func(i int, dst *string) error {
		if i >= len(raw) {
			return zerr.With(errMalformedFrame, "label", msg.Label)
		}
		return json.Unmarshal(raw[i], dst)
	}

	var err error
	switch msg.Label {
	case labelEvent:
		if err = str(1, &msg.SubID); err == nil {
			if len(raw) < 3 {
				return message{}, zerr.With(errMalformedFrame, "label", msg.Label)
			}
			msg.Event = &Event{}
			err = json.Unmarshal(raw[2], msg.Event)
		}
	case labelEOSE:
		err = str(1, &msg.SubID)
	case labelOK:
		if err = str(1, &msg.EventID); err == nil {
			if len(raw) < 3 {
				return message{}, zerr.With(errMalformedFrame, "label", msg.Label)
			}
			if err = json.Unmarshal(raw[2], &msg.OK); err == nil && len(raw) > 3 {
				err = json.Unmarshal(raw[3], &msg.Text)
			}
		}
	case labelNotice:
		err = str(1, &msg.Text)
	case labelClosed:
		if err = str(1, &msg.SubID); err == nil && len(raw) > 2 {
			err = json.Unmarshal(raw[2], &msg.Text)
		}
	default:
		return message{}, zerr.With(errMalformedFrame, "label", fmt.Sprintf("%q", msg.Label))
	}
	if err != nil {
		return message{}, zerr.With(zerr.Wrap(err, errMalformedFrame.Error()), "label", msg.Label)
	}
	return msg, nil
}
