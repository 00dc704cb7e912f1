package client

import (
	"time"

	"chatline/internal/dbmysql"
)

// DeletedPlaceholder is what every viewer sees in place of content that
// was deleted for both sides.
const DeletedPlaceholder = "this message is deleted"

// groupWindow is the maximum gap between consecutive messages from the
// same sender that still share one header.
const groupWindow = 5 * time.Minute

// VisibleTo reports whether the viewer's rendered list includes the
// message at all. A sender who deleted a message for themself does not
// get a placeholder; the row simply does not appear. The receiver keeps
// seeing it.
func VisibleTo(msg *dbmysql.Message, viewerID uint) bool {
	return !(msg.SenderID == viewerID && msg.DeletedBySender)
}

// DisplayContent returns the text to render for a message. Content
// deleted for both sides is replaced by the fixed placeholder for every
// viewer, regardless of the sender-side flag.
func DisplayContent(msg *dbmysql.Message) string {
	if msg.IsDeletedForBoth {
		return DeletedPlaceholder
	}
	return msg.Content
}

// VisibleMessages filters a conversation down to the viewer's rendered list.
func VisibleMessages(msgs []*dbmysql.Message, viewerID uint) []*dbmysql.Message {
	out := make([]*dbmysql.Message, 0, len(msgs))
	for _, msg := range msgs {
		if VisibleTo(msg, viewerID) {
			out = append(out, msg)
		}
	}
	return out
}

// MessageGroup is a run of consecutive messages rendered under a single
// sender header.
type MessageGroup struct {
	SenderID uint
	Messages []*dbmysql.Message
}

// GroupBySender splits an ordered message list into display groups: a new
// group starts when the sender changes or the gap since the previous
// message reaches five minutes.
func GroupBySender(msgs []*dbmysql.Message) []MessageGroup {
	var groups []MessageGroup
	var lastSender uint
	var lastTime time.Time

	for _, msg := range msgs {
		sameSender := len(groups) > 0 && lastSender == msg.SenderID
		closeEnough := !lastTime.IsZero() && msg.CreatedAt.Sub(lastTime) < groupWindow

		if sameSender && closeEnough {
			last := &groups[len(groups)-1]
			last.Messages = append(last.Messages, msg)
		} else {
			groups = append(groups, MessageGroup{
				SenderID: msg.SenderID,
				Messages: []*dbmysql.Message{msg},
			})
		}

		lastSender = msg.SenderID
		lastTime = msg.CreatedAt
	}
	return groups
}
