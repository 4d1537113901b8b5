package smsbroadcast

import (
	"math"
	"strings"

	"github.com/spf13/cast"
)

const (
	// MaxReferenceLength is the longest reference SMS Broadcast accepts.
	MaxReferenceLength = 20

	DefaultMaxSplit = 1
)

// Message describes one outbound SMS. It is populated through chained setters
// and read by the Client when building the provider request. A Message is not
// safe for concurrent mutation.
type Message struct {
	body             string
	hasBody          bool
	from             string
	noFrom           bool
	recipients       string
	reference        string
	privateReference string
	maxSplit         int
	hasMaxSplit      bool
	delay            int
	hasDelay         bool
}

// Create is a shorthand for NewMessage that reads well at the start of a chain.
func Create(body string) *Message {
	return NewMessage(body)
}

// NewMessage returns a Message with the trimmed body. A body that is empty or
// only whitespace leaves the body unset.
func NewMessage(body string) *Message {
	m := &Message{}
	if body = strings.TrimSpace(body); body != "" {
		m.body = body
		m.hasBody = true
	}

	return m
}

func (m *Message) SetBody(body string) *Message {
	m.body = strings.TrimSpace(body)
	m.hasBody = true

	return m
}

func (m *Message) SetFrom(from string) *Message {
	m.from = from

	return m
}

// SetNoFrom tells the sender to omit the sender ID so the provider falls back
// to its two-way number. It does not clear From.
func (m *Message) SetNoFrom() *Message {
	m.noFrom = true

	return m
}

// SetRecipients stores the recipients as one comma-separated string, keeping
// the given order.
func (m *Message) SetRecipients(recipients ...string) *Message {
	m.recipients = strings.Join(recipients, ",")

	return m
}

// SetReference keeps the first MaxReferenceLength characters of reference.
func (m *Message) SetReference(reference string) *Message {
	runes := []rune(reference)
	if len(runes) > MaxReferenceLength {
		reference = string(runes[:MaxReferenceLength])
	}
	m.reference = reference

	return m
}

// SetPrivateReference stores a reference that is only used locally and is
// never sent to the provider.
func (m *Message) SetPrivateReference(reference string) *Message {
	m.privateReference = reference

	return m
}

// SetMaxSplit caps the number of SMS credits used per recipient. Values are
// stored as given.
func (m *Message) SetMaxSplit(maxSplit int) *Message {
	m.maxSplit = maxSplit
	m.hasMaxSplit = true

	return m
}

func (m *Message) SetDefaultMaxSplit() *Message {
	return m.SetMaxSplit(DefaultMaxSplit)
}

// SetMaxSplitFrom coerces v to an integer with cast.ToInt. Input that is not
// numeric becomes 0.
func (m *Message) SetMaxSplitFrom(v any) *Message {
	return m.SetMaxSplit(toInt(v))
}

// SetDelay sets the delay in minutes before the provider sends the message.
func (m *Message) SetDelay(delay int) *Message {
	m.delay = delay
	m.hasDelay = true

	return m
}

func (m *Message) SetDelayFrom(v any) *Message {
	return m.SetDelay(toInt(v))
}

func (m *Message) Body() (string, bool) { return m.body, m.hasBody }

func (m *Message) From() string { return m.from }

func (m *Message) NoFrom() bool { return m.noFrom }

func (m *Message) Recipients() string { return m.recipients }

// RecipientList splits Recipients back into its parts, skipping blanks.
func (m *Message) RecipientList() []string {
	var list []string
	for _, r := range strings.Split(m.recipients, ",") {
		if r = strings.TrimSpace(r); r != "" {
			list = append(list, r)
		}
	}

	return list
}

func (m *Message) Reference() string { return m.reference }

func (m *Message) PrivateReference() string { return m.privateReference }

func (m *Message) MaxSplit() (int, bool) { return m.maxSplit, m.hasMaxSplit }

func (m *Message) Delay() (int, bool) { return m.delay, m.hasDelay }

// toInt strips leading zeros from numeric text so "08" reads as 8 rather than
// an invalid octal literal. Text that is numeric but not a whole number, such
// as "2.5" or "1e1", is truncated like a float.
func toInt(v any) int {
	s, ok := v.(string)
	if !ok {
		return cast.ToInt(v)
	}

	s = strings.TrimSpace(s)
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimLeft(strings.TrimPrefix(s, "-"), "0")
	if s == "" || strings.HasPrefix(s, ".") {
		s = "0" + s
	}
	if neg {
		s = "-" + s
	}

	if n, err := cast.ToIntE(s); err == nil {
		return n
	}

	f, err := cast.ToFloat64E(s)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}

	return int(f)
}
