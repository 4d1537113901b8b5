package smsbroadcast

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/gorilla/schema"
)

const actionBalance = "balance"

var encoder = schema.NewEncoder()

// SendRequest holds the form parameters of a send call. The private reference
// of a Message has no field here and is never transmitted.
type SendRequest struct {
	Username string `schema:"username"`
	Password string `schema:"password"`
	To       string `schema:"to"`
	From     string `schema:"from,omitempty"`
	Message  string `schema:"message"`
	Ref      string `schema:"ref,omitempty"`
	MaxSplit int    `schema:"maxsplit,omitempty"`
	Delay    int    `schema:"delay,omitempty"`
}

type BalanceRequest struct {
	Username string `schema:"username"`
	Password string `schema:"password"`
	Action   string `schema:"action"`
}

// NewSendRequest maps msg onto the provider parameters. Blank recipients are
// dropped from the to list. The configured sender is used when msg has no
// From, unless msg asks for no sender at all.
func NewSendRequest(cfg Config, msg *Message) SendRequest {
	body, _ := msg.Body()

	req := SendRequest{
		Username: cfg.Username,
		Password: cfg.Password,
		To:       strings.Join(msg.RecipientList(), ","),
		Message:  body,
		Ref:      msg.Reference(),
	}

	if !msg.NoFrom() {
		req.From = msg.From()
		if req.From == "" {
			req.From = cfg.From
		}
	}

	if maxSplit, ok := msg.MaxSplit(); ok {
		req.MaxSplit = maxSplit
	}

	if delay, ok := msg.Delay(); ok {
		req.Delay = delay
	}

	return req
}

func NewBalanceRequest(cfg Config) BalanceRequest {
	return BalanceRequest{Username: cfg.Username, Password: cfg.Password, Action: actionBalance}
}

func EncodeForm(src any) (url.Values, error) {
	form := url.Values{}
	if err := encoder.Encode(src, form); err != nil {
		return nil, fmt.Errorf("encoding error: %w", err)
	}

	return form, nil
}
