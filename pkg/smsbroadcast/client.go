package smsbroadcast

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"

	"github.com/Behyna/sms-services/smsbroadcast/pkg/httpclient"
)

// maxResponseSize bounds how much of a provider response is read.
const maxResponseSize = 1 << 20

type Client interface {
	Send(ctx context.Context, msg *Message) (Response, error)
	Balance(ctx context.Context) (int, error)
}

type client struct {
	cfg    Config
	client httpclient.HTTPClient
}

func NewClient(cfg Config, httpClient httpclient.HTTPClient) Client {
	if cfg.URL == "" {
		cfg.URL = DefaultURL
	}

	return &client{cfg: cfg, client: httpClient}
}

func (c *client) Send(ctx context.Context, msg *Message) (Response, error) {
	if body, _ := msg.Body(); body == "" {
		return Response{}, ErrEmptyBody
	}

	if len(msg.RecipientList()) == 0 {
		return Response{}, ErrNoRecipients
	}

	form, err := EncodeForm(NewSendRequest(c.cfg, msg))
	if err != nil {
		return Response{}, err
	}

	body, err := c.post(ctx, form)
	if err != nil {
		return Response{}, err
	}

	return ParseSendResponse(body)
}

func (c *client) Balance(ctx context.Context) (int, error) {
	form, err := EncodeForm(NewBalanceRequest(c.cfg))
	if err != nil {
		return 0, err
	}

	body, err := c.post(ctx, form)
	if err != nil {
		return 0, err
	}

	return ParseBalanceResponse(body)
}

func (c *client) post(ctx context.Context, form url.Values) (string, error) {
	resp, err := c.client.PostForm(ctx, c.cfg.URL, form)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return "", fmt.Errorf("%w: %w", ErrNetwork, context.Canceled)
		}

		var netErr net.Error
		if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
			return "", ErrTimeout
		}

		return "", ErrNetwork
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", MapStatusToError(resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return "", ErrNetwork
	}

	return string(body), nil
}
