package smsbroadcast_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/Behyna/sms-services/smsbroadcast/pkg/httpclient"
	"github.com/Behyna/sms-services/smsbroadcast/pkg/mocks"
	"github.com/Behyna/sms-services/smsbroadcast/pkg/smsbroadcast"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func textResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}

func TestClient_Send(t *testing.T) {
	cfg := smsbroadcast.Config{
		URL:      "https://api.sms.test/api-adv.php",
		Username: "user",
		Password: "secret",
		From:     "DefaultCo",
	}

	newMessage := func() *smsbroadcast.Message {
		return smsbroadcast.Create("Hello").
			SetRecipients("0400111222", "0400333444").
			SetPrivateReference("internal-7")
	}

	matchForm := func(to string) interface{} {
		return mock.MatchedBy(func(form url.Values) bool {
			return form.Get("to") == to &&
				form.Get("message") == "Hello" &&
				form.Get("from") == "DefaultCo" &&
				!form.Has("private_reference")
		})
	}

	t.Run("successful send", func(t *testing.T) {
		mockClient := &mocks.HTTPClient{}
		client := smsbroadcast.NewClient(cfg, mockClient)

		mockClient.On("PostForm", context.Background(), cfg.URL, matchForm("0400111222,0400333444")).
			Return(textResponse(200, "OK: 0400111222: 100\nBAD:0400333444:Invalid Number\n"), nil)

		res, err := client.Send(context.Background(), newMessage())

		require.NoError(t, err)
		require.Len(t, res.Results, 2)
		assert.Equal(t, "100", res.Accepted()[0].SMSRef)
		assert.Equal(t, "Invalid Number", res.Rejected()[0].Error)
		mockClient.AssertExpectations(t)
	})

	t.Run("empty body is not sent", func(t *testing.T) {
		mockClient := &mocks.HTTPClient{}
		client := smsbroadcast.NewClient(cfg, mockClient)

		_, err := client.Send(context.Background(), smsbroadcast.Create("  ").SetRecipients("0400111222"))

		assert.Equal(t, smsbroadcast.ErrEmptyBody, err)
		mockClient.AssertNotCalled(t, "PostForm")
	})

	t.Run("missing recipients are not sent", func(t *testing.T) {
		mockClient := &mocks.HTTPClient{}
		client := smsbroadcast.NewClient(cfg, mockClient)

		_, err := client.Send(context.Background(), smsbroadcast.Create("Hello"))

		assert.Equal(t, smsbroadcast.ErrNoRecipients, err)
		mockClient.AssertNotCalled(t, "PostForm")
	})

	t.Run("timeout error", func(t *testing.T) {
		mockClient := &mocks.HTTPClient{}
		client := smsbroadcast.NewClient(cfg, mockClient)

		mockClient.On("PostForm", context.Background(), cfg.URL, mock.Anything).
			Return((*http.Response)(nil), context.DeadlineExceeded)

		_, err := client.Send(context.Background(), newMessage())

		assert.Equal(t, smsbroadcast.ErrTimeout, err)
	})

	t.Run("cancelled request is not a timeout", func(t *testing.T) {
		mockClient := &mocks.HTTPClient{}
		client := smsbroadcast.NewClient(cfg, mockClient)

		mockClient.On("PostForm", context.Background(), cfg.URL, mock.Anything).
			Return((*http.Response)(nil), &url.Error{Op: "Post", URL: cfg.URL, Err: context.Canceled})

		_, err := client.Send(context.Background(), newMessage())

		assert.ErrorIs(t, err, smsbroadcast.ErrNetwork)
		assert.ErrorIs(t, err, context.Canceled)
		assert.NotErrorIs(t, err, smsbroadcast.ErrTimeout)
	})

	t.Run("http client timeout", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(200 * time.Millisecond)
			w.Write([]byte("OK: 0400111222: 1"))
		}))
		defer server.Close()

		slow := smsbroadcast.NewClient(smsbroadcast.Config{URL: server.URL}, httpclient.NewHTTPClient(20*time.Millisecond))

		_, err := slow.Send(context.Background(), newMessage())

		assert.Equal(t, smsbroadcast.ErrTimeout, err)
	})

	t.Run("network error", func(t *testing.T) {
		mockClient := &mocks.HTTPClient{}
		client := smsbroadcast.NewClient(cfg, mockClient)

		mockClient.On("PostForm", context.Background(), cfg.URL, mock.Anything).
			Return((*http.Response)(nil), errors.New("connection refused"))

		_, err := client.Send(context.Background(), newMessage())

		assert.Equal(t, smsbroadcast.ErrNetwork, err)
	})

	t.Run("server error", func(t *testing.T) {
		mockClient := &mocks.HTTPClient{}
		client := smsbroadcast.NewClient(cfg, mockClient)

		mockClient.On("PostForm", context.Background(), cfg.URL, mock.Anything).
			Return(textResponse(503, "unavailable"), nil)

		_, err := client.Send(context.Background(), newMessage())

		assert.Equal(t, smsbroadcast.ErrServerError, err)
	})

	t.Run("provider error line", func(t *testing.T) {
		mockClient := &mocks.HTTPClient{}
		client := smsbroadcast.NewClient(cfg, mockClient)

		mockClient.On("PostForm", context.Background(), cfg.URL, mock.Anything).
			Return(textResponse(200, "ERROR: Username or password is incorrect"), nil)

		_, err := client.Send(context.Background(), newMessage())

		assert.True(t, errors.Is(err, smsbroadcast.ErrAuthentication))
	})
}

func TestClient_Balance(t *testing.T) {
	cfg := smsbroadcast.Config{URL: "https://api.sms.test/api-adv.php", Username: "user", Password: "secret"}

	mockClient := &mocks.HTTPClient{}
	client := smsbroadcast.NewClient(cfg, mockClient)

	mockClient.On("PostForm", context.Background(), cfg.URL, mock.MatchedBy(func(form url.Values) bool {
		return form.Get("action") == "balance" && form.Get("username") == "user"
	})).Return(textResponse(200, "OK: 250"), nil)

	credits, err := client.Balance(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, 250, credits)
	mockClient.AssertExpectations(t)
}

func TestClient_SendOverHTTP(t *testing.T) {
	var received url.Values
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = r.ParseForm()
		received = r.PostForm
		w.Write([]byte("OK: 0400111222: 555"))
	}))
	defer server.Close()

	cfg := smsbroadcast.Config{URL: server.URL, Username: "user", Password: "secret"}
	client := smsbroadcast.NewClient(cfg, httpclient.NewHTTPClient(5*time.Second))

	msg := smsbroadcast.Create(" Hi there ").
		SetRecipients("0400111222").
		SetNoFrom().
		SetReference("abcdefghijklmnopqrstuvwxyz").
		SetPrivateReference("secret-correlation").
		SetDefaultMaxSplit()

	res, err := client.Send(context.Background(), msg)
	require.NoError(t, err)

	assert.Equal(t, "555", res.Results[0].SMSRef)
	assert.Equal(t, "Hi there", received.Get("message"))
	assert.Equal(t, "abcdefghijklmnopqrst", received.Get("ref"))
	assert.Equal(t, "1", received.Get("maxsplit"))
	assert.False(t, received.Has("from"))
	assert.NotContains(t, received.Encode(), "secret-correlation")
}
