package ipc

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"strings"

	"github.com/matjam/pagefx/internal/transition"
	"resty.dev/v3"
)

// Client talks to a running preview server.
type Client struct {
	rc *resty.Client
}

// NewClient dials the server's unix socket at sockPath.
func NewClient(sockPath string) *Client {
	return newClient(&http.Client{
		Transport: &http.Transport{
			DialContext: func(_ context.Context, _, _ string) (net.Conn, error) {
				return net.Dial("unix", sockPath)
			},
		},
	}, "http://pagefx")
}

func newClient(hc *http.Client, baseURL string) *Client {
	client := resty.NewWithClient(hc)
	client.SetBaseURL(baseURL)
	client.SetHeader("Content-Type", "application/json")
	client.SetHeader("Accept", "application/json")
	client.SetHeader("User-Agent", "pagefx")
	return &Client{rc: client}
}

func (c *Client) Close() error {
	return c.rc.Close()
}

func (c *Client) Status() (*StatusResponse, error) {
	result := StatusResponse{}
	res, err := c.rc.R().SetResult(&result).Get("/status")
	if err != nil {
		return nil, err
	}
	if err := checkStatus(res); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) Start(req StartRequest) error {
	res, err := c.rc.R().SetBody(req).Post("/start")
	if err != nil {
		return err
	}
	return checkStatus(res)
}

// Frame fetches the current frame as PNG bytes. The bytes are nil when
// the server has no transition to show.
func (c *Client) Frame() ([]byte, transition.Phase, error) {
	res, err := c.rc.R().SetHeader("Accept", "image/png").Get("/frame")
	if err != nil {
		return nil, transition.PhaseIdle, err
	}
	if err := checkStatus(res); err != nil {
		return nil, transition.PhaseIdle, err
	}

	phase := parsePhase(res.Header().Get(phaseHeader))
	if res.StatusCode() == http.StatusNoContent {
		return nil, phase, nil
	}
	return res.Bytes(), phase, nil
}

func (c *Client) Reset() error {
	res, err := c.rc.R().Post("/reset")
	if err != nil {
		return err
	}
	return checkStatus(res)
}

func (c *Client) Stop() error {
	res, err := c.rc.R().Post("/stop")
	if err != nil {
		return err
	}
	return checkStatus(res)
}

func (c *Client) Load(req LoadRequest) error {
	res, err := c.rc.R().SetBody(req).Post("/load")
	if err != nil {
		return err
	}
	return checkStatus(res)
}

func (c *Client) Next() error {
	res, err := c.rc.R().Post("/next")
	if err != nil {
		return err
	}
	return checkStatus(res)
}

func (c *Client) Prev() error {
	res, err := c.rc.R().Post("/prev")
	if err != nil {
		return err
	}
	return checkStatus(res)
}

func checkStatus(res *resty.Response) error {
	if res.StatusCode() == http.StatusOK || res.StatusCode() == http.StatusNoContent {
		return nil
	}
	body := strings.TrimSpace(res.String())
	if body == "" {
		return fmt.Errorf("error sending command: %s", res.Status())
	}
	return fmt.Errorf("error sending command: %s: %s", res.Status(), body)
}

func parsePhase(s string) transition.Phase {
	switch s {
	case transition.PhaseRunning.String():
		return transition.PhaseRunning
	case transition.PhaseFinished.String():
		return transition.PhaseFinished
	default:
		return transition.PhaseIdle
	}
}
