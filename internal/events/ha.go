package events

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/go-resty/resty/v2"
)

// HAPublisher fires Home Assistant events through the supervisor API.
// Without a SUPERVISOR_TOKEN every publish degrades to a logged no-op. The
// token is read per publish, not cached, so a restarted supervisor session
// picks up without a service restart.
type HAPublisher struct {
	BaseURL string
	Token   func() string
	client  *resty.Client
}

func NewHAPublisher(baseURL string) *HAPublisher {
	return &HAPublisher{
		BaseURL: baseURL,
		Token:   func() string { return os.Getenv("SUPERVISOR_TOKEN") },
		client:  resty.New().SetTimeout(5 * time.Second),
	}
}

func (p *HAPublisher) Publish(ctx context.Context, name string, payload any) {
	token := p.Token()
	if token == "" {
		log.Println("no SUPERVISOR_TOKEN, skipping HA event")
		return
	}
	res, err := p.client.R().
		SetContext(ctx).
		SetAuthToken(token).
		SetHeader("Content-Type", "application/json").
		SetBody(payload).
		Post(p.BaseURL + "/events/" + name)
	if err != nil {
		log.Printf("HA event %s: %v", name, err)
		return
	}
	log.Printf("HA event fired %s: %d", name, res.StatusCode())
}
