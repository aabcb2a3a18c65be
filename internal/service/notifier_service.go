package service

import (
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"

	"web3jobs/internal/config"
	"web3jobs/internal/model"
)

type NotifierServiceInterface interface {
	NotifyJobSubmitted(job *model.Job) error
}

// NotifierService pings the moderation webhook whenever a new posting
// enters the pending queue, so admins hear about it without polling.
type NotifierService struct {
	client     *resty.Client
	webhookURL string
	authToken  string
}

func NewNotifierService() *NotifierService {
	cfg := config.LoadNotifierConfig()
	client := resty.New().
		SetTimeout(10 * time.Second).
		SetRetryCount(2)
	return &NotifierService{
		client:     client,
		webhookURL: cfg.WebhookURL,
		authToken:  cfg.AuthToken,
	}
}

func (s *NotifierService) NotifyJobSubmitted(job *model.Job) error {
	if s.webhookURL == "" {
		return nil
	}

	payload := map[string]any{
		"event":    "job.submitted",
		"job_id":   job.ID.String(),
		"title":    job.Title,
		"company":  job.Company,
		"category": string(job.Category),
		"status":   string(job.VerificationStatus),
	}

	req := s.client.R().SetBody(payload)
	if s.authToken != "" {
		req.SetAuthToken(s.authToken)
	}
	resp, err := req.Post(s.webhookURL)
	if err != nil {
		return err
	}
	if resp.IsError() {
		return fmt.Errorf("moderation webhook returned %d", resp.StatusCode())
	}
	// Some webhook receivers answer 200 with an error body; check the ok
	// field when one is present.
	if ok := gjson.GetBytes(resp.Body(), "ok"); ok.Exists() && !ok.Bool() {
		return fmt.Errorf("moderation webhook rejected event: %s", gjson.GetBytes(resp.Body(), "error").String())
	}
	return nil
}
