package service

import (
	"context"
	"fmt"
	"time"

	"github.com/fadilmartias/talentflow/internal/config"
	"github.com/fadilmartias/talentflow/internal/model"
	"github.com/go-resty/resty/v2"
)

type DecisionNotifierInterface interface {
	NotifyDecision(ctx context.Context, rec model.ApplicationRecord) error
}

// DecisionEvent is the webhook body sent after a review.
type DecisionEvent struct {
	Event      string       `json:"event"`
	ID         string       `json:"id"`
	Status     model.Status `json:"status"`
	ReviewedBy string       `json:"reviewedBy"`
	ReviewedAt *time.Time   `json:"reviewedAt"`
	FirstName  string       `json:"firstName"`
	LastName   string       `json:"lastName"`
	Email      string       `json:"email"`
	Position   string       `json:"position"`
	Department string       `json:"department"`
}

type DecisionNotifier struct {
	client *resty.Client
	url    string
}

// NewDecisionNotifier posts to url; an empty url makes every call a no-op.
func NewDecisionNotifier(url string, timeout time.Duration) *DecisionNotifier {
	client := resty.New().
		SetTimeout(timeout).
		SetRetryCount(2).
		SetRetryWaitTime(200 * time.Millisecond).
		SetHeader("Content-Type", "application/json")
	return &DecisionNotifier{client: client, url: url}
}

func NewDecisionNotifierFromConfig() *DecisionNotifier {
	cfg := config.LoadNotifierConfig()
	return NewDecisionNotifier(cfg.WebhookURL, cfg.Timeout)
}

func (n *DecisionNotifier) Enabled() bool {
	return n.url != ""
}

func (n *DecisionNotifier) NotifyDecision(ctx context.Context, rec model.ApplicationRecord) error {
	if !n.Enabled() {
		return nil
	}
	resp, err := n.client.R().
		SetContext(ctx).
		SetBody(DecisionEvent{
			Event:      "application.reviewed",
			ID:         rec.ID,
			Status:     rec.Status,
			ReviewedBy: rec.ReviewedBy,
			ReviewedAt: rec.ReviewedAt,
			FirstName:  rec.FirstName,
			LastName:   rec.LastName,
			Email:      rec.Email,
			Position:   rec.Position,
			Department: rec.Department,
		}).
		Post(n.url)
	if err != nil {
		return fmt.Errorf("post decision: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("decision webhook returned %d: %s", resp.StatusCode(), resp.String())
	}
	return nil
}
