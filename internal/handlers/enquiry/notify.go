// internal/handlers/enquiry/notify.go
package enquiry

import (
	"context"
	"fmt"
	"time"

	"edupath-server/internal/common/logger"
	"edupath-server/internal/common/metrics"
	"edupath-server/internal/common/relay"
	"edupath-server/internal/models"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	sestypes "github.com/aws/aws-sdk-go-v2/service/ses/types"
	"github.com/aws/aws-sdk-go-v2/service/sns"
)

// Define interfaces for mocking
type EmailSender interface {
	SendEmail(ctx context.Context, input *ses.SendEmailInput) (*ses.SendEmailOutput, error)
}

type TopicPublisher interface {
	Publish(ctx context.Context, input *sns.PublishInput) (*sns.PublishOutput, error)
}

type LeadIndexer interface {
	IndexJSON(ctx context.Context, index, docID string, doc interface{}) error
}

// leadIndex is the search index the admin lead search reads from.
const leadIndex = "leads"

// NotifyConfig carries the secondary-sink settings. AlertThreshold is the
// minimum lead priority that triggers a topic publish.
type NotifyConfig struct {
	EmailFrom      string
	EmailTo        string
	SNSTopicARN    string
	AlertThreshold models.LeadPriority
	Timeout        time.Duration
}

// Notifier fans a stored lead out to the best-effort secondary sinks: the
// forms relay, an internal email, and a topic publish for high-priority
// leads. Failures are counted and logged, never surfaced to the caller.
type Notifier struct {
	config  NotifyConfig
	relay   *relay.Client
	email   EmailSender
	topic   TopicPublisher
	indexer LeadIndexer
	logger  logger.Logger
}

func NewNotifier(cfg NotifyConfig, relayClient *relay.Client, email EmailSender, topic TopicPublisher, indexer LeadIndexer, log logger.Logger) *Notifier {
	if cfg.Timeout == 0 {
		cfg.Timeout = 10 * time.Second
	}
	if cfg.AlertThreshold == "" {
		cfg.AlertThreshold = models.LeadPriorityHigh
	}
	return &Notifier{
		config:  cfg,
		relay:   relayClient,
		email:   email,
		topic:   topic,
		indexer: indexer,
		logger:  log.WithFields(map[string]interface{}{"component": "lead-notifier"}),
	}
}

// Dispatch runs every configured sink in one background goroutine with its
// own deadline, detached from the request context.
func (n *Notifier) Dispatch(lead *models.Lead) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), n.config.Timeout)
		defer cancel()
		n.dispatch(ctx, lead)
	}()
}

func (n *Notifier) dispatch(ctx context.Context, lead *models.Lead) {
	if n.relay != nil && n.relay.Enabled() {
		if err := n.relay.Submit(ctx, relayFields(lead)); err != nil {
			metrics.LeadSinkFailuresTotal.WithLabelValues("forms_relay").Inc()
			n.logger.Warn("forms relay submission failed", map[string]interface{}{
				"leadId": lead.ID,
				"error":  err.Error(),
			})
		}
	}

	if n.email != nil && n.config.EmailTo != "" {
		if err := n.sendEmail(ctx, lead); err != nil {
			metrics.LeadSinkFailuresTotal.WithLabelValues("ses_email").Inc()
			n.logger.Warn("lead notification email failed", map[string]interface{}{
				"leadId": lead.ID,
				"error":  err.Error(),
			})
		}
	}

	if n.topic != nil && n.config.SNSTopicARN != "" && lead.Priority.AtLeast(n.config.AlertThreshold) {
		if err := n.publishAlert(ctx, lead); err != nil {
			metrics.LeadSinkFailuresTotal.WithLabelValues("sns_topic").Inc()
			n.logger.Warn("lead alert publish failed", map[string]interface{}{
				"leadId": lead.ID,
				"error":  err.Error(),
			})
		}
	}

	if n.indexer != nil {
		if err := n.indexer.IndexJSON(ctx, leadIndex, lead.ID, lead); err != nil {
			metrics.LeadSinkFailuresTotal.WithLabelValues("search_index").Inc()
			n.logger.Warn("lead search indexing failed", map[string]interface{}{
				"leadId": lead.ID,
				"error":  err.Error(),
			})
		}
	}
}

func relayFields(lead *models.Lead) map[string]string {
	fields := map[string]string{
		"subject": "New enquiry from " + lead.Name,
		"name":    lead.Name,
		"email":   lead.Email,
		"source":  lead.Source,
	}
	if lead.Phone != "" {
		fields["phone"] = lead.Phone
	}
	if lead.CountryInterest != "" {
		fields["country"] = lead.CountryInterest
	}
	if lead.FieldOfStudy != "" {
		fields["field"] = lead.FieldOfStudy
	}
	if lead.Message != "" {
		fields["message"] = lead.Message
	}
	return fields
}

func (n *Notifier) sendEmail(ctx context.Context, lead *models.Lead) error {
	body := fmt.Sprintf("Name: %s\nEmail: %s\nPhone: %s\nCountry: %s\nField: %s\nSource: %s\n\n%s",
		lead.Name, lead.Email, lead.Phone, lead.CountryInterest, lead.FieldOfStudy, lead.Source, lead.Message)

	_, err := n.email.SendEmail(ctx, &ses.SendEmailInput{
		Destination: &sestypes.Destination{
			ToAddresses: []string{n.config.EmailTo},
		},
		Message: &sestypes.Message{
			Subject: &sestypes.Content{Data: aws.String(fmt.Sprintf("[%s] New enquiry from %s", lead.Priority, lead.Name))},
			Body: &sestypes.Body{
				Text: &sestypes.Content{Data: aws.String(body)},
			},
		},
		Source: aws.String(n.config.EmailFrom),
	})
	return err
}

func (n *Notifier) publishAlert(ctx context.Context, lead *models.Lead) error {
	_, err := n.topic.Publish(ctx, &sns.PublishInput{
		TopicArn: aws.String(n.config.SNSTopicARN),
		Message:  aws.String(fmt.Sprintf("High-priority enquiry %s from %s (%s)", lead.ID, lead.Name, lead.Email)),
	})
	return err
}
