// internal/handlers/enquiry/handler_test.go
package enquiry

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"edupath-server/internal/common/logger"
	"edupath-server/internal/common/relay"
	"edupath-server/internal/models"

	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ==========================
// Test Helper Functions
// ==========================

type mockEmailSender struct {
	calls []*ses.SendEmailInput
	err   error
}

func (m *mockEmailSender) SendEmail(_ context.Context, input *ses.SendEmailInput) (*ses.SendEmailOutput, error) {
	m.calls = append(m.calls, input)
	return &ses.SendEmailOutput{}, m.err
}

type mockTopicPublisher struct {
	calls []*sns.PublishInput
	err   error
}

func (m *mockTopicPublisher) Publish(_ context.Context, input *sns.PublishInput) (*sns.PublishOutput, error) {
	m.calls = append(m.calls, input)
	return &sns.PublishOutput{}, m.err
}

type indexedDoc struct {
	index string
	docID string
	doc   interface{}
}

type mockLeadIndexer struct {
	calls []indexedDoc
	err   error
}

func (m *mockLeadIndexer) IndexJSON(_ context.Context, index, docID string, doc interface{}) error {
	m.calls = append(m.calls, indexedDoc{index: index, docID: docID, doc: doc})
	return m.err
}

func postEnquiry(t *testing.T, h *Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/enquiries", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

const validEnquiryBody = `{
	"name": "Priya Sharma",
	"email": "priya@example.com",
	"phone": "+91 98765 43210",
	"countryInterest": "Canada",
	"fieldOfStudy": "Computer Science",
	"message": "Please call me about Masters admissions.",
	"source": "contact-form"
}`

// ==========================
// Handler Tests
// ==========================

func TestHandler_ValidEnquiry_Stored(t *testing.T) {
	store := NewMemoryStore()
	h := NewHandler(store, nil, logger.NewTestLogger(t))

	rec := postEnquiry(t, h, validEnquiryBody)

	require.Equal(t, http.StatusCreated, rec.Code)
	var resp Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.NotEmpty(t, resp.ID)

	leads, err := store.Recent(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, leads, 1)
	assert.Equal(t, "Priya Sharma", leads[0].Name)
	assert.Equal(t, models.LeadPriorityHigh, leads[0].Priority)
	assert.Equal(t, "contact-form", leads[0].Source)
	assert.False(t, leads[0].CreatedAt.IsZero())
}

func TestHandler_Validation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing name", `{"email": "a@b.com"}`},
		{"missing email", `{"name": "A"}`},
		{"email without at sign", `{"name": "A", "email": "not-an-email"}`},
		{"email with trailing at sign", `{"name": "A", "email": "someone@"}`},
		{"malformed json", `{"name": `},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := NewMemoryStore()
			h := NewHandler(store, nil, logger.NewTestLogger(t))

			rec := postEnquiry(t, h, tt.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			leads, _ := store.Recent(context.Background(), 10)
			assert.Empty(t, leads)
		})
	}
}

func TestDerivePriority(t *testing.T) {
	tests := []struct {
		name     string
		req      Request
		expected models.LeadPriority
	}{
		{"phone and message", Request{Phone: "123", Message: "call me"}, models.LeadPriorityHigh},
		{"message only", Request{Message: "hello"}, models.LeadPriorityNormal},
		{"phone only", Request{Phone: "123"}, models.LeadPriorityNormal},
		{"bare signup", Request{}, models.LeadPriorityLow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, derivePriority(&tt.req))
		})
	}
}

// ==========================
// Notifier Tests
// ==========================

func TestNotifier_DispatchesAllSinks(t *testing.T) {
	var relayHits int
	relaySrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		relayHits++
		require.NoError(t, r.ParseMultipartForm(1 << 20))
		assert.Equal(t, "test-access-key", r.FormValue("access_key"))
		assert.Equal(t, "priya@example.com", r.FormValue("email"))
		w.WriteHeader(http.StatusOK)
	}))
	defer relaySrv.Close()

	testLogger := logger.NewTestLogger(t)
	relayClient := relay.NewClient(relaySrv.URL, "test-access-key", 5*time.Second)
	email := &mockEmailSender{}
	topic := &mockTopicPublisher{}
	indexer := &mockLeadIndexer{}

	n := NewNotifier(NotifyConfig{
		EmailFrom:   "noreply@edupath.example",
		EmailTo:     "counsellors@edupath.example",
		SNSTopicARN: "arn:aws:sns:us-east-1:000000000000:leads",
	}, relayClient, email, topic, indexer, testLogger)

	lead := &models.Lead{
		ID:       "lead-1",
		Name:     "Priya Sharma",
		Email:    "priya@example.com",
		Priority: models.LeadPriorityHigh,
	}
	n.dispatch(context.Background(), lead)

	assert.Equal(t, 1, relayHits)
	require.Len(t, email.calls, 1)
	assert.Equal(t, "counsellors@edupath.example", email.calls[0].Destination.ToAddresses[0])
	require.Len(t, topic.calls, 1)
	assert.Contains(t, *topic.calls[0].Message, "lead-1")
	require.Len(t, indexer.calls, 1)
	assert.Equal(t, "leads", indexer.calls[0].index)
	assert.Equal(t, "lead-1", indexer.calls[0].docID)
}

func TestNotifier_AlertThreshold(t *testing.T) {
	tests := []struct {
		name      string
		threshold models.LeadPriority
		priority  models.LeadPriority
		published bool
	}{
		{"default threshold skips normal", "", models.LeadPriorityNormal, false},
		{"default threshold publishes high", "", models.LeadPriorityHigh, true},
		{"normal threshold publishes normal", models.LeadPriorityNormal, models.LeadPriorityNormal, true},
		{"normal threshold skips low", models.LeadPriorityNormal, models.LeadPriorityLow, false},
		{"low threshold publishes everything", models.LeadPriorityLow, models.LeadPriorityLow, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			email := &mockEmailSender{}
			topic := &mockTopicPublisher{}
			n := NewNotifier(NotifyConfig{
				EmailTo:        "counsellors@edupath.example",
				SNSTopicARN:    "arn:aws:sns:us-east-1:000000000000:leads",
				AlertThreshold: tt.threshold,
			}, nil, email, topic, nil, logger.NewTestLogger(t))

			n.dispatch(context.Background(), &models.Lead{ID: "lead-2", Priority: tt.priority})

			assert.Len(t, email.calls, 1)
			if tt.published {
				assert.Len(t, topic.calls, 1)
			} else {
				assert.Empty(t, topic.calls)
			}
		})
	}
}

func TestNotifier_SinkFailure_DoesNotPropagate(t *testing.T) {
	email := &mockEmailSender{err: assert.AnError}
	indexer := &mockLeadIndexer{err: assert.AnError}
	n := NewNotifier(NotifyConfig{
		EmailTo: "counsellors@edupath.example",
	}, nil, email, nil, indexer, logger.NewTestLogger(t))

	// Must not panic or return anything; failure is logged only.
	n.dispatch(context.Background(), &models.Lead{ID: "lead-3"})

	assert.Len(t, email.calls, 1)
	assert.Len(t, indexer.calls, 1)
}
