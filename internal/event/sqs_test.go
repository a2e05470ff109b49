package event

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/accountability-atlas/user-service/internal/model"
	"github.com/accountability-atlas/user-service/internal/testutil"
)

type fakeSQSClient struct {
	lastInput *sqs.SendMessageInput
	err       error
}

func (f *fakeSQSClient) SendMessage(_ context.Context, params *sqs.SendMessageInput, _ ...func(*sqs.Options)) (*sqs.SendMessageOutput, error) {
	f.lastInput = params
	if f.err != nil {
		return nil, f.err
	}
	return &sqs.SendMessageOutput{}, nil
}

func TestSQSPublisher_Publish(t *testing.T) {
	client := &fakeSQSClient{}
	p := NewSQSPublisher(client, "https://sqs.example.com/user-events", testutil.MakeNoopLogger())

	userID := uuid.New()
	now := time.Now().UTC().Truncate(time.Second)
	err := p.Publish(context.Background(), model.UserRegistered{
		UserID:    userID,
		Email:     "u@x.com",
		Timestamp: now,
	})
	require.NoError(t, err)

	require.NotNil(t, client.lastInput)
	assert.Equal(t, "https://sqs.example.com/user-events", *client.lastInput.QueueUrl)

	// Body is the bare event JSON; no type attribute travels with it.
	assert.Empty(t, client.lastInput.MessageAttributes)

	var decoded model.UserRegistered
	require.NoError(t, json.Unmarshal([]byte(*client.lastInput.MessageBody), &decoded))
	assert.Equal(t, userID, decoded.UserID)
	assert.Equal(t, "u@x.com", decoded.Email)
	assert.Equal(t, now, decoded.Timestamp.UTC())
}

func TestSQSPublisher_Publish_TierChange(t *testing.T) {
	client := &fakeSQSClient{}
	p := NewSQSPublisher(client, "https://sqs.example.com/user-events", testutil.MakeNoopLogger())

	err := p.Publish(context.Background(), model.UserTrustTierChanged{
		UserID:    uuid.New(),
		OldTier:   model.TrustTierNew,
		NewTier:   model.TrustTierTrusted,
		Reason:    model.ChangeReasonAutoPromotion,
		Timestamp: time.Now(),
	})
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal([]byte(*client.lastInput.MessageBody), &decoded))
	assert.Equal(t, "NEW", decoded["oldTier"])
	assert.Equal(t, "TRUSTED", decoded["newTier"])
	assert.Equal(t, "AUTO_PROMOTION", decoded["reason"])
}

func TestSQSPublisher_Publish_Error(t *testing.T) {
	client := &fakeSQSClient{err: errors.New("queue unreachable")}
	p := NewSQSPublisher(client, "https://sqs.example.com/user-events", testutil.MakeNoopLogger())

	err := p.Publish(context.Background(), model.UserRegistered{UserID: uuid.New()})
	require.Error(t, err)
}

func TestLoggingPublisher_Publish(t *testing.T) {
	p := NewLoggingPublisher(testutil.MakeNoopLogger())

	err := p.Publish(context.Background(), model.UserRegistered{UserID: uuid.New(), Email: "u@x.com"})
	require.NoError(t, err)
}
