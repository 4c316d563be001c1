package advisor

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dynosim/dynosim/types"
)

// Change event constants, shaped after a DynamoDB stream record.
const (
	eventVersion   = "1.1"
	eventOrigin    = "aws:dynamodb"
	eventRegion    = "us-east-1"
	streamViewType = "NEW_AND_OLD_IMAGES"
)

var tierOneCities = map[string]bool{
	"San Francisco": true,
	"New York":      true,
}

// EventSource supplies the generated identifiers of a change event. The
// contract only requires uniqueness and shape, never specific values;
// inject a deterministic source in tests.
type EventSource interface {
	EventID() string
	SequenceNumber() string
	EngagementScore() int
}

type randomEventSource struct {
	rnd *rand.Rand
}

// NewRandomEventSource returns the default EventSource: UUID event IDs,
// nine-digit random sequence numbers and engagement scores in [1,100].
func NewRandomEventSource() EventSource {
	return &randomEventSource{rnd: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

func (s *randomEventSource) EventID() string {
	return fmt.Sprintf("stream-%s", uuid.NewString())
}

func (s *randomEventSource) SequenceNumber() string {
	return fmt.Sprintf("%d", s.rnd.Intn(900000000)+100000000)
}

func (s *randomEventSource) EngagementScore() int {
	return s.rnd.Intn(100) + 1
}

// StreamDetail is the payload section of a synthesized stream record.
type StreamDetail struct {
	ApproximateCreationDateTime int64                           `json:"ApproximateCreationDateTime"`
	Keys                        map[string]types.AttributeValue `json:"Keys"`
	NewImage                    map[string]types.AttributeValue `json:"NewImage"`
	SequenceNumber              string                          `json:"SequenceNumber"`
	SizeBytes                   int                             `json:"SizeBytes"`
	StreamViewType              string                          `json:"StreamViewType"`
}

// StreamRecord is a synthesized change-notification record mimicking a
// database change-stream entry.
type StreamRecord struct {
	EventID      string       `json:"eventID"`
	EventName    string       `json:"eventName"`
	EventVersion string       `json:"eventVersion"`
	Source       string       `json:"eventSource"`
	AWSRegion    string       `json:"awsRegion"`
	Detail       StreamDetail `json:"dynamodb"`
}

// PayloadContext carries the signals derived from the item for downstream
// consumers.
type PayloadContext struct {
	UserSegment     string `json:"user_segment"`
	LocationTier    string `json:"location_tier"`
	EngagementScore int    `json:"engagement_score"`
}

// DerivedPayload is the flattened, consumer-ready form of a change event.
type DerivedPayload struct {
	EntityID  interface{}    `json:"entity_id"`
	Operation string         `json:"operation"`
	Data      types.Item     `json:"data"`
	Timestamp time.Time      `json:"timestamp"`
	Context   PayloadContext `json:"ai_context"`
}

// ChangeEvent bundles the stream record, the derived payload and the fixed
// downstream-processing suggestions.
type ChangeEvent struct {
	Record          StreamRecord   `json:"change_event"`
	Payload         DerivedPayload `json:"derived_payload"`
	ProcessingHints []string       `json:"processing_hints"`
}

// SynthesizeChangeEvent converts an item mutation into a stream-shaped
// change event plus a flattened payload. IDs and sequence numbers come from
// the engine's EventSource and are not derived from item identity.
func (e *Engine) SynthesizeChangeEvent(operation, partitionKeyAttr string, item types.Item) ChangeEvent {
	now := time.Now()

	keyValue := "unknown"
	if v, ok := item[partitionKeyAttr]; ok {
		keyValue = fmt.Sprintf("%v", v)
	}

	record := StreamRecord{
		EventID:      e.events.EventID(),
		EventName:    strings.ToUpper(operation),
		EventVersion: eventVersion,
		Source:       eventOrigin,
		AWSRegion:    eventRegion,
		Detail: StreamDetail{
			ApproximateCreationDateTime: now.Unix(),
			Keys:                        map[string]types.AttributeValue{partitionKeyAttr: {S: keyValue}},
			NewImage:                    types.CoerceAttributeValues(item),
			SequenceNumber:              e.events.SequenceNumber(),
			SizeBytes:                   serializedSize(item),
			StreamViewType:              streamViewType,
		},
	}

	payload := DerivedPayload{
		EntityID:  item[partitionKeyAttr],
		Operation: operation,
		Data:      item.Copy(),
		Timestamp: now,
		Context: PayloadContext{
			UserSegment:     userSegment(item),
			LocationTier:    locationTier(item),
			EngagementScore: e.events.EngagementScore(),
		},
	}

	return ChangeEvent{
		Record:  record,
		Payload: payload,
		ProcessingHints: []string{
			"Send to real-time personalization engine",
			"Update user behavior analytics",
			"Trigger recommendation refresh",
		},
	}
}

func userSegment(item types.Item) string {
	if age, ok := item.Number("age"); ok && age > 25 {
		return "active"
	}

	return "young"
}

func locationTier(item types.Item) string {
	if city, ok := item.String("city"); ok && tierOneCities[city] {
		return "tier1"
	}

	return "tier2"
}

func serializedSize(item types.Item) int {
	raw, err := json.Marshal(item)
	if err != nil {
		return 0
	}

	return len(raw)
}
