package advisor

import (
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	ddbtypes "github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/dynosim/dynosim/types"
)

// MarshalItem converts an open item map to SDK attribute values so a
// synthesized change event can be handed to real stream consumers.
func MarshalItem(item types.Item) (map[string]ddbtypes.AttributeValue, error) {
	return attributevalue.MarshalMap(map[string]interface{}(item))
}

// MarshalImage converts the string-coerced image of a change event to SDK
// attribute values.
func MarshalImage(image map[string]types.AttributeValue) map[string]ddbtypes.AttributeValue {
	out := make(map[string]ddbtypes.AttributeValue, len(image))
	for field, val := range image {
		out[field] = &ddbtypes.AttributeValueMemberS{Value: val.S}
	}

	return out
}
