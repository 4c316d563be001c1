package advisor

import (
	"testing"

	ddbtypes "github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/require"

	"github.com/dynosim/dynosim/types"
)

func TestMarshalItem(t *testing.T) {
	c := require.New(t)

	out, err := MarshalItem(types.Item{"user_id": "u001", "age": 28})
	c.NoError(err)

	id, ok := out["user_id"].(*ddbtypes.AttributeValueMemberS)
	c.True(ok)
	c.Equal("u001", id.Value)

	age, ok := out["age"].(*ddbtypes.AttributeValueMemberN)
	c.True(ok)
	c.Equal("28", age.Value)
}

func TestMarshalImage(t *testing.T) {
	c := require.New(t)

	e := NewEngine(WithEventSource(fixedEventSource{id: "stream-1", sequence: "1"}))
	event := e.SynthesizeChangeEvent("insert", "user_id", types.Item{"user_id": "u001", "age": 28})

	out := MarshalImage(event.Record.Detail.NewImage)
	c.Len(out, 2)

	age, ok := out["age"].(*ddbtypes.AttributeValueMemberS)
	c.True(ok)
	c.Equal("28", age.Value)
}
