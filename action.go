package dynosim

import (
	"github.com/dynosim/dynosim/types"
)

// Action names understood by Execute. Anything else, including the
// interpreter's own "error" and "unknown" verdicts, is terminal.
const (
	ActionGetItem    = types.OpGetItem
	ActionPutItem    = types.OpPutItem
	ActionUpdateItem = types.OpUpdateItem
	ActionDeleteItem = types.OpDeleteItem
	ActionQuery      = types.OpQuery
	ActionScan       = types.OpScan
	ActionError      = "error"
	ActionUnknown    = "unknown"
)

// Action is a structured operation request, typically produced by an
// Interpreter from natural-language text. Only the fields relevant to the
// named action are populated.
type Action struct {
	Action       string     `json:"action"`
	TableName    string     `json:"table_name"`
	Key          types.Item `json:"key,omitempty"`
	Item         types.Item `json:"item,omitempty"`
	Updates      types.Item `json:"updates,omitempty"`
	KeyCondition string     `json:"key_condition,omitempty"`
	Message      string     `json:"message,omitempty"`
}

// Interpreter turns free-form request text into a structured Action against
// a named table. Implementations that cannot parse the text return an Action
// with Action set to "error" or "unknown" and Message explaining why.
type Interpreter interface {
	ParseRequest(text, tableName string) Action
}

// Execute dispatches a structured action to the corresponding operation and
// returns its output. Unrecognized actions and interpreter error verdicts
// are surfaced verbatim as failed results without touching the store or the
// ledger.
func (c *Client) Execute(action Action) interface{} {
	switch action.Action {
	case ActionGetItem:
		return c.GetItem(action.TableName, action.Key)
	case ActionPutItem:
		return c.PutItem(action.TableName, action.Item)
	case ActionUpdateItem:
		return c.UpdateItem(action.TableName, action.Key, action.Updates)
	case ActionDeleteItem:
		return c.DeleteItem(action.TableName, action.Key)
	case ActionQuery:
		return c.Query(action.TableName, action.KeyCondition)
	case ActionScan:
		return c.Scan(action.TableName, action.KeyCondition)
	}

	message := action.Message
	if message == "" {
		message = "could not interpret request"
	}

	return &OperationResult{Success: false, Error: message}
}
