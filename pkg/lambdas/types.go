package lambdas

import (
	"bytes"
	"encoding/json"
	"errors"
	"strconv"

	"github.com/aws/aws-lambda-go/events"
)

// Response is returned by both handlers to the invoking infrastructure.
// Body holds a JSON encoded string.
type Response struct {
	StatusCode        int                          `json:"statusCode"`
	Body              string                       `json:"body"`
	BatchItemFailures []events.SQSBatchItemFailure `json:"batchItemFailures,omitempty"`
}

// ProducerInput is the input the producer lambda receives
type ProducerInput struct {
	MessageBody    InputValue `json:"messageBody,omitempty"`
	MessageGroupID InputValue `json:"messageGroupId,omitempty"`
}

// InputValue is an invocation field that accepts any JSON value and keeps
// its string form. null, false, zero and the empty string decode to "".
type InputValue string

// UnmarshalJSON implements json.Unmarshaler
func (v *InputValue) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		*v = ""
		return nil
	}

	switch data[0] {
	case 'n':
		*v = ""
	case 't':
		*v = "true"
	case 'f':
		*v = ""
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = InputValue(s)
	case '{', '[':
		// objects and arrays are sent as their compact JSON text, so an
		// empty array is the non-falsy body "[]"
		var compact bytes.Buffer
		if err := json.Compact(&compact, data); err != nil {
			return err
		}
		*v = InputValue(compact.String())
	default:
		f, err := strconv.ParseFloat(string(data), 64)
		if err != nil {
			return err
		}
		if f == 0 {
			*v = ""
			return nil
		}
		*v = InputValue(strconv.FormatFloat(f, 'f', -1, 64))
	}

	return nil
}

// Order is the payload carried by the messages of the queue
type Order struct {
	OrderID    string  `json:"orderId"`
	CustomerID string  `json:"customerId,omitempty"`
	Items      []Item  `json:"items,omitempty"`
	Total      float64 `json:"total,omitempty"`
	CreatedAt  string  `json:"createdAt,omitempty"`
}

// Item is a single line of an order
type Item struct {
	SKU      string  `json:"sku"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

// decodeOrder parses a record body. Only a body that is not valid JSON is an
// error: fields whose type does not match the order, or a body that is not an
// object, leave the affected fields at their zero value.
func decodeOrder(body string) (Order, error) {
	var order Order

	var raw json.RawMessage
	if err := json.Unmarshal([]byte(body), &raw); err != nil {
		return order, err
	}

	var typeErr *json.UnmarshalTypeError
	if err := json.Unmarshal(raw, &order); err != nil && !errors.As(err, &typeErr) {
		return order, err
	}

	return order, nil
}
