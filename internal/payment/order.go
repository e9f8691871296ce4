package payment

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
)

var (
	errNotArray  = errors.New("orders response is not an array")
	errNullOrder = errors.New("orders response contains a null order")
)

// ApprovedStatus marks a completed payment order.
const ApprovedStatus = "approved"

// Order is one element of the orders API response.
type Order struct {
	Type             string    `json:"type"`
	Status           string    `json:"status"`
	PaymentTimestamp Timestamp `json:"paymentTimestamp"`
}

// Timestamp is a payment time in epoch milliseconds. Null, missing and
// non-numeric values decode to zero, which never counts as paid.
type Timestamp float64

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*t = 0
		return nil
	}

	var n float64
	if err := json.Unmarshal(data, &n); err == nil {
		*t = Timestamp(n)
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			*t = Timestamp(f)
			return nil
		}
	}

	*t = 0
	return nil
}

// Paid reports whether this order alone proves payment.
func (o Order) Paid() bool {
	return o.Status == ApprovedStatus && o.PaymentTimestamp > 0
}

// IsPaid reports whether any order is approved with a positive payment time.
func IsPaid(orders []Order) bool {
	for _, o := range orders {
		if o.Paid() {
			return true
		}
	}
	return false
}

// decodeOrders parses a success body. Anything other than a JSON array is
// rejected. Numbers, strings and other non-object elements carry no status and
// are skipped. A null element stops decoding: the orders before it are
// returned together with errNullOrder, since a paid order ahead of the null
// still settles the check.
func decodeOrders(body []byte) ([]Order, error) {
	var raw []json.RawMessage
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, errNotArray
	}
	if err := json.Unmarshal(trimmed, &raw); err != nil {
		return nil, err
	}

	orders := make([]Order, 0, len(raw))
	for _, r := range raw {
		if bytes.Equal(bytes.TrimSpace(r), []byte("null")) {
			return orders, errNullOrder
		}
		var o Order
		if err := json.Unmarshal(r, &o); err != nil {
			continue
		}
		orders = append(orders, o)
	}
	return orders, nil
}

// rejectionMessage extracts the message of a non-2xx body. ok is false when
// the body is not usable JSON at all. Scalar messages are formatted; empty,
// zero, false and structured messages leave msg empty.
func rejectionMessage(body []byte) (msg string, ok bool) {
	var v any
	if err := json.Unmarshal(body, &v); err != nil || v == nil {
		return "", false
	}
	obj, isObj := v.(map[string]any)
	if !isObj {
		return "", true
	}
	switch m := obj["message"].(type) {
	case string:
		return m, true
	case float64:
		if m != 0 {
			return strconv.FormatFloat(m, 'f', -1, 64), true
		}
	case bool:
		if m {
			return fmt.Sprint(m), true
		}
	}
	return "", true
}
