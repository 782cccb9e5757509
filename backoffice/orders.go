package backoffice

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/jrsteele09/go-backoffice/internal/errors"
)

// OrderKind selects one of the order collections of a hotel
type OrderKind string

const (
	OrdersTotal     OrderKind = "total"
	OrdersConfirmed OrderKind = "confirmed"
	OrdersCancelled OrderKind = "cancelled"
)

var orderPaths = map[OrderKind]string{
	OrdersTotal:     PathOrders,
	OrdersConfirmed: PathOrdersConfirm,
	OrdersCancelled: PathOrdersCancelled,
}

// OrderCount returns the number of orders in a collection. The backend answers
// {"data": [...]}; the count is the array length. The array is counted while it streams in,
// so collections of any size are counted without buffering them.
func (c *Client) OrderCount(ctx context.Context, token string, kind OrderKind, hotelID string) (int, error) {
	path, ok := orderPaths[kind]
	if !ok {
		return 0, fmt.Errorf("[backoffice OrderCount] unknown order kind %q", kind)
	}

	op := "OrderCount " + string(kind)
	var count int
	err := c.stream(ctx, c.config.GetOrdersTimeout(), op, http.MethodGet, path+url.PathEscape(hotelID), token, nil, func(status int, body io.Reader) error {
		if !okStatus(status) {
			return statusError(op, status)
		}
		n, err := countData(body)
		if err != nil {
			return fmt.Errorf("[backoffice %s] %w: %v", op, errors.ErrMalformedPayload, err)
		}
		count = n
		return nil
	})
	if err != nil {
		return 0, err
	}
	return count, nil
}

// countData counts the elements of the top-level "data" array of a JSON object. A missing or
// null "data" counts as zero.
func countData(r io.Reader) (int, error) {
	dec := json.NewDecoder(r)
	if err := expectDelim(dec, '{'); err != nil {
		return 0, err
	}
	for dec.More() {
		key, err := dec.Token()
		if err != nil {
			return 0, err
		}
		if key != "data" {
			var skip json.RawMessage
			if err := dec.Decode(&skip); err != nil {
				return 0, err
			}
			continue
		}

		tok, err := dec.Token()
		if err != nil {
			return 0, err
		}
		if tok == nil {
			return 0, nil
		}
		if delim, ok := tok.(json.Delim); !ok || delim != '[' {
			return 0, fmt.Errorf("data is not an array")
		}
		n := 0
		for dec.More() {
			var skip json.RawMessage
			if err := dec.Decode(&skip); err != nil {
				return 0, err
			}
			n++
		}
		if err := expectDelim(dec, ']'); err != nil {
			return 0, err
		}
		return n, nil
	}
	return 0, nil
}

func expectDelim(dec *json.Decoder, want json.Delim) error {
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != want {
		return fmt.Errorf("expected %q, got %v", want, tok)
	}
	return nil
}
