package money

import (
	"fmt"
	"strings"
)

// The text form of an amount is the currency code and the value separated by
// a single space, as returned by [Amount.String].
// Amounts are always unmarshaled into the [Default] environment.

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
// See also constructor [ParseAmount].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (a *Amount) UnmarshalText(text []byte) error {
	curr, amount, ok := strings.Cut(string(text), " ")
	if !ok {
		return fmt.Errorf("unmarshaling %T: %w: missing currency delimiter in %q", Amount{}, ErrInvalidAmount, text)
	}
	var err error
	*a, err = ParseAmount(curr, amount)
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", Amount{}, err)
	}
	return nil
}

// AppendText implements the [encoding.TextAppender] interface.
// See also method [Amount.String].
//
// [encoding.TextAppender]: https://pkg.go.dev/encoding#TextAppender
func (a Amount) AppendText(text []byte) ([]byte, error) {
	text = append(text, a.Curr()...)
	text = append(text, ' ')
	return append(text, a.value.String()...), nil
}

// MarshalText implements the [encoding.TextMarshaler] interface.
// See also method [Amount.String].
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (a Amount) MarshalText() ([]byte, error) {
	return a.AppendText(nil)
}

// UnmarshalJSON implements the [json.Unmarshaler] interface.
// A JSON null leaves the amount unchanged.
//
// [json.Unmarshaler]: https://pkg.go.dev/encoding/json#Unmarshaler
func (a *Amount) UnmarshalJSON(text []byte) error {
	if string(text) == "null" {
		return nil
	}
	if len(text) >= 2 && text[0] == '"' && text[len(text)-1] == '"' {
		text = text[1 : len(text)-1]
	}
	return a.UnmarshalText(text)
}

// MarshalJSON implements the [json.Marshaler] interface.
// The amount is written as a JSON string, for example "USD 1.00".
//
// [json.Marshaler]: https://pkg.go.dev/encoding/json#Marshaler
func (a Amount) MarshalJSON() ([]byte, error) {
	text := make([]byte, 0, len(a.Curr())+a.value.Prec()+5)
	text = append(text, '"')
	text, _ = a.AppendText(text)
	text = append(text, '"')
	return text, nil
}
