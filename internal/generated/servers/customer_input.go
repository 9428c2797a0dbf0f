package servers

import "encoding/json"

// UnmarshalJSON records whether the phone key was sent, so an explicit null
// can be told apart from an omitted phone.
func (c *CustomerInput) UnmarshalJSON(b []byte) error {
	type plain CustomerInput

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(b, &fields); err != nil {
		return err
	}

	var p plain
	if err := json.Unmarshal(b, &p); err != nil {
		return err
	}

	*c = CustomerInput(p)
	_, c.PhoneSent = fields["phone"]
	return nil
}
