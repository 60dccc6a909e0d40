package fantasy

import (
	"bytes"
	"strconv"
	"strings"

	sonic "github.com/bytedance/sonic"
)

// Yahoo is inconsistent about scalar encodings: the same field may arrive as
// "8" in one endpoint and 8 in another. The Flex types below are the schema's
// explicit coercion declarations; fields not typed with them are never
// coerced.

// FlexString decodes a JSON string, number or bool into its string form.
type FlexString string

func (s *FlexString) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		*s = ""
		return nil
	}
	if trimmed[0] == '"' {
		var value string
		if err := sonic.Unmarshal(trimmed, &value); err != nil {
			return err
		}
		*s = FlexString(value)
		return nil
	}
	*s = FlexString(trimmed)
	return nil
}

func (s FlexString) MarshalJSON() ([]byte, error) {
	return sonic.Marshal(string(s))
}

func (s FlexString) String() string {
	return string(s)
}

// FlexInt decodes a JSON number or numeric string into an int. Fractional
// input is truncated; unparseable input decodes to zero rather than failing
// the whole entity.
type FlexInt int

func (i *FlexInt) UnmarshalJSON(data []byte) error {
	value, ok := parseNumeric(data)
	if !ok {
		*i = 0
		return nil
	}
	*i = FlexInt(value)
	return nil
}

func (i FlexInt) MarshalJSON() ([]byte, error) {
	return sonic.Marshal(int(i))
}

func (i FlexInt) Int() int {
	return int(i)
}

// FlexFloat decodes a JSON number or numeric string into a float64.
type FlexFloat float64

func (f *FlexFloat) UnmarshalJSON(data []byte) error {
	value, ok := parseNumeric(data)
	if !ok {
		*f = 0
		return nil
	}
	*f = FlexFloat(value)
	return nil
}

func (f FlexFloat) MarshalJSON() ([]byte, error) {
	return sonic.Marshal(float64(f))
}

func (f FlexFloat) Float64() float64 {
	return float64(f)
}

// FlexBool decodes JSON bools and Yahoo's 0/1 flags (numeric or quoted).
type FlexBool bool

func (b *FlexBool) UnmarshalJSON(data []byte) error {
	trimmed := strings.Trim(strings.TrimSpace(string(data)), `"`)
	switch strings.ToLower(trimmed) {
	case "true", "yes":
		*b = true
		return nil
	case "", "null", "false", "no":
		*b = false
		return nil
	}
	value, ok := parseNumeric(data)
	*b = FlexBool(ok && value != 0)
	return nil
}

func (b FlexBool) MarshalJSON() ([]byte, error) {
	return sonic.Marshal(bool(b))
}

func (b FlexBool) Bool() bool {
	return bool(b)
}

func parseNumeric(data []byte) (float64, bool) {
	trimmed := strings.Trim(strings.TrimSpace(string(data)), `"`)
	if trimmed == "" || trimmed == "null" {
		return 0, false
	}
	value, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return 0, false
	}
	return value, true
}
