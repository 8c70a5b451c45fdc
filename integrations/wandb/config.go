package wandb

import (
	"bytes"

	"github.com/buger/jsonparser"
)

// unwrapConfig turns {"key": {"value": v, "desc": ...}} into {"key": v}.
// Keys stored without the envelope are kept as they are. Input that is not a
// JSON object is returned unchanged so the caller can report it.
func unwrapConfig(raw []byte) []byte {
	var buf bytes.Buffer
	buf.WriteByte('{')

	first := true
	err := jsonparser.ObjectEach(raw, func(key []byte, value []byte, dataType jsonparser.ValueType, offset int) error {
		if dataType == jsonparser.Object {
			if inner, innerType, _, err := jsonparser.Get(value, "value"); err == nil {
				value, dataType = inner, innerType
			}
		}

		if !first {
			buf.WriteByte(',')
		}
		first = false

		buf.WriteByte('"')
		buf.Write(key)
		buf.WriteString(`":`)
		writeValue(&buf, value, dataType)
		return nil
	})
	if err != nil {
		return raw
	}

	buf.WriteByte('}')
	return buf.Bytes()
}

// writeValue writes a value as returned by jsonparser back as JSON. Strings
// come back without their quotes but still escaped.
func writeValue(buf *bytes.Buffer, value []byte, dataType jsonparser.ValueType) {
	if dataType == jsonparser.String {
		buf.WriteByte('"')
		buf.Write(value)
		buf.WriteByte('"')
		return
	}
	buf.Write(value)
}
