package resource

import (
	"bufio"
	"bytes"
	"io"

	"github.com/32bitkid/legend/screen"
)

// Text is a table of NUL-terminated Big5 strings.
type Text []screen.Text

func NewText(b []byte) (Text, error) {
	var text Text

	reader := bufio.NewReader(bytes.NewReader(b))
	for {
		str, err := reader.ReadBytes(0x00)
		if err == io.EOF {
			if len(str) > 0 {
				text = append(text, screen.TextFromBig5(str))
			}
			break
		} else if err != nil {
			return nil, err
		}
		text = append(text, screen.TextFromBig5(str[:len(str)-1]))
	}

	return text, nil
}

// Bytes encodes the table back into its NUL-terminated form.
func (t Text) Bytes() []byte {
	var buf bytes.Buffer
	for _, line := range t {
		buf.Write(line.Bytes())
		buf.WriteByte(0x00)
	}
	return buf.Bytes()
}
