package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/tidwall/pretty"
)

func printJSON(v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "    "); err != nil {
		return err
	}

	fmt.Println(string(pretty.Color(buf.Bytes(), nil)))
	return nil
}
