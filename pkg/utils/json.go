package utils

import (
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// PrettyJson serializa com indentação, usado pela CLI para imprimir resumos
func PrettyJson(in any) string {
	buffer, err := json.MarshalIndent(in, "", "  ")
	if err != nil {
		return err.Error()
	}
	return string(buffer)
}
