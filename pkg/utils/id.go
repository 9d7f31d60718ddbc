package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// GenerateRunID identifica uma execução de sincronização nos logs
func GenerateRunID() string {
	id, err := gonanoid.Generate(characters, 12)
	if err != nil {
		return "run"
	}
	return id
}
