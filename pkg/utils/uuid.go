package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

const pipelineIDSize = 12

// GeneratePipelineID gera o identificador público de um pipeline (ex: "PL-x8Kd02LmQa7Z")
func GeneratePipelineID() (string, error) {
	id, err := gonanoid.Generate(characters, pipelineIDSize)
	if err != nil {
		return "", err
	}

	return "PL-" + id, nil
}
