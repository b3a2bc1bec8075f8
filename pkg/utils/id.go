package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

const defaultIDSize = 8

// GenerateID gera um identificador curto e legível para logs
func GenerateID(size int) (string, error) {
	if size <= 0 {
		size = defaultIDSize
	}

	return gonanoid.Generate(characters, size)
}
