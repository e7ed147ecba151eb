package models

import (
	"encoding/hex"

	"golang.org/x/crypto/blake2b"
)

// HashData вычисляет content hash payload записи: hex(BLAKE2b-256).
// Сервер проверяет хеш при push, поэтому алгоритм должен совпадать на обеих сторонах.
func HashData(data []byte) string {
	sum := blake2b.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// VerifyHash проверяет, что hash соответствует data
func VerifyHash(data []byte, hash string) bool {
	return HashData(data) == hash
}
