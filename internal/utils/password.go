package utils

import "golang.org/x/crypto/bcrypt"

// HashSenha gera o hash bcrypt da senha em texto puro
func HashSenha(senha string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(senha), bcrypt.DefaultCost)
	return string(bytes), err
}

// CheckSenha compara o hash armazenado com a senha informada
func CheckSenha(hash, senha string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(senha))
	return err == nil
}
