package auth

import "golang.org/x/crypto/bcrypt"

// HashPassword devuelve el hash bcrypt (salteado) de la contraseña.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword compara en tiempo constante la contraseña contra el
// hash almacenado.
func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
