package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// PurposeReset marca los tokens de recuperación de contraseña para que no
// sirvan como tokens de sesión (y viceversa).
const PurposeReset = "password_reset"

// Claims incluye los claims estándar JWT más los campos propios de la aplicación.
type Claims struct {
	jwt.RegisteredClaims
	UserID  string `json:"user_id"`
	Correo  string `json:"correo,omitempty"`
	Purpose string `json:"purpose,omitempty"`
}

// Generate genera un token de sesión firmado que incluye userID y correo.
func Generate(secret, userID, correo, issuer string, expMinutes int) (string, error) {
	return sign(secret, userID, correo, "", issuer, expMinutes)
}

// GenerateReset genera un token de recuperación de contraseña de corta vida.
func GenerateReset(secret, userID, issuer string, expMinutes int) (string, error) {
	return sign(secret, userID, "", PurposeReset, issuer, expMinutes)
}

func sign(secret, userID, correo, purpose, issuer string, expMinutes int) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt: secret vacío")
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(expMinutes) * time.Minute)),
		},
		UserID:  userID,
		Correo:  correo,
		Purpose: purpose,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Parse valida un token de sesión y devuelve userID y correo.
// Retorna error si el token es inválido, expirado, tiene firma incorrecta
// o es un token de recuperación.
func Parse(secret, tokenString string) (userID, correo string, err error) {
	claims, err := parse(secret, tokenString)
	if err != nil {
		return "", "", err
	}
	if claims.Purpose != "" {
		return "", "", fmt.Errorf("jwt: token de propósito %q no es de sesión", claims.Purpose)
	}
	return claims.UserID, claims.Correo, nil
}

// ParseReset valida un token de recuperación y devuelve el userID.
func ParseReset(secret, tokenString string) (string, error) {
	claims, err := parse(secret, tokenString)
	if err != nil {
		return "", err
	}
	if claims.Purpose != PurposeReset {
		return "", fmt.Errorf("jwt: no es un token de recuperación")
	}
	return claims.UserID, nil
}

func parse(secret, tokenString string) (*Claims, error) {
	if secret == "" {
		return nil, fmt.Errorf("jwt: secret vacío")
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("claims inválidos")
	}
	return claims, nil
}
