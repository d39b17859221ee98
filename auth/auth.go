package auth

import (
	"os"

	"saboserver/models"

	jwt "github.com/dgrijalva/jwt-go"
)

// JWTの署名キー。本番環境では必ず環境変数JWT_SECRETで設定する
var JwtKey = []byte(jwtSecret())

func jwtSecret() string {
	if secret := os.Getenv("JWT_SECRET"); secret != "" {
		return secret
	}
	return "saboserver-dev-key"
}

func IsValidToken(tokenString string) (bool, error) {
	claims := &models.MyClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return JwtKey, nil
	})

	if err != nil {
		return false, err
	}

	return token.Valid, nil
}
