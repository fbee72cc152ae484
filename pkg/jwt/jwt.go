package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims inclui os claims padrão JWT mais os campos próprios da aplicação.
// Role permite que o middleware RBAC decida sem consultar a DB. Os campos de
// impersonação registram quando um operador MASTER está agindo como o ADMIN
// de um tenant (suporte): o token carrega a identidade do admin, mas ActorID
// preserva quem realmente está na sessão.
type Claims struct {
	jwt.RegisteredClaims
	UserID       string `json:"user_id"`
	CompanyID    string `json:"company_id,omitempty"`
	Role         string `json:"role"` // "MASTER" | "ADMIN" | "MECHANIC"
	Impersonated bool   `json:"impersonated,omitempty"`
	ActorID      string `json:"actor_id,omitempty"` // user MASTER que iniciou a impersonação
}

// Session identidade extraída de um token válido.
type Session struct {
	UserID       string
	CompanyID    string
	Role         string
	Impersonated bool
	ActorID      string
}

// Generate gera um token JWT assinado com userID, companyID e role.
func Generate(secret, userID, companyID, role, issuer string, expMinutes int) (string, error) {
	return generate(secret, userID, companyID, role, issuer, expMinutes, false, "")
}

// GenerateImpersonated gera um token em nome do admin do tenant, marcando a
// sessão como impersonada e registrando o MASTER que a iniciou.
func GenerateImpersonated(secret, adminID, companyID, issuer, actorID string, expMinutes int) (string, error) {
	return generate(secret, adminID, companyID, "ADMIN", issuer, expMinutes, true, actorID)
}

func generate(secret, userID, companyID, role, issuer string, expMinutes int, impersonated bool, actorID string) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt: secret vazio")
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(expMinutes) * time.Minute)),
		},
		UserID:       userID,
		CompanyID:    companyID,
		Role:         role,
		Impersonated: impersonated,
		ActorID:      actorID,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Parse valida o token e devolve a sessão embutida.
// Retorna erro se o token for inválido, expirado ou com assinatura incorreta.
func Parse(secret, tokenString string) (*Session, error) {
	if secret == "" {
		return nil, fmt.Errorf("jwt: secret vazio")
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de assinatura inesperado: %v", t.Header["alg"])
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
	return &Session{
		UserID:       claims.UserID,
		CompanyID:    claims.CompanyID,
		Role:         claims.Role,
		Impersonated: claims.Impersonated,
		ActorID:      claims.ActorID,
	}, nil
}
