package security

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// InviteClaims carry the issuer of a quizmaster invite link.
type InviteClaims struct {
	IssuerID int64 `json:"issuer_id"`
	jwt.RegisteredClaims
}

// inviteTTL bounds how long an invite deep-link stays redeemable.
const inviteTTL = 24 * time.Hour

// GenerateInviteToken creates a signed invite token. The redeeming user
// adds themselves to the quizmaster registry via /start invite_<token>.
func GenerateInviteToken(issuerID int64, secret string) (string, error) {
	claims := &InviteClaims{
		IssuerID: issuerID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(inviteTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ValidateInviteToken validates and parses an invite token.
func ValidateInviteToken(tokenString, secret string) (*InviteClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &InviteClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})

	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*InviteClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, fmt.Errorf("invalid token")
}
