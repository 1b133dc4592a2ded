package managers

import (
	"crypto/ed25519"
	"crypto/rand"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"starwars-blog/internal/schemas"
	"starwars-blog/internal/utils"
)

// TokenValidity is the fixed lifetime of an issued session token.
const TokenValidity = 72 * time.Hour

// TokenValidityMillis is the validity window in milliseconds, returned to
// clients alongside the token.
const TokenValidityMillis = int64(TokenValidity / time.Millisecond)

type JWTMgr interface {
	GenerateJWT(claims jwt.Claims) (string, error)
	ValidateJWT(tokenString string) (jwt.Claims, error)
	GenerateClaims(userId int) jwt.Claims
	JWTMiddleware() gin.HandlerFunc
}

// JWTManager handles JWT generation, signing, and validation.
type JWTManager struct {
	privateKey ed25519.PrivateKey
	publicKey  ed25519.PublicKey
}

// NewJWTManager creates a JWTManager from an existing key pair.
func NewJWTManager(privateKey ed25519.PrivateKey, publicKey ed25519.PublicKey) JWTMgr {
	return &JWTManager{privateKey: privateKey, publicKey: publicKey}
}

// NewJWTManagerFromFile loads the signing key pair from KEY_PAIR_PATH,
// generating and persisting a fresh pair on first boot.
func NewJWTManagerFromFile() (JWTMgr, error) {
	path := os.Getenv("KEY_PAIR_PATH")

	privateKey, publicKey, err := loadKeyPair(path)
	if err != nil {
		privateKey, publicKey, err = generateKeyPair(path)
		if err != nil {
			return nil, err
		}
	}

	return &JWTManager{privateKey: privateKey, publicKey: publicKey}, nil
}

// GenerateClaims generates the claims for a session token. The subject is
// the user id; the expiry enforces the 3-day validity window.
func (jm *JWTManager) GenerateClaims(userId int) jwt.Claims {
	now := time.Now()
	return jwt.MapClaims{
		"iss": "starwars-blog",
		"iat": now.Unix(),
		"exp": now.Add(TokenValidity).Unix(),
		"sub": strconv.Itoa(userId),
	}
}

// GenerateJWT signs the given claims with the manager's private key.
func (jm *JWTManager) GenerateJWT(claims jwt.Claims) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodEdDSA, claims)
	return token.SignedString(jm.privateKey)
}

// ValidateJWT validates the given JWT and returns the claims if valid.
// Expired tokens fail here via the library's registered-claims checks.
func (jm *JWTManager) ValidateJWT(tokenString string) (jwt.Claims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if token.Method.Alg() != jwt.SigningMethodEdDSA.Alg() {
			return nil, fmt.Errorf("invalid signing method")
		}
		return jm.publicKey, nil
	})
	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, jwt.ErrSignatureInvalid
	}

	return token.Claims, nil
}

// JWTMiddleware guards a route group: it extracts the bearer token, validates
// it, and stores the claims in the request context for handlers downstream.
func (jm *JWTManager) JWTMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			utils.WriteAndLogError(c, schemas.InvalidToken, http.StatusUnauthorized, jwt.ErrTokenMalformed)
			c.Abort()
			return
		}

		claims, err := jm.ValidateJWT(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			utils.WriteAndLogError(c, schemas.InvalidToken, http.StatusUnauthorized, err)
			c.Abort()
			return
		}

		c.Set(utils.ClaimsKey.String(), claims)
		c.Next()
	}
}

// generateKeyPair generates a new key pair and saves it to the given path.
func generateKeyPair(path string) (ed25519.PrivateKey, ed25519.PublicKey, error) {
	publicKey, privateKey, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, nil, err
	}

	if err = saveKeyPair(privateKey, publicKey, path); err != nil {
		return nil, nil, err
	}

	return privateKey, publicKey, nil
}

// saveKeyPair saves the key pair to the specified file.
func saveKeyPair(privateKey ed25519.PrivateKey, publicKey ed25519.PublicKey, path string) error {
	keyPairBytes := append(privateKey, publicKey...)
	return os.WriteFile(path, keyPairBytes, 0600)
}

// loadKeyPair loads the key pair from the specified file. The file holds the
// private key followed by the public key.
func loadKeyPair(path string) (ed25519.PrivateKey, ed25519.PublicKey, error) {
	keyPairBytes, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}

	if len(keyPairBytes) != ed25519.PrivateKeySize+ed25519.PublicKeySize {
		return nil, nil, fmt.Errorf("invalid key pair format")
	}

	return keyPairBytes[:ed25519.PrivateKeySize], keyPairBytes[ed25519.PrivateKeySize:], nil
}
