package middlewares

import (
	"crypto/rsa"
	"encoding/base64"
	"strings"

	"github.com/dgrijalva/jwt-go"
	"github.com/gofiber/fiber/v2"

	"github.com/zsmartex/stockapi/controllers/helpers"
)

var (
	AuthzInvalidSession = "authz.invalid_session"
	JwtDecodeAndVerify  = "jwt.decode_and_verify"
)

// Auth struct represents parsed jwt information.
type Auth struct {
	UID      string   `json:"uid"`
	State    string   `json:"state"`
	Email    string   `json:"email"`
	Role     string   `json:"role"`
	Level    int32    `json:"level"`
	Audience []string `json:"aud,omitempty"`

	jwt.StandardClaims
}

// ParsePublicKey decodes a base64 encoded PEM RSA public key.
func ParsePublicKey(encoded string) (*rsa.PublicKey, error) {
	public_key_pem, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, err
	}

	return jwt.ParseRSAPublicKeyFromPEM(public_key_pem)
}

// Authenticate verifies the bearer token against publicKey and stores the
// claims as "CurrentUser".
func Authenticate(publicKey *rsa.PublicKey) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Get("Authorization")

		if len(token) == 0 {
			return c.Status(401).JSON(helpers.Errors{
				Errors: []string{AuthzInvalidSession},
			})
		}

		token = strings.Replace(token, "Bearer ", "", -1)

		auth := &Auth{}
		_, err := jwt.ParseWithClaims(token, auth, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodRSA); !ok {
				return nil, jwt.ErrSignatureInvalid
			}

			return publicKey, nil
		})

		if err != nil {
			return c.Status(401).JSON(helpers.Errors{
				Errors: []string{JwtDecodeAndVerify},
			})
		}

		c.Locals("CurrentUser", auth)

		return c.Next()
	}
}

func GetCurrentUser(c *fiber.Ctx) *Auth {
	auth, ok := c.Locals("CurrentUser").(*Auth)
	if !ok {
		return nil
	}

	return auth
}
