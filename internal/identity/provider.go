package identity

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

// Profile is what the messaging platform reports about the logged-in
// user. It is the single point of trust for userId: reservation writes
// never take a user-supplied userId.
type Profile struct {
	UserID      string `json:"userId"`
	DisplayName string `json:"displayName"`
	PictureURL  string `json:"pictureUrl,omitempty"`
}

var ErrInvalidToken = errors.New("invalid id token")

// Provider verifies platform ID tokens signed with the channel secret
// and extracts the profile claims.
type Provider struct {
	channelID     string
	channelSecret string
}

func NewProvider(channelID, channelSecret string) *Provider {
	return &Provider{
		channelID:     channelID,
		channelSecret: channelSecret,
	}
}

func (p *Provider) ProfileFromIDToken(tokenString string) (*Profile, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenMalformed
		}
		return []byte(p.channelSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}

	if p.channelID != "" {
		aud, _ := claims.GetAudience()
		if len(aud) == 0 || aud[0] != p.channelID {
			return nil, ErrInvalidToken
		}
	}

	sub, _ := claims["sub"].(string)
	if sub == "" {
		return nil, ErrInvalidToken
	}

	name, _ := claims["name"].(string)
	picture, _ := claims["picture"].(string)

	return &Profile{
		UserID:      sub,
		DisplayName: name,
		PictureURL:  picture,
	}, nil
}
