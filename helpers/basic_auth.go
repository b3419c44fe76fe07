package helpers

import (
	"net/http"

	"code.cloudfoundry.org/lager/v3"
	"golang.org/x/crypto/bcrypt"
)

// bcrypt ignores input past this length.
const maxBcryptInput = 72

type BasicAuthenticationMiddleware struct {
	usernameHash []byte
	passwordHash []byte
}

func (bam *BasicAuthenticationMiddleware) BasicAuthenticationMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		username, password, authOK := r.BasicAuth()

		if !authOK || bcrypt.CompareHashAndPassword(bam.usernameHash, []byte(username)) != nil || bcrypt.CompareHashAndPassword(bam.passwordHash, []byte(password)) != nil {
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// CreateBasicAuthMiddleware hashes cleartext credentials once up front; configured
// hashes are used as they are.
func CreateBasicAuthMiddleware(logger lager.Logger, ba BasicAuth) (*BasicAuthenticationMiddleware, error) {
	usernameHash, err := hashCredential(logger, "username", ba.UsernameHash, ba.Username)
	if err != nil {
		return nil, err
	}

	passwordHash, err := hashCredential(logger, "password", ba.PasswordHash, ba.Password)
	if err != nil {
		return nil, err
	}

	return &BasicAuthenticationMiddleware{
		usernameHash: usernameHash,
		passwordHash: passwordHash,
	}, nil
}

func hashCredential(logger lager.Logger, name string, hash string, cleartext string) ([]byte, error) {
	if hash != "" {
		return []byte(hash), nil
	}
	if len(cleartext) > maxBcryptInput {
		logger.Error("warning-configured-"+name+"-too-long-using-only-first-72-characters", bcrypt.ErrPasswordTooLong, lager.Data{name + "-length": len(cleartext)})
		cleartext = cleartext[:maxBcryptInput]
	}
	// MinCost is enough since the config holds the cleartext anyway
	hashed, err := bcrypt.GenerateFromPassword([]byte(cleartext), bcrypt.MinCost)
	if err != nil {
		logger.Error("failed-new-server-"+name, err)
		return nil, err
	}
	return hashed, nil
}
