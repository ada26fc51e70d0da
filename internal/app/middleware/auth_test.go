package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"commissions/internal/app/config"
	"commissions/internal/app/ds"
	appRedis "commissions/internal/app/redis"
	"commissions/internal/app/role"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/golang-jwt/jwt"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func testMiddleware(t *testing.T) (*AuthMiddleware, *appRedis.Client) {
	t.Helper()

	mr := miniredis.RunT(t)
	redisClient := appRedis.NewWithClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}))

	cfg := &config.Config{}
	cfg.JWT = config.JWTConfig{
		Token:         testSecret,
		ExpiresIn:     time.Hour,
		SigningMethod: jwt.SigningMethodHS256,
	}

	return NewAuthMiddleware(redisClient, cfg), redisClient
}

func signToken(t *testing.T, userID uint, userRole role.Role, secret string) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &ds.JWTClaims{
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(time.Hour).Unix(),
			IssuedAt:  time.Now().Unix(),
			Issuer:    "commissions",
		},
		UserID: userID,
		Role:   userRole,
	})

	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func doRequest(am *AuthMiddleware, authHeader string, allowed ...role.Role) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/protected", am.WithAuthCheck(allowed...), func(c *gin.Context) {
		userID := c.MustGet("userID").(uint)
		c.JSON(http.StatusOK, gin.H{"user_id": userID})
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestWithAuthCheckValidToken(t *testing.T) {
	am, _ := testMiddleware(t)
	token := signToken(t, 7, role.Customer, testSecret)

	rec := doRequest(am, "Bearer "+token, role.Customer, role.Admin)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"user_id":7`)
}

func TestWithAuthCheckMissingHeader(t *testing.T) {
	am, _ := testMiddleware(t)

	rec := doRequest(am, "", role.Customer)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestWithAuthCheckBadSignature(t *testing.T) {
	am, _ := testMiddleware(t)
	token := signToken(t, 7, role.Customer, "wrong-secret")

	rec := doRequest(am, "Bearer "+token, role.Customer)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestWithAuthCheckExpiredToken(t *testing.T) {
	am, _ := testMiddleware(t)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &ds.JWTClaims{
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(-time.Hour).Unix(),
			IssuedAt:  time.Now().Add(-2 * time.Hour).Unix(),
		},
		UserID: 7,
		Role:   role.Customer,
	})
	signed, err := token.SignedString([]byte(testSecret))
	require.NoError(t, err)

	rec := doRequest(am, "Bearer "+signed, role.Customer)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestWithAuthCheckBlacklistedToken(t *testing.T) {
	am, redisClient := testMiddleware(t)
	token := signToken(t, 7, role.Customer, testSecret)

	// До logout токен работает
	rec := doRequest(am, "Bearer "+token, role.Customer)
	require.Equal(t, http.StatusOK, rec.Code)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	require.NoError(t, redisClient.WriteJWTToBlacklist(req.Context(), token, time.Hour))

	rec = doRequest(am, "Bearer "+token, role.Customer)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestWithAuthCheckWrongRole(t *testing.T) {
	am, _ := testMiddleware(t)
	token := signToken(t, 7, role.Customer, testSecret)

	rec := doRequest(am, "Bearer "+token, role.Admin)
	require.Equal(t, http.StatusForbidden, rec.Code)
}
